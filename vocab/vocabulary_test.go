package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenlzhang/taskchat/core"
)

func TestResolvePriority(t *testing.T) {
	v := Default()

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "numeric", token: "1", want: 1},
		{name: "numeric out of range", token: "7", want: core.PriorityUnset},
		{name: "alias", token: "urgent", want: 1},
		{name: "alias case insensitive", token: "HIGH", want: 2},
		{name: "symbol", token: "🔺", want: 1},
		{name: "any sentinel", token: "any", want: core.PriorityAny},
		{name: "none sentinel", token: "none", want: core.PriorityNone},
		{name: "unknown", token: "banana", want: core.PriorityUnset},
		{name: "empty", token: "", want: core.PriorityUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ResolvePriority(tt.token))
		})
	}
}

func TestResolveStatus(t *testing.T) {
	v := Default()

	t.Run("exact key", func(t *testing.T) {
		key, ok := v.ResolveStatus("inProgress")
		require.True(t, ok)
		assert.Equal(t, "inProgress", key)
	})

	t.Run("key case insensitive", func(t *testing.T) {
		key, ok := v.ResolveStatus("INPROGRESS")
		require.True(t, ok)
		assert.Equal(t, "inProgress", key)
	})

	t.Run("alias", func(t *testing.T) {
		key, ok := v.ResolveStatus("doing")
		require.True(t, ok)
		assert.Equal(t, "inProgress", key)
	})

	t.Run("symbol", func(t *testing.T) {
		key, ok := v.ResolveStatus("x")
		require.True(t, ok)
		assert.Equal(t, "completed", key)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := v.ResolveStatus("flying")
		assert.False(t, ok)
	})

	t.Run("display name is never a matching key", func(t *testing.T) {
		cfg := &Config{
			Statuses: []StatusConfig{
				{Key: "waiting", DisplayName: "Blocked on others"},
			},
		}
		v, _ := New(cfg)
		_, ok := v.ResolveStatus("Blocked on others")
		assert.False(t, ok)
		key, ok := v.ResolveStatus("waiting")
		require.True(t, ok)
		assert.Equal(t, "waiting", key)
	})
}

func TestResolveStatusMulti(t *testing.T) {
	v := Default()

	keys := v.ResolveStatusMulti([]string{"open", "doing", "open", "nonsense"})
	assert.Equal(t, []string{"open", "inProgress"}, keys)
}

func TestResolveDueDateKeyword(t *testing.T) {
	v := Default()

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{token: "today", want: "today", ok: true},
		{token: "Tomorrow", want: "tomorrow", ok: true},
		{token: "late", want: "overdue", ok: true},
		{token: "+3d", want: "+3d", ok: true},
		{token: "+2w", want: "+2w", ok: true},
		{token: "2026-09-14", want: "2026-09-14", ok: true},
		{token: "someday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := v.ResolveDueDateKeyword(tt.token)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	// A user-configured status category named "important" must win over
	// the priority reading of the same word.
	cfg := &Config{
		Statuses: []StatusConfig{
			{Key: "important", DisplayName: "Important"},
			{Key: "open"},
		},
		Priorities: map[string]PriorityConfig{
			"2": {Aliases: []string{"important", "high"}},
		},
	}
	v, _ := New(cfg)

	res := v.Resolve("important")
	assert.Equal(t, WordStatus, res.Kind)
	assert.Equal(t, "important", res.Status)

	res = v.Resolve("high")
	assert.Equal(t, WordPriority, res.Kind)
	assert.Equal(t, 2, res.Priority)

	res = v.Resolve("today")
	assert.Equal(t, WordDueDate, res.Kind)
	assert.Equal(t, "today", res.DueDate)

	res = v.Resolve("refactor")
	assert.Equal(t, WordUnknown, res.Kind)
}

func TestResolve_BareDigitsAreFreeText(t *testing.T) {
	v := Default()
	res := v.Resolve("3")
	assert.Equal(t, WordUnknown, res.Kind)
}

func TestStatusOrder(t *testing.T) {
	v := Default()

	assert.Less(t, v.StatusOrder("inProgress"), v.StatusOrder("open"))
	assert.Less(t, v.StatusOrder("open"), v.StatusOrder("completed"))
	assert.Less(t, v.StatusOrder("completed"), v.StatusOrder("cancelled"))

	// Unknown categories sort after everything configured.
	assert.Greater(t, v.StatusOrder("mystery"), v.StatusOrder("cancelled"))
}

func TestStatusOrder_Explicit(t *testing.T) {
	one, nine := 1, 9
	cfg := &Config{
		Statuses: []StatusConfig{
			{Key: "open", SortOrder: &nine},
			{Key: "waiting", SortOrder: &one},
		},
	}
	v, _ := New(cfg)

	assert.Less(t, v.StatusOrder("waiting"), v.StatusOrder("open"))
}

func TestStatusWeight_UnknownIsNeutral(t *testing.T) {
	v := Default()
	assert.Equal(t, 0.0, v.StatusWeight("mystery"))
}
