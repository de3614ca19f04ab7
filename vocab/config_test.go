package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	v, warnings := New(nil)

	assert.Empty(t, warnings)
	key, ok := v.ResolveStatus("done")
	require.True(t, ok)
	assert.Equal(t, "completed", key)
	assert.Equal(t, 1, v.ResolvePriority("urgent"))
}

func TestNew_ConfiguredStatusesReplaceDefaults(t *testing.T) {
	cfg := &Config{
		Statuses: []StatusConfig{
			{Key: "backlog", Aliases: []string{"someday"}},
			{Key: "active"},
		},
	}
	v, _ := New(cfg)

	key, ok := v.ResolveStatus("someday")
	require.True(t, ok)
	assert.Equal(t, "backlog", key)

	// Default categories are gone once the user configures their own.
	_, ok = v.ResolveStatus("done")
	assert.False(t, ok)
}

func TestNew_MalformedEntriesFallBackWithWarnings(t *testing.T) {
	badWeight := 3.5
	cfg := &Config{
		Priorities: map[string]PriorityConfig{
			"p1":    {Aliases: []string{"now"}},
			"seven": {Aliases: []string{"whatever"}},
		},
		Statuses: []StatusConfig{
			{Key: ""},
			{Key: "open", Weight: &badWeight},
		},
		DueDateAliases: map[string][]string{
			"today":     {"heute"},
			"yesterday": {"gestern"},
		},
	}
	v, warnings := New(cfg)

	// Still fully usable.
	assert.Equal(t, 1, v.ResolvePriority("now"))
	code, ok := v.ResolveDueDateKeyword("heute")
	require.True(t, ok)
	assert.Equal(t, "today", code)

	// The bad weight fell back to the built-in default for "open".
	assert.Equal(t, 0.8, v.StatusWeight("open"))

	assert.Len(t, warnings, 4)
}

func TestNew_DuplicateSortOrderWarns(t *testing.T) {
	two := 2
	cfg := &Config{
		Statuses: []StatusConfig{
			{Key: "open", SortOrder: &two},
			{Key: "waiting", SortOrder: &two},
		},
	}
	v, warnings := New(cfg)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "share sort order 2")

	// Collision resolves deterministically: both keep the explicit order,
	// the sorter tie-breaks by configuration order.
	assert.Equal(t, 2, v.StatusOrder("open"))
	assert.Equal(t, 2, v.StatusOrder("waiting"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.json")
	payload := `{
		"statuses": [{"key": "open", "aliases": ["offen"]}],
		"dueDateAliases": {"today": ["heute"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Statuses, 1)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{nope"), 0644))
		_, err := LoadConfig(bad)
		assert.Error(t, err)
	})
}
