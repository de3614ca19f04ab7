package openai

import (
	"github.com/tmc/langchaingo/llms"

	"github.com/wenlzhang/taskchat/ai"
)

// usageFromChoice extracts token usage from a model response. Not every
// OpenAI-compatible server fills in usage, so the fields are
// presence-checked; when absent the counts are estimated from text length
// and flagged as such.
func usageFromChoice(choice *llms.ContentChoice, promptText, completionText string) ai.Usage {
	if choice != nil && choice.GenerationInfo != nil {
		prompt, pok := intFromInfo(choice.GenerationInfo, "PromptTokens")
		completion, cok := intFromInfo(choice.GenerationInfo, "CompletionTokens")
		if pok && cok {
			return ai.Usage{PromptTokens: prompt, CompletionTokens: completion}
		}
	}
	return ai.Usage{
		PromptTokens:     estimateTokens(promptText),
		CompletionTokens: estimateTokens(completionText),
		Estimated:        true,
	}
}

func intFromInfo(info map[string]any, key string) (int, bool) {
	v, ok := info[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
