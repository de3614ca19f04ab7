package openai

import "strings"

// stripCodeFences removes a markdown fence wrapper from a model response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncateRunes caps a string at max runes without splitting a character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// estimateTokens approximates the token count of a text as one token per
// four bytes. Used only when the provider reports no usage.
func estimateTokens(s string) int {
	return (len(s) + 3) / 4
}
