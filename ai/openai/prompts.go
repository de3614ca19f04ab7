package openai

import (
	"fmt"
	"strings"

	"github.com/wenlzhang/taskchat/core"
	"github.com/wenlzhang/taskchat/vocab"
)

const parseResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "core_keywords": {"type": "array", "items": {"type": "string"}},
    "expanded_keywords": {"type": "array", "items": {"type": "string"}},
    "negated_keywords": {"type": "array", "items": {"type": "string"}},
    "priority": {"type": "integer", "minimum": -2, "maximum": 4},
    "statuses": {"type": "array", "items": {"type": "string"}},
    "due_date": {"type": "string"},
    "due_range": {
      "type": ["object", "null"],
      "properties": {
        "operator": {"type": "string", "enum": ["<", "<=", ">", ">="]},
        "date": {"type": "string"}
      },
      "required": ["operator", "date"]
    },
    "folder": {"type": "string"},
    "tags": {"type": "array", "items": {"type": "string"}},
    "is_vague": {"type": "boolean"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "understanding": {"type": "string"}
  },
  "required": ["core_keywords", "expanded_keywords", "is_vague", "confidence"],
  "additionalProperties": false
}`

const parsePromptTemplate = `Interpret the user's task search query and return the interpretation as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- core_keywords are the content words the user actually typed, lowercase, with filler words removed.
- expanded_keywords are core_keywords plus synonyms and close variants, in each of these languages: %s.
  Generate at most %d expansions per core keyword per language. Every core keyword must also appear
  in expanded_keywords.
- negated_keywords are words the user excluded ("not meeting", "except drafts").
- priority: 0 when the query says nothing about priority, 1 (highest) to 4 (lowest) when it does,
  -1 for "any priority", -2 for "no priority set".
- statuses must use exactly these category keys: %s. Use the status categories listed below to map
  the user's wording to keys. Leave empty when the query says nothing about status.
- due_date uses one of: today, tomorrow, overdue, future, this-week, next-week, any, none,
  a relative offset like +3d / +2w / +1m, or an explicit date like 2026-09-14. Empty when absent.
- due_range expresses bounds like "due before friday": operator plus a due_date value. Use null when absent.
  Never set both due_date and due_range.
- is_vague is true for advisory queries ("what should I work on"), false for lookups ("fix login bug").
- confidence is your certainty in this interpretation, 0.0 to 1.0.
- understanding restates the query in one short sentence.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Status categories (key: meaning, with words users may use for it):
%s
Priority levels (level: words that map to it):
%s


Example (specific lookup with shorthand):
Input: "p1 fix bug"
Output:
{
  "core_keywords": ["fix", "bug"],
  "expanded_keywords": ["fix", "bug", "repair", "resolve", "debug", "defect", "issue", "error"],
  "negated_keywords": [],
  "priority": 1,
  "statuses": [],
  "due_date": "",
  "due_range": null,
  "folder": "",
  "tags": [],
  "is_vague": false,
  "confidence": 0.95,
  "understanding": "Find highest-priority tasks about fixing a bug."
}

Example (vague advisory query):
Input: "what should I do today"
Output:
{
  "core_keywords": [],
  "expanded_keywords": [],
  "negated_keywords": [],
  "priority": 0,
  "statuses": [],
  "due_date": "today",
  "due_range": null,
  "folder": "",
  "tags": [],
  "is_vague": true,
  "confidence": 0.9,
  "understanding": "Recommend tasks worth doing today."
}

Example (non-English query):
Input: "准备会议的任务"
Output:
{
  "core_keywords": ["准备", "会议"],
  "expanded_keywords": ["准备", "会议", "prepare", "preparation", "meeting", "presentation", "筹备", "会谈"],
  "negated_keywords": [],
  "priority": 0,
  "statuses": [],
  "due_date": "",
  "due_range": null,
  "folder": "",
  "tags": [],
  "is_vague": false,
  "confidence": 0.85,
  "understanding": "Find tasks about preparing for a meeting."
}

Example (exclusion and status):
Input: "open reports but not drafts"
Output:
{
  "core_keywords": ["reports"],
  "expanded_keywords": ["reports", "report", "summary", "writeup"],
  "negated_keywords": ["drafts"],
  "priority": 0,
  "statuses": ["open"],
  "due_date": "",
  "due_range": null,
  "folder": "",
  "tags": [],
  "is_vague": false,
  "confidence": 0.9,
  "understanding": "Find open report tasks, excluding drafts."
}`

// buildParsePrompt creates the query parsing system prompt with the
// vocabulary embedded: status keys with their descriptions and aliases,
// the priority terms, the expansion languages, and the per-language
// expansion cap. Custom vocabularies reach the model this way.
func buildParsePrompt(vocabulary *vocab.Vocabulary, languages []string, expansionsPerLanguage int) string {
	statuses := vocabulary.Statuses()
	keys := make([]string, 0, len(statuses))
	var statusGuide strings.Builder
	for _, s := range statuses {
		keys = append(keys, s.Key)
		fmt.Fprintf(&statusGuide, "- %s", s.Key)
		if s.Description != "" {
			fmt.Fprintf(&statusGuide, ": %s", s.Description)
		}
		if len(s.Aliases) > 0 {
			fmt.Fprintf(&statusGuide, " (%s)", strings.Join(s.Aliases, ", "))
		}
		statusGuide.WriteString("\n")
	}

	priorities := vocabulary.Priorities()
	var priorityGuide strings.Builder
	for level := core.PriorityMin; level <= core.PriorityMax; level++ {
		p, ok := priorities[level]
		if !ok || len(p.Aliases) == 0 {
			continue
		}
		fmt.Fprintf(&priorityGuide, "- %d: %s\n", level, strings.Join(p.Aliases, ", "))
	}

	return fmt.Sprintf(parsePromptTemplate,
		parseResponseSchema,
		strings.Join(languages, ", "),
		expansionsPerLanguage,
		strings.Join(keys, ", "),
		statusGuide.String(),
		priorityGuide.String())
}

const recommendAdvisoryPrompt = `You are a task assistant. The user asked an open question about what to work
on. You are given their question and a numbered list of candidate tasks, best candidates first.

Recommend what to work on and why, in 2-4 short sentences. Refer to every task you mention by its
bracketed reference exactly as given, for example [TASK_1]. Mention at most three tasks. Do not invent
tasks that are not in the list. If the list is empty, say you found nothing actionable and suggest
broadening the question.`

const recommendLookupPrompt = `You are a task assistant. The user searched for specific tasks. You are given
their query and a numbered list of the matching tasks, best matches first.

Summarize what matched in 1-3 short sentences. Refer to every task you mention by its bracketed
reference exactly as given, for example [TASK_1]. Do not invent tasks that are not in the list.`

// buildRecommendSystemPrompt selects the advisory or lookup register.
func buildRecommendSystemPrompt(vague bool) string {
	if vague {
		return recommendAdvisoryPrompt
	}
	return recommendLookupPrompt
}

// buildRecommendUserPrompt renders the query and candidate tasks. Each task
// line carries the properties the model may cite: status, priority, due date.
func buildRecommendUserPrompt(query string, tasks []core.ScoredTask) string {
	var b strings.Builder
	b.WriteString("Query: ")
	b.WriteString(query)
	b.WriteString("\n\nTasks:\n")
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
		return b.String()
	}
	for i, st := range tasks {
		fmt.Fprintf(&b, "[TASK_%d] %s", i+1, st.Task.Text)
		if st.Task.StatusCategory != "" {
			fmt.Fprintf(&b, " | status: %s", st.Task.StatusCategory)
		}
		if st.Task.HasPriority() {
			fmt.Fprintf(&b, " | priority: %d", st.Task.Priority)
		}
		if st.Task.HasDueDate() {
			fmt.Fprintf(&b, " | due: %s", st.Task.DueDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
