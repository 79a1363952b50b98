package collab

import (
	"fmt"

	"github.com/paker7000/rag-chatbot/internal/domain"
)

// StatusIndexingComplete is the fallback status when an ingestion
// collaborator returns anything other than text.
const StatusIndexingComplete = "Indexing complete."

// NormalizeChat reduces an arbitrary chat-collaborator return value to the
// canonical answer/citations shape. Recognized shapes, in priority order:
// a map with "answer"/"citations" keys, a two-element pair of answer and
// citations, and anything else coerced to text with no citations. Never
// fails; every input has a defined fallback.
func NormalizeChat(raw any) domain.ChatResult {
	switch v := raw.(type) {
	case map[string]any:
		answer := ""
		if a, ok := v["answer"]; ok && a != nil {
			answer = coerceString(a)
		}
		return domain.ChatResult{Answer: answer, Citations: normalizeCitations(v["citations"])}
	case [2]any:
		return domain.ChatResult{Answer: coerceString(v[0]), Citations: normalizeCitations(v[1])}
	case []any:
		if len(v) == 2 {
			return domain.ChatResult{Answer: coerceString(v[0]), Citations: normalizeCitations(v[1])}
		}
	}
	return domain.ChatResult{Answer: coerceString(raw), Citations: []string{}}
}

// NormalizeStatus reduces an ingestion-collaborator return value to a status
// message: text is used verbatim, anything else means generic success.
func NormalizeStatus(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return StatusIndexingComplete
}

// normalizeCitations accepts the citation shapes collaborators have been
// observed to return: nothing, a sequence, or a single scalar.
func normalizeCitations(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, coerceString(item))
		}
		return out
	case [2]any:
		return []string{coerceString(v[0]), coerceString(v[1])}
	default:
		return []string{coerceString(raw)}
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
