package pipeline

import "strings"

type Intent int

const (
	IntentQuery Intent = iota
	IntentInsert
)

func (i Intent) String() string {
	if i == IntentInsert {
		return "insert"
	}
	return "query"
}

// Messages that announce a new expense do it with one of these verbs.
// Plain substring matching, no NLU: a message matching none of them is
// treated as a question, even when it was meant as an insertion.
var insertKeywords = []string{"adicione", "gastei", "registre", "paguei", "comprei"}

func DetectIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, keyword := range insertKeywords {
		if strings.Contains(lower, keyword) {
			return IntentInsert
		}
	}
	return IntentQuery
}
