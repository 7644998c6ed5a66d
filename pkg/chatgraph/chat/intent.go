package chat

import "strings"

// Intent is a closed-set classification label driving routing.
type Intent string

// The closed intent set. IntentGeneral is the catch-all: classifier
// output outside the three specific labels always collapses to it.
const (
	IntentJoke    Intent = "joke"
	IntentFact    Intent = "fact"
	IntentAdvice  Intent = "advice"
	IntentGeneral Intent = "general"
)

// ParseIntent normalizes raw classifier output into the closed intent set.
// The raw string is trimmed and lower-cased; anything that is not exactly
// joke, fact, or advice becomes IntentGeneral. Malformed output is never
// an error.
func ParseIntent(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentJoke:
		return IntentJoke
	case IntentFact:
		return IntentFact
	case IntentAdvice:
		return IntentAdvice
	default:
		return IntentGeneral
	}
}
