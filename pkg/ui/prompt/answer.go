package prompt

import "strings"

// Answer is the outcome of a yes/no/skip question.
type Answer int

const (
	// Yes affirms the question.
	Yes Answer = iota + 1
	// No declines it.
	No
	// Skip leaves the section exactly as stored.
	Skip
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

var synonyms = map[string]Answer{
	"y":          Yes,
	"yes":        Yes,
	"ye":         Yes,
	"yeah":       Yes,
	"yep":        Yes,
	"bet":        Yes,
	"sure":       Yes,
	"n":          No,
	"no":         No,
	"nah":        No,
	"nope":       No,
	"never":      No,
	"not really": No,
	"skip":       Skip,
	"s":          Skip,
	"sk":         Skip,
	"pass":       Skip,
}

// ParseAnswer matches input case-insensitively against the accepted synonyms.
func ParseAnswer(input string) (Answer, bool) {
	a, ok := synonyms[strings.ToLower(strings.TrimSpace(input))]
	return a, ok
}
