package pipeline

import "regexp"

// Three ordered spacing repairs for known model output artifacts. This is a
// best-effort fix, not a typography normalizer.
var (
	sentenceBoundary = regexp.MustCompile(`\.([A-Z])`)
	caseBoundary     = regexp.MustCompile(`([a-z])([A-Z])`)
	digitLetter      = regexp.MustCompile(`(\d)([a-zA-Z])`)
)

// CleanText inserts the spaces models sometimes drop: after a
// sentence-ending period followed by a capital, at a lower→upper case
// boundary, and between a digit and a following letter. Applying it twice
// yields the same result as applying it once.
func CleanText(s string) string {
	s = sentenceBoundary.ReplaceAllString(s, ". $1")
	s = caseBoundary.ReplaceAllString(s, "$1 $2")
	s = digitLetter.ReplaceAllString(s, "$1 $2")
	return s
}
