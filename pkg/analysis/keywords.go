package analysis

import (
	"strings"
	"unicode"
)

// stopWords is the fixed set of common English words excluded from keyword
// extraction. Initialized once, never mutated.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"should": true, "could": true, "may": true, "might": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true, "he": true,
	"she": true, "it": true, "we": true, "they": true, "what": true, "which": true,
	"who": true, "when": true, "where": true, "why": true, "how": true, "all": true,
	"each": true, "every": true, "both": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "no": true, "nor": true, "not": true,
	"only": true, "own": true, "same": true, "so": true, "than": true, "too": true,
	"very": true, "just": true, "now": true, "new": true,
}

// Keywords extracts keyword tokens from text. The text is lowercased and
// split into maximal runs of word characters (letters, digits, underscore);
// a run is kept only when it consists entirely of ASCII letters, is at
// least three characters long and is not a stop word. Runs mixing digits,
// underscores or non-ASCII letters are dropped whole. Surviving tokens keep
// their original order, duplicates included. Pure function of the input.
func Keywords(text string) []string {
	runs := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool { return !isWordRune(r) })

	var res []string
	for _, run := range runs {
		if len(run) < 3 || !asciiLower(run) || stopWords[run] {
			continue
		}
		res = append(res, run)
	}
	return res
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// asciiLower reports whether s consists only of ASCII letters a-z
func asciiLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
