package narrative

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSentences is how many sentences of model output are kept.
const MaxSentences = 5

// SplitSentences splits text at sentence boundaries. A boundary is a word
// character, then one of '.', '!' or '?', then whitespace; the whitespace is
// dropped. Text without a boundary comes back as a single sentence.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	prev := rune(-1)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		next := i + size

		if isTerminator(r) && isWordRune(prev) && next < len(text) {
			ws, wsSize := utf8.DecodeRuneInString(text[next:])
			if unicode.IsSpace(ws) {
				sentences = append(sentences, text[start:next])

				end := next + wsSize
				for end < len(text) {
					r2, s2 := utf8.DecodeRuneInString(text[end:])
					if !unicode.IsSpace(r2) {
						break
					}
					end += s2
				}
				start = end
				prev = ws
				i = end
				continue
			}
		}

		prev = r
		i = next
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// LimitSentences keeps the first n sentences of text and joins them with no
// separator.
func LimitSentences(text string, n int) string {
	sentences := SplitSentences(text)
	if n >= 0 && len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, "")
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
