package simlab

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// Compile-time checks to ensure both tokenizers implement Tokenizer
var (
	_ Tokenizer = SimpleTokenizer{}
	_ Tokenizer = SegmentingTokenizer{}
)

// Tokenizer splits text into normalized word tokens.
// Implementations must be pure and safe for concurrent use.
type Tokenizer interface {
	// Tokenize returns the tokens of text in order of appearance.
	// Empty or all-punctuation input yields an empty slice.
	Tokenize(text string) []string
}

// SimpleTokenizer lowercases text, strips every rune that is not a letter,
// number, or whitespace, and splits on runs of whitespace.
//
// "It's a dog-eat-dog world!" becomes ["its", "a", "dogeatdog", "world"].
// This is the tokenizer every method uses unless told otherwise.
type SimpleTokenizer struct{}

// Tokenize implements Tokenizer.
func (SimpleTokenizer) Tokenize(text string) []string {
	return Tokenize(text)
}

// Tokenize splits text with the default SimpleTokenizer rules.
func Tokenize(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// SegmentingTokenizer applies Unicode normalization (NFKC), lowercases, and
// splits text using UAX#29 word segmentation. Segments that carry no letter
// or number (punctuation, whitespace, symbols) are dropped.
//
// Unlike SimpleTokenizer, punctuation inside a word separates it:
// "dog-eat-dog" becomes ["dog", "eat", "dog"], while "it's" stays one token.
type SegmentingTokenizer struct{}

// Tokenize implements Tokenizer.
func (SegmentingTokenizer) Tokenize(text string) []string {
	segments := words.FromString(normalize(text))
	var tokens []string
	for segments.Next() {
		if seg := segments.Value(); isWordSegment(seg) {
			tokens = append(tokens, seg)
		}
	}
	return tokens
}

// normalize applies Unicode normalization (NFKC) and converts to lowercase.
func normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

func isWordSegment(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// defaultTokenizer is shared by the package-level scoring functions.
var defaultTokenizer Tokenizer = SimpleTokenizer{}
