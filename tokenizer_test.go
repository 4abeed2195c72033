package simlab

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty string",
			text: "",
			want: nil,
		},
		{
			name: "only punctuation",
			text: "!!! ... ,,, ?",
			want: nil,
		},
		{
			name: "punctuation and case",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "apostrophe joins word",
			text: "It's raining heavily",
			want: []string{"its", "raining", "heavily"},
		},
		{
			name: "hyphen joins word",
			text: "a dog-eat-dog world",
			want: []string{"a", "dogeatdog", "world"},
		},
		{
			name: "whitespace runs",
			text: "  multiple   spaces\t\nhere ",
			want: []string{"multiple", "spaces", "here"},
		},
		{
			name: "digits kept",
			text: "version 2.0 released",
			want: []string{"version", "20", "released"},
		},
		{
			name: "underscore stripped",
			text: "snake_case",
			want: []string{"snakecase"},
		},
		{
			name: "unicode letters",
			text: "Héllo Wörld 你好",
			want: []string{"héllo", "wörld", "你好"},
		},
		{
			name: "duplicates preserved in order",
			text: "the cat and the hat",
			want: []string{"the", "cat", "and", "the", "hat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	first := Tokenize(text)
	for i := 0; i < 10; i++ {
		if got := Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize() run %d = %q, want %q", i, got, first)
		}
	}
}

func TestSimpleTokenizerMatchesTokenize(t *testing.T) {
	text := "Coffee and tea are popular caffeinated beverages."
	if got, want := (SimpleTokenizer{}).Tokenize(text), Tokenize(text); !reflect.DeepEqual(got, want) {
		t.Errorf("SimpleTokenizer.Tokenize() = %q, want %q", got, want)
	}
}

func TestSegmentingTokenizer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty string",
			text: "",
			want: nil,
		},
		{
			name: "punctuation dropped",
			text: "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "hyphen splits word",
			text: "dog-eat-dog",
			want: []string{"dog", "eat", "dog"},
		},
		{
			name: "apostrophe kept inside word",
			text: "It's raining.",
			want: []string{"it's", "raining"},
		},
		{
			name: "compatibility ligature normalized",
			text: "ﬁne",
			want: []string{"fine"},
		},
	}

	tok := SegmentingTokenizer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentingTokenizer.Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
