package simlab

import "github.com/RoaringBitmap/roaring"

// vocabulary interns tokens to dense uint32 term IDs so that token sets can
// be held as roaring bitmaps and combined with bitmap set algebra.
//
// A vocabulary lives for a single scoring call and is not safe for
// concurrent use.
type vocabulary struct {
	ids map[string]uint32
}

func newVocabulary() *vocabulary {
	return &vocabulary{ids: make(map[string]uint32)}
}

// id returns the term ID of token, assigning the next free ID on first sight.
func (v *vocabulary) id(token string) uint32 {
	if id, ok := v.ids[token]; ok {
		return id
	}
	id := uint32(len(v.ids))
	v.ids[token] = id
	return id
}

// set returns the distinct terms of tokens as a bitmap. Duplicates collapse.
func (v *vocabulary) set(tokens []string) *roaring.Bitmap {
	bm := roaring.New()
	for _, t := range tokens {
		bm.Add(v.id(t))
	}
	return bm
}

// tokenSets tokenizes both texts against one shared vocabulary and returns
// their distinct-term sets.
func tokenSets(tok Tokenizer, a, b string) (*roaring.Bitmap, *roaring.Bitmap) {
	vocab := newVocabulary()
	return vocab.set(tok.Tokenize(a)), vocab.set(tok.Tokenize(b))
}
