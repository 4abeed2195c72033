package simlab

import "testing"

func TestVocabularyInterning(t *testing.T) {
	v := newVocabulary()

	a := v.id("alpha")
	b := v.id("beta")
	if a == b {
		t.Fatalf("distinct tokens got the same id %d", a)
	}
	if again := v.id("alpha"); again != a {
		t.Errorf("id(alpha) = %d on second call, want %d", again, a)
	}
}

func TestTokenSets(t *testing.T) {
	q, d := tokenSets(defaultTokenizer, "cat cat dog", "Dog, mouse!")

	if got := q.GetCardinality(); got != 2 {
		t.Errorf("query set cardinality = %d, want 2", got)
	}
	if got := d.GetCardinality(); got != 2 {
		t.Errorf("document set cardinality = %d, want 2", got)
	}
	if got := q.AndCardinality(d); got != 1 {
		t.Errorf("intersection = %d, want 1", got)
	}
	if got := q.OrCardinality(d); got != 3 {
		t.Errorf("union = %d, want 3", got)
	}
}
