package simlab

import "testing"

func TestGetMethodInfo(t *testing.T) {
	info := GetMethodInfo()

	if len(info) != 5 {
		t.Fatalf("len(GetMethodInfo()) = %d, want 5", len(info))
	}

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			mi, ok := info[kind]
			if !ok {
				t.Fatalf("GetMethodInfo() has no entry for %q", kind)
			}
			if mi.Name == "" {
				t.Error("Name is empty")
			}
			if mi.Description == "" {
				t.Error("Description is empty")
			}
			if mi.Formula == "" {
				t.Error("Formula is empty")
			}
			if len(mi.Pros) == 0 {
				t.Error("Pros is empty")
			}
			if len(mi.Cons) == 0 {
				t.Error("Cons is empty")
			}
			if mi.BestFor == "" {
				t.Error("BestFor is empty")
			}
			if len(mi.Color) != 7 || mi.Color[0] != '#' {
				t.Errorf("Color = %q, want #rrggbb", mi.Color)
			}
		})
	}
}

func TestGetMethodInfoReturnsCopy(t *testing.T) {
	first := GetMethodInfo()
	first[Jaccard].Pros[0] = "changed"
	delete(first, Cosine)

	second := GetMethodInfo()
	if second[Jaccard].Pros[0] == "changed" {
		t.Error("modifying a returned entry changed the catalog")
	}
	if _, ok := second[Cosine]; !ok {
		t.Error("deleting from a returned map changed the catalog")
	}
}

func TestInfo(t *testing.T) {
	mi, ok := Info(TFIDF)
	if !ok {
		t.Fatal("Info(TFIDF) not found")
	}
	if mi.Name != "TF-IDF + Cosine" {
		t.Errorf("Info(TFIDF).Name = %q, want %q", mi.Name, "TF-IDF + Cosine")
	}

	if _, ok := Info("bogus"); ok {
		t.Error("Info(bogus) found an entry")
	}
}
