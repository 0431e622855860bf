package query

import "testing"

func TestNewStopWordsString(t *testing.T) {
	sw, err := NewStopWords("and with the")
	if err != nil {
		t.Fatalf("NewStopWords: %v", err)
	}
	for _, w := range []string{"and", "with", "the"} {
		if !sw.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if sw.Contains("cat") {
		t.Error("Contains(cat) = true, want false")
	}
}

func TestNewStopWordsSlice(t *testing.T) {
	sw, err := NewStopWords([]string{"and", "", "with"})
	if err != nil {
		t.Fatalf("NewStopWords: %v", err)
	}
	if !sw.Contains("and") || !sw.Contains("with") {
		t.Error("expected both non-empty words recorded")
	}
	if sw.Contains("") {
		t.Error("empty word should have been dropped, not recorded")
	}
}

func TestNewStopWordsNil(t *testing.T) {
	sw, err := NewStopWords(nil)
	if err != nil {
		t.Fatalf("NewStopWords(nil): %v", err)
	}
	if sw.Contains("anything") {
		t.Error("empty stop-word set should contain nothing")
	}
}

func TestNewStopWordsControlByte(t *testing.T) {
	if _, err := NewStopWords("clean\x01dirty"); err == nil {
		t.Fatal("expected an error for a control byte in a stop-word, got nil")
	}
}

func TestNilStopWordsContains(t *testing.T) {
	var sw *StopWords
	if sw.Contains("anything") {
		t.Error("a nil *StopWords should report Contains() = false, not panic")
	}
}
