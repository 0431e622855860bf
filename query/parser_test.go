package query

import (
	"errors"
	"reflect"
	"testing"

	"lexidex/types"
)

func TestParseSeqSortsAndDedupes(t *testing.T) {
	sw, _ := NewStopWords("and with")
	q, err := Parse("cat dog cat -crow -crow and", sw, types.Seq)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"cat", "dog"}) {
		t.Errorf("Plus = %v, want [cat dog]", q.Plus)
	}
	if !reflect.DeepEqual(q.Minus, []string{"crow"}) {
		t.Errorf("Minus = %v, want [crow]", q.Minus)
	}
}

func TestParseParKeepsDuplicatesAndOrder(t *testing.T) {
	sw, _ := NewStopWords(nil)
	q, err := Parse("dog cat dog", sw, types.Par)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"dog", "cat", "dog"}) {
		t.Errorf("Plus = %v, want [dog cat dog]", q.Plus)
	}
}

func TestParseBareMinusIsError(t *testing.T) {
	sw, _ := NewStopWords(nil)
	_, err := Parse("cat - dog", sw, types.Seq)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Parse(bare -) error = %v, want ErrInvalidInput", err)
	}
}

func TestParseDoubleMinusIsError(t *testing.T) {
	sw, _ := NewStopWords(nil)
	_, err := Parse("cat --bad", sw, types.Seq)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Parse(--bad) error = %v, want ErrInvalidInput", err)
	}
}

func TestParseControlByteIsError(t *testing.T) {
	sw, _ := NewStopWords(nil)
	_, err := Parse("cat\x01dog", sw, types.Seq)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Parse(control byte) error = %v, want ErrInvalidInput", err)
	}
}

func TestParseDropsStopWords(t *testing.T) {
	sw, _ := NewStopWords("and")
	q, err := Parse("cat and dog", sw, types.Seq)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"cat", "dog"}) {
		t.Errorf("Plus = %v, want [cat dog]", q.Plus)
	}
}

func TestParseMinusStopWordDropped(t *testing.T) {
	sw, _ := NewStopWords("and")
	q, err := Parse("cat -and dog", sw, types.Seq)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Minus) != 0 {
		t.Errorf("Minus = %v, want empty (stop-word should be dropped before minus/plus split)", q.Minus)
	}
}
