package seq

import (
	"reflect"
	"testing"
)

func TestCharsAlphabet(t *testing.T) {
	got := Chars("a", "z", Inclusive()).Collect()
	if len(got) != 26 {
		t.Fatalf("yielded %d values, want 26", len(got))
	}
	if got[0] != "a" || got[1] != "b" || got[25] != "z" {
		t.Errorf("sequence = %v", got)
	}
}

func TestCharsExclusiveStopsBeforeBound(t *testing.T) {
	got := Chars("a", "e").Collect()
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCharsDescending(t *testing.T) {
	got := Chars("e", "a", Inclusive()).Collect()
	want := []string{"e", "d", "c", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCharsOdometerAdvance(t *testing.T) {
	got := Chars("aabbcc", "zz").Take(3)
	want := []string{"aabbcc", "bbccdd", "ccddee"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Take(3) = %v, want %v", got, want)
	}
}

func TestCharsTruncatesAtStopCharacter(t *testing.T) {
	// "abc" advances to "bcd"; the 'd' has passed the stop and falls off,
	// and the remaining "bc" ends at the stop, so the sequence terminates
	// after yielding it.
	got := Chars("abc", "c", Inclusive()).Collect()
	want := []string{"abc", "bc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCharsSingleValueBound(t *testing.T) {
	got := Chars("z", "z", Inclusive()).Collect()
	if !reflect.DeepEqual(got, []string{"z"}) {
		t.Errorf("Collect() = %v, want [z]", got)
	}
}

func TestCharsEmptyBound(t *testing.T) {
	if got := Chars("", "z").Collect(); len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
	if got := Chars("a", "  ").Collect(); len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
}

func TestCharsUppercase(t *testing.T) {
	got := Chars("A", "D", Inclusive()).Collect()
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCharsDigits(t *testing.T) {
	got := Chars("0", "9", Inclusive()).Collect()
	if len(got) != 10 || got[0] != "0" || got[9] != "9" {
		t.Errorf("Collect() = %v", got)
	}
}

func TestCharsRestartable(t *testing.T) {
	s := Chars("a", "f")
	if first, second := s.Collect(), s.Collect(); !reflect.DeepEqual(first, second) {
		t.Errorf("two iterations differ: %v vs %v", first, second)
	}
}

func TestCharIncrement(t *testing.T) {
	tests := []struct {
		form string
		rule Rule
		want int
	}{
		{"abc", Derive, 1},
		{"abc", Increment, 1},
		{"aabbcc", SequenceLength, 3},
		{"ac", SequencePlusLastSkip, 5},
	}
	for _, tt := range tests {
		if got := charIncrement(tt.form, tt.rule); got != tt.want {
			t.Errorf("charIncrement(%q, %s) = %d, want %d", tt.form, tt.rule, got, tt.want)
		}
	}
}
