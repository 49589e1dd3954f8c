package guid

import (
	"testing"

	"github.com/kbukum/arrkit/errors"
)

func TestNewIsUnique(t *testing.T) {
	if New() == New() {
		t.Error("two generated GUIDs collided")
	}
}

func TestParse(t *testing.T) {
	const raw = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	id, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id.String() != raw {
		t.Errorf("Parse round-trip = %s", id)
	}

	if _, err := Parse("  " + raw + "  "); err != nil {
		t.Errorf("Parse with whitespace: %v", err)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, value := range []string{"", "   ", "not-a-guid", "6ba7b810"} {
		if _, err := Parse(value); !errors.IsCode(err, errors.CodeInvalidArgument) {
			t.Errorf("Parse(%q) = %v, want invalid argument", value, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestIsValid(t *testing.T) {
	if !IsValid(NewString()) {
		t.Error("generated GUID reported invalid")
	}
	if IsValid("nope") {
		t.Error("garbage reported valid")
	}
}

func TestIsNil(t *testing.T) {
	if IsNil(New()) {
		t.Error("random GUID reported nil")
	}
	if !IsNil(MustParse("00000000-0000-0000-0000-000000000000")) {
		t.Error("zero GUID not reported nil")
	}
}
