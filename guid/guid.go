package guid

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/arrkit/errors"
)

// New returns a random (version 4) GUID.
func New() uuid.UUID {
	return uuid.New()
}

// NewString returns a random GUID in canonical string form.
func NewString() string {
	return uuid.NewString()
}

// Parse parses a GUID string, tolerating surrounding whitespace.
func Parse(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.InvalidArgument("guid must not be empty")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, errors.InvalidArgument("invalid guid format").WithCause(err)
	}
	return id, nil
}

// MustParse parses a GUID string and panics on failure. For literals only.
func MustParse(value string) uuid.UUID {
	id, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValid reports whether value parses as a GUID.
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// IsNil reports whether id is the all-zero GUID.
func IsNil(id uuid.UUID) bool {
	return id == uuid.Nil
}
