package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifiable is the capability shared by every entity and identifier that
// can be referenced from a notification: it yields a stable string identity.
type Identifiable interface {
	Identity() string
}

// ID is the opaque unique identifier assigned to an entity at creation.
type ID uuid.UUID

// NewID allocates a random 128-bit identifier.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses the canonical string form of an identifier.
func ParseID(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(parsed), nil
}

func (id ID) Identity() string { return uuid.UUID(id).String() }

func (id ID) String() string { return id.Identity() }

// IsZero reports whether id was never assigned.
func (id ID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *ID) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return err
	}
	*id = ID(u)
	return nil
}

var _ Identifiable = ID{}
