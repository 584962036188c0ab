package types

import "github.com/google/uuid"

// NewID generates a UUID v7 for a new part.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// AllocateID draws IDs from gen until one is not taken.
func AllocateID(gen func() string, taken func(id string) bool) string {
	for {
		id := gen()
		if id != "" && !taken(id) {
			return id
		}
	}
}
