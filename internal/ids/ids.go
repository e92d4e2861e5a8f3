package ids

import "github.com/google/uuid"

// New returns a time-ordered unique id (UUIDv7), falling back to a
// random v4 if the clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
