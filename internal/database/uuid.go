package database

import (
	"github.com/google/uuid"
)

// UUIDBytes converts a UUID to the BINARY(16) form used by the MySQL schema.
func UUIDBytes(id uuid.UUID) []byte {
	b, _ := id.MarshalBinary()
	return b
}

// UUIDFromBytes converts a BINARY(16) column back to a UUID.
func UUIDFromBytes(b []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := id.UnmarshalBinary(b)
	return id, err
}

// UUIDStrings renders ids as strings, for PostgreSQL `= ANY($n::uuid[])` arguments.
func UUIDStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
