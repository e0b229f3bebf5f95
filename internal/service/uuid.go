package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates the string is not a valid UUID format
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrFutureTimestamp indicates a UUIDv7 timestamp too far in the future
	ErrFutureTimestamp = errors.New("UUID timestamp is too far in the future")
)

// MaxFutureMinutes is the tolerance for UUIDv7 timestamp validation
const MaxFutureMinutes = 1

// ValidateRecordID validates a record identifier from a request path.
// Any UUID version is accepted; client-generated v7 IDs additionally get
// their embedded timestamp checked against the clock so future-dated
// records can't be injected.
func ValidateRecordID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if parsed.Version() != 7 {
		return nil
	}

	// UUID.Time() returns 100-nanosecond intervals since Oct 15, 1582;
	// for v7 it is derived from the embedded Unix milliseconds
	sec, nsec := parsed.Time().UnixTime()
	timestamp := time.Unix(sec, nsec)

	maxAllowed := time.Now().Add(time.Duration(MaxFutureMinutes) * time.Minute)
	if timestamp.After(maxAllowed) {
		return fmt.Errorf("%w: %v is more than %d minute(s) ahead",
			ErrFutureTimestamp, timestamp.Format(time.RFC3339), MaxFutureMinutes)
	}

	return nil
}
