// Package defaults provides ready-made functions for column.DefaultFn.
//
//	id := column.DefaultFn(column.Primary(column.Text("id", column.TextString)), defaults.UUID())
//	at := column.DefaultFn(column.Integer("created_at", column.IntegerTimestamp), defaults.UnixSeconds(nil))
package defaults

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// UUID returns a function producing a random (version 4) UUID in its
// canonical text form, for TEXT columns.
func UUID() func() (string, error) {
	return func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("defaults: uuid: %w", err)
		}
		return id.String(), nil
	}
}

// UUIDv7 is UUID with time-ordered version 7 identifiers, which keep
// insertion order close to key order.
func UUIDv7() func() (string, error) {
	return func() (string, error) {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("defaults: uuid v7: %w", err)
		}
		return id.String(), nil
	}
}

// UUIDBytes returns a function producing a random UUID as 16 raw bytes, for
// BLOB columns.
func UUIDBytes() func() ([]byte, error) {
	return func() ([]byte, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("defaults: uuid: %w", err)
		}
		b, err := id.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("defaults: uuid: %w", err)
		}
		return b, nil
	}
}

// UnixSeconds returns a function producing the clock's time as Unix seconds,
// for IntegerTimestamp columns.
func UnixSeconds(clock Clock) func() (int64, error) {
	return func() (int64, error) { return clock.now().Unix(), nil }
}

// UnixMillis returns a function producing the clock's time as Unix
// milliseconds, for IntegerTimestampMS columns.
func UnixMillis(clock Clock) func() (int64, error) {
	return func() (int64, error) { return clock.now().UnixMilli(), nil }
}

// RFC3339 returns a function producing the clock's UTC time in RFC 3339 form,
// for TEXT columns holding timestamps.
func RFC3339(clock Clock) func() (string, error) {
	return func() (string, error) { return clock.now().UTC().Format(time.RFC3339), nil }
}
