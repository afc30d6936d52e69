package sqlconv

import (
	"database/sql/driver"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// This file contains matchers to be used with DATA-DOG/go-sqlmock.

// Converted is a DATA-DOG/go-sqlmock compatible matcher that matches a bound
// argument if and only if it equals the raw form of Expect under Conv. It
// matches regardless of whether the argument was bound through Wrap, WrapRef,
// or a generated Value method, since all three produce the same driver value
// for equal native values.
type Converted[N any, DB any] struct {
	Conv   Converter[N, DB]
	Expect N
}

func (m Converted[N, DB]) Match(v driver.Value) bool {
	want, err := m.Conv.Value(m.Expect)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(v, want)
}

// AnyUUID is a DATA-DOG/go-sqlmock compatible matcher used for matching
// against any UUID that is encoded as a string, byte array, or directly as a
// uuid.UUID.
type AnyUUID struct{}

func (m AnyUUID) Match(v driver.Value) bool {
	strUUID, ok := v.(string)
	if ok {
		_, err := uuid.Parse(strUUID)
		return err == nil
	}

	bUUID, ok := v.([]byte)
	if ok {
		_, err := uuid.FromBytes(bUUID)
		return err == nil
	}

	_, ok = v.(uuid.UUID)
	return ok
}

// AnyTime is a DATA-DOG/go-sqlmock compatible matcher used for matching
// against any time.Time that is encoded as an RFC-3339 string, a unix epoch
// timestamp, or directly as a time.Time.
//
// If Except is set, then it will match any time besides the given one. If
// After is set, it will match any time that comes after the given one. If
// Before is set, it will match any time that comes before the given one.
// These may be combined; if multiple are given, their conditions are AND'd
// together.
type AnyTime struct {
	Except *time.Time
	After  *time.Time
	Before *time.Time
}

func (m AnyTime) Match(v driver.Value) bool {
	var t time.Time

	switch typedV := v.(type) {
	case string:
		var err error
		t, err = time.Parse(time.RFC3339, typedV)
		if err != nil {
			return false
		}
	case time.Time:
		t = typedV
	default:
		i, ok := srcInt64(v)
		if !ok {
			return false
		}
		t = time.Unix(i, 0)
	}

	if m.Except != nil {
		if t.Equal(*m.Except) {
			return false
		}
	}
	if m.After != nil {
		if !t.After(*m.After) {
			return false
		}
	}
	if m.Before != nil {
		if !t.Before(*m.Before) {
			return false
		}
	}

	return true
}
