// Package convs contains pre-rolled Converters for types commonly stored in
// SQL columns. Each can be used directly with the Wrap and Field adapters in
// the sqlconv root package, or handed to generated code as the delegate for
// a named type.
package convs

import (
	"encoding/base64"
	"net/mail"
	"time"

	"github.com/dekarrin/rezi/v2"
	"github.com/dekarrin/sqlconv"
	"github.com/google/uuid"
)

// UUID converts UUIDs to strings.
var UUID = sqlconv.Converter[uuid.UUID, string]{
	ToDB: uuid.UUID.String,
	FromDB: func(s string) (uuid.UUID, error) {
		u, err := uuid.Parse(s)
		if err != nil {
			return uuid.UUID{}, sqlconv.New("", err, sqlconv.ErrDecodingFailure)
		}
		return u, nil
	},
}

// Timestamp converts times into 64-bit unix timestamps. Sub-second precision
// is not preserved.
var Timestamp = sqlconv.Converter[time.Time, int64]{
	ToDB: time.Time.Unix,
	FromDB: func(i int64) (time.Time, error) {
		return time.Unix(i, 0), nil
	},
}

// Email converts email addresses to strings. A nil *mail.Address is stored
// as the empty string, and reading an empty string yields a nil address.
var Email = sqlconv.Converter[*mail.Address, string]{
	ToDB: func(email *mail.Address) string {
		if email == nil {
			return ""
		}
		return email.Address
	},
	FromDB: func(s string) (*mail.Address, error) {
		if s == "" {
			return nil, nil
		}

		email, err := mail.ParseAddress(s)
		if err != nil {
			return nil, sqlconv.New("", err, sqlconv.ErrDecodingFailure)
		}

		return email, nil
	},
}

// Base64Bytes converts a slice of bytes to a base-64 encoded string.
var Base64Bytes = sqlconv.Converter[[]byte, string]{
	ToDB: func(b []byte) string {
		if len(b) < 1 {
			return ""
		}
		return base64.StdEncoding.EncodeToString(b)
	},
	FromDB: func(s string) ([]byte, error) {
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, sqlconv.New("", err, sqlconv.ErrDecodingFailure)
		}
		return decoded, nil
	},
}

// ReziBlob returns a Converter that stores values of T in a binary column as
// rezi-encoded bytes. T must be a type rezi can encode; handing an
// unencodable T to the returned converter's ToDB will panic, same as
// rezi.MustEnc.
func ReziBlob[T any]() sqlconv.Converter[T, []byte] {
	return sqlconv.Converter[T, []byte]{
		ToDB: func(v T) []byte {
			return rezi.MustEnc(v)
		},
		FromDB: func(b []byte) (T, error) {
			var v T
			if _, err := rezi.Dec(b, &v); err != nil {
				return v, sqlconv.New("", err, sqlconv.ErrDecodingFailure)
			}
			return v, nil
		},
	}
}
