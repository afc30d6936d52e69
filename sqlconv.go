// Package sqlconv removes the boilerplate of storing custom Go types in SQL
// columns with database/sql. The caller declares a single [Converter] holding
// the two functions that map their type to and from a primitive raw value the
// driver stack already understands; sqlconv supplies everything database/sql
// needs on top of that: parameter binding for owned and borrowed values,
// column scanning, and row materialization. Each adapter is a straight
// pass-through to the driver stack's own handling of the raw value, so a
// value written through sqlconv and read back is exactly what the two
// conversion functions produce when called directly.
//
// A typical use is a small enumeration stored as an integer column:
//
//	type Color int64
//
//	const (
//		Red Color = iota + 1
//		Green
//		Blue
//	)
//
//	var ColorConv = sqlconv.Converter[Color, int64]{
//		ToDB: func(c Color) int64 { return int64(c) },
//		FromDB: func(i int64) (Color, error) {
//			switch Color(i) {
//			case Red, Green, Blue:
//				return Color(i), nil
//			default:
//				return 0, sqlconv.New(fmt.Sprintf("unknown Color value %d", i), sqlconv.ErrDecodingFailure)
//			}
//		},
//	}
//
// Writing and reading then needs no per-type adapter code:
//
//	db.ExecContext(ctx, `INSERT INTO users (hair_color) VALUES (?)`, ColorConv.Wrap(Green))
//
//	var c Color
//	row := db.QueryRowContext(ctx, `SELECT hair_color FROM users WHERE id=?`, id)
//	err := row.Scan(ColorConv.Field(&c))
//
// Alternatively, the sqlconvgen command in cmd/sqlconvgen emits Value and
// Scan methods directly on the custom type from a small YAML manifest, after
// which values of the type can be passed to database/sql with no wrapping at
// all.
package sqlconv

import (
	"database/sql"
	"database/sql/driver"
)

// Converter holds the two functions that map a native value of type N to and
// from its database representation of type DB. DB must be a primitive type
// the driver stack can already carry: one of the driver.Value base types
// (int64, float64, bool, []byte, string, time.Time) or a numeric type that
// widens losslessly into one of them.
//
// ToDB must be defined for every value of N. FromDB must return a non-nil
// error, conventionally wrapping ErrDecodingFailure, for any DB value that
// has no corresponding N; it must never panic. For every value v that FromDB
// accepts, FromDB(ToDB(v)) must yield v again, or values will not survive a
// round trip through the database.
type Converter[N any, DB any] struct {
	ToDB   func(N) DB
	FromDB func(DB) (N, error)
}

// Value converts v to its raw form and hands the raw value to the driver
// stack's default parameter conversion. The result is a value every
// database/sql driver accepts as a bind parameter.
func (c Converter[N, DB]) Value(v N) (driver.Value, error) {
	return driver.DefaultParameterConverter.ConvertValue(c.ToDB(v))
}

// Scan decodes a value delivered by a database driver into *target. The
// driver value is first coerced into the declared raw type DB, then FromDB
// is applied; a failure from either step is returned with *target left
// unmodified. FromDB errors are propagated unchanged.
func (c Converter[N, DB]) Scan(src interface{}, target *N) error {
	var raw DB
	if err := assignRaw(src, &raw); err != nil {
		return err
	}

	v, err := c.FromDB(raw)
	if err != nil {
		return err
	}

	*target = v
	return nil
}

// Wrap returns v wrapped for use as a bind parameter in a query expression.
// The returned value implements driver.Valuer.
func (c Converter[N, DB]) Wrap(v N) Wrapped[N, DB] {
	return Wrapped[N, DB]{conv: c, v: v}
}

// WrapRef is the borrowed-value form of Wrap. The pointed-to value is not
// copied until the driver asks for it, so the wrapper reflects any updates
// made to *v before query execution. For equal underlying values, WrapRef
// and Wrap bind to equal driver values.
func (c Converter[N, DB]) WrapRef(v *N) RefWrapped[N, DB] {
	return RefWrapped[N, DB]{conv: c, v: v}
}

// Field returns a scan destination for target that can be passed to the Scan
// method of sql.Row or sql.Rows. The returned value implements sql.Scanner.
func (c Converter[N, DB]) Field(target *N) Field[N, DB] {
	return Field[N, DB]{conv: c, target: target}
}

// FromRow materializes a value from a single-column row. A FromDB failure on
// the stored value is returned to the caller; it never aborts.
func (c Converter[N, DB]) FromRow(row *sql.Row) (N, error) {
	var v N
	err := row.Scan(c.Field(&v))
	return v, err
}

// FromRows materializes a value from the current row of rows, which must
// have been advanced with rows.Next and must contain a single column.
func (c Converter[N, DB]) FromRows(rows *sql.Rows) (N, error) {
	var v N
	err := rows.Scan(c.Field(&v))
	return v, err
}

// Wrapped is an owned native value bound for use in a query expression. Use
// Converter.Wrap to create one.
type Wrapped[N any, DB any] struct {
	conv Converter[N, DB]
	v    N
}

// Value implements driver.Valuer.
func (w Wrapped[N, DB]) Value() (driver.Value, error) {
	return w.conv.Value(w.v)
}

// RefWrapped is a borrowed native value bound for use in a query expression.
// Use Converter.WrapRef to create one.
type RefWrapped[N any, DB any] struct {
	conv Converter[N, DB]
	v    *N
}

// Value implements driver.Valuer.
func (w RefWrapped[N, DB]) Value() (driver.Value, error) {
	return w.conv.Value(*w.v)
}

// Field is a scan destination produced by Converter.Field.
type Field[N any, DB any] struct {
	conv   Converter[N, DB]
	target *N
}

// Scan implements sql.Scanner.
func (f Field[N, DB]) Scan(value interface{}) error {
	return f.conv.Scan(value, f.target)
}
