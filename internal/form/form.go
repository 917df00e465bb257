// Package form parses URL-encoded form bodies into typed values.
//
// Every accessor records the first problem it meets; callers read all the
// fields they need and check Err once, the way bufio.Scanner is used.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of <input type="date"> values.
const DateLayout = "2006-01-02"

// ErrInvalidInput is wrapped by every FieldError.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single rejected form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

type Form struct {
	values url.Values
	err    error
}

func New(values url.Values) *Form {
	return &Form{values: values}
}

// Err returns the first field error, if any.
func (f *Form) Err() error {
	return f.err
}

func (f *Form) fail(field, reason string) {
	if f.err == nil {
		f.err = &FieldError{Field: field, Reason: reason}
	}
}

func (f *Form) raw(field string) string {
	return strings.TrimSpace(f.values.Get(field))
}

func (f *Form) String(field string) string {
	v := f.raw(field)
	if v == "" {
		f.fail(field, "is required")
	}
	return v
}

// OptionalString returns nil for a blank field.
func (f *Form) OptionalString(field string) *string {
	v := f.raw(field)
	if v == "" {
		return nil
	}
	return &v
}

// Valid reads a required field and checks it with valid.
func (f *Form) Valid(field string, valid func(string) bool, reason string) string {
	v := f.String(field)
	if v != "" && !valid(v) {
		f.fail(field, reason)
	}
	return v
}

func (f *Form) Decimal(field string) decimal.Decimal {
	v := f.raw(field)
	if v == "" {
		f.fail(field, "is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.fail(field, "must be a number")
		return decimal.Zero
	}
	return d
}

func (f *Form) OptionalDecimal(field string) decimal.NullDecimal {
	v := f.raw(field)
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.fail(field, "must be a number")
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func (f *Form) Int(field string) int {
	v := f.raw(field)
	if v == "" {
		f.fail(field, "is required")
		return 0
	}
	n, ok := f.parseInt(field, v)
	if !ok {
		return 0
	}
	return n
}

// parseInt accepts values that fit a store INTEGER column.
func (f *Form) parseInt(field, v string) (int, bool) {
	n, err := strconv.ParseInt(v, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		f.fail(field, "is out of range")
		return 0, false
	}
	if err != nil {
		f.fail(field, "must be a whole number")
		return 0, false
	}
	return int(n), true
}

// OptionalInt returns nil for a blank field so that "not recorded" stays
// distinguishable from an explicit zero.
func (f *Form) OptionalInt(field string) *int {
	v := f.raw(field)
	if v == "" {
		return nil
	}
	n, ok := f.parseInt(field, v)
	if !ok {
		return nil
	}
	return &n
}

// IntDefault returns def when the field is blank.
func (f *Form) IntDefault(field string, def int) int {
	if p := f.OptionalInt(field); p != nil {
		return *p
	}
	return def
}

// ID parses a row identifier. Only malformed input is an error: a value
// that no row can carry (zero, negative, beyond INTEGER) comes back as 0,
// which callers treat as an unknown row.
func (f *Form) ID(field string) int {
	v := f.raw(field)
	if v == "" {
		f.fail(field, "is required")
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if err != nil {
		f.fail(field, "must be a whole number")
		return 0
	}
	if n <= 0 {
		return 0
	}
	return int(n)
}

// Range checks lo <= n <= hi for a value already read from field.
func (f *Form) Range(field string, n, lo, hi int) {
	if n < lo || n > hi {
		f.fail(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}

// RangePtr is Range for optional values; nil passes.
func (f *Form) RangePtr(field string, n *int, lo, hi int) {
	if n != nil {
		f.Range(field, *n, lo, hi)
	}
}

func (f *Form) Date(field string) time.Time {
	v := f.raw(field)
	if v == "" {
		f.fail(field, "is required")
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		f.fail(field, "must be a date (YYYY-MM-DD)")
		return time.Time{}
	}
	return t
}

func (f *Form) OptionalDate(field string) *time.Time {
	v := f.raw(field)
	if v == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		f.fail(field, "must be a date (YYYY-MM-DD)")
		return nil
	}
	return &t
}
