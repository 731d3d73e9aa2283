package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and on-wire form of every calendar day. ISO order
// makes lexicographic comparison of the stored text chronological.
const DateLayout = "2006-01-02"

const segundosPorDia = 24 * 60 * 60

// Bounds of what DateLayout can represent. Days outside them cannot be
// written back as four-digit years.
var (
	PrimeiroDia = NewDate(1, time.January, 1)
	UltimoDia   = NewDate(9999, time.December, 31)
)

// Date is a calendar day without time of day, always normalized to UTC midnight.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar day in local time.
func Today() Date { return DateOf(time.Now()) }

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	d := Date{t: t}
	if !d.NoCalendario() {
		return Date{}, fmt.Errorf("data inválida %q: fora do intervalo %s..%s", s, PrimeiroDia, UltimoDia)
	}
	return d, nil
}

func (d Date) String() string { return d.t.Format(DateLayout) }

// Time returns the day as UTC midnight.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n days (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the signed number of days from d to other. Both are UTC
// midnights, so the Unix difference is a whole number of days for any span.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / segundosPorDia)
}

// NoCalendario reports whether d lies within PrimeiroDia..UltimoDia.
func (d Date) NoCalendario() bool {
	return !d.t.Before(PrimeiroDia.t) && !d.t.After(UltimoDia.t)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Format renders the day using a time layout (e.g. "02/01/2006" for display).
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// Value stores the day as ISO text.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if !d.NoCalendario() {
		return nil, fmt.Errorf("model.Date: %s fora do intervalo %s..%s", d, PrimeiroDia, UltimoDia)
	}
	return d.String(), nil
}

// Scan accepts ISO text as well as driver-native time values.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("model.Date: tipo não suportado %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	// Some drivers hand back full timestamps for text columns written by other tools.
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
