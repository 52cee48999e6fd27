package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// LocalDateTimeLayout is the wire form of event timestamps: an ISO 8601 date-time
// without zone. Fractional seconds are appended only when non-zero.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

const localDateTimeOutLayout = "2006-01-02T15:04:05.999999999"

// Accepted zone-less input layouts, tried in order. Fractional seconds are accepted
// after the seconds field by time.Parse even though the layout omits them.
var localDateTimeLayouts = []string{LocalDateTimeLayout, "2006-01-02T15:04"}

// LocalDateTime is a wall-clock date-time without zone. Values are held in UTC:
// zone-less input is read as UTC and RFC 3339 input is converted to UTC.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime returns t converted to UTC.
func NewLocalDateTime(t time.Time) LocalDateTime {
	if t.IsZero() {
		return LocalDateTime{}
	}
	return LocalDateTime{Time: t.UTC()}
}

// ParseLocalDateTime parses a zone-less ISO date-time ("2018-11-23T14:21:00") or an
// RFC 3339 timestamp.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return LocalDateTime{Time: t}, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewLocalDateTime(t), nil
	}
	return LocalDateTime{}, fmt.Errorf("invalid date-time %q: want %s or RFC 3339", s, LocalDateTimeLayout)
}

// Before reports whether l is before u.
func (l LocalDateTime) Before(u LocalDateTime) bool { return l.Time.Before(u.Time) }

// After reports whether l is after u.
func (l LocalDateTime) After(u LocalDateTime) bool { return l.Time.After(u.Time) }

// Equal reports whether l and u are the same instant.
func (l LocalDateTime) Equal(u LocalDateTime) bool { return l.Time.Equal(u.Time) }

// Add returns l+d.
func (l LocalDateTime) Add(d time.Duration) LocalDateTime { return LocalDateTime{Time: l.Time.Add(d)} }

func (l LocalDateTime) String() string {
	return l.Time.UTC().Format(localDateTimeOutLayout)
}

// MarshalJSON renders the zone-less form, or null for the zero value.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(l.String())), nil
}

// UnmarshalJSON accepts null, the zone-less form and RFC 3339.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*l = LocalDateTime{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date-time %s: not a string", data)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Scan implements sql.Scanner.
func (l *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = LocalDateTime{}
	case time.Time:
		*l = NewLocalDateTime(v)
	case string:
		return l.scanString(v)
	case []byte:
		return l.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
	return nil
}

func (l *LocalDateTime) scanString(s string) error {
	if t, err := time.Parse("2006-01-02 15:04:05.999999999-07:00", s); err == nil {
		*l = NewLocalDateTime(t)
		return nil
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Value implements driver.Valuer.
func (l LocalDateTime) Value() (driver.Value, error) {
	return l.Time.UTC(), nil
}
