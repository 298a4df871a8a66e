package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to JSON as "2006-01-02" and accepts either that
// layout or a full RFC3339 timestamp on input.
type Date time.Time

// Today returns the current date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a date from "2006-01-02" or RFC3339 input.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
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

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	// SQLite may hand back dates in several textual layouts.
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Date", s)
}

// GormDataType tells the migrator to create a date column.
func (Date) GormDataType() string {
	return "date"
}

// StringList stores an ordered list of labels as a JSON array in a
// TEXT column. Order and duplicates are preserved exactly as given;
// deduplication is a client concern.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if strings.TrimSpace(raw) == "" {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal([]byte(raw), (*[]string)(l))
}

// Contains reports whether the list holds tag as an exact element.
func (l StringList) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

// GormDataType tells the migrator to create a text column.
func (StringList) GormDataType() string {
	return "text"
}
