package response

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// DateTime wraps time.Time for the server's zone-less LocalDateTime wire
// format, with RFC3339 accepted as a fallback.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	// Fractional seconds may or may not be present
	for _, layout := range []string{dateTimeLayout, dateTimeLayout + ".999999999", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateTimeLayout) + `"`), nil
}

// Display formats for the terminal views
func (d DateTime) Display() string {
	if d.Time.IsZero() {
		return "-"
	}
	return d.Time.Format("2006-01-02 15:04")
}

// Date wraps time.Time for the server's LocalDate wire format.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d Date) Display() string {
	if d.Time.IsZero() {
		return "-"
	}
	return d.Time.Format(dateLayout)
}
