package domain

import "time"

const (
	// DateLayout is the canonical wire format for dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical wire format for times of day (HH:MM:SS).
	TimeLayout = "15:04:05"

	shortTimeLayout = "15:04"
)

// ParseDate parses a strict YYYY-MM-DD date. Empty or malformed input yields nil.
func ParseDate(text string) *time.Time {
	if text == "" {
		return nil
	}
	d, err := time.Parse(DateLayout, text)
	if err != nil {
		return nil
	}
	return &d
}

// FormatDate renders d as YYYY-MM-DD, or nil when d is nil.
func FormatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DateLayout)
	return &s
}

// ParseTime parses a time of day. The remote API is inconsistent about
// seconds, so HH:MM:SS is tried before HH:MM.
func ParseTime(text string) *time.Time {
	if text == "" {
		return nil
	}
	for _, layout := range []string{TimeLayout, shortTimeLayout} {
		if t, err := time.Parse(layout, text); err == nil {
			return &t
		}
	}
	return nil
}

// FormatTime always renders HH:MM:SS, or nil when t is nil.
func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}

// deref returns the pointed-to string or "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
