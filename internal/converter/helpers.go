package converter

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// nullable maps absent and blank strings to NULL. Other values are stored as
// sent.
func nullable(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func parseDate(s *string) *time.Time {
	s = nullable(s)
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
