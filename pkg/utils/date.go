package utils

import (
	"fmt"
	"time"
)

// Accepted arrival-date layouts, tried in order. Cleaned exports carry the
// bare date; raw extracts sometimes keep a timestamp.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("unparseable date %q", dateStr)
}
