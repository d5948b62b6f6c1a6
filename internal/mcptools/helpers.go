package mcptools

import (
	"fmt"
	"time"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func errUnknownPeriod(period string) error {
	return fmt.Errorf("unknown period %q (want week or month)", period)
}
