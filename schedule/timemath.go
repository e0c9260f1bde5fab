package schedule

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadTimeFormat is returned when a time string is not a valid "HH:MM" value.
var ErrBadTimeFormat = errors.New("invalid time format, expected HH:MM")

// ToMinutes converts a 24-hour "HH:MM" string to minutes since midnight.
func ToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeFormat, t)
	}
	hours, err := strconv.Atoi(t[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeFormat, t)
	}
	minutes, err := strconv.Atoi(t[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeFormat, t)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeFormat, t)
	}
	return hours*60 + minutes, nil
}

// FormatMinutes converts minutes since midnight back to a zero-padded "HH:MM" string.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
