package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fractional-second separators. SRT uses a comma between seconds and
// milliseconds, WebVTT a period.
const (
	SepSRT byte = ','
	SepVTT byte = '.'
)

// ParseTimeCode parses a time code of the form HH:MM:SS<sep>mmm into a
// duration since the start of the media. Hours may be wider than two
// digits; minutes and seconds must be below 60 and milliseconds must be
// exactly three digits. A wrong separator for the expected format fails.
func ParseTimeCode(s string, sep byte) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeCode, s)
	}

	secParts := strings.Split(parts[2], string(sep))
	if len(secParts) != 2 {
		return 0, fmt.Errorf(
			"%w: %q (second and millisecond part)",
			ErrMalformedTimeCode,
			s,
		)
	}

	hours, err := parseTimeField(parts[0], -1)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (hour part)", ErrMalformedTimeCode, s)
	}
	minutes, err := parseTimeField(parts[1], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (minute part)", ErrMalformedTimeCode, s)
	}
	seconds, err := parseTimeField(secParts[0], 59)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (second part)", ErrMalformedTimeCode, s)
	}
	if len(secParts[1]) != 3 {
		return 0, fmt.Errorf(
			"%w: %q (millisecond part)",
			ErrMalformedTimeCode,
			s,
		)
	}
	millis, err := parseTimeField(secParts[1], 999)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: %q (millisecond part)",
			ErrMalformedTimeCode,
			s,
		)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// parseTimeField parses a digits-only field, rejecting values above max.
// A negative max means unbounded.
func parseTimeField(s string, max int64) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric field %q", s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if max >= 0 && v > max {
		return 0, fmt.Errorf("field %q out of range", s)
	}
	return v, nil
}

// FormatTimeCode renders a duration as HH:MM:SS<sep>mmm, zero-padding
// hours to at least two digits.
func FormatTimeCode(d time.Duration, sep byte) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d%c%03d",
		ms/3600000,
		ms/60000%60,
		ms/1000%60,
		sep,
		ms%1000,
	)
}
