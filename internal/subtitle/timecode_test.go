package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeCode(t *testing.T) {
	d, err := ParseTimeCode("01:23:17,486", SepSRT)
	if err != nil {
		t.Fatalf("failed to parse valid SRT time code: %v", err)
	}
	want := time.Hour + 23*time.Minute + 17*time.Second + 486*time.Millisecond
	if d != want {
		t.Errorf("expected %v, got %v", want, d)
	}

	d, err = ParseTimeCode("00:00:05.001", SepVTT)
	if err != nil {
		t.Fatalf("failed to parse valid VTT time code: %v", err)
	}
	if d != 5*time.Second+time.Millisecond {
		t.Errorf("expected 5.001s, got %v", d)
	}
}

func TestParseTimeCodeWideHours(t *testing.T) {
	d, err := ParseTimeCode("123:00:00,000", SepSRT)
	if err != nil {
		t.Fatalf("failed to parse wide hour field: %v", err)
	}
	if d != 123*time.Hour {
		t.Errorf("expected 123h, got %v", d)
	}
}

func TestParseTimeCodeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
		sep  byte
	}{
		{"wrong separator for SRT", "00:00:01.000", SepSRT},
		{"wrong separator for VTT", "00:00:01,000", SepVTT},
		{"missing component", "00:01,000", SepSRT},
		{"non-numeric hours", "aa:00:01,000", SepSRT},
		{"non-numeric millis", "00:00:01,0a0", SepSRT},
		{"minutes out of range", "00:60:01,000", SepSRT},
		{"seconds out of range", "00:00:61,000", SepSRT},
		{"millis too short", "00:00:01,99", SepSRT},
		{"millis too long", "00:00:01,9999", SepSRT},
		{"negative minutes", "00:-1:01,000", SepSRT},
		{"empty", "", SepSRT},
	}

	for _, tc := range cases {
		_, err := ParseTimeCode(tc.text, tc.sep)
		if err == nil {
			t.Errorf("%s: expected error for %q", tc.name, tc.text)
			continue
		}
		if !errors.Is(err, ErrMalformedTimeCode) {
			t.Errorf("%s: expected ErrMalformedTimeCode, got %v", tc.name, err)
		}
	}
}

func TestFormatTimeCode(t *testing.T) {
	d := time.Hour + 23*time.Minute + 17*time.Second + 486*time.Millisecond
	if got := FormatTimeCode(d, SepSRT); got != "01:23:17,486" {
		t.Errorf("expected 01:23:17,486, got %q", got)
	}
	if got := FormatTimeCode(d, SepVTT); got != "01:23:17.486" {
		t.Errorf("expected 01:23:17.486, got %q", got)
	}
	if got := FormatTimeCode(0, SepVTT); got != "00:00:00.000" {
		t.Errorf("expected 00:00:00.000, got %q", got)
	}
	if got := FormatTimeCode(100*time.Hour, SepSRT); got != "100:00:00,000" {
		t.Errorf("expected 100:00:00,000, got %q", got)
	}
}

func TestTimeCodeRoundTrip(t *testing.T) {
	for _, text := range []string{"00:00:00,000", "01:02:03,004", "99:59:59,999"} {
		d, err := ParseTimeCode(text, SepSRT)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", text, err)
		}
		if got := FormatTimeCode(d, SepSRT); got != text {
			t.Errorf("round trip of %q produced %q", text, got)
		}
	}
}

func TestCueShift(t *testing.T) {
	c := Cue{Start: 5 * time.Second, End: 6 * time.Second}

	c.Shift(1500 * time.Millisecond)
	if c.Start != 6500*time.Millisecond || c.End != 7500*time.Millisecond {
		t.Errorf("unexpected shift result: %v --> %v", c.Start, c.End)
	}

	c.Shift(-1500 * time.Millisecond)
	if c.Start != 5*time.Second || c.End != 6*time.Second {
		t.Errorf("shift is not invertible without clamping: %v --> %v", c.Start, c.End)
	}
}

func TestCueShiftClampsAtZero(t *testing.T) {
	c := Cue{Start: time.Second, End: 3 * time.Second}
	c.Shift(-2 * time.Second)
	if c.Start != 0 {
		t.Errorf("expected start clamped to zero, got %v", c.Start)
	}
	if c.End != time.Second {
		t.Errorf("expected end 1s, got %v", c.End)
	}
}
