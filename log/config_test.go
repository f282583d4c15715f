package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"warn+1", LevelWarn + 1},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelString_RoundTrip(t *testing.T) {
	for name := range Levels() {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("ParseLevel(%q).String() = %q", name, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}
}

func TestResolveTimeLayout(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RFC3339", time.RFC3339},
		{"rfc-3339-nano", time.RFC3339Nano},
		{"Kitchen", time.Kitchen},
		{"date_time", time.DateTime},
		{"none", ""},
		{"", ""},
		{"2006-01-02", "2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := resolveTimeLayout(tt.in); got != tt.want {
				t.Errorf("resolveTimeLayout(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
