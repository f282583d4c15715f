package cli

import (
	"slices"
	"testing"

	"github.com/ardnew/jsonpp/log"
)

func TestLogConfigScan(t *testing.T) {
	t.Cleanup(func() { log.Config() })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate operands",
			args: []string{"check", "--log-level", "debug", "--log-format", "json", "x.json"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned operands",
			args: []string{"--log-level=trace", "get", "key"},
			want: logConfig{Level: "trace", Pretty: true},
		},
		{
			name: "negated booleans",
			args: []string{"--no-log-pretty", "--log-caller"},
			want: logConfig{Caller: true},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=false", "--no-log-caller=false", "--log-caller=bogus"},
			want: logConfig{Caller: true},
		},
		{
			name: "missing operand",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "unrelated",
			args: []string{"--max-depth", "3", "--log"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLogConfigScanConfiguresDefault(t *testing.T) {
	t.Cleanup(func() { log.Config() })

	var cfg logConfig
	cfg.scan([]string{"--log-level=error", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelError {
		t.Errorf("default level = %v, want %v", got, log.LevelError)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("default format = %v, want %v", got, log.FormatJSON)
	}
}

func TestLogConfigOptions(t *testing.T) {
	cfg := logConfig{Level: "warn", Format: "text"}
	if got := len(cfg.options()); got != 4 {
		t.Errorf("options without time layout = %d, want 4", got)
	}

	cfg.TimeLayout = "Kitchen"
	if got := len(cfg.options()); got != 5 {
		t.Errorf("options with time layout = %d, want 5", got)
	}
}

func TestJoin(t *testing.T) {
	if got := join(slices.Values([]string{"a", "b", "c"})); got != "a,b,c" {
		t.Errorf("join() = %q", got)
	}

	if got := join(slices.Values([]string(nil))); got != "" {
		t.Errorf("join(empty) = %q", got)
	}

	var cfg logConfig

	vars := cfg.vars()
	if vars["logLevelEnum"] != join(log.Levels()) || vars["logFormatEnum"] != join(log.Formats()) {
		t.Errorf("vars() = %v", vars)
	}
}
