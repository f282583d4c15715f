// Package cli contains the command line interface for jsonpp.
//
// # Usage
//
//	jsonpp [flags] <command> [args]
//
//	jsonpp check testdata/*.json
//	jsonpp get -f config.json server port
//	jsonpp eval -f order.json 'total > 100 && find("status") == "paid"'
//	jsonpp bench -n 100 large.json
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory. Both hold flag values under a "config" member,
// with flag names spelled using hyphens or underscores:
//
//	{ "config": { "log-level": "debug", "max_depth": 64 } }
//
// The JSON file is read with this module's own parser. Command-line flags
// override file values. The init command writes either file from the
// current flag values.
//
// # Logging Options
//
//   - --log-level: trace, debug, info, warn, or error
//   - --log-format: text or json
//   - --log-time-layout: a named layout such as RFC3339, or "none"
//   - --[no-]log-caller, --[no-]log-pretty
//
// # Profiling Options
//
// Profiling is available only when built with the pprof tag:
//
//	go build -tags pprof .
//	jsonpp --pprof-mode=cpu bench large.json
package cli
