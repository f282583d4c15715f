// Package cmd implements the jsonpp subcommands: check, get, eval, bench,
// init, and version.
//
// Each command is a kong command struct whose Run method receives the
// context bound by the CLI. Commands that read documents embed [ParseFlags].
package cmd

var (
	// CacheIdentifier is the kong variable holding the runtime cache
	// directory.
	CacheIdentifier = "cacheDir"

	// ConfigIdentifier is the kong variable holding the configuration file
	// path without its extension.
	ConfigIdentifier = "configPath"
)
