// Package mikroconf merges configuration from defaults, a JSON file,
// a programmatically supplied object, and command-line arguments into
// a single nested tree addressed by dot-notation paths.
//
// Features:
//   - Four configuration sources with fixed precedence
//   - Dot-path reads and writes over the nested tree
//   - Declarative options with per-value parsers and validators
//   - Cross-field validation rules with fail-fast evaluation
//   - Struct scanning via mapstructure
//   - Non-fatal diagnostics through an injectable logger
//
// Quick Start:
//
//	options := []mikroconf.Option{
//	    {Path: "server.host", Flag: "--host", Default: "localhost", Description: "Host to bind"},
//	    {Path: "server.port", Flag: "--port", Default: 8080, Parser: mikroconf.IntParser(),
//	        Validator: mikroconf.Range(1, 65535), Description: "Port to listen on"},
//	    {Path: "verbose", Flag: "--verbose", IsFlag: true, Description: "Verbose output"},
//	}
//
//	cfg := mikroconf.Quick(options, "config.json")
//	port := cfg.GetValue("server.port", 8080)
//
// Precedence (lowest to highest):
//  1. Option defaults
//  2. Configuration file (a single JSON object)
//  3. Explicit config object
//  4. Command-line arguments (--port 9090)
//
// File and CLI problems never fail construction: an unreadable or
// malformed file, a failing parser, a rejected value, or a missing CLI
// value each log one diagnostic and contribute nothing. The only
// raised failure is the ValidationError from Validate (or Get when
// auto-validation is enabled).
//
// Thread Safety:
// All operations on a Config are guarded by a read-write mutex.
// SetValue is atomic per call; read-modify-write sequences across
// calls still need caller coordination.
package mikroconf
