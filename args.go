package mikroconf

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

// runtimeSuffixes identifies a two-token interpreter preamble
// ("/usr/bin/node script.js --port 8080") in argument lists captured
// wholesale. The check is a literal suffix match on the first token,
// so pre-trimmed argument lists must not start with a matching token.
var runtimeSuffixes = []string{"node", "node.exe"}

func hasRuntimePreamble(args []string) bool {
	if len(args) < 2 {
		return false
	}
	for _, suffix := range runtimeSuffixes {
		if strings.HasSuffix(args[0], suffix) {
			return true
		}
	}
	return false
}

// parseArgs walks CLI tokens left to right and builds a partial tree
// from matched options. Tokens that match no option are skipped, not
// collected; per-option failures are diagnostics, never errors, so one
// bad value does not stop the remaining arguments from being parsed.
func parseArgs(args []string, options []Option, logger *log.Logger) map[string]any {
	tree := make(map[string]any)

	start := 0
	if hasRuntimePreamble(args) {
		start = 2
	}

	for i := start; i < len(args); i++ {
		opt, matched := matchFlag(args[i], options)
		if !matched {
			continue
		}

		if opt.IsFlag {
			setPath(tree, opt.Path, true)
			continue
		}

		if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
			logger.Warnf("Missing value for option %s", opt.Flag)
			continue
		}

		raw := args[i+1]
		i++

		if value, ok := processOption(raw, opt, logger); ok {
			setPath(tree, opt.Path, value)
		}
	}

	return tree
}

// matchFlag returns the first option whose flag equals the token.
func matchFlag(token string, options []Option) (Option, bool) {
	for _, opt := range options {
		if opt.Flag != "" && opt.Flag == token {
			return opt, true
		}
	}
	return Option{}, false
}

// processOption runs the per-option parse then validate pipeline. The
// second return value is false when the option must be skipped; the
// skipped option is simply absent from the CLI layer, so a registered
// default still applies at merge time.
func processOption(raw string, opt Option, logger *log.Logger) (any, bool) {
	var value any = raw

	if opt.Parser != nil {
		parsed, err := opt.Parser.Parse(raw)
		if err != nil {
			logger.Warnf("Failed to parse value for %s: %v", opt.Flag, err)
			return nil, false
		}
		value = parsed
	}

	if opt.Validator != nil {
		if err := opt.Validator.Validate(value); err != nil {
			if errors.Is(err, ErrInvalidValue) {
				logger.Warnf("Invalid value for %s", opt.Flag)
			} else {
				logger.Warnf("Invalid value for %s: %v", opt.Flag, err)
			}
			return nil, false
		}
	}

	return value, true
}
