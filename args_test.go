package mikroconf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func TestParseArgsBooleanFlag(t *testing.T) {
	logger, _ := testLogger()
	options := []Option{{Path: "verbose", Flag: "--verbose", IsFlag: true}}

	tree := parseArgs([]string{"--verbose"}, options, logger)

	assert.Equal(t, true, tree["verbose"])
}

func TestParseArgsValueOption(t *testing.T) {
	logger, _ := testLogger()
	options := []Option{{Path: "server.host", Flag: "--host"}}

	tree := parseArgs([]string{"--host", "example.com"}, options, logger)

	got, found := getPath(tree, "server.host")
	require.True(t, found)
	assert.Equal(t, "example.com", got)
}

func TestParseArgsParserAndValidator(t *testing.T) {
	options := []Option{{
		Path:      "port",
		Flag:      "--port",
		Parser:    IntParser(),
		Validator: Range(1, 65535),
	}}

	t.Run("ValidValue", func(t *testing.T) {
		logger, buf := testLogger()
		tree := parseArgs([]string{"--port", "8080"}, options, logger)

		assert.Equal(t, int64(8080), tree["port"])
		assert.Empty(t, buf.String())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		logger, buf := testLogger()
		tree := parseArgs([]string{"--port", "70000"}, options, logger)

		_, found := getPath(tree, "port")
		assert.False(t, found)
		assert.Contains(t, buf.String(), "Invalid value for --port")
	})

	t.Run("ParseFailure", func(t *testing.T) {
		logger, buf := testLogger()
		tree := parseArgs([]string{"--port", "not-a-number"}, options, logger)

		_, found := getPath(tree, "port")
		assert.False(t, found)
		assert.Contains(t, buf.String(), "Failed to parse value for --port")
	})
}

func TestParseArgsMissingValue(t *testing.T) {
	options := []Option{
		{Path: "name", Flag: "--name"},
		{Path: "verbose", Flag: "--verbose", IsFlag: true},
	}

	t.Run("AtEndOfArgs", func(t *testing.T) {
		logger, buf := testLogger()
		tree := parseArgs([]string{"--name"}, options, logger)

		_, found := getPath(tree, "name")
		assert.False(t, found)
		assert.Contains(t, buf.String(), "Missing value for option --name")
	})

	t.Run("FollowedByAnotherFlag", func(t *testing.T) {
		logger, buf := testLogger()
		tree := parseArgs([]string{"--name", "--verbose"}, options, logger)

		_, found := getPath(tree, "name")
		assert.False(t, found)
		assert.Contains(t, buf.String(), "Missing value for option --name")
		// Tokenization continues: the following flag is still matched.
		assert.Equal(t, true, tree["verbose"])
	})
}

func TestParseArgsUnmatchedTokensSkipped(t *testing.T) {
	logger, buf := testLogger()
	options := []Option{{Path: "verbose", Flag: "--verbose", IsFlag: true}}

	tree := parseArgs([]string{"positional", "--unknown", "x", "--verbose"}, options, logger)

	assert.Equal(t, map[string]any{"verbose": true}, tree)
	assert.Empty(t, buf.String())
}

func TestParseArgsRuntimePreamble(t *testing.T) {
	options := []Option{{Path: "host", Flag: "--host"}}

	t.Run("SkipsTwoTokenPreamble", func(t *testing.T) {
		logger, _ := testLogger()
		tree := parseArgs([]string{"/usr/local/bin/node", "server.js", "--host", "a"}, options, logger)
		assert.Equal(t, "a", tree["host"])
	})

	t.Run("PreambleValuesNotMatched", func(t *testing.T) {
		logger, _ := testLogger()
		// The skipped preamble hides a flag sitting in the second slot.
		tree := parseArgs([]string{"node", "--host", "a"}, options, logger)
		_, found := getPath(tree, "host")
		assert.False(t, found)
		// The preamble consumed "--host"; "a" alone matches nothing.
		assert.Empty(t, tree)
	})

	t.Run("NoPreambleForOrdinaryFirstToken", func(t *testing.T) {
		logger, _ := testLogger()
		tree := parseArgs([]string{"--host", "a"}, options, logger)
		assert.Equal(t, "a", tree["host"])
	})

	t.Run("SingleTokenNeverTreatedAsPreamble", func(t *testing.T) {
		logger, _ := testLogger()
		options := []Option{{Path: "node", Flag: "node", IsFlag: true}}
		tree := parseArgs([]string{"node"}, options, logger)
		assert.Equal(t, true, tree["node"])
	})
}

func TestProcessOptionValidatorForms(t *testing.T) {
	t.Run("BareRejection", func(t *testing.T) {
		logger, buf := testLogger()
		opt := Option{
			Path: "name", Flag: "--name",
			Validator: ValidateFunc(func(any) error { return ErrInvalidValue }),
		}
		_, ok := processOption("x", opt, logger)

		assert.False(t, ok)
		assert.Contains(t, buf.String(), "Invalid value for --name")
		assert.NotContains(t, buf.String(), "Invalid value for --name:")
	})

	t.Run("MessageRejection", func(t *testing.T) {
		logger, buf := testLogger()
		opt := Option{
			Path: "name", Flag: "--name",
			Validator: ValidateFunc(func(any) error { return errors.New("too short") }),
		}
		_, ok := processOption("x", opt, logger)

		assert.False(t, ok)
		assert.Contains(t, buf.String(), "Invalid value for --name: too short")
	})

	t.Run("NoParserUsesRawString", func(t *testing.T) {
		logger, _ := testLogger()
		var seen any
		opt := Option{
			Path: "name", Flag: "--name",
			Validator: ValidateFunc(func(v any) error { seen = v; return nil }),
		}
		value, ok := processOption("raw", opt, logger)

		require.True(t, ok)
		assert.Equal(t, "raw", value)
		assert.Equal(t, "raw", seen)
	})
}
