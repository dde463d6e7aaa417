package mikroconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Settings configures a Config instance at construction time.
type Settings struct {
	// Options declare the configurable fields, their CLI bindings and
	// their defaults.
	Options []Option

	// Rules are cross-field validations run by Validate in declaration
	// order.
	Rules []Rule

	// ConfigFilePath names an optional JSON document merged above the
	// defaults layer. A missing file contributes nothing; a broken one
	// logs a diagnostic and contributes nothing.
	ConfigFilePath string

	// Config is the explicit programmatic layer, merged above the file.
	Config map[string]any

	// Args are CLI tokens, merged last (highest precedence).
	Args []string

	// AutoValidate makes Get run Validate first.
	AutoValidate bool

	// Logger receives all non-fatal diagnostics. Defaults to a stderr
	// logger with the "mikroconf" prefix.
	Logger *log.Logger
}

// Config owns the merged configuration tree. All access goes through
// its methods, which are individually guarded by a read-write mutex.
type Config struct {
	mutex sync.RWMutex
	tree  map[string]any

	options      []Option
	rules        []Rule
	autoValidate bool
	logger       *log.Logger

	// Per-source layers, retained for Debug.
	defaultsTree map[string]any
	fileTree     map[string]any
	explicitTree map[string]any
	cliTree      map[string]any
}

// New builds a Config by layering defaults, file, explicit and CLI
// sources (last wins) into a single tree. Construction never fails;
// every source-level problem degrades to an empty contribution plus a
// diagnostic.
func New(s Settings) *Config {
	logger := s.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mikroconf"})
	}

	c := &Config{
		options:      s.Options,
		rules:        s.Rules,
		autoValidate: s.AutoValidate,
		logger:       logger,
	}

	c.defaultsTree = buildDefaults(s.Options)
	c.fileTree = c.loadFile(s.ConfigFilePath)
	c.explicitTree = s.Config
	if c.explicitTree == nil {
		c.explicitTree = make(map[string]any)
	}
	c.cliTree = parseArgs(s.Args, s.Options, logger)

	tree := merge(make(map[string]any), c.defaultsTree)
	tree = merge(tree, c.fileTree)
	tree = merge(tree, c.explicitTree)
	tree = merge(tree, c.cliTree)
	c.tree = tree

	return c
}

// Quick creates a configured Config with a single call, reading CLI
// tokens from os.Args.
func Quick(options []Option, configFile string) *Config {
	return New(Settings{
		Options:        options,
		ConfigFilePath: configFile,
		Args:           os.Args,
	})
}

func buildDefaults(options []Option) map[string]any {
	tree := make(map[string]any)
	for _, opt := range options {
		if opt.Default == nil {
			continue
		}
		setPath(tree, opt.Path, opt.Default)
	}
	return tree
}

// loadFile reads and parses the JSON config file. A missing file is
// silently empty; any other read or parse failure logs one diagnostic
// and is treated as empty. Failures never propagate to the caller and
// are never retried.
func (c *Config) loadFile(path string) map[string]any {
	if path == "" {
		return make(map[string]any)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Warnf("Failed to load config file '%s': %v", path, err)
		}
		return make(map[string]any)
	}

	fileConfig := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision
	if err := decoder.Decode(&fileConfig); err != nil {
		c.logger.Warnf("Failed to load config file '%s': %v", path, err)
		return make(map[string]any)
	}

	return fileConfig
}

// Get returns the merged tree. When auto-validation is enabled it runs
// Validate first and returns its failure instead.
func (c *Config) Get() (map[string]any, error) {
	if c.autoValidate {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.tree, nil
}

// GetValue reads a dot-notation path, returning fallback when the path
// is absent or holds Undefined.
func (c *Config) GetValue(path string, fallback any) any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	value, found := getPath(c.tree, path)
	if !found {
		return fallback
	}
	if _, isUndefined := value.(undefined); isUndefined {
		return fallback
	}
	return value
}

// SetValue writes a value at a dot-notation path. A map value is
// merged into whatever mapping currently lives at the path rather than
// overwriting it wholesale; everything else (scalars, arrays, nil)
// overwrites directly.
func (c *Config) SetValue(path string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if valueMap, isMap := value.(map[string]any); isMap && valueMap != nil {
		current, _ := getPath(c.tree, path)
		currentMap, currentIsMap := current.(map[string]any)
		if !currentIsMap {
			currentMap = make(map[string]any)
		}
		setPath(c.tree, path, merge(currentMap, valueMap))
		return
	}

	setPath(c.tree, path, value)
}

// Validate runs the registered rules in declaration order against the
// current tree and stops at the first failure. A rule rejecting with
// the bare ErrInvalidValue raises its declared Message; any other
// error raises that error's text.
func (c *Config) Validate() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, rule := range c.rules {
		if rule.Check == nil {
			continue
		}

		value, _ := getPath(c.tree, rule.Path)
		err := rule.Check(value, c.tree)
		if err == nil {
			continue
		}

		message := err.Error()
		if errors.Is(err, ErrInvalidValue) {
			message = rule.Message
		}
		return newValidationError(message)
	}

	return nil
}

// HelpText renders the declared options in declaration order. Pure
// formatting; no state changes.
func (c *Config) HelpText() string {
	var b strings.Builder
	b.WriteString("Options:\n")

	for _, opt := range c.options {
		left := opt.Flag
		if left == "" {
			left = opt.Path
		}
		if opt.Flag != "" && !opt.IsFlag {
			left += " <value>"
		}

		line := fmt.Sprintf("  %-28s %s", left, opt.Description)
		if opt.Default != nil {
			line += fmt.Sprintf(" (default: %v)", opt.Default)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a formatted dump of each source layer and the merged
// result.
func (c *Config) Debug() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString("Precedence: defaults < file < explicit < cli\n")

	writeLayer := func(name string, layer map[string]any) {
		data, err := json.Marshal(layer)
		if err != nil {
			b.WriteString(fmt.Sprintf("  %s: <unprintable: %v>\n", name, err))
			return
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", name, data))
	}

	writeLayer("defaults", c.defaultsTree)
	writeLayer("file", c.fileTree)
	writeLayer("explicit", c.explicitTree)
	writeLayer("cli", c.cliTree)
	writeLayer("merged", c.tree)

	return b.String()
}

// Save writes the current merged tree to a JSON file atomically.
func (c *Config) Save(path string) error {
	c.mutex.RLock()
	data, err := json.MarshalIndent(c.tree, "", "  ")
	c.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal config data to JSON: %w", err)
	}
	data = append(data, '\n')

	return atomicWriteFile(path, data)
}

// atomicWriteFile performs an atomic file write via a temp file in the
// target directory.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
