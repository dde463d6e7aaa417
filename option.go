package mikroconf

// Parser converts a raw CLI string into a typed value.
type Parser interface {
	Parse(raw string) (any, error)
}

// ParseFunc adapts a plain function to the Parser interface.
type ParseFunc func(raw string) (any, error)

func (f ParseFunc) Parse(raw string) (any, error) { return f(raw) }

// Validator checks a single option value. A nil return accepts the
// value; ErrInvalidValue rejects it without detail; any other non-nil
// error rejects it with the error text as the message.
type Validator interface {
	Validate(value any) error
}

// ValidateFunc adapts a plain function to the Validator interface.
type ValidateFunc func(value any) error

func (f ValidateFunc) Validate(value any) error { return f(value) }

// Option declares one configurable field: its location in the tree,
// its optional CLI binding, and its parse/validate hooks. Options are
// supplied wholesale at store creation and never modified afterwards.
// Paths and flags should be unique across options; the first flag
// match wins, duplicates are not rejected.
type Option struct {
	// Path is the dot-notation location in the configuration tree.
	Path string

	// Flag is the CLI token that selects this option (e.g. "--port").
	// Empty means the option has no CLI binding.
	Flag string

	// Default seeds the defaults layer when non-nil.
	Default any

	// Parser converts the raw CLI string. Without one the raw string
	// is used as-is.
	Parser Parser

	// Validator runs on the parsed (or raw) CLI value.
	Validator Validator

	// IsFlag marks a zero-argument toggle that writes true.
	IsFlag bool

	// Description is rendered by HelpText.
	Description string
}

// RuleFunc checks one cross-field rule against the value at the rule's
// path and the full merged tree.
type RuleFunc func(value any, tree map[string]any) error

// Rule declares one cross-field validation, evaluated by Validate in
// declaration order. Message is the fallback text used when Check
// rejects with the bare ErrInvalidValue.
type Rule struct {
	Path    string
	Check   RuleFunc
	Message string
}
