package mikroconf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the merged configuration under basePath into the target
// struct or map. The target must be a non-nil pointer; fields map via
// the `json` struct tag. An empty basePath scans the whole tree, and a
// basePath that does not exist decodes an empty map.
func (c *Config) Scan(basePath string, target any) error {
	// Validate target
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	c.mutex.RLock()
	var sectionData any = c.tree
	// Allow trailing dot for convenience
	basePath = strings.TrimSuffix(basePath, ".")
	if basePath != "" {
		value, found := getPath(c.tree, basePath)
		if !found {
			sectionData = make(map[string]any)
		} else {
			sectionData = value
		}
	}
	c.mutex.RUnlock()

	// Ensure the final data we are decoding from is actually a map
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a scannable section (map), but to type %T", basePath, sectionData)
	}

	decoderConfig := &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true, // Allow conversions (e.g., json.Number to int)
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}
