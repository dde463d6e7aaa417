package mikroconf

import "strings"

// Undefined marks a value as deliberately absent. Merge skips keys
// holding it and GetValue treats it as missing. This is distinct from
// nil, which is a real value that replaces on merge.
var Undefined undefined

type undefined struct{}

func (undefined) String() string { return "<undefined>" }

// MarshalJSON renders Undefined as null so trees containing it stay
// serializable.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// setPath sets a value in a nested map using a dot-notation path.
// Intermediate maps are created as needed; an existing non-map value
// at an intermediate segment is overwritten by a fresh map. The final
// segment is always overwritten, whatever it holds.
func setPath(tree map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := tree

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}

		nextMap, isMap := next.(map[string]any)
		if !isMap {
			nextMap = make(map[string]any)
			current[segment] = nextMap
		}
		current = nextMap
	}

	current[segments[len(segments)-1]] = value
}

// getPath walks a dot-notation path through nested maps. The second
// return value is false as soon as any intermediate segment is absent,
// nil, or not a map. A path is always interpreted as exactly its
// split; there is no escaping for literal dots in keys.
func getPath(tree map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := any(tree)

	for _, segment := range segments {
		currentMap, isMap := current.(map[string]any)
		if !isMap || currentMap == nil {
			return nil, false
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}
