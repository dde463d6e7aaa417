package mikroconf

// merge combines source into target under last-defined-wins
// precedence. For every key in source:
//   - an Undefined value is skipped, leaving target's entry untouched
//   - map-vs-map merges recursively
//   - anything else (scalars, arrays, nil, type mismatches) replaces
//     the target value wholesale
//
// The returned map is new at every merged level; target is never
// mutated. Nested values taken unchanged from either input are shared,
// not cloned, so callers must treat the result as the new owner.
func merge(target, source map[string]any) map[string]any {
	combined := make(map[string]any, len(target)+len(source))
	for key, value := range target {
		combined[key] = value
	}

	for key, value := range source {
		if _, skip := value.(undefined); skip {
			continue
		}

		existing, exists := combined[key]
		existingMap, existingIsMap := existing.(map[string]any)
		valueMap, valueIsMap := value.(map[string]any)

		if exists && existingIsMap && valueIsMap {
			combined[key] = merge(existingMap, valueMap)
			continue
		}

		combined[key] = value
	}

	return combined
}
