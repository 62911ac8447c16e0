package resolver

// Merge deep merges maps in order into a new Map.
// When both sides hold mappings they are merged key by key, otherwise the later value replaces the earlier one.
// Slices and any other values are leaves. Merge never returns nil.
func Merge(maps ...Map) Map {
	result := Map{}
	for _, src := range maps {
		mergeInto(result, src)
	}
	return result
}

func mergeInto(dest, src Map) {
	for key, value := range src {
		nested, ok := asMap(value)
		if !ok {
			dest[key] = value
			continue
		}
		existing, ok := asMap(dest[key])
		if !ok {
			existing = Map{}
		}
		mergeInto(existing, nested)
		dest[key] = existing
	}
}
