package resolver

import "sort"

// Map represents resolver table: type name -> field name -> resolver
type Map map[string]interface{}

// Lookup returns a value stored under the nested path
func (m Map) Lookup(path ...string) (interface{}, bool) {
	if len(path) == 0 {
		return nil, false
	}
	value, ok := m[path[0]]
	if !ok {
		return nil, false
	}
	if len(path) == 1 {
		return value, true
	}
	nested, ok := asMap(value)
	if !ok {
		return nil, false
	}
	return nested.Lookup(path[1:]...)
}

// Paths returns sorted dotted paths of all leaf values, i.e. Query.user
func (m Map) Paths() []string {
	var paths []string
	m.collectPaths("", &paths)
	sort.Strings(paths)
	return paths
}

func (m Map) collectPaths(prefix string, paths *[]string) {
	for key, value := range m {
		location := key
		if prefix != "" {
			location = prefix + "." + key
		}
		if nested, ok := asMap(value); ok && len(nested) > 0 {
			nested.collectPaths(location, paths)
			continue
		}
		*paths = append(*paths, location)
	}
}

// Normalize converts decoder specific mappings (i.e. map[interface{}]interface{}) into Map, recursively
func Normalize(value interface{}) interface{} {
	nested, ok := asMap(value)
	if !ok {
		return value
	}
	result := make(Map, len(nested))
	for k, v := range nested {
		result[k] = Normalize(v)
	}
	return result
}

// asMap returns mapping view of the value, only string keyed mappings qualify
func asMap(value interface{}) (Map, bool) {
	switch actual := value.(type) {
	case Map:
		return actual, true
	case map[string]interface{}:
		return Map(actual), true
	case map[interface{}]interface{}:
		result := make(Map, len(actual))
		for k, v := range actual {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			result[key] = v
		}
		return result, true
	}
	return nil, false
}
