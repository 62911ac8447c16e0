package source

import (
	"context"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/gqlcombine/resolver"
	"sort"
	"sync"
)

// Registry holds sources defined in Go code, resolver values can be functions
type Registry struct {
	mux       sync.RWMutex
	typeDefs  map[string]string
	resolvers map[string]resolver.Map
}

// AddTypeDefs registers schema definition under the name
func (r *Registry) AddTypeDefs(name, typeDefs string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.typeDefs[name] = typeDefs
}

// AddResolvers registers resolver map under the name
func (r *Registry) AddResolvers(name string, resolvers resolver.Map) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.resolvers[name] = resolvers
}

// TypeDefs returns finder matching names registered with AddTypeDefs
func (r *Registry) TypeDefs() Finder {
	return FinderFunc(func(ctx context.Context, pattern string) ([]string, error) {
		r.mux.RLock()
		defer r.mux.RUnlock()
		return match(pattern, r.typeDefs)
	})
}

// Resolvers returns finder matching names registered with AddResolvers
func (r *Registry) Resolvers() Finder {
	return FinderFunc(func(ctx context.Context, pattern string) ([]string, error) {
		r.mux.RLock()
		defer r.mux.RUnlock()
		return match(pattern, r.resolvers)
	})
}

func match[V any](pattern string, sources map[string]V) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %v", pattern)
	}
	var matched []string
	for name := range sources {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, name)
		}
	}
	sort.Strings(matched)
	return matched, nil
}

// LoadDocument returns registered schema definition
func (r *Registry) LoadDocument(ctx context.Context, name string) (string, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	typeDefs, ok := r.typeDefs[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return typeDefs, nil
}

// LoadResolvers returns registered resolver map
func (r *Registry) LoadResolvers(ctx context.Context, name string) (resolver.Map, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	resolvers, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return resolvers, nil
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		typeDefs:  map[string]string{},
		resolvers: map[string]resolver.Map{},
	}
}
