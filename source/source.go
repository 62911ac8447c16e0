package source

import (
	"context"
	"errors"
	"github.com/viant/gqlcombine/resolver"
)

var (
	// ErrNotFound is returned when a source is not registered
	ErrNotFound = errors.New("source not found")
	// ErrUnsupportedFormat is returned when resolver file extension has no decoder
	ErrUnsupportedFormat = errors.New("unsupported resolver format")
)

// Finder resolves glob pattern into source URLs, ordered lexicographically
type Finder interface {
	Find(ctx context.Context, pattern string) ([]string, error)
}

// FinderFunc adapts a function to Finder
type FinderFunc func(ctx context.Context, pattern string) ([]string, error)

func (f FinderFunc) Find(ctx context.Context, pattern string) ([]string, error) {
	return f(ctx, pattern)
}

// DocumentLoader loads schema definition text
type DocumentLoader interface {
	LoadDocument(ctx context.Context, URL string) (string, error)
}

// ResolverLoader loads resolver map
type ResolverLoader interface {
	LoadResolvers(ctx context.Context, URL string) (resolver.Map, error)
}
