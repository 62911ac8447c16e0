package gqlcombine

import (
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/gqlcombine/source"
)

type Option func(*Service)

// WithFS sets storage used by default finder and loaders
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFinder sets glob finder of both type definitions and resolvers
func WithFinder(finder source.Finder) Option {
	return func(s *Service) {
		s.typeDefsFinder = finder
		s.resolversFinder = finder
	}
}

// WithTypeDefsFinder sets type definitions finder
func WithTypeDefsFinder(finder source.Finder) Option {
	return func(s *Service) {
		s.typeDefsFinder = finder
	}
}

// WithResolversFinder sets resolvers finder
func WithResolversFinder(finder source.Finder) Option {
	return func(s *Service) {
		s.resolversFinder = finder
	}
}

// WithDocumentLoader sets type definitions loader
func WithDocumentLoader(loader source.DocumentLoader) Option {
	return func(s *Service) {
		s.documents = loader
	}
}

// WithResolverLoader sets resolvers loader
func WithResolverLoader(loader source.ResolverLoader) Option {
	return func(s *Service) {
		s.resolvers = loader
	}
}

// WithRegistry uses registry finders and loaders
func WithRegistry(registry *source.Registry) Option {
	return func(s *Service) {
		s.typeDefsFinder = registry.TypeDefs()
		s.resolversFinder = registry.Resolvers()
		s.documents = registry
		s.resolvers = registry
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
