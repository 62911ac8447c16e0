// Package gqlcombine combines GraphQL type definitions and resolver maps spread across feature modules
package gqlcombine

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/gqlcombine/resolver"
	"github.com/viant/gqlcombine/schema"
	"github.com/viant/gqlcombine/source"
	"io"
)

// Options holds glob patterns of type definitions and resolvers files, empty pattern means not configured
type Options struct {
	TypeDefs  string `yaml:"typeDefs,omitempty" mapstructure:"typedefs"`
	Resolvers string `yaml:"resolvers,omitempty" mapstructure:"resolvers"`
}

// Service combines type definitions and resolvers
type Service struct {
	fs              afs.Service
	typeDefsFinder  source.Finder
	resolversFinder source.Finder
	documents       source.DocumentLoader
	resolvers       source.ResolverLoader
	logger          *log.Logger
}

// Combine finds and loads sources configured by options, then returns combined type definitions and merged resolvers.
// Unconfigured or unmatched type definitions result in nil TypeDefs, unconfigured or unmatched resolvers in empty Resolvers.
func (s *Service) Combine(ctx context.Context, options *Options) (*Result, error) {
	result := &Result{Resolvers: resolver.Map{}}
	if options == nil {
		return result, nil
	}
	if options.TypeDefs != "" {
		URLs, err := s.find(ctx, s.typeDefsFinder, "typeDefs", options.TypeDefs)
		if err != nil {
			return nil, err
		}
		documents := make([]string, 0, len(URLs))
		for _, URL := range URLs {
			document, err := s.documents.LoadDocument(ctx, URL)
			if err != nil {
				return nil, fmt.Errorf("failed to load type definitions %v: %w", URL, err)
			}
			s.logger.Debug("loaded type definitions", "url", URL, "size", len(document))
			documents = append(documents, document)
		}
		result.TypeDefs = schema.Combine(documents)
		result.Sources.TypeDefs = URLs
	}
	if options.Resolvers != "" {
		URLs, err := s.find(ctx, s.resolversFinder, "resolvers", options.Resolvers)
		if err != nil {
			return nil, err
		}
		maps := make([]resolver.Map, 0, len(URLs))
		for _, URL := range URLs {
			resolvers, err := s.resolvers.LoadResolvers(ctx, URL)
			if err != nil {
				return nil, fmt.Errorf("failed to load resolvers %v: %w", URL, err)
			}
			s.logger.Debug("loaded resolvers", "url", URL, "types", len(resolvers))
			maps = append(maps, resolvers)
		}
		result.Resolvers = resolver.Merge(maps...)
		result.Sources.Resolvers = URLs
	}
	return result, nil
}

func (s *Service) find(ctx context.Context, finder source.Finder, kind, pattern string) ([]string, error) {
	URLs, err := finder.Find(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to find %v %v: %w", kind, pattern, err)
	}
	s.logger.Debug("found sources", "kind", kind, "pattern", pattern, "count", len(URLs))
	return URLs, nil
}

// New creates a service, by default sources are found and loaded with afs
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = log.New(io.Discard)
	}
	if ret.typeDefsFinder == nil || ret.resolversFinder == nil {
		glob := source.NewGlob(ret.fs)
		if ret.typeDefsFinder == nil {
			ret.typeDefsFinder = glob
		}
		if ret.resolversFinder == nil {
			ret.resolversFinder = glob
		}
	}
	if ret.documents == nil || ret.resolvers == nil {
		files := source.NewFiles(ret.fs)
		if ret.documents == nil {
			ret.documents = files
		}
		if ret.resolvers == nil {
			ret.resolvers = files
		}
	}
	return ret
}

// Combine combines sources with default service
func Combine(ctx context.Context, options *Options) (*Result, error) {
	return New().Combine(ctx, options)
}
