package gqlcombine

import (
	"github.com/viant/gqlcombine/resolver"
	"github.com/viant/gqlcombine/source"
)

// Result represents combined type definitions and merged resolvers
type Result struct {
	TypeDefs  *string
	Resolvers resolver.Map
	Sources   Sources
}

// Sources lists URLs in the order they were combined
type Sources struct {
	TypeDefs  []string
	Resolvers []string
}

// Fingerprint returns hash of combined type definitions, 0 when there are none
func (r *Result) Fingerprint() uint64 {
	if r.TypeDefs == nil {
		return 0
	}
	return source.Fingerprint([]byte(*r.TypeDefs))
}
