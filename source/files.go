package source

import (
	"context"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"github.com/viant/afs"
	"github.com/viant/gqlcombine/resolver"
	"gopkg.in/yaml.v3"
	"path"
	"strings"
)

// DefaultExport is a resolver file key whose mapping takes precedence over the whole file
const DefaultExport = "default"

// Decoder unmarshals resolver file content
type Decoder func(data []byte, v interface{}) error

// Files loads documents and resolvers from afs storage
type Files struct {
	fs       afs.Service
	decoders map[string]Decoder
}

// RegisterDecoder registers decoder for file extension, i.e. ".hcl"
func (f *Files) RegisterDecoder(ext string, decoder Decoder) {
	f.decoders[strings.ToLower(ext)] = decoder
}

// LoadDocument returns document text
func (f *Files) LoadDocument(ctx context.Context, URL string) (string, error) {
	data, err := f.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadResolvers decodes resolver file with decoder matching its extension
func (f *Files) LoadResolvers(ctx context.Context, URL string) (resolver.Map, error) {
	decode, ok := f.decoders[strings.ToLower(path.Ext(URL))]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, URL)
	}
	data, err := f.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	var raw interface{}
	if err = decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	if raw == nil {
		return resolver.Map{}, nil
	}
	result, ok := resolver.Normalize(raw).(resolver.Map)
	if !ok {
		return nil, fmt.Errorf("invalid resolvers %v: expected mapping but had %T", URL, raw)
	}
	return defaultExport(result), nil
}

func defaultExport(resolvers resolver.Map) resolver.Map {
	if exported, ok := resolvers[DefaultExport].(resolver.Map); ok {
		return exported
	}
	return resolvers
}

// NewFiles creates afs backed loader with yaml, json and toml decoders
func NewFiles(fs afs.Service) *Files {
	if fs == nil {
		fs = afs.New()
	}
	ret := &Files{fs: fs, decoders: map[string]Decoder{}}
	ret.RegisterDecoder(".yaml", yaml.Unmarshal)
	ret.RegisterDecoder(".yml", yaml.Unmarshal)
	ret.RegisterDecoder(".json", yaml.Unmarshal)
	ret.RegisterDecoder(".toml", toml.Unmarshal)
	return ret
}
