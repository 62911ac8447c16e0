package source

import (
	"context"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"io"
	"os"
	"path"
	"sort"
	"strings"
)

// Glob finds files matching glob pattern on any afs supported storage
type Glob struct {
	fs afs.Service
}

// Find walks the static base of the pattern and returns sorted URLs of matched files.
// A missing base location yields no match. Hidden files and files under hidden directories
// only match when the pattern itself names a dot segment.
func (g *Glob) Find(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %v", pattern)
	}
	base, expr := doublestar.SplitPattern(pattern)
	exists, err := g.fs.Exists(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to check %v: %w", base, err)
	}
	if !exists {
		return nil, nil
	}
	includeHidden := hasHiddenSegment(expr)
	var matched []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		location := strings.Trim(path.Join(parent, info.Name()), "/")
		if !includeHidden && hasHiddenSegment(location) {
			return true, nil
		}
		ok, err := doublestar.Match(expr, location)
		if err != nil {
			return false, err
		}
		if ok {
			matched = append(matched, url.Join(baseURL, location))
		}
		return true, nil
	}
	if err = g.fs.Walk(ctx, base, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %v: %w", base, err)
	}
	sort.Strings(matched)
	return matched, nil
}

func hasHiddenSegment(location string) bool {
	for _, segment := range strings.Split(location, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			return true
		}
	}
	return false
}

// NewGlob creates glob finder
func NewGlob(fs afs.Service) *Glob {
	if fs == nil {
		fs = afs.New()
	}
	return &Glob{fs: fs}
}
