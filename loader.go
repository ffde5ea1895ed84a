package formrules

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/document"
	"github.com/goliatone/go-formrules/pkg/rules"
)

// NewCatalog constructs an empty rule catalog for binding document rule
// names.
func NewCatalog() *rules.Catalog {
	return rules.NewCatalog()
}

// LoadFile reads a JSON or YAML document, binds rule names through resolver and
// normalises the result.
func LoadFile(path string, resolver rules.Resolver) (Config, error) {
	raw, err := document.LoadFile(path, resolver)
	if err != nil {
		return Config{}, err
	}
	return config.Normalize(raw)
}

// LoadFS loads and normalises every document in fsys, keyed by path. Documents
// are normalised in path order and the first failure aborts.
func LoadFS(fsys fs.FS, resolver rules.Resolver) (map[string]Config, error) {
	docs, err := document.LoadFS(fsys, resolver)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(docs))
	for path := range docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make(map[string]Config, len(docs))
	for _, path := range paths {
		cfg, err := config.Normalize(docs[path])
		if err != nil {
			return nil, fmt.Errorf("formrules: %s: %w", path, err)
		}
		out[path] = cfg
	}
	return out, nil
}
