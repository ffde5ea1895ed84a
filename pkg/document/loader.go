package document

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formrules/internal/shape"
	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/rules"
)

type documentFile struct {
	Validations any          `json:"validations" yaml:"validations"`
	Fields      any          `json:"fields" yaml:"fields"`
	Options     *optionsFile `json:"options" yaml:"options"`
}

type optionsFile struct {
	AsyncThrottle  any `json:"asyncThrottle" yaml:"asyncThrottle"`
	TypingDebounce any `json:"typingDebounce" yaml:"typingDebounce"`
}

// Parse decodes a JSON or YAML document and binds rule names through
// resolver. A nil resolver leaves rule tuples untouched.
func Parse(data []byte, source string, resolver rules.Resolver) (config.Raw, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return config.Raw{}, err
	}

	validations, err := bindValidations(doc.Validations, source, resolver)
	if err != nil {
		return config.Raw{}, err
	}

	raw := config.Raw{
		Validations: validations,
		Fields:      doc.Fields,
	}
	if doc.Options != nil {
		raw.Options = &config.Options{
			AsyncThrottle:  doc.Options.AsyncThrottle,
			TypingDebounce: doc.Options.TypingDebounce,
		}
	}
	return raw, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, resolver rules.Resolver) (config.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Raw{}, fmt.Errorf("document: read %s: %w", path, err)
	}
	return Parse(data, path, resolver)
}

// LoadFS walks fsys and parses every JSON/YAML file, keyed by its path. When
// fsys is nil the result is empty.
func LoadFS(fsys fs.FS, resolver rules.Resolver) (map[string]config.Raw, error) {
	out := make(map[string]config.Raw)
	if fsys == nil {
		return out, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("document: read %s: %w", path, err)
		}
		raw, err := Parse(data, path, resolver)
		if err != nil {
			return err
		}
		out[path] = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("document: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("document: parse %s: invalid JSON or YAML", source)
}

// bindValidations copies the validations mapping, replacing every string rule
// name in first position with the resolved callable. Shapes it does not recognise
// are copied as is so config.Normalize reports them.
func bindValidations(raw any, source string, resolver rules.Resolver) (any, error) {
	if resolver == nil {
		return raw, nil
	}
	entries, ok := shape.Mapping(raw)
	if !ok {
		return raw, nil
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(entries))
	for _, name := range names {
		entry := entries[name]
		if _, isList := shape.Sequence(entry); isList {
			bound, err := bindRules(entry, source, name, resolver)
			if err != nil {
				return nil, err
			}
			out[name] = bound
			continue
		}

		facets, isMap := shape.Mapping(entry)
		if !isMap {
			out[name] = entry
			continue
		}
		copied := make(map[string]any, len(facets))
		for key, value := range facets {
			copied[key] = value
		}
		if ruleList, present := copied["rules"]; present {
			bound, err := bindRules(ruleList, source, name, resolver)
			if err != nil {
				return nil, err
			}
			copied["rules"] = bound
		}
		out[name] = copied
	}
	return out, nil
}

func bindRules(raw any, source, validation string, resolver rules.Resolver) (any, error) {
	items, ok := shape.Sequence(raw)
	if !ok {
		return raw, nil
	}

	out := make([]any, len(items))
	for idx, item := range items {
		tuple, isTuple := shape.Sequence(item)
		if !isTuple || len(tuple) == 0 {
			out[idx] = item
			continue
		}
		name, isName := shape.String(tuple[0])
		if !isName {
			out[idx] = item
			continue
		}

		named, err := resolver.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("document: %s: validation %q rule %d: %w", source, validation, idx, err)
		}
		bound := make([]any, 0, len(tuple))
		bound = append(bound, named)
		bound = append(bound, tuple[1:]...)
		out[idx] = bound
	}
	return out, nil
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
