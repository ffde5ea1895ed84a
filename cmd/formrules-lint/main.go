package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/rules"
	"github.com/goliatone/go-formrules/pkg/validation"
)

type violation struct {
	file     string
	location string
	message  string
}

type options struct {
	rules    string
	format   string
	logLevel string
	logJSON  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("formrules-lint", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "Usage: %s [flags] [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(fset.Output(), "\nNormalise validation config documents and report structural errors.\n\n")
		fset.PrintDefaults()
	}

	var opts options
	fset.StringVar(&opts.rules, "rules", "", "comma separated rule names to accept (default: accept any name)")
	fset.StringVar(&opts.format, "format", "none", "summary output format: none, yaml or json")
	fset.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fset.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	logger, err := newLogger(stderr, opts)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	paths := fset.Args()
	if len(paths) == 0 {
		fset.Usage()
		return 2
	}

	switch opts.format {
	case "none", "yaml", "json":
	default:
		logger.Error("unsupported format", "format", opts.format)
		return 2
	}

	resolver := buildResolver(opts.rules)

	var violations []violation
	for _, path := range paths {
		logger.Debug("linting document", "path", path)

		result, err := validation.CheckFile(path, resolver)
		if err != nil {
			logger.Error("lint failed", "path", path, "err", err)
			return 1
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				violations = append(violations, violation{
					file:     path,
					location: locationFor(issue.Path),
					message:  issue.Message,
				})
			}
			continue
		}

		cfg := result.Config
		logger.Info("document ok", "path", path, "validations", len(cfg.Validations), "fields", len(cfg.Fields))
		if err := writeSummary(stdout, opts.format, path, cfg); err != nil {
			logger.Error("write summary", "path", path, "err", err)
			return 1
		}
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		logger.Warn("structural errors found", "count", len(violations))
		return 1
	}
	return 0
}

func newLogger(w io.Writer, opts options) (*charmlog.Logger, error) {
	level, err := charmlog.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:  level,
		Prefix: "formrules-lint",
	})
	if opts.logJSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return logger, nil
}

// buildResolver accepts any rule name unless an explicit list is given, in
// which case only those names bind to placeholders.
func buildResolver(list string) rules.Resolver {
	names := splitList(list)
	if len(names) == 0 {
		return rules.PlaceholderResolver
	}
	catalog := rules.NewCatalog()
	for _, name := range names {
		placeholder := rules.Placeholder(name)
		catalog.MustRegister(placeholder.Name, placeholder.Func)
	}
	return catalog
}

// locationFor turns a JSON pointer such as #/validations/email/rules into
// "validations > email > rules".
func locationFor(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(pointer, "#"), "/")
	if trimmed == "" {
		return "document"
	}
	parts := strings.Split(trimmed, "/")
	for idx, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[idx] = strings.ReplaceAll(part, "~0", "~")
	}
	return formatLocation(parts)
}

func writeSummary(w io.Writer, format, path string, cfg config.Config) error {
	summary := cfg.Summary()
	switch format {
	case "yaml":
		payload, err := yaml.Marshal(map[string]config.Summary{path: summary})
		if err != nil {
			return err
		}
		_, err = w.Write(payload)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]config.Summary{path: summary})
	default:
		return nil
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
