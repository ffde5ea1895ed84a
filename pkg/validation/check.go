package validation

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-formrules/pkg/config"
	"github.com/goliatone/go-formrules/pkg/document"
	"github.com/goliatone/go-formrules/pkg/rules"
)

// Issue represents a configuration error with optional location metadata.
// Path is a JSON pointer into the source document; Field names the validation
// when one is involved.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of checking a configuration. Config is only set
// when Valid is true.
type Result struct {
	Valid  bool          `json:"valid"`
	Issues []Issue       `json:"issues,omitempty"`
	Config config.Config `json:"-"`
}

// Check normalises raw and reports the outcome as a Result.
func Check(raw config.Raw) Result {
	cfg, err := config.Normalize(raw)
	if err != nil {
		return Result{Issues: []Issue{issueFromError(err)}}
	}
	return Result{Valid: true, Config: cfg}
}

// CheckDocument parses data, binds rule names through resolver and checks the
// result. Parse failures are reported as issues too.
func CheckDocument(data []byte, source string, resolver rules.Resolver) Result {
	raw, err := document.Parse(data, source, resolver)
	if err != nil {
		return Result{Issues: []Issue{issueFromError(err)}}
	}
	return Check(raw)
}

// CheckFile reads path and checks its content. Only read failures are returned
// as errors.
func CheckFile(path string, resolver rules.Resolver) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("validation: read %s: %w", path, err)
	}
	return CheckDocument(data, path, resolver), nil
}

func issueFromError(err error) Issue {
	if err == nil {
		return Issue{Message: "unknown error"}
	}

	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return Issue{
			Path:    pointerFor(cfgErr),
			Field:   cfgErr.Validation,
			Message: strings.TrimPrefix(cfgErr.Error(), "formrules config: "),
		}
	}

	msg := strings.TrimSpace(err.Error())
	msg = strings.TrimPrefix(msg, "document: ")
	issue := Issue{Message: msg}
	if errors.Is(err, rules.ErrUnknownRule) {
		issue.Path = "#/validations"
	}
	return issue
}

func pointerFor(err *config.ConfigError) string {
	switch err.Facet {
	case config.FacetAsyncThrottle:
		return joinPointer("options", "asyncThrottle")
	case config.FacetTypingDebounce:
		return joinPointer("options", "typingDebounce")
	case config.FacetFields:
		return joinPointer("fields")
	case config.FacetValidationRules:
		return joinPointer("validations", err.Validation, "rules")
	case config.FacetValidationRule:
		return joinPointer("validations", err.Validation, "rules", strconv.Itoa(err.Rule))
	case config.FacetValidationFields:
		return joinPointer("validations", err.Validation, "fields")
	case config.FacetValidations:
		if err.Validation != "" {
			return joinPointer("validations", err.Validation)
		}
		return joinPointer("validations")
	default:
		return ""
	}
}

func joinPointer(segments ...string) string {
	var b strings.Builder
	b.WriteString("#")
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segment = strings.ReplaceAll(segment, "/", "~1")
		b.WriteString("/")
		b.WriteString(segment)
	}
	return b.String()
}
