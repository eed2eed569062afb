package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"csvviewer/internal/config"
)

// ValidationError reports a path that does not carry the accepted extension
type ValidationError struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
	Expected  string `json:"expected"`
	Message   string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// ExtensionRule defines the accepted file extension
type ExtensionRule struct {
	Extension     string
	CaseSensitive bool
}

// RuleFrom builds an extension rule from loader settings
func RuleFrom(cfg config.LoaderConfig) ExtensionRule {
	return ExtensionRule{
		Extension:     cfg.Extension,
		CaseSensitive: cfg.CaseSensitive,
	}
}

// Ext returns the extension of the last path element, including the dot.
// A name made only of leading dots before its last dot (".csv", "..csv")
// is a hidden file without an extension, and a trailing separator means
// there is no file name at all.
func Ext(path string) string {
	base := path
	if i := strings.LastIndexAny(path, "/"+string(filepath.Separator)); i >= 0 {
		base = path[i+1:]
	}

	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return ""
	}
	if strings.Trim(base[:dot], ".") == "" {
		return ""
	}
	return base[dot:]
}

// Matches reports whether ext satisfies the rule
func (r ExtensionRule) Matches(ext string) bool {
	if r.CaseSensitive {
		return ext == r.Extension
	}
	return strings.EqualFold(ext, r.Extension)
}

// ValidatePath checks the extension of path against the rule
func ValidatePath(path string, rule ExtensionRule) error {
	ext := Ext(path)
	if rule.Matches(ext) {
		return nil
	}

	var message string
	switch {
	case path == "":
		message = "no file selected"
	case ext == "":
		message = fmt.Sprintf("file has no extension, expected %s", rule.Extension)
	default:
		message = fmt.Sprintf("unsupported extension %s, expected %s", ext, rule.Extension)
	}

	return &ValidationError{
		Path:      path,
		Extension: ext,
		Expected:  rule.Extension,
		Message:   message,
	}
}
