package config

import (
	"path/filepath"
	"strings"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/pkg/deepmerge"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidToolName indicates an empty or malformed tool name.
	ErrInvalidToolName = errors.New("invalid tool name")

	// ErrInvalidOverride indicates a tools entry that is not an object.
	ErrInvalidOverride = errors.New("tool override must be an object")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	for field, p := range map[string]string{
		"global.default_source_dir": cfg.Global.DefaultSourceDir,
		"global.default_config_dir": cfg.Global.DefaultConfigDir,
	} {
		if err := validatePath(p); err != nil {
			errs = append(errs, &PathError{Field: field, Path: p, Err: err})
		}
	}

	for _, name := range cfg.Global.DefaultTargetTools {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " ,") {
			errs = append(errs, &ToolError{Tool: name, Err: ErrInvalidToolName})
		}
	}

	for name, override := range cfg.Tools {
		if _, ok := deepmerge.AsMap(override); !ok {
			errs = append(errs, &ToolError{Tool: name, Err: ErrInvalidOverride})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ToolError represents an error for a specific tool.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return e.Err.Error() + ": " + e.Tool
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
