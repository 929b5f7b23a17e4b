package fileutil

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"

	"github.com/beixiyo/ai-sync/internal/errors"
)

// MaxFileSize is the maximum document size ReadJSON and ReadTOML accept.
// Claude's ~/.claude.json accumulates per-project history and can grow
// past a few megabytes.
const MaxFileSize = 64 * 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file up to MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// ReadJSON decodes the JSON object at path. Comments and trailing commas
// are accepted so opencode.jsonc style files can be read. An empty file
// decodes to an empty map.
func ReadJSON(path string) (map[string]any, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	clean := jsonc.ToJSON(data)
	if len(strings.TrimSpace(string(clean))) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(clean, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing JSON %s", path)
	}
	return doc, nil
}

// WriteJSON writes v to path as 2-space indented JSON, creating parent
// directories as needed. Comments in an existing JSONC file are not kept.
func WriteJSON(path string, v any) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return errors.Wrapf(AtomicWriteJSON(path, v), "writing %s", path)
}

// ReadTOML decodes the TOML document at path.
func ReadTOML(path string) (map[string]any, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing TOML %s", path)
	}
	return doc, nil
}

// WriteTOML writes v to path as TOML, creating parent directories as needed.
func WriteTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling TOML")
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return errors.Wrapf(AtomicWriteFile(path, data, 0o644), "writing %s", path)
}

// IsTOML reports whether path names a TOML document by extension.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ReadDocument reads path as TOML or JSON depending on its extension.
func ReadDocument(path string) (map[string]any, error) {
	if IsTOML(path) {
		return ReadTOML(path)
	}
	return ReadJSON(path)
}

// WriteDocument writes v to path as TOML or JSON depending on its extension.
func WriteDocument(path string, v any) error {
	if IsTOML(path) {
		return WriteTOML(path, v)
	}
	return WriteJSON(path, v)
}
