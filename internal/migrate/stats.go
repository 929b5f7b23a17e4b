package migrate

import (
	"github.com/beixiyo/ai-sync/internal/tool"
	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// FileError attributes a failure to a file, directory, or "<tool>:<type>".
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Stats counts the outcomes of a migration.
type Stats struct {
	Success int         `json:"success"`
	Skipped int         `json:"skipped"`
	Error   int         `json:"error"`
	Errors  []FileError `json:"errors,omitempty"`
}

// Add folds other into s.
func (s *Stats) Add(other Stats) {
	s.Success += other.Success
	s.Skipped += other.Skipped
	s.Error += other.Error
	s.Errors = append(s.Errors, other.Errors...)
}

// AddCopy folds the result of a directory copy into s.
func (s *Stats) AddCopy(c fileutil.CopyStats) {
	s.Success += c.Success
	s.Skipped += c.Skipped
	s.Error += c.Error
	for _, fe := range c.Errors {
		s.Errors = append(s.Errors, FileError{File: fe.File, Error: errString(fe.Err)})
	}
}

// Record counts one file operation.
func (s *Stats) Record(file string, r fileutil.CopyResult) {
	switch {
	case r.Err != nil:
		s.Fail(file, r.Err)
	case r.Skipped:
		s.Skipped++
	case r.Success:
		s.Success++
	}
}

// Fail records err against file.
func (s *Stats) Fail(file string, err error) {
	s.Error++
	s.Errors = append(s.Errors, FileError{File: file, Error: errString(err)})
}

// Total is the number of units counted.
func (s Stats) Total() int {
	return s.Success + s.Skipped + s.Error
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// Options are fixed for one invocation.
type Options struct {
	// IsProject selects project-scope targets under ProjectDir.
	IsProject  bool
	ProjectDir string

	// AutoOverwrite replaces existing files, and replaces top-level keys
	// of existing MCP and settings documents instead of deep merging.
	AutoOverwrite bool
}

// Scope returns the registry scope of o.
func (o Options) Scope() tool.Scope {
	return tool.Scope{IsProject: o.IsProject, ProjectDir: o.ProjectDir}
}
