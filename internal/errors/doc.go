// Package errors provides error handling conventions for the ai-sync CLI.
//
// Wrapping helpers delegate to github.com/cockroachdb/errors so every error
// carries a stack trace and a readable message chain:
//
//	if err := fileutil.WriteJSON(path, doc); err != nil {
//	    return errors.Wrapf(err, "writing %s", path)
//	}
//
// # Sentinel Errors
//
// Sentinels mark conditions callers branch on, checked with [Is]:
//
//	if errors.Is(err, errors.ErrUnknownTool) {
//	    // drop the tool from the target list
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): invalid input, bad configuration, or migration errors
//   - ExitSystem (2): I/O or permission failures outside the migration units
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion printed by the CLI entry point.
package errors
