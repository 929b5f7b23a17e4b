package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and wrappers that expose the descriptor.
type fder interface {
	Fd() uintptr
}

// IsTTY reports whether v, a reader or a writer, is attached to a
// terminal. The prompt wizard checks stdin with it, the log handler stderr.
func IsTTY(v any) bool {
	f, ok := v.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
// NO_COLOR (https://no-color.org) and TERM=dumb turn colors off.
func SupportsColor(w io.Writer) bool {
	return colorAllowed(IsTTY(w))
}

func colorAllowed(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTTY && os.Getenv("TERM") != "dumb"
}
