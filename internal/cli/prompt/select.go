// Package prompt provides the interactive prompts of the migration wizard.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/logging"
)

// Sentinel errors for selection.
var (
	ErrNoOptions          = errors.New("no options to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Option is one selectable item.
type Option struct {
	Value string
	Label string
}

// finderFunc picks indices of options; it is fuzzyfinder.FindMulti on a
// terminal.
type finderFunc func(options []Option, label string) ([]int, error)

// Prompter reads answers from a reader and writes prompts to a writer.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
	finder finderFunc
}

// NewPrompter creates a Prompter on stdin and stdout. When stdin is a
// terminal multi-selection uses a fuzzy finder.
func NewPrompter() *Prompter {
	p := NewPrompterWithIO(os.Stdin, os.Stdout)
	if logging.IsTTY(os.Stdin) {
		p.finder = fuzzyFind
	}
	return p
}

// NewPrompterWithIO creates a Prompter with custom reader and writer for
// testing. Multi-selection falls back to a numbered list.
func NewPrompterWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

func (p *Prompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimSpace(input), nil
}

// Input asks for a line of text. An empty answer yields def.
func (p *Prompter) Input(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.writer, "%s: ", label)
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return def, nil
	}
	return input, nil
}

// Confirm asks a yes/no question. An empty answer yields def.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.writer, "%s [%s]: ", label, hint)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errors.Wrapf(ErrInvalidSelection, "%q is not yes or no", input)
}

// SelectMulti asks for one or more options and returns their values in
// option order.
//
// Without a terminal the options are listed with numbers and the answer
// is a comma or space separated list of numbers, or "all".
func (p *Prompter) SelectMulti(label string, options []Option) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	var idx []int
	var err error
	if p.finder != nil {
		idx, err = p.finder(options, label)
	} else {
		idx, err = p.selectNumbered(label, options)
	}
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, errors.Wrap(ErrInvalidSelection, "nothing selected")
	}

	chosen := make(map[int]bool, len(idx))
	for _, i := range idx {
		chosen[i] = true
	}
	var values []string
	for i, o := range options {
		if chosen[i] {
			values = append(values, o.Value)
		}
	}
	return values, nil
}

func (p *Prompter) selectNumbered(label string, options []Option) ([]int, error) {
	fmt.Fprintf(p.writer, "%s:\n", label)
	for i, o := range options {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, o.Label)
	}
	fmt.Fprintf(p.writer, "Select (e.g. 1,3 or all): ")

	input, err := p.readLine()
	if err != nil {
		return nil, err
	}
	return parseSelection(input, len(options))
}

// parseSelection parses "1,3", "1 3" or "all" into zero-based indices.
func parseSelection(input string, n int) ([]int, error) {
	if strings.EqualFold(input, "all") {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	var idx []int
	for _, field := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' }) {
		selection, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", field)
		}
		if selection < 1 || selection > n {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
		}
		idx = append(idx, selection-1)
	}
	return idx, nil
}

func fuzzyFind(options []Option, label string) ([]int, error) {
	idx, err := fuzzyfinder.FindMulti(
		options,
		func(i int) string { return options[i].Label },
		fuzzyfinder.WithHeader(label+" (Tab to mark, Enter to confirm)"),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}
