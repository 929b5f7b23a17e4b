package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/errors"
)

var toolOptions = []Option{
	{Value: "cursor", Label: "Cursor"},
	{Value: "claude", Label: "Claude"},
	{Value: "gemini", Label: "Gemini"},
}

func TestInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrompterWithIO(strings.NewReader("\n/custom\n"), &buf)

	got, err := p.Input("Source", "/default")
	require.NoError(t, err)
	assert.Equal(t, "/default", got)

	got, err = p.Input("Source", "")
	require.NoError(t, err)
	assert.Equal(t, "/custom", got)

	assert.Equal(t, "Source [/default]: Source: ", buf.String())
}

func TestInput_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(strings.NewReader("value"), &bytes.Buffer{})
	got, err := p.Input("x", "")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = p.Input("x", "")
	assert.ErrorIs(t, err, ErrSelectionCancelled)
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		def     bool
		want    bool
		wantErr error
	}{
		{"yes", "y\n", false, true, nil},
		{"YES", "YES\n", false, true, nil},
		{"no", "n\n", true, false, nil},
		{"empty uses default true", "\n", true, true, nil},
		{"empty uses default false", "\n", false, false, nil},
		{"garbage", "maybe\n", false, false, ErrInvalidSelection},
		{"eof", "", false, false, ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPrompterWithIO(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.Confirm("Continue?", tt.def)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectMulti_Numbered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"single", "2\n", []string{"claude"}, nil},
		{"comma list keeps option order", "3,1\n", []string{"cursor", "gemini"}, nil},
		{"space list", "1 2\n", []string{"cursor", "claude"}, nil},
		{"all", "all\n", []string{"cursor", "claude", "gemini"}, nil},
		{"out of range", "4\n", nil, ErrInvalidSelection},
		{"not a number", "x\n", nil, ErrInvalidSelection},
		{"empty", "\n", nil, ErrInvalidSelection},
		{"eof", "", nil, ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPrompterWithIO(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.SelectMulti("Tools", toolOptions)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectMulti_OutputFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrompterWithIO(strings.NewReader("1\n"), &buf)
	_, err := p.SelectMulti("Target tools", toolOptions)
	require.NoError(t, err)

	want := "Target tools:\n  [1] Cursor\n  [2] Claude\n  [3] Gemini\nSelect (e.g. 1,3 or all): "
	assert.Equal(t, want, buf.String())
}

func TestSelectMulti_Finder(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})
	p.finder = func(options []Option, label string) ([]int, error) {
		return []int{2}, nil
	}
	got, err := p.SelectMulti("Tools", toolOptions)
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini"}, got)

	p.finder = func([]Option, string) ([]int, error) {
		return nil, ErrSelectionCancelled
	}
	_, err = p.SelectMulti("Tools", toolOptions)
	assert.True(t, errors.Is(err, ErrSelectionCancelled))
}

func TestSelectMulti_NoOptions(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.SelectMulti("Tools", nil)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestWizard(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"",         // keep default source
		"1,3",      // tools
		"n",        // project
		"/my/proj", // project dir
		"y",        // overwrite
	}, "\n") + "\n"

	p := NewPrompterWithIO(strings.NewReader(input), &bytes.Buffer{})
	a, err := p.Wizard(WizardDefaults{SourceDir: "/home/me", Tools: toolOptions})
	require.NoError(t, err)

	assert.Equal(t, &Answers{
		SourceDir:     "/home/me",
		Tools:         []string{"cursor", "gemini"},
		IsProject:     true,
		ProjectDir:    "/my/proj",
		AutoOverwrite: true,
	}, a)
}

func TestWizard_Global(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(strings.NewReader("/src\nall\n\n\n"), &bytes.Buffer{})
	a, err := p.Wizard(WizardDefaults{Tools: toolOptions})
	require.NoError(t, err)

	assert.Equal(t, "/src", a.SourceDir)
	assert.Len(t, a.Tools, 3)
	assert.False(t, a.IsProject)
	assert.Empty(t, a.ProjectDir)
	assert.False(t, a.AutoOverwrite)
}
