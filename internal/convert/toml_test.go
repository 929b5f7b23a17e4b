package convert

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePrompt(t *testing.T, out string) TOMLPrompt {
	t.Helper()
	var p TOMLPrompt
	require.NoError(t, toml.Unmarshal([]byte(out), &p), "output must be valid TOML:\n%s", out)
	return p
}

func TestMarkdownToTOML(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantDescription string
		wantPrompt      string
	}{
		{
			name:            "argument substitution",
			input:           "---\ndescription: Greet\n---\nSay hello `$ARGUMENTS` and $1\n",
			wantDescription: "Greet",
			wantPrompt:      "Say hello !{{{args}}} and {{arg1}}\n",
		},
		{
			name:       "inline code becomes shell marker",
			input:      "Run `ls -la` then $12.\n",
			wantPrompt: "Run !{ls -la} then {{arg12}}.\n",
		},
		{
			name:       "unsupported keys stripped",
			input:      "allowed-tools: Bash(git:*)\nargument-hint: [msg]\ncontext: fork\nDo the thing\n",
			wantPrompt: "Do the thing\n",
		},
		{
			name:       "key mentioned mid line is kept",
			input:      "Explain the context: of this file\n",
			wantPrompt: "Explain the context: of this file\n",
		},
		{
			name:       "malformed frontmatter keeps whole file",
			input:      "---\ndescription: [oops\n---\nBody\n",
			wantPrompt: "---\ndescription: [oops\n---\nBody\n",
		},
		{
			name:            "quotes and backslashes are escaped",
			input:           "---\ndescription: Say \"hi\" \\o/\n---\nUse \"\"\" and C:\\path\n",
			wantDescription: `Say "hi" \o/`,
			wantPrompt:      "Use \"\"\" and C:\\path\n",
		},
		{
			name:       "crlf body",
			input:      "line one\r\nline two\r\n",
			wantPrompt: "line one\nline two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := MarkdownToTOML(tt.input)
			p := decodePrompt(t, out)
			assert.Equal(t, tt.wantDescription, p.Description)
			assert.Equal(t, tt.wantPrompt, p.Prompt)
		})
	}
}

func TestMarkdownToTOML_Layout(t *testing.T) {
	out := MarkdownToTOML("---\ndescription: Review\n---\n\nCheck $ARGUMENTS\n\n")
	assert.Equal(t, "description = \"Review\"\nprompt = \"\"\"\nCheck {{args}}\n\"\"\"\n", out)

	out = MarkdownToTOML("Just a body")
	assert.Equal(t, "prompt = \"\"\"\nJust a body\n\"\"\"\n", out)
}

func TestTOMLFileName(t *testing.T) {
	assert.Equal(t, "commit.toml", TOMLFileName("commit.md"))
	assert.Equal(t, "notes.txt", TOMLFileName("notes.txt"))
}
