package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beixiyo/ai-sync/pkg/frontmatter"
)

var (
	positionalArg = regexp.MustCompile(`\$(\d+)`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	unsupported   = regexp.MustCompile(`(?m)^(?:allowed-tools|argument-hint|context):.*(?:\r?\n|$)`)
)

// TOMLPrompt is the decoded shape of a converted command file.
type TOMLPrompt struct {
	Description string `toml:"description,omitempty"`
	Prompt      string `toml:"prompt"`
}

// MarkdownToTOML converts a Markdown command into a TOML prompt file.
//
// The description comes from the frontmatter. In the body $ARGUMENTS
// becomes {{args}}, $N becomes {{argN}} and inline code `x` becomes the
// shell marker !{x}. Lines starting with allowed-tools:, argument-hint: or
// context: are dropped.
func MarkdownToTOML(content string) string {
	doc := frontmatter.Split(content)

	var description string
	if doc.Parsed {
		description = fmt.Sprint(valueOr(doc.Meta["description"], ""))
	}

	prompt := TranslateArguments(doc.Body)
	prompt = unsupported.ReplaceAllString(prompt, "")

	return generateTOML(description, strings.TrimSpace(prompt))
}

// TranslateArguments rewrites Claude argument placeholders and inline
// code spans into Gemini CLI syntax.
func TranslateArguments(body string) string {
	body = strings.ReplaceAll(body, "$ARGUMENTS", "{{args}}")
	body = positionalArg.ReplaceAllString(body, "{{arg$1}}")
	body = inlineCode.ReplaceAllString(body, "!{$1}")
	return body
}

// TOMLFileName maps a command file name to its converted name.
func TOMLFileName(name string) string {
	if strings.HasSuffix(name, ".md") {
		return strings.TrimSuffix(name, ".md") + ".toml"
	}
	return name
}

func generateTOML(description, prompt string) string {
	var b strings.Builder
	if description != "" {
		b.WriteString("description = ")
		b.WriteString(basicString(description))
		b.WriteString("\n")
	}
	b.WriteString("prompt = \"\"\"\n")
	b.WriteString(multilineBody(prompt))
	b.WriteString("\n\"\"\"\n")
	return b.String()
}

// basicString quotes s as a single-line TOML basic string.
func basicString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// multilineBody escapes s for the inside of a """ string. Backslashes and
// runs of three quotes are escaped; line endings are normalized to LF.
func multilineBody(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	quotes := 0
	for _, r := range s {
		if r == '"' {
			quotes++
			if quotes == 3 {
				b.WriteString(`\"`)
				quotes = 0
				continue
			}
			b.WriteRune(r)
			continue
		}
		quotes = 0

		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func valueOr(v, def any) any {
	if v == nil {
		return def
	}
	return v
}
