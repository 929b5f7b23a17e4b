package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Document is the result of splitting a file into frontmatter and body.
type Document struct {
	// Meta is the decoded mapping. Empty unless Parsed.
	Meta map[string]any

	// Body is the content after the block when Parsed, otherwise the
	// whole input.
	Body string

	// Parsed reports whether a delimited block was found and decoded as a
	// YAML mapping.
	Parsed bool

	// HasBlock reports whether a delimited block was found at all, even if
	// its YAML could not be decoded.
	HasBlock bool

	// Block is the raw YAML between the delimiters when HasBlock.
	Block string

	// Rest is the content after the closing delimiter when HasBlock.
	Rest string
}

// Split separates content into frontmatter and body. It never fails; see
// [Document] for the fallback rules.
func Split(content string) Document {
	raw := Document{Meta: map[string]any{}, Body: content}

	block, rest, ok := cut(content)
	if !ok {
		return raw
	}
	raw.HasBlock = true
	raw.Block = block
	raw.Rest = rest

	meta := map[string]any{}
	if strings.TrimSpace(block) != "" {
		var node any
		if err := yaml.Unmarshal([]byte(block), &node); err != nil {
			return raw
		}
		if node != nil {
			m, ok := node.(map[string]any)
			if !ok {
				return raw
			}
			meta = m
		}
	}

	return Document{
		Meta:     meta,
		Body:     rest,
		Parsed:   true,
		HasBlock: true,
		Block:    block,
		Rest:     rest,
	}
}

// cut finds the delimited block. The opening delimiter must be the first
// non-blank line; the closing delimiter is the next line that is "---"
// once trailing whitespace is removed.
func cut(content string) (block, rest string, ok bool) {
	s := strings.TrimLeft(content, " \t\r\n\ufeff")

	first, after, found := strings.Cut(s, "\n")
	if !found || strings.TrimRight(first, " \t\r") != delimiter {
		return "", "", false
	}

	var lines []string
	for after != "" {
		line, next, hasNext := strings.Cut(after, "\n")
		if strings.TrimRight(line, " \t\r") == delimiter {
			if !hasNext {
				next = ""
			}
			return strings.Join(lines, "\n"), next, true
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		if !hasNext {
			break
		}
		after = next
	}

	return "", "", false
}

// String returns Meta[key] when it is a non-empty string.
func (d Document) String(key string) string {
	s, _ := d.Meta[key].(string)
	return s
}

// Has reports whether Meta[key] is set to a non-zero value.
func (d Document) Has(key string) bool {
	v, ok := d.Meta[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}

// Format renders matter as a YAML frontmatter block followed by body.
// The block is separated from a non-empty body by one blank line; body is
// written as given.
func Format(matter any, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
	}

	return buf.String(), nil
}
