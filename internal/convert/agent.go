package convert

import (
	"strings"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/pkg/frontmatter"
)

const subagentMode = "subagent"

type agentMeta struct {
	Name        any    `yaml:"name,omitempty"`
	Description any    `yaml:"description,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

func universalMeta(doc frontmatter.Document) (agentMeta, bool) {
	var m agentMeta
	if doc.Has("name") {
		m.Name = doc.Meta["name"]
	}
	if doc.Has("description") {
		m.Description = doc.Meta["description"]
	}
	return m, m.Name != nil || m.Description != nil
}

// UniversalAgent reduces an agent definition to the name and description
// fields every tool understands. When neither is set only the trimmed body
// is returned. Content without a parseable frontmatter block is returned
// unchanged.
func UniversalAgent(content, fileName string) (string, error) {
	doc := frontmatter.Split(content)
	if !doc.Parsed {
		return content, nil
	}

	meta, ok := universalMeta(doc)
	if !ok {
		return strings.TrimSpace(doc.Body), nil
	}
	return formatAgent(meta, doc.Body, fileName)
}

// OpenCodeAgent reduces an agent definition like UniversalAgent and marks
// it as an OpenCode subagent. A block is always emitted:
//
//	"BODY" -> "---\nmode: subagent\n---\n\nBODY"
//
// When the block exists but is not valid YAML, mode: subagent is prepended
// to it verbatim.
func OpenCodeAgent(content, fileName string) (string, error) {
	doc := frontmatter.Split(content)

	switch {
	case doc.Parsed:
		meta, _ := universalMeta(doc)
		meta.Mode = subagentMode
		return formatAgent(meta, doc.Body, fileName)
	case doc.HasBlock:
		if strings.Contains(doc.Block, "mode: "+subagentMode) {
			return content, nil
		}
		return "---\nmode: " + subagentMode + "\n" + doc.Block + "\n---\n" + doc.Rest, nil
	default:
		return "---\nmode: " + subagentMode + "\n---\n\n" + content, nil
	}
}

func formatAgent(meta agentMeta, body, fileName string) (string, error) {
	out, err := frontmatter.Format(meta, strings.TrimSpace(body))
	if err != nil {
		return "", errors.Wrapf(err, "formatting agent %s", fileName)
	}
	return out, nil
}
