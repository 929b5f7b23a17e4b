// Package frontmatter splits and formats the YAML frontmatter block found
// at the top of Markdown and MDC files.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end. Both Unix (LF) and Windows (CRLF) line endings are handled, and
// whitespace around the block and after the delimiters is tolerated.
//
// Parsing never fails. [Split] returns a [Document] that is either parsed
// (Meta holds the mapping, Body the content after the block) or a raw
// pass-through (Meta empty, Body the full original content) when the block
// is missing or is not a valid YAML mapping:
//
//	doc := frontmatter.Split(content)
//	if doc.Parsed {
//		title := doc.String("description")
//	}
package frontmatter
