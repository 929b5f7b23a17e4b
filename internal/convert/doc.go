// Package convert holds the content converters used during migration:
// Markdown commands to TOML prompts, MDC rule directories to a single
// Markdown file, Markdown rules to MDC, and agent frontmatter reduction.
//
// The converters operate on strings and never fail on malformed
// frontmatter; they fall back to treating the whole file as body.
package convert
