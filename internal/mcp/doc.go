// Package mcp classifies MCP (Model Context Protocol) server entries and
// reshapes a Claude-style server map into the wire formats other tools read.
//
// The source document has the shape
//
//	{"mcpServers": {"<name>": {...entry...}}}
//
// Each entry is classified once by [ParseServer] into a tagged union:
//
//   - [KindLocal]: the entry has a "command" key (command, args, env)
//   - [KindRemote]: the entry has a "url" or "httpUrl" key (url, headers)
//   - [KindUnknown]: neither
//
// The local check runs first, so an entry carrying both "command" and "url"
// is local for every converter. The raw mapping is retained on the
// [Server] for converters that pass entries through.
//
// Converters are pure functions from the parsed source document to the
// target document:
//
//	out := mcp.ToCodex(doc)    // {"mcp_servers": {...}}
//	out := mcp.ToOpenCode(doc) // {"mcp": {...}}
//	out := mcp.ToGemini(doc)   // {"mcpServers": {...}}
//	out := mcp.Passthrough(doc)
package mcp
