// Package paths resolves the file system locations ai-sync reads and
// writes: home expansion for tool targets, project-scope substitution, the
// XDG config directory for the ai-sync config file, and the well-known
// source locations inside a Claude-style source tree.
//
// # Home and Project Scope
//
// Tool targets are written home-relative ("~/.cursor/commands"). For a
// global run [ExpandHome] replaces the leading "~" with the user's home
// directory; for a project run [ProjectPath] replaces it with the project
// directory instead:
//
//	paths.ExpandHome("~/.gemini/GEMINI.md")               // /home/me/.gemini/GEMINI.md
//	paths.ProjectPath("~/.gemini/GEMINI.md", "/src/app")  // /src/app/.gemini/GEMINI.md
//
// # XDG Base Directory Compliance
//
// The user config directory is resolved through github.com/adrg/xdg so it
// follows XDG conventions on Linux and the native locations elsewhere.
package paths
