// Package migrate moves configuration artifacts from a Claude-style source
// tree into the layouts of the registered tools.
//
// There is one [Migrator] per configuration type. Each is built with a
// source path, the target tools, [Options] and a [tool.Registry], and its
// Migrate method visits the tools in order. For every tool it resolves the
// target path, dispatches on the tool's [tool.TypeConfig] (named transform,
// output format, merge flags) and folds the outcome into [Stats]. A tool
// that fails as a whole is recorded as one error tagged "<tool>:<type>"
// and the remaining tools still run.
//
// [Engine] ties the migrators together: it resolves the source of each
// type under a source directory, filters tools that cannot take part, and
// returns a [Report].
package migrate
