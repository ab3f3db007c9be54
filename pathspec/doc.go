// Package pathspec turns a caller's path specification into the ordered list of
// configuration files to load.
//
// A Spec is an ordered list of entries. Each entry is either Required or Optional:
// a missing required path fails resolution, a missing optional path is skipped.
// Parse builds a Spec from strings, where a leading "?" marks an optional path:
//
//	spec := pathspec.Parse("config/defaults.json", "?config/local.yaml")
//	files, err := pathspec.NewResolver().Resolve(spec)
//
// A directory entry expands to every file directly inside it whose name contains
// a dot, in lexical order. A directory without such files is an error, even when
// the entry is optional.
//
// Error Handling:
//   - errors.Is(err, pathspec.ErrFileNotFound) for a missing required path
//   - errors.Is(err, pathspec.ErrEmptyDirectory) for a directory with no candidates
package pathspec
