// Package file reads configuration files from the filesystem for format handlers.
//
// A Fetcher reads its file once, at construction, and hands out copies of the
// contents afterwards. Directories and other non-regular files are rejected so a
// handler never tries to decode a directory picked up by a directory glob.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.json")()
//	if err != nil {
//	    // missing file, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Read combines both steps for callers that do not keep the Fetcher around.
//
// Error Handling:
//   - Errors include the path for easier debugging
//   - errors.Is(err, file.ErrPathIsDirectory) detects directories
//   - errors.Is(err, fs.ErrNotExist) detects missing files
package file
