// Package conf loads configuration from files in several formats and merges them
// into one tree.
//
// A path specification lists files and directories in load order. Each file is
// parsed by the handler registered for its extension (see DefaultRegistry) and
// folded into the result with tree.Merge, so later files override earlier ones,
// mappings merge key by key and sequences are appended:
//
//	cfg, err := conf.Load("config/", "?config/local.yaml")
//	if err != nil {
//	    return err
//	}
//	host := cfg.String("database.host", "localhost")
//
// A leading "?" marks an optional path: it is skipped when it does not exist.
// Directories expand to the files inside them whose names contain a dot. Files
// named like "config.json.dist" are read by the handler for "json".
//
// The merged tree can be written to any format whose handler supports writing:
//
//	err = cfg.Save("merged.yaml")
//
// Error Handling:
//   - errors.Is(err, conf.ErrFileNotFound) for a missing required path
//   - errors.Is(err, conf.ErrEmptyDirectory) for a directory without candidates
//   - errors.Is(err, conf.ErrUnsupportedFormat) when no handler fits
//   - errors.As(err, &parseErr) with *conf.ParseError or *conf.WriteError for
//     format failures
//
// Module and NewApp integrate loading with go.uber.org/fx.
package conf
