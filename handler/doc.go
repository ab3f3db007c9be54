// Package handler defines the contract between the loader and the per-format
// translators, and the registry that picks a translator for a file.
//
// A Handler turns the bytes of a file into a tree.Value and, if it supports
// writing, a tree.Value back into a file. Handlers are stateless; one value can
// serve any number of files.
//
// The Registry is an ordered list of handlers. For looks up the first handler
// claiming an extension, optionally only among handlers that can write:
//
//	registry := handler.NewRegistry(json.NewHandler(), yaml.NewHandler())
//	h, err := registry.For(handler.Extension("config.json.dist"), false) // json
//
// Read-only handlers embed ReadOnly to get the refusing Write and CanWrite.
package handler
