// Package ini implements the read-only INI configuration handler on top of
// gopkg.in/ini.v1.
//
// Keys before the first section header are top-level keys; every section becomes a
// mapping. Dots in section names and key names nest: [db.primary] host = x yields
// {db: {primary: {host: x}}}. A key ending in "[]" may repeat and collects its
// values into a sequence. Values are kept as strings.
package ini

import (
	"strings"

	"github.com/0xalexb/hjarta-conf/fetcher/file"
	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"

	"gopkg.in/ini.v1"
)

const listSuffix = "[]"

// Handler reads INI files. Writing is not supported.
type Handler struct {
	handler.ReadOnly
}

// NewHandler creates an INI handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Extensions implements handler.Handler.
func (h *Handler) Extensions() []string {
	return []string{"ini"}
}

// Parse implements handler.Handler.
func (h *Handler) Parse(path string) (tree.Value, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, path)
}

// Decode converts INI bytes into a tree. source names the input in errors.
func Decode(data []byte, source string) (tree.Value, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:             true,
		SpaceBeforeInlineComment: true,
	}, data)
	if err != nil {
		return nil, &handler.ParseError{
			Message: err.Error(),
			Code:    handler.CodeSyntax,
			File:    source,
			Err:     err,
		}
	}

	root := tree.NewMapping()

	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			addKeys(root, section)

			continue
		}

		target := tree.NewMapping()
		if existing, ok := tree.Lookup(root, section.Name()); ok {
			if mapping, isMapping := existing.(*tree.Mapping); isMapping {
				target = mapping
			}
		}

		addKeys(target, section)
		tree.SetPath(root, section.Name(), target)
	}

	return root, nil
}

func addKeys(target *tree.Mapping, section *ini.Section) {
	for _, key := range section.Keys() {
		name := key.Name()

		if strings.HasSuffix(name, listSuffix) {
			values := key.ValueWithShadows()
			seq := make(tree.Sequence, 0, len(values))

			for _, v := range values {
				seq = append(seq, tree.String(v))
			}

			tree.SetPath(target, strings.TrimSuffix(name, listSuffix), seq)

			continue
		}

		tree.SetPath(target, name, tree.String(key.Value()))
	}
}
