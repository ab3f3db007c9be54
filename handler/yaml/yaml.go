package yaml

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/0xalexb/hjarta-conf/fetcher/file"
	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/goccy/go-yaml"
)

//nolint:gochecknoglobals // compiled once.
var positionPattern = regexp.MustCompile(`^\[(\d+):\d+\]`)

// Handler reads and writes YAML files.
type Handler struct{}

// NewHandler creates a YAML handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Extensions implements handler.Handler.
func (h *Handler) Extensions() []string {
	return []string{"yaml", "yml"}
}

// CanWrite implements handler.Handler.
func (h *Handler) CanWrite() bool {
	return true
}

// Parse implements handler.Handler. An empty document yields an empty mapping.
func (h *Handler) Parse(path string) (tree.Value, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, path)
}

// Decode converts YAML bytes into a tree. source names the input in errors.
func Decode(data []byte, source string) (tree.Value, error) {
	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return nil, parseError(err, source)
	}

	if decoded == nil {
		return tree.NewMapping(), nil
	}

	value, err := fromYAML(decoded)
	if err != nil {
		return nil, &handler.ParseError{Message: err.Error(), Code: handler.CodeType, File: source, Err: err}
	}

	return value, nil
}

// Write implements handler.Handler.
func (h *Handler) Write(value tree.Value, path string) error {
	data, err := Encode(value)
	if err != nil {
		return &handler.WriteError{Message: err.Error(), Code: handler.CodeEncode, File: path, Err: err}
	}

	return handler.WriteFile(path, data)
}

// Encode renders a tree as YAML, keeping mapping order.
func Encode(value tree.Value) ([]byte, error) {
	doc, err := toYAML(value)
	if err != nil {
		return nil, err
	}

	data, err := yaml.MarshalWithOptions(doc, yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

func fromYAML(v any) (tree.Value, error) {
	switch val := v.(type) {
	case yaml.MapSlice:
		mapping := tree.NewMapping()

		for _, item := range val {
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}

			mapping.Set(keyString(item.Key), child)
		}

		return mapping, nil
	case []any:
		seq := make(tree.Sequence, 0, len(val))

		for _, item := range val {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}

			seq = append(seq, child)
		}

		return seq, nil
	case time.Time:
		return tree.String(val.Format(time.RFC3339Nano)), nil
	default:
		return tree.FromAny(val)
	}
}

func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case nil:
		return ""
	default:
		return fmt.Sprint(k)
	}
}

func toYAML(value tree.Value) (any, error) {
	switch v := value.(type) {
	case *tree.Mapping:
		out := make(yaml.MapSlice, 0, v.Len())

		var err error

		v.Range(func(key string, item tree.Value) bool {
			if strings.ContainsAny(key, "\r\n") {
				err = fmt.Errorf("%w: %q", ErrMultilineKey, key)

				return false
			}

			var child any

			child, err = toYAML(item)
			if err != nil {
				return false
			}

			out = append(out, yaml.MapItem{Key: key, Value: child})

			return true
		})

		if err != nil {
			return nil, err
		}

		return out, nil
	case tree.Sequence:
		out := make([]any, len(v))

		for i, item := range v {
			child, err := toYAML(item)
			if err != nil {
				return nil, err
			}

			out[i] = child
		}

		return out, nil
	case tree.Scalar:
		return v.Interface(), nil
	default:
		return nil, nil
	}
}

func parseError(err error, source string) *handler.ParseError {
	parseErr := &handler.ParseError{
		Message: err.Error(),
		Code:    handler.CodeSyntax,
		File:    source,
		Err:     err,
	}

	if m := positionPattern.FindStringSubmatch(err.Error()); m != nil {
		parseErr.Line, _ = strconv.Atoi(m[1])
	}

	return parseErr
}
