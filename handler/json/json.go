// Package json implements the JSON configuration handler.
//
// Decoding walks the document with github.com/tidwall/gjson so object keys keep
// their file order. Integral number literals become int64, everything else float64.
// Output is indented with github.com/tidwall/pretty. Floats that happen to be
// integral are written with a ".0" suffix, so a parse → write → parse cycle
// reproduces the tree exactly.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-conf/fetcher/file"
	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Extension is the file extension claimed by the handler.
const Extension = "json"

//nolint:gochecknoglobals // formatting options shared by every write.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: false,
}

// Handler reads and writes JSON files.
type Handler struct{}

// NewHandler creates a JSON handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Extensions implements handler.Handler.
func (h *Handler) Extensions() []string {
	return []string{Extension}
}

// CanWrite implements handler.Handler.
func (h *Handler) CanWrite() bool {
	return true
}

// Parse implements handler.Handler.
func (h *Handler) Parse(path string) (tree.Value, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, path)
}

// Decode converts JSON bytes into a tree. source names the input in errors.
func Decode(data []byte, source string) (tree.Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data, source)
	}

	return fromResult(gjson.ParseBytes(data)), nil
}

// Write implements handler.Handler.
func (h *Handler) Write(value tree.Value, path string) error {
	data, err := Encode(value)
	if err != nil {
		return &handler.WriteError{Message: err.Error(), Code: handler.CodeEncode, File: path, Err: err}
	}

	return handler.WriteFile(path, data)
}

// Encode renders a tree as indented JSON.
func Encode(value tree.Value) ([]byte, error) {
	var buf bytes.Buffer

	err := encode(&buf, value)
	if err != nil {
		return nil, err
	}

	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}

func fromResult(result gjson.Result) tree.Value {
	switch result.Type {
	case gjson.Null:
		return tree.Null()
	case gjson.False:
		return tree.Bool(false)
	case gjson.True:
		return tree.Bool(true)
	case gjson.String:
		return tree.String(result.Str)
	case gjson.Number:
		if i, err := strconv.ParseInt(result.Raw, 10, 64); err == nil {
			return tree.Int(i)
		}

		return tree.Float(result.Num)
	case gjson.JSON:
		if result.IsArray() {
			seq := tree.Sequence{}

			result.ForEach(func(_, item gjson.Result) bool {
				seq = append(seq, fromResult(item))

				return true
			})

			return seq
		}

		mapping := tree.NewMapping()

		result.ForEach(func(key, item gjson.Result) bool {
			mapping.Set(key.String(), fromResult(item))

			return true
		})

		return mapping
	}

	return tree.Null()
}

func syntaxError(data []byte, source string) error {
	var decoded any

	err := json.Unmarshal(data, &decoded)
	if err == nil {
		err = errors.New("invalid JSON document")
	}

	parseErr := &handler.ParseError{
		Message: err.Error(),
		Code:    handler.CodeSyntax,
		File:    source,
		Err:     err,
	}

	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		offset := min(int(jsonErr.Offset), len(data))
		parseErr.Line = 1 + bytes.Count(data[:offset], []byte("\n"))
	}

	return parseErr
}

func encode(buf *bytes.Buffer, value tree.Value) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case tree.Scalar:
		return encodeScalar(buf, v)
	case tree.Sequence:
		buf.WriteByte('[')

		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := encode(buf, item)
			if err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

		buf.WriteByte(']')
	case *tree.Mapping:
		buf.WriteByte('{')

		var err error

		first := true

		v.Range(func(key string, item tree.Value) bool {
			if !first {
				buf.WriteByte(',')
			}

			first = false

			writeString(buf, key)
			buf.WriteByte(':')

			err = encode(buf, item)
			if err != nil {
				err = fmt.Errorf("key %q: %w", key, err)

				return false
			}

			return true
		})

		if err != nil {
			return err
		}

		buf.WriteByte('}')
	}

	return nil
}

func encodeScalar(buf *bytes.Buffer, scalar tree.Scalar) error {
	switch v := scalar.Interface().(type) {
	case nil:
		buf.WriteString("null")
	case string:
		writeString(buf, v)
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("unsupported float value %v", v)
		}

		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding float: %w", err)
		}

		buf.Write(out)

		if !strings.ContainsAny(string(out), ".eE") {
			buf.WriteString(".0")
		}
	}

	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	out, _ := json.Marshal(s) //nolint:errchkjson // strings always marshal
	buf.Write(out)
}
