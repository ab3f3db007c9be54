// Package xml implements the read-only XML configuration handler.
//
// The root element stands for the whole document; its children become the top-level
// keys. Conversion rules:
//   - an element with only text becomes a string
//   - an element with child elements becomes a mapping keyed by child name
//   - repeated sibling elements with the same name become a sequence
//   - attributes are collected in a mapping under the "@attributes" key, and the
//     text of such an element is kept under "@value"
//   - an empty element becomes an empty mapping
//
// Text between child elements is ignored. All leaf values are strings.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/0xalexb/hjarta-conf/fetcher/file"
	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"
)

// Keys used for element data that has no child-element name.
const (
	AttributesKey = "@attributes"
	ValueKey      = "@value"
)

var (
	errNoRootElement = errors.New("document has no root element")
	errExtraContent  = errors.New("extra content at the end of the document")
)

// Handler reads XML files. Writing is not supported.
type Handler struct {
	handler.ReadOnly
}

// NewHandler creates an XML handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Extensions implements handler.Handler.
func (h *Handler) Extensions() []string {
	return []string{"xml"}
}

// Parse implements handler.Handler.
func (h *Handler) Parse(path string) (tree.Value, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, path)
}

type element struct {
	attrs    []xml.Attr
	text     strings.Builder
	names    []string
	children map[string][]*element
}

func newElement(attrs []xml.Attr) *element {
	return &element{attrs: attrs, children: make(map[string][]*element)}
}

func (e *element) add(name string, child *element) {
	if _, ok := e.children[name]; !ok {
		e.names = append(e.names, name)
	}

	e.children[name] = append(e.children[name], child)
}

// Decode converts XML bytes into a tree. source names the input in errors.
func Decode(data []byte, source string) (tree.Value, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		stack []*element
		root  *element
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, syntaxError(err, source, decoder)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			el := newElement(tok.Attr)

			switch {
			case len(stack) > 0:
				stack[len(stack)-1].add(tok.Name.Local, el)
			case root == nil:
				root = el
			default:
				return nil, extraContentError(source, decoder)
			}

			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(tok)
			} else if root != nil && len(bytes.TrimSpace(tok)) > 0 {
				return nil, extraContentError(source, decoder)
			}
		}
	}

	if root == nil {
		return nil, &handler.ParseError{
			Message: errNoRootElement.Error(),
			Code:    handler.CodeSyntax,
			File:    source,
			Err:     errNoRootElement,
		}
	}

	value := convert(root)
	if _, ok := value.(*tree.Mapping); !ok {
		// A text-only root still produces a mapping document.
		mapping := tree.NewMapping()
		mapping.Set(ValueKey, value)

		return mapping, nil
	}

	return value, nil
}

func convert(el *element) tree.Value {
	text := strings.TrimSpace(el.text.String())

	if len(el.names) == 0 && len(el.attrs) == 0 {
		if text == "" {
			return tree.NewMapping()
		}

		return tree.String(text)
	}

	mapping := tree.NewMapping()

	if len(el.attrs) > 0 {
		attrs := tree.NewMapping()
		for _, attr := range el.attrs {
			attrs.Set(attr.Name.Local, tree.String(attr.Value))
		}

		mapping.Set(AttributesKey, attrs)

		if len(el.names) == 0 && text != "" {
			mapping.Set(ValueKey, tree.String(text))
		}
	}

	for _, name := range el.names {
		children := el.children[name]
		if len(children) == 1 {
			mapping.Set(name, convert(children[0]))

			continue
		}

		seq := make(tree.Sequence, 0, len(children))
		for _, child := range children {
			seq = append(seq, convert(child))
		}

		mapping.Set(name, seq)
	}

	return mapping
}

func extraContentError(source string, decoder *xml.Decoder) *handler.ParseError {
	line, _ := decoder.InputPos()

	return &handler.ParseError{
		Message: errExtraContent.Error(),
		Code:    handler.CodeSyntax,
		File:    source,
		Line:    line,
		Err:     errExtraContent,
	}
}

func syntaxError(err error, source string, decoder *xml.Decoder) *handler.ParseError {
	parseErr := &handler.ParseError{
		Message: err.Error(),
		Code:    handler.CodeSyntax,
		File:    source,
		Err:     err,
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		parseErr.Message = syntaxErr.Msg
		parseErr.Line = syntaxErr.Line
	} else {
		parseErr.Line, _ = decoder.InputPos()
	}

	return parseErr
}
