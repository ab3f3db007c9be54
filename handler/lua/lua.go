// Package lua implements the read-only native configuration handler: a Lua chunk
// that returns a table.
//
//	-- config.lua
//	local env = "prod"
//	return {
//	    host = "api." .. env .. ".example.com",
//	    ports = { 80, 443 },
//	}
//
// The chunk may also return a function, which is called without arguments and must
// return the table. Chunks run in a fresh github.com/yuin/gopher-lua state with only
// the base, table, string and math libraries; file loading functions are removed.
//
// Tables with keys 1..n and nothing else become sequences, every other table a
// mapping with keys sorted (numeric keys first). Integral numbers become int64.
package lua

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/0xalexb/hjarta-conf/fetcher/file"
	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"

	lua "github.com/yuin/gopher-lua"
)

var (
	errNotTable    = errors.New("chunk must return a table")
	errCircular    = errors.New("circular table reference")
	errUnsupported = errors.New("unsupported value")
)

//nolint:gochecknoglobals // compiled once.
var linePattern = regexp.MustCompile(`(?:line:|:)(\d+)[(:]`)

// Globals removed from the base library: they load code from files or strings.
//
//nolint:gochecknoglobals // fixed list.
var removedGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require"}

// Handler reads Lua configuration files. Writing is not supported.
type Handler struct {
	handler.ReadOnly
}

// NewHandler creates a Lua handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Extensions implements handler.Handler.
func (h *Handler) Extensions() []string {
	return []string{"lua"}
}

// Parse implements handler.Handler.
func (h *Handler) Parse(path string) (tree.Value, error) {
	data, err := file.Read(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, path)
}

// Decode runs a Lua chunk and converts the returned table. source names the chunk
// in error messages.
func Decode(data []byte, source string) (tree.Value, error) {
	L := newState()
	defer L.Close()

	fn, err := L.Load(bytes.NewReader(data), source)
	if err != nil {
		return nil, chunkError(err, source)
	}

	result, err := call(L, fn)
	if err != nil {
		return nil, chunkError(err, source)
	}

	if returned, ok := result.(*lua.LFunction); ok {
		result, err = call(L, returned)
		if err != nil {
			return nil, chunkError(err, source)
		}
	}

	table, ok := result.(*lua.LTable)
	if !ok {
		return nil, &handler.ParseError{
			Message: fmt.Sprintf("%s, got %s", errNotTable, result.Type()),
			Code:    handler.CodeType,
			File:    source,
			Err:     errNotTable,
		}
	}

	value, err := tableToTree(table, make(map[*lua.LTable]bool))
	if err != nil {
		return nil, &handler.ParseError{Message: err.Error(), Code: handler.CodeType, File: source, Err: err}
	}

	return value, nil
}

func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	return L
}

func call(L *lua.LState, fn *lua.LFunction) (lua.LValue, error) {
	L.Push(fn)

	err := L.PCall(0, 1, nil)
	if err != nil {
		return nil, err
	}

	result := L.Get(-1)
	L.Pop(1)

	return result, nil
}

func chunkError(err error, source string) *handler.ParseError {
	parseErr := &handler.ParseError{
		Message: err.Error(),
		Code:    handler.CodeRuntime,
		File:    source,
		Err:     err,
	}

	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if apiErr.Type == lua.ApiErrorSyntax {
			parseErr.Code = handler.CodeSyntax
		}

		parseErr.Message = apiErr.Object.String()
	}

	if m := linePattern.FindStringSubmatch(parseErr.Message); m != nil {
		parseErr.Line, _ = strconv.Atoi(m[1])
	}

	return parseErr
}

func toTree(lv lua.LValue, visited map[*lua.LTable]bool) (tree.Value, error) {
	switch v := lv.(type) {
	case *lua.LNilType:
		return tree.Null(), nil
	case lua.LBool:
		return tree.Bool(bool(v)), nil
	case lua.LString:
		return tree.String(string(v)), nil
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return tree.Int(int64(f)), nil
		}

		return tree.Float(f), nil
	case *lua.LTable:
		return tableToTree(v, visited)
	default:
		return nil, fmt.Errorf("%w of type %s", errUnsupported, lv.Type())
	}
}

func tableToTree(t *lua.LTable, visited map[*lua.LTable]bool) (tree.Value, error) {
	if visited[t] {
		return nil, errCircular
	}

	visited[t] = true
	defer delete(visited, t)

	if n := sequenceLength(t); n > 0 {
		seq := make(tree.Sequence, 0, n)

		for i := 1; i <= n; i++ {
			item, err := toTree(t.RawGetInt(i), visited)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			seq = append(seq, item)
		}

		return seq, nil
	}

	var numeric, named []lua.LValue

	t.ForEach(func(k, _ lua.LValue) {
		if _, ok := k.(lua.LNumber); ok {
			numeric = append(numeric, k)
		} else {
			named = append(named, k)
		}
	})

	sort.Slice(numeric, func(i, j int) bool { return numeric[i].(lua.LNumber) < numeric[j].(lua.LNumber) })
	sort.Slice(named, func(i, j int) bool { return named[i].String() < named[j].String() })

	mapping := tree.NewMapping()

	for _, k := range append(numeric, named...) {
		key := k.String()

		item, err := toTree(t.RawGet(k), visited)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		mapping.Set(key, item)
	}

	return mapping, nil
}

// sequenceLength returns n when the table's keys are exactly 1..n, otherwise 0.
func sequenceLength(t *lua.LTable) int {
	count, maxN := 0, 0
	isArray := true

	t.ForEach(func(k, _ lua.LValue) {
		count++

		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) || kn < 1 {
			isArray = false

			return
		}

		maxN = max(maxN, int(kn))
	})

	if !isArray || count != maxN {
		return 0
	}

	return maxN
}
