package handler_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	name       string
	extensions []string
	canWrite   bool
}

func (f *fakeHandler) Parse(_ string) (tree.Value, error) {
	m := tree.NewMapping()
	m.Set("handler", tree.String(f.name))

	return m, nil
}

func (f *fakeHandler) Write(_ tree.Value, _ string) error {
	if !f.canWrite {
		return handler.ReadOnly{}.Write(nil, "")
	}

	return nil
}

func (f *fakeHandler) CanWrite() bool {
	return f.canWrite
}

func (f *fakeHandler) Extensions() []string {
	return f.extensions
}

func TestExtension(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path string
		want string
	}{
		{"config.json", "json"},
		{"/etc/app/config.yaml", "yaml"},
		{"config.json.dist", "json"},
		{"app.local.ini", "ini"},
		{"config.dist", "config"},
		{"config", ""},
		{"dir.d/config", ""},
		{"config.", ""},
		{".json", "json"},
		{"CONFIG.JSON", "JSON"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, handler.Extension(tc.path))
		})
	}
}

func TestRegistry_For(t *testing.T) {
	t.Parallel()

	first := &fakeHandler{name: "first", extensions: []string{"json"}}
	second := &fakeHandler{name: "second", extensions: []string{"json", "js"}, canWrite: true}
	xml := &fakeHandler{name: "xml", extensions: []string{"xml"}}

	registry := handler.NewRegistry(first, nil, second, xml)

	testCases := []struct {
		name         string
		extension    string
		requireWrite bool
		want         handler.Handler
	}{
		{"first registered wins", "json", false, first},
		{"write filter skips read-only", "json", true, second},
		{"second extension", "js", false, second},
		{"read-only handler parses", "xml", false, xml},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := registry.For(tc.extension, tc.requireWrite)
			require.NoError(t, err)
			assert.Same(t, tc.want, got)
		})
	}
}

func TestRegistry_For_Unsupported(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry(
		&fakeHandler{name: "json", extensions: []string{"json"}, canWrite: true},
		&fakeHandler{name: "xml", extensions: []string{"xml"}},
	)

	testCases := []struct {
		name         string
		extension    string
		requireWrite bool
		message      string
	}{
		{"unknown extension", "toml", false, `extension "toml"`},
		{"case sensitive", "JSON", false, `extension "JSON"`},
		{"empty extension", "", false, `extension ""`},
		{"no writer", "xml", true, `no writer for extension "xml"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := registry.For(tc.extension, tc.requireWrite)
			require.ErrorIs(t, err, handler.ErrUnsupportedFormat)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry(
		&fakeHandler{extensions: []string{"yaml", "yml"}},
		&fakeHandler{extensions: []string{"json", "yml"}},
	)

	assert.Equal(t, []string{"yaml", "yml", "json"}, registry.Extensions())
}

func TestReadOnly(t *testing.T) {
	t.Parallel()

	var ro handler.ReadOnly

	assert.False(t, ro.CanWrite())

	err := ro.Write(tree.NewMapping(), "out.xml")
	require.ErrorIs(t, err, handler.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "out.xml")
}

func TestParseError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected token")

	withLine := &handler.ParseError{Message: "unexpected token", Code: handler.CodeSyntax, File: "a.json", Line: 3, Err: cause}
	assert.Equal(t, "parse error in a.json at line 3: unexpected token", withLine.Error())
	require.ErrorIs(t, withLine, cause)

	withoutLine := &handler.ParseError{Message: "bad", File: "a.ini"}
	assert.Equal(t, "parse error in a.ini: bad", withoutLine.Error())
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")

	err := &handler.WriteError{Message: "writing file", Code: handler.CodeIO, File: "out.json", Err: cause}
	assert.Equal(t, "write error in out.json: writing file: disk full", err.Error())
	require.ErrorIs(t, err, cause)

	var target *handler.WriteError
	require.ErrorAs(t, error(err), &target)
	assert.Equal(t, handler.CodeIO, target.Code)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, handler.WriteFile(path, []byte("{}\n")))
	require.NoError(t, handler.WriteFile(path, []byte(`{"a": 1}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := handler.WriteFile(path, []byte("{}"))

	var writeErr *handler.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, handler.CodeIO, writeErr.Code)
	assert.Equal(t, path, writeErr.File)
}
