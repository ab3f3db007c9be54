package ini_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-conf/handler"
	inihandler "github.com/0xalexb/hjarta-conf/handler/ini"
	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestHandler_Capabilities(t *testing.T) {
	t.Parallel()

	h := inihandler.NewHandler()

	assert.False(t, h.CanWrite())
	assert.Equal(t, []string{"ini"}, h.Extensions())

	err := h.Write(tree.NewMapping(), filepath.Join(t.TempDir(), "out.ini"))
	require.ErrorIs(t, err, handler.ErrUnsupportedFormat)
}

func TestHandler_Parse(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.ini", `; application settings
host = localhost
port = 80
network.timeout = 30

[application]
name = configuration
secret = "s3cr3t"

[servers]
hosts[] = host1
hosts[] = host2

[db.primary]
host = db1.example.com
pool.size = 10
`)

	value, err := inihandler.NewHandler().Parse(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"host":        "localhost",
		"port":        "80",
		"network":     map[string]any{"timeout": "30"},
		"application": map[string]any{"name": "configuration", "secret": "s3cr3t"},
		"servers":     map[string]any{"hosts": []any{"host1", "host2"}},
		"db": map[string]any{
			"primary": map[string]any{
				"host": "db1.example.com",
				"pool": map[string]any{"size": "10"},
			},
		},
	}, tree.ToAny(value))

	mapping, ok := value.(*tree.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"host", "port", "network", "application", "servers", "db"}, mapping.Keys())
}

func TestHandler_Parse_SectionsShareParent(t *testing.T) {
	t.Parallel()

	value, err := inihandler.Decode([]byte("[db.primary]\nhost = a\n\n[db.replica]\nhost = b\n"), "inline")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"db": map[string]any{
			"primary": map[string]any{"host": "a"},
			"replica": map[string]any{"host": "b"},
		},
	}, tree.ToAny(value))
}

func TestHandler_Parse_Empty(t *testing.T) {
	t.Parallel()

	value, err := inihandler.Decode([]byte(""), "inline")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, tree.ToAny(value))
}

func TestHandler_Parse_SyntaxError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "broken.ini", "[section\nkey = value\n")

	value, err := inihandler.NewHandler().Parse(path)

	assert.Nil(t, value)

	var parseErr *handler.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, handler.CodeSyntax, parseErr.Code)
	assert.Equal(t, path, parseErr.File)
}
