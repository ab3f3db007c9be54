package yaml

import (
	"testing"

	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInto_WholeDocument(t *testing.T) {
	t.Parallel()

	data := []byte(`
name: test-app
version: "1.0"
`)

	var result struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	}

	err := DecodeInto(data, &result, "")

	require.NoError(t, err)
	assert.Equal(t, "test-app", result.Name)
	assert.Equal(t, "1.0", result.Version)
}

func TestDecodeInto_NestedKey(t *testing.T) {
	t.Parallel()

	data := []byte(`
api:
  permissions:
    admin:
      read: true
      write: true
    user:
      read: true
      write: false
`)

	var result struct {
		Read  bool `yaml:"read"`
		Write bool `yaml:"write"`
	}

	err := DecodeInto(data, &result, "api.permissions.user")

	require.NoError(t, err)
	assert.True(t, result.Read)
	assert.False(t, result.Write)
}

func TestDecodeInto_SequenceIndex(t *testing.T) {
	t.Parallel()

	data := []byte(`
servers:
  - host: a.example.com
    port: 80
  - host: b.example.com
    port: 8080
`)

	var port int

	err := DecodeInto(data, &port, "servers.1.port")

	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestDecodeInto_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		key     string
		wantErr error
	}{
		{
			name:    "empty data",
			data:    "",
			key:     "",
			wantErr: ErrEmptyData,
		},
		{
			name:    "missing key",
			data:    "api:\n  host: localhost\n",
			key:     "nonexistent",
			wantErr: ErrPathNotFound,
		},
		{
			name: "invalid yaml",
			data: "invalid: yaml: content: [\n",
			key:  "",
		},
		{
			name: "scalar intermediate",
			data: "api: \"just a string\"\n",
			key:  "api.nested",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var result struct {
				Host string `yaml:"host"`
			}

			err := DecodeInto([]byte(tc.data), &result, tc.key)

			require.Error(t, err)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestDecodeTree(t *testing.T) {
	t.Parallel()

	root := tree.MustFromAny(map[string]any{
		"database": map[string]any{
			"primary": map[string]any{"host": "primary.db.com", "port": 5432},
			"replica": map[string]any{"host": "replica.db.com", "port": 5433},
		},
		"hosts": []any{"host1.example.com", "host2.example.com"},
	})

	var databases map[string]struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}

	require.NoError(t, DecodeTree(root, &databases, "database"))
	assert.Len(t, databases, 2)
	assert.Equal(t, 5433, databases["replica"].Port)

	var hosts []string

	require.NoError(t, DecodeTree(root, &hosts, "hosts"))
	assert.Equal(t, []string{"host1.example.com", "host2.example.com"}, hosts)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "key",
			expected: "$.key",
		},
		{
			name:     "two level path",
			input:    "api.permissions",
			expected: "$.api.permissions",
		},
		{
			name:     "three level path",
			input:    "database.connection.timeout",
			expected: "$.database.connection.timeout",
		},
		{
			name:     "sequence index",
			input:    "servers.1.host",
			expected: "$.servers[1].host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := convertToYAMLPath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
