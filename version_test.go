package conf_test

import (
	"testing"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", conf.Version)
	require.Equal(t, "unknown", conf.CompiledAt)
}
