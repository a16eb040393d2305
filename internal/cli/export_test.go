package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/endpointkit/catalog"
)

func TestExportCommand(t *testing.T) {
	t.Setenv("ENDPOINTCTL_FAMILIES_MOVIES_HOST", "staging.example.com")

	out, _, err := run(t, "--config", writeCatalog(t), "export")
	require.NoError(t, err)

	var file catalog.File
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	require.Contains(t, file.Families, "movies")
	assert.Equal(t, "staging.example.com", file.Families["movies"].Host)
	assert.Equal(t, "/top_rated", file.Families["movies"].Endpoints["top_rated"])
	require.NotNil(t, file.Families["local"].Port)
	assert.Equal(t, 8080, *file.Families["local"].Port)
}
