package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/endpointkit/errors"
)

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd(&app{})

	assert.Equal(t, "list [family]", cmd.Use)
	require.NotEmpty(t, cmd.Aliases)
	assert.Equal(t, "ls", cmd.Aliases[0])
}

func TestListFamilies(t *testing.T) {
	out, _, err := run(t, "--config", writeCatalog(t), "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "FAMILY"))
	assert.Equal(t, []string{"local", "http://localhost:8080"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"movies", "https://api.example.com/api/v2"}, strings.Fields(lines[2]))
}

func TestListRoutes(t *testing.T) {
	out, _, err := run(t, "--config", writeCatalog(t), "ls", "movies")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"most_popular", "/most_popular"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"top_rated", "/top_rated"}, strings.Fields(lines[2]))
}

func TestListUnknownFamily(t *testing.T) {
	_, _, err := run(t, "--config", writeCatalog(t), "list", "tv")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "got %v", err)
}
