package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "details.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDetails_Bare(t *testing.T) {
	details, err := readDetails(writeFile(t, `{"id": 7, "fname": "Ada", "email": "ada@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", details.FName)
	assert.Equal(t, "7", details.ID.String())
}

func TestReadDetails_RequestBody(t *testing.T) {
	details, err := readDetails(writeFile(t, `{"user_id": 7, "user_details": {"fname": "Ada", "education": [{"school": "MIT"}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", details.FName)
	require.Len(t, details.Education, 1)
}

func TestReadDetails_Errors(t *testing.T) {
	_, err := readDetails(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = readDetails(writeFile(t, `{"fname": `))
	assert.Error(t, err)

	_, err = readDetails(writeFile(t, `{}`))
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"serve-cv", "serve-front", "generate"}, names)
}
