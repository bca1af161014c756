package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUProject(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestReadProjectAssociation_DirectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeUProject(t, dir, "MyGame.uproject",
		`{"FileVersion": 3, "EngineAssociation": "{GUID-1}", "Category": ""}`)

	assoc, warnings := ReadProjectAssociation(DefaultHost(), path)
	require.NotNil(t, assoc)
	assert.Empty(t, warnings)
	assert.Equal(t, "{GUID-1}", assoc.GUID)
	assert.Equal(t, "{GUID-1}", assoc.Name)
}

func TestReadProjectAssociation_ProjectDirectory(t *testing.T) {
	dir := t.TempDir()
	writeUProject(t, dir, "MyGame.uproject", `{"EngineAssociation": "5.3"}`)

	assoc, warnings := ReadProjectAssociation(DefaultHost(), dir)
	require.NotNil(t, assoc)
	assert.Empty(t, warnings)
	assert.Equal(t, "5.3", assoc.GUID)
}

func TestReadProjectAssociation_DirectoryWithoutDescriptor(t *testing.T) {
	dir := t.TempDir()

	assoc, warnings := ReadProjectAssociation(DefaultHost(), dir)
	assert.Nil(t, assoc)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], ".uproject")
}

func TestReadProjectAssociation_NotAProjectPath(t *testing.T) {
	dir := t.TempDir()
	other := writeUProject(t, dir, "notes.txt", "hello")

	assoc, warnings := ReadProjectAssociation(DefaultHost(), other)
	assert.Nil(t, assoc)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "neither a project directory")
}

func TestReadProjectAssociation_MissingAssociationField(t *testing.T) {
	dir := t.TempDir()
	path := writeUProject(t, dir, "MyGame.uproject", `{"FileVersion": 3}`)

	assoc, warnings := ReadProjectAssociation(DefaultHost(), path)
	assert.Nil(t, assoc)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no EngineAssociation")
}

func TestReadProjectAssociation_MalformedDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := writeUProject(t, dir, "MyGame.uproject", "{broken")

	assoc, warnings := ReadProjectAssociation(DefaultHost(), path)
	assert.Nil(t, assoc)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "could not parse")
}

func TestReadProjectAssociation_MissingPathIsWarning(t *testing.T) {
	assoc, warnings := ReadProjectAssociation(DefaultHost(), "/no/such/place")
	assert.Nil(t, assoc)
	assert.Len(t, warnings, 1)
}
