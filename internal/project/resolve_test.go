package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/microsoft/typescript-go/shim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveForFileMissingConfig(t *testing.T) {
	cache := NewCache()
	configPath := filepath.Join(t.TempDir(), "tsconfig.json")

	program, err := ResolveForFile(cache, "/some/file.ts", []string{configPath})

	assert.Nil(t, program)
	var notFound *ProjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, configPath, notFound.ConfigPath)
	assert.Equal(t, 0, cache.Len())
}

func TestResolveForFileDirectoryConfig(t *testing.T) {
	cache := NewCache()
	dir := t.TempDir()

	program, err := ResolveForFile(cache, "/some/file.ts", []string{dir})

	assert.Nil(t, program)
	var readFailure *ProjectReadFailureError
	require.ErrorAs(t, err, &readFailure)
	assert.Equal(t, dir, readFailure.ConfigPath)
	assert.Equal(t, 0, cache.Len())
}

func TestResolveForFileMalformedConfig(t *testing.T) {
	cache := NewCache()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsconfig.json")
	writeFile(t, configPath, "this is not a tsconfig")

	program, err := ResolveForFile(cache, "/some/file.ts", []string{configPath})

	assert.Nil(t, program)
	var malformed *ProjectMalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, configPath, malformed.ConfigPath)
	assert.NotEmpty(t, malformed.Diagnostics)
	assert.Equal(t, 0, cache.Len())
}

func TestResolveForFileFindsProgram(t *testing.T) {
	cache := NewCache()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsconfig.json")
	sourcePath := filepath.Join(dir, "index.ts")
	writeFile(t, configPath, `{"compilerOptions": {"strict": true}, "files": ["index.ts"]}`)
	writeFile(t, sourcePath, "export const answer = 42;\n")

	program, err := ResolveForFile(cache, sourcePath, []string{configPath})

	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Equal(t, 1, cache.Len())

	again, err := ResolveForFile(cache, sourcePath, []string{configPath})
	require.NoError(t, err)
	assert.Same(t, program, again)
}

func TestResolveForFileNoMatchingProject(t *testing.T) {
	cache := NewCache()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsconfig.json")
	writeFile(t, configPath, `{"files": ["a.ts"]}`)
	writeFile(t, filepath.Join(dir, "a.ts"), "export {};\n")

	program, err := ResolveForFile(cache, filepath.Join(dir, "b.ts"), []string{configPath})

	assert.NoError(t, err)
	assert.Nil(t, program)
}

func TestResolveForFileConfigChangeInvalidates(t *testing.T) {
	cache := NewCache()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsconfig.json")
	sourcePath := filepath.Join(dir, "index.ts")
	otherPath := filepath.Join(dir, "other.ts")
	writeFile(t, sourcePath, "export const a = 1;\n")
	writeFile(t, otherPath, "export const b = 2;\n")
	writeFile(t, configPath, `{"files": ["index.ts"]}`)

	first, err := ResolveForFile(cache, sourcePath, []string{configPath})
	require.NoError(t, err)
	require.NotNil(t, first)

	writeFile(t, configPath, `{"files": ["index.ts", "other.ts"]}`)

	second, err := ResolveForFile(cache, otherPath, []string{configPath})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestParseIsolated(t *testing.T) {
	sourceFile := ParseIsolated("input.ts", "const x = 1;\n", false, core.ScriptTargetESNext)

	require.NotNil(t, sourceFile)
	assert.Equal(t, "const x = 1;\n", sourceFile.Text)
	assert.NotEmpty(t, sourceFile.Statements.Nodes)
}

func TestParseIsolatedJSXRewritesExtension(t *testing.T) {
	sourceFile := ParseIsolated("input.ts", "const el = <div />;\n", true, core.ScriptTargetESNext)

	require.NotNil(t, sourceFile)
	assert.Equal(t, "/input.tsx", sourceFile.FileName())
	assert.Empty(t, sourceFile.Diagnostics())
}
