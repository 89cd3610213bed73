package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct{}

func (testApp) GetAurora() aurora.Aurora { return aurora.NewAurora(false) }

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
}

func scratchDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "input", "scenarios", "graphs.yml"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "output"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "plots"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0755))
	writeFile(t, filepath.Join(dir, "log_main.txt"))
	writeFile(t, filepath.Join(dir, "a.pickle"))
	writeFile(t, filepath.Join(dir, "b.pickle"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	return dir
}

func Test_Run_RemovesAllTargets(t *testing.T) {
	dir := scratchDir(t)

	err := Run(testApp{}, dir)
	require.NoError(t, err)

	for _, name := range []string{"input", "output", "plots", "logs", "log_main.txt", "a.pickle", "b.pickle"} {
		assert.NoFileExists(t, filepath.Join(dir, name))
		assert.NoDirExists(t, filepath.Join(dir, name))
	}
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func Test_Run_EmptyDir_NoError(t *testing.T) {
	dir := t.TempDir()

	err := Run(testApp{}, dir)
	assert.NoError(t, err)
}

func Test_Run_Idempotent(t *testing.T) {
	dir := scratchDir(t)

	require.NoError(t, Run(testApp{}, dir))
	require.NoError(t, Run(testApp{}, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].Name())
}

func Test_Run_PickleGroupAlone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pickle"))
	writeFile(t, filepath.Join(dir, "b.pickle"))

	err := Run(testApp{}, dir)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "a.pickle"))
	assert.NoFileExists(t, filepath.Join(dir, "b.pickle"))
}

func Test_Run_FirstGroupFailure_DoesNotBlockPickleGroup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pickle"))

	orig := Groups
	Groups = []Group{
		{Name: "runs", Patterns: []string{"["}},
		orig[1],
	}
	defer func() { Groups = orig }()

	err := Run(testApp{}, dir)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "a.pickle"))
}

func Test_Clean_InvalidPattern_ReportsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "log_main.txt"))

	g := Group{Name: "runs", Patterns: []string{"[", "log*"}}

	err := g.Clean(testApp{}, dir)
	require.Error(t, err)
	// the bad pattern does not stop the remaining patterns of the group
	assert.NoFileExists(t, filepath.Join(dir, "log_main.txt"))
}

func Test_Clean_LogGlob_MatchesDirsAndFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logs", "treewidth.log"))
	writeFile(t, filepath.Join(dir, "log_run_1"))
	writeFile(t, filepath.Join(dir, "backlog.txt"))

	err := Groups[0].Clean(testApp{}, dir)
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(dir, "logs"))
	assert.NoFileExists(t, filepath.Join(dir, "log_run_1"))
	assert.FileExists(t, filepath.Join(dir, "backlog.txt"))
}

func Test_Clean_KeepsUnrelatedDotfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"))
	writeFile(t, filepath.Join(dir, "a.pickle"))

	err := Run(testApp{}, dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".env"))
	assert.NoFileExists(t, filepath.Join(dir, "a.pickle"))
}
