package planfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("cda", samplePlan()))

	loaded, err := store.Load("cda")
	require.NoError(t, err)
	assert.Equal(t, samplePlan(), loaded)
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("zeta", samplePlan()))
	require.NoError(t, store.Save("alfa", samplePlan()))
	// Non-plan files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0644))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alfa", "zeta"}, names)
}

func TestStore_ListMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"))

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_LoadMissingPlan(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `plan "nope"`)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "planes")
	store := NewStore(dir)

	require.NoError(t, store.Save("cda", samplePlan()))

	_, err := os.Stat(filepath.Join(dir, "cda.json"))
	assert.NoError(t, err)
}

func TestStore_GraphRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("cda", samplePlan()))

	g, err := store.LoadGraph("cda")
	require.NoError(t, err)
	assert.Equal(t, "cda", g.PlanName)

	g.Complete("MAT-14100")
	require.NoError(t, store.SaveGraph(g))

	again, err := store.LoadGraph("cda")
	require.NoError(t, err)
	c, _ := again.Course("MAT-14100")
	assert.True(t, c.Completed(), "status must survive save/load")
}
