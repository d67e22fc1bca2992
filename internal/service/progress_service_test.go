package service

import (
	"context"
	"testing"

	"github.com/rcastellanos/malla/internal/domain"
	"github.com/rcastellanos/malla/internal/planfile"
	"github.com/rcastellanos/malla/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgress(t *testing.T) (ProgressService, PlanService) {
	t.Helper()
	store := planfile.NewStore(t.TempDir())
	require.NoError(t, store.Save("cda", testutil.SamplePlan()))
	plans := NewPlanService(store)
	uow := testutil.NewTestUoW(testutil.NewTestDB(t))
	return NewProgressService(plans, uow), plans
}

func availableCodes(t *testing.T, progress ProgressService, plan string) [][]string {
	t.Helper()
	bundles, err := progress.Available(context.Background(), plan)
	require.NoError(t, err)
	out := make([][]string, len(bundles))
	for i, b := range bundles {
		out[i] = b.Codes()
	}
	return out
}

func TestProgress_AvailableInitialState(t *testing.T) {
	progress, _ := newTestProgress(t)

	got := availableCodes(t, progress, "cda")

	// Física I + Lab are blocked by Cálculo I; Cálculo II likewise.
	assert.Equal(t, [][]string{{"COM-11101"}, {"MAT-14100"}}, got)
}

func TestProgress_CompleteUnlocksDependents(t *testing.T) {
	progress, _ := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"MAT-14100"}))

	got := availableCodes(t, progress, "cda")
	assert.Equal(t, [][]string{{"COM-11101"}, {"FIS-11010", "FIS-11011"}, {"MAT-14210"}}, got)
}

func TestProgress_MutationPersistsToPlanFile(t *testing.T) {
	progress, plans := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.StartCourses(ctx, "cda", []string{"COM-11101"}))

	g, err := plans.LoadGraph(ctx, "cda")
	require.NoError(t, err)
	c, _ := g.Course("COM-11101")
	assert.Equal(t, domain.StatusInProgress, c.Status)
}

func TestProgress_JournalRecordsTransitions(t *testing.T) {
	progress, _ := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.StartCourses(ctx, "cda", []string{"COM-11101"}))
	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"COM-11101"}))

	entries, err := progress.CourseHistory(ctx, "cda", "COM-11101")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StatusNotStarted, entries[0].FromStatus)
	assert.Equal(t, domain.StatusInProgress, entries[0].ToStatus)
	assert.Equal(t, domain.StatusInProgress, entries[1].FromStatus)
	assert.Equal(t, domain.StatusCompleted, entries[1].ToStatus)
}

func TestProgress_NoOpTransitionsAreNotJournaled(t *testing.T) {
	progress, _ := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"COM-11101"}))
	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"COM-11101"}))

	entries, err := progress.History(ctx, "cda")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "repeated complete must not add a second entry")
}

func TestProgress_UnknownCodesIgnored(t *testing.T) {
	progress, _ := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"GHOST"}))

	entries, err := progress.History(ctx, "cda")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProgress_StartBundleTogether(t *testing.T) {
	progress, plans := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"MAT-14100"}))
	require.NoError(t, progress.StartCourses(ctx, "cda", []string{"FIS-11010", "FIS-11011"}))

	g, err := plans.LoadGraph(ctx, "cda")
	require.NoError(t, err)
	fis, _ := g.Course("FIS-11010")
	lab, _ := g.Course("FIS-11011")
	assert.True(t, fis.InProgress())
	assert.True(t, lab.InProgress())

	// In-progress members keep the bundle available.
	got := availableCodes(t, progress, "cda")
	assert.Contains(t, got, []string{"FIS-11010", "FIS-11011"})
}

func TestProgress_ResetAll(t *testing.T) {
	progress, plans := newTestProgress(t)
	ctx := context.Background()

	require.NoError(t, progress.CompleteCourses(ctx, "cda", []string{"MAT-14100", "COM-11101"}))
	require.NoError(t, progress.ResetAll(ctx, "cda"))

	g, err := plans.LoadGraph(ctx, "cda")
	require.NoError(t, err)
	for _, c := range g.Courses() {
		assert.Equal(t, domain.StatusNotStarted, c.Status, "course %s", c.Code)
	}

	entries, err := progress.History(ctx, "cda")
	require.NoError(t, err)
	assert.Len(t, entries, 4, "two completes plus two resets")
}

func TestProgress_MissingPlanSurfacesError(t *testing.T) {
	progress, _ := newTestProgress(t)

	err := progress.CompleteCourses(context.Background(), "nope", []string{"A"})
	assert.Error(t, err)
}
