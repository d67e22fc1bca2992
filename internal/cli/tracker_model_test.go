package cli

import (
	"testing"

	"github.com/rcastellanos/malla/internal/domain"
	"github.com/rcastellanos/malla/internal/planfile"
	"github.com/rcastellanos/malla/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedTracker(t *testing.T) (*teatest.Driver, *planfile.Store) {
	t.Helper()
	app, store := testApp(t)
	d := teatest.New(t, newTrackerModel(app, "cda"))
	return d, store
}

func tracker(d *teatest.Driver) trackerModel {
	return d.Model.(trackerModel)
}

func TestTracker_LoadsBundles(t *testing.T) {
	d, _ := loadedTracker(t)

	m := tracker(d)
	require.Len(t, m.bundles, 2)
	assert.Equal(t, []string{"COM-11101"}, m.bundles[0].Codes())
	assert.Equal(t, []string{"MAT-14100"}, m.bundles[1].Codes())
}

func TestTracker_CursorNavigation(t *testing.T) {
	d, _ := loadedTracker(t)

	d.PressKey('j')
	assert.Equal(t, 1, tracker(d).cursor)

	// Cursor stops at the last bundle.
	d.PressDown()
	assert.Equal(t, 1, tracker(d).cursor)

	d.PressKey('k')
	assert.Equal(t, 0, tracker(d).cursor)

	d.PressUp()
	assert.Equal(t, 0, tracker(d).cursor)
}

func TestTracker_CompleteSelectedBundle(t *testing.T) {
	d, store := loadedTracker(t)

	d.PressKey('c')

	assert.Equal(t, domain.StatusCompleted, courseStatus(t, store, "cda", "COM-11101"))

	// The reload drops the completed course from the available list.
	m := tracker(d)
	require.Len(t, m.bundles, 1)
	assert.Equal(t, []string{"MAT-14100"}, m.bundles[0].Codes())
}

func TestTracker_StartKeepsBundleListed(t *testing.T) {
	d, store := loadedTracker(t)

	d.PressKey('s')

	assert.Equal(t, domain.StatusInProgress, courseStatus(t, store, "cda", "COM-11101"))
	assert.Len(t, tracker(d).bundles, 2)
}

func TestTracker_ResetAllNeedsConfirmation(t *testing.T) {
	d, store := loadedTracker(t)
	d.PressKey('c')

	d.PressKey('R')
	assert.True(t, tracker(d).confirmReset)

	// Anything but yes aborts.
	d.PressKey('n')
	assert.False(t, tracker(d).confirmReset)
	assert.Equal(t, domain.StatusCompleted, courseStatus(t, store, "cda", "COM-11101"))

	d.PressKey('R')
	d.PressKey('s')
	assert.Equal(t, domain.StatusNotStarted, courseStatus(t, store, "cda", "COM-11101"))
}

func TestTracker_SemesterToggle(t *testing.T) {
	d, _ := loadedTracker(t)

	d.PressKey('t')
	assert.True(t, tracker(d).showSemesters)
	assert.Contains(t, d.View(), "Semestre 1")

	d.PressKey('t')
	assert.False(t, tracker(d).showSemesters)
}

func TestTracker_Quit(t *testing.T) {
	d, _ := loadedTracker(t)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestTracker_ViewShowsBundles(t *testing.T) {
	d, _ := loadedTracker(t)

	view := d.View()

	assert.Contains(t, view, "cda")
	assert.Contains(t, view, "COM-11101")
	assert.Contains(t, view, "MAT-14100")
	assert.Contains(t, view, "créditos")
}
