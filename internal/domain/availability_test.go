package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleGraph builds the canonical scenario: A free, B behind A,
// C and D mutual corequisites with no prerequisites.
func exampleGraph() *Graph {
	g := NewGraph("ejemplo")
	g.Add("A", "Álgebra", 8, StatusNotStarted, intPtr(1))
	g.Add("B", "Bases de Datos", 6, StatusNotStarted, intPtr(2))
	g.Add("C", "Circuitos", 6, StatusNotStarted, intPtr(1))
	g.Add("D", "Dispositivos", 6, StatusNotStarted, intPtr(1))
	g.LinkPrereq("B", "A")
	g.LinkCoreq("C", "D")
	return g
}

func bundleCodes(bundles []Bundle) [][]string {
	out := make([][]string, len(bundles))
	for i, b := range bundles {
		out[i] = b.Codes()
	}
	return out
}

func TestCoreqComponents_SingletonsAndPairs(t *testing.T) {
	g := exampleGraph()

	comps := g.CoreqComponents()

	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C", "D"}}, bundleCodes(comps))
}

func TestCoreqComponents_TransitiveChain(t *testing.T) {
	g := NewGraph("test")
	g.Add("X", "X", 6, StatusNotStarted, nil)
	g.Add("Y", "Y", 6, StatusNotStarted, nil)
	g.Add("Z", "Z", 6, StatusNotStarted, nil)
	g.LinkCoreq("X", "Y")
	g.LinkCoreq("Y", "Z")

	comps := g.CoreqComponents()

	require.Len(t, comps, 1)
	assert.Equal(t, []string{"X", "Y", "Z"}, comps[0].Codes())
}

func TestCoreqComponents_CyclicChainTerminates(t *testing.T) {
	g := NewGraph("test")
	g.Add("X", "X", 6, StatusNotStarted, nil)
	g.Add("Y", "Y", 6, StatusNotStarted, nil)
	g.Add("Z", "Z", 6, StatusNotStarted, nil)
	g.LinkCoreq("X", "Y")
	g.LinkCoreq("Y", "Z")
	g.LinkCoreq("Z", "X")

	comps := g.CoreqComponents()

	require.Len(t, comps, 1)
	assert.Equal(t, []string{"X", "Y", "Z"}, comps[0].Codes())
}

func TestCoreqComponents_SelfReference(t *testing.T) {
	g := NewGraph("test")
	g.Add("X", "X", 6, StatusNotStarted, nil)
	g.LinkCoreq("X", "X")

	comps := g.CoreqComponents()

	require.Len(t, comps, 1)
	assert.Equal(t, []string{"X"}, comps[0].Codes())
}

func TestAvailableBundles_InitialState(t *testing.T) {
	g := exampleGraph()

	got := g.AvailableBundles()

	// B is blocked by its incomplete prerequisite A.
	assert.Equal(t, [][]string{{"A"}, {"C", "D"}}, bundleCodes(got))
}

func TestAvailableBundles_AfterCompletingPrereq(t *testing.T) {
	g := exampleGraph()
	g.Complete("A")

	got := g.AvailableBundles()

	assert.Equal(t, [][]string{{"B"}, {"C", "D"}}, bundleCodes(got))
}

func TestAvailableBundles_InProgressDoesNotBlock(t *testing.T) {
	g := exampleGraph()
	g.Start("C")

	got := g.AvailableBundles()

	assert.Equal(t, [][]string{{"A"}, {"C", "D"}}, bundleCodes(got),
		"an in-progress member keeps its bundle available")
}

func TestAvailableBundles_OneCompletedMemberExcludesBundle(t *testing.T) {
	g := exampleGraph()
	g.Complete("C")

	got := g.AvailableBundles()

	assert.Equal(t, [][]string{{"A"}}, bundleCodes(got),
		"a completed member excludes the whole coreq bundle")
}

func TestAvailableBundles_CoreqAtomicity(t *testing.T) {
	g := exampleGraph()

	for _, b := range g.AvailableBundles() {
		assert.Equal(t, b.Contains("C"), b.Contains("D"),
			"mutual coreqs appear together or not at all")
	}
}

func TestAvailableBundles_BundleMemberPrereqOutsideComponent(t *testing.T) {
	g := NewGraph("test")
	g.Add("A", "A", 6, StatusNotStarted, nil)
	g.Add("C", "C", 6, StatusNotStarted, nil)
	g.Add("D", "D", 6, StatusNotStarted, nil)
	g.LinkCoreq("C", "D")
	g.LinkPrereq("D", "A")

	got := g.AvailableBundles()
	assert.Equal(t, [][]string{{"A"}}, bundleCodes(got),
		"D's unmet prereq blocks the whole C-D bundle")

	g.Complete("A")
	got = g.AvailableBundles()
	assert.Equal(t, [][]string{{"C", "D"}}, bundleCodes(got))
}

func TestAvailableBundles_CyclicPrereqsDoNotLoop(t *testing.T) {
	g := NewGraph("test")
	g.Add("X", "X", 6, StatusNotStarted, nil)
	g.Add("Y", "Y", 6, StatusNotStarted, nil)
	g.LinkPrereq("X", "Y")
	g.LinkPrereq("Y", "X")

	got := g.AvailableBundles()

	// Neither becomes available until the cycle is broken externally;
	// the query itself must simply terminate.
	assert.Empty(t, got)
}

func TestAvailableBundles_EmptyGraph(t *testing.T) {
	g := NewGraph("vacío")
	assert.Empty(t, g.AvailableBundles())
}

func TestBundle_MinSemester(t *testing.T) {
	g := NewGraph("test")
	g.Add("C", "C", 6, StatusNotStarted, intPtr(3))
	g.Add("D", "D", 6, StatusNotStarted, intPtr(2))
	g.LinkCoreq("C", "D")

	comps := g.CoreqComponents()
	require.Len(t, comps, 1)

	min, ok := comps[0].MinSemester()
	require.True(t, ok)
	assert.Equal(t, 2, min)
}

func TestBundle_MinSemester_NoneSet(t *testing.T) {
	g := NewGraph("test")
	g.Add("C", "C", 6, StatusNotStarted, nil)

	comps := g.CoreqComponents()
	_, ok := comps[0].MinSemester()
	assert.False(t, ok)
}

func TestBundle_AnyInProgress(t *testing.T) {
	g := exampleGraph()
	g.Start("D")

	for _, b := range g.CoreqComponents() {
		if b.Contains("C") {
			assert.True(t, b.AnyInProgress())
		} else {
			assert.False(t, b.AnyInProgress())
		}
	}
}
