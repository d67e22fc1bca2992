package domain

import (
	"fmt"
	"sort"
)

// Course is one node of a degree plan graph. Edges are kept as adjacency
// maps keyed by course code; the dependents map is the derived mirror of
// prerequisite edges and is maintained by the Graph, never set directly.
type Course struct {
	Code     string
	Name     string
	Credits  int
	Semester *int // suggested term, used for display ordering only
	Status   Status

	prereqs    map[string]*Course
	coreqs     map[string]*Course
	dependents map[string]*Course
}

func newCourse(code, name string, credits int, status Status, semester *int) *Course {
	return &Course{
		Code:       code,
		Name:       name,
		Credits:    credits,
		Semester:   semester,
		Status:     status,
		prereqs:    make(map[string]*Course),
		coreqs:     make(map[string]*Course),
		dependents: make(map[string]*Course),
	}
}

// SetStatus is the low-level setter behind the graph's named status
// operations. Values outside the enum are rejected with ErrInvalidStatus.
func (c *Course) SetStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidStatus, int(s))
	}
	c.Status = s
	return nil
}

func (c *Course) Completed() bool  { return c.Status == StatusCompleted }
func (c *Course) InProgress() bool { return c.Status == StatusInProgress }

// PrereqsMet reports whether every prerequisite of c is completed.
// A course with no prerequisites is trivially satisfied.
func (c *Course) PrereqsMet() bool {
	for _, p := range c.prereqs {
		if !p.Completed() {
			return false
		}
	}
	return true
}

// Prereqs returns the prerequisite courses sorted by code.
func (c *Course) Prereqs() []*Course { return sortedCourses(c.prereqs) }

// Coreqs returns the corequisite courses sorted by code.
func (c *Course) Coreqs() []*Course { return sortedCourses(c.coreqs) }

// Dependents returns the courses that list c as a prerequisite, sorted by code.
func (c *Course) Dependents() []*Course { return sortedCourses(c.dependents) }

// PrereqCodes returns the prerequisite codes sorted. The slice is never nil.
func (c *Course) PrereqCodes() []string { return sortedCodes(c.prereqs) }

// CoreqCodes returns the corequisite codes sorted. The slice is never nil.
func (c *Course) CoreqCodes() []string { return sortedCodes(c.coreqs) }

func (c *Course) HasPrereq(code string) bool    { _, ok := c.prereqs[code]; return ok }
func (c *Course) HasCoreq(code string) bool     { _, ok := c.coreqs[code]; return ok }
func (c *Course) HasDependent(code string) bool { _, ok := c.dependents[code]; return ok }

func (c *Course) String() string {
	return fmt.Sprintf("%s (%s) | %s", c.Name, c.Code, c.Status)
}

func sortedCourses(m map[string]*Course) []*Course {
	out := make([]*Course, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func sortedCodes(m map[string]*Course) []string {
	out := make([]string, 0, len(m))
	for code := range m {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
