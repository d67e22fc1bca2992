package domain

// Graph owns every course of one degree plan, keyed by course code.
// Courses are created in bulk when a plan is loaded; after that the only
// mutation is status transitions. A graph is rebuilt wholesale when the
// underlying plan changes, never patched in place.
type Graph struct {
	PlanName string

	courses map[string]*Course
}

// NewGraph creates an empty graph for the named plan.
func NewGraph(planName string) *Graph {
	return &Graph{
		PlanName: planName,
		courses:  make(map[string]*Course),
	}
}

// Add creates a course under the given code, or updates its metadata when
// the code already exists. It returns the owned course.
func (g *Graph) Add(code, name string, credits int, status Status, semester *int) *Course {
	c, ok := g.courses[code]
	if !ok {
		c = newCourse(code, name, credits, status, semester)
		g.courses[code] = c
		return c
	}
	c.Name = name
	c.Credits = credits
	c.Status = status
	c.Semester = semester
	return c
}

// LinkPrereq records prereqCode as a prerequisite of code and maintains the
// dependents mirror. Codes absent from the graph are ignored; relinking an
// existing edge is a no-op.
func (g *Graph) LinkPrereq(code, prereqCode string) {
	course, ok := g.courses[code]
	if !ok {
		return
	}
	prereq, ok := g.courses[prereqCode]
	if !ok {
		return
	}
	course.prereqs[prereq.Code] = prereq
	prereq.dependents[course.Code] = course
}

// LinkCoreq records a symmetric corequisite edge between the two codes.
// Linking from either side repairs asymmetric input: both courses end up
// listing each other. Codes absent from the graph are ignored.
func (g *Graph) LinkCoreq(code, coreqCode string) {
	a, ok := g.courses[code]
	if !ok {
		return
	}
	b, ok := g.courses[coreqCode]
	if !ok {
		return
	}
	a.coreqs[b.Code] = b
	b.coreqs[a.Code] = a
}

// Start marks the course as in progress. Unknown codes are ignored.
func (g *Graph) Start(code string) { g.setStatus(code, StatusInProgress) }

// Complete marks the course as completed. Unknown codes are ignored.
func (g *Graph) Complete(code string) { g.setStatus(code, StatusCompleted) }

// Reset returns the course to not started. Unknown codes are ignored.
func (g *Graph) Reset(code string) { g.setStatus(code, StatusNotStarted) }

func (g *Graph) setStatus(code string, s Status) {
	if c, ok := g.courses[code]; ok {
		c.Status = s
	}
}

// Course returns the course with the given code.
func (g *Graph) Course(code string) (*Course, bool) {
	c, ok := g.courses[code]
	return c, ok
}

// Codes returns every course code in the graph, sorted.
func (g *Graph) Codes() []string { return sortedCodes(g.courses) }

// Courses returns every course in the graph, sorted by code.
func (g *Graph) Courses() []*Course { return sortedCourses(g.courses) }

// Len returns the number of courses in the graph.
func (g *Graph) Len() int { return len(g.courses) }

// CompletedCredits sums the credits of completed courses.
func (g *Graph) CompletedCredits() int {
	total := 0
	for _, c := range g.courses {
		if c.Completed() {
			total += c.Credits
		}
	}
	return total
}

// TotalCredits sums the credits of every course in the plan.
func (g *Graph) TotalCredits() int {
	total := 0
	for _, c := range g.courses {
		total += c.Credits
	}
	return total
}
