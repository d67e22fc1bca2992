package domain

// Bundle is a maximal set of courses connected through corequisite links.
// Corequisites must be enrolled together, so availability is decided per
// bundle, not per course. Members are sorted by course code.
type Bundle []*Course

// Codes returns the member codes in order.
func (b Bundle) Codes() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Code
	}
	return out
}

// Contains reports whether the bundle has a member with the given code.
func (b Bundle) Contains(code string) bool {
	for _, c := range b {
		if c.Code == code {
			return true
		}
	}
	return false
}

// MinSemester returns the smallest suggested semester among members.
// ok is false when no member carries a semester.
func (b Bundle) MinSemester() (min int, ok bool) {
	for _, c := range b {
		if c.Semester == nil {
			continue
		}
		if !ok || *c.Semester < min {
			min, ok = *c.Semester, true
		}
	}
	return min, ok
}

// Available reports whether the bundle may be newly enrolled in: no member
// is completed, and every member's prerequisites are all completed. An
// in-progress member does not block; the caller distinguishes "available to
// start" from "already in progress" through the Status field.
func (b Bundle) Available() bool {
	for _, c := range b {
		if c.Completed() {
			return false
		}
		if !c.PrereqsMet() {
			return false
		}
	}
	return true
}

// AnyInProgress reports whether any member is currently in progress.
func (b Bundle) AnyInProgress() bool {
	for _, c := range b {
		if c.InProgress() {
			return true
		}
	}
	return false
}

// CoreqComponents partitions the graph into corequisite-connected components
// via a visited-set traversal over the coreq relation. A course with no
// corequisites forms a singleton component. The traversal terminates on
// cyclic and self-referential coreq chains, and the result is deterministic:
// components appear in order of their smallest course code.
func (g *Graph) CoreqComponents() []Bundle {
	visited := make(map[string]bool, len(g.courses))
	var comps []Bundle

	for _, code := range g.Codes() {
		if visited[code] {
			continue
		}
		comp := make(map[string]*Course)
		stack := []*Course{g.courses[code]}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := comp[cur.Code]; seen {
				continue
			}
			comp[cur.Code] = cur
			for _, co := range cur.coreqs {
				if _, seen := comp[co.Code]; !seen {
					stack = append(stack, co)
				}
			}
		}
		for memberCode := range comp {
			visited[memberCode] = true
		}
		comps = append(comps, Bundle(sortedCourses(comp)))
	}
	return comps
}

// AvailableBundles returns the corequisite bundles a student may newly
// enroll in. Components are recomputed from scratch on every call; plans are
// small and this runs once per user action.
func (g *Graph) AvailableBundles() []Bundle {
	var out []Bundle
	for _, comp := range g.CoreqComponents() {
		if comp.Available() {
			out = append(out, comp)
		}
	}
	return out
}
