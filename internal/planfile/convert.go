package planfile

import (
	"github.com/rcastellanos/malla/internal/domain"
)

// Build constructs a Graph from plan records in two passes: first every
// course node, then prerequisite and corequisite edges. Edges may reference
// codes that appear later in the mapping, so a single pass cannot work.
// References to codes absent from the record set are dropped by the link
// operations; asymmetric coreq lists are healed to symmetric.
func Build(planName string, records Records) *domain.Graph {
	g := domain.NewGraph(planName)

	for code, rec := range records {
		g.Add(code, rec.Nombre, rec.Creditos, domain.Status(rec.Estado), rec.Semestre)
	}

	for code, rec := range records {
		for _, pr := range rec.Prerreqs {
			g.LinkPrereq(code, pr)
		}
		for _, co := range rec.Coreqs {
			g.LinkCoreq(code, co)
		}
	}

	return g
}

// Export renders the graph back to the interchange format. Node references
// degrade to plain code lists at this boundary; lists come out sorted so the
// output is deterministic.
func Export(g *domain.Graph) Records {
	out := make(Records, g.Len())
	for _, c := range g.Courses() {
		out[c.Code] = CourseRecord{
			Nombre:   c.Name,
			Creditos: c.Credits,
			Prerreqs: c.PrereqCodes(),
			Coreqs:   c.CoreqCodes(),
			Estado:   int(c.Status),
			Semestre: c.Semester,
		}
	}
	return out
}
