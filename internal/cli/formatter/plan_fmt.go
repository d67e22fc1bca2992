package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rcastellanos/malla/internal/domain"
)

// FormatPlanList renders the plan listing table.
func FormatPlanList(rows []PlanRow) string {
	var sb strings.Builder
	sb.WriteString(Header("Planes de estudio") + "\n")

	if len(rows) == 0 {
		sb.WriteString(Dim("No hay planes. Coloca archivos .json en el directorio de planes.") + "\n")
		return sb.String()
	}

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			StyleGreen.Render(padRight(r.Name, 16)),
			Dim(fmt.Sprintf("%d materias, %d créditos", r.Courses, r.Credits)),
		))
	}
	return sb.String()
}

// PlanRow is one line of the plan listing.
type PlanRow struct {
	Name    string
	Courses int
	Credits int
}

// FormatSemesters renders the plan's courses grouped by suggested semester,
// with status pills. Courses without a semester come last under "—".
func FormatSemesters(g *domain.Graph) string {
	bySem := make(map[int][]*domain.Course)
	var noSem []*domain.Course
	for _, c := range g.Courses() {
		if c.Semester == nil {
			noSem = append(noSem, c)
			continue
		}
		bySem[*c.Semester] = append(bySem[*c.Semester], c)
	}

	sems := make([]int, 0, len(bySem))
	for s := range bySem {
		sems = append(sems, s)
	}
	sort.Ints(sems)

	var sb strings.Builder
	sb.WriteString(Header(fmt.Sprintf("Plan %s", g.PlanName)) + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n\n",
		Dim(fmt.Sprintf("%d materias · %d/%d créditos completados",
			g.Len(), g.CompletedCredits(), g.TotalCredits()))))

	for _, s := range sems {
		sb.WriteString(Bold(fmt.Sprintf("Semestre %d", s)) + "\n")
		writeCourseRows(&sb, bySem[s])
	}
	if len(noSem) > 0 {
		sb.WriteString(Bold("Sin semestre") + "\n")
		writeCourseRows(&sb, noSem)
	}
	return sb.String()
}

func writeCourseRows(sb *strings.Builder, courses []*domain.Course) {
	for _, c := range courses {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleGreen.Render(padRight(c.Code, 11)),
			padRight(c.Name, 34),
			StatusPill(c.Status),
		))
	}
	sb.WriteString("\n")
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
