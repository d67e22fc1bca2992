package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rcastellanos/malla/internal/domain"
)

// SortBundlesForDisplay orders bundles by smallest suggested semester
// (bundles without one go last), breaking ties by first course code. The
// engine returns bundles in code order; display follows the plan's term
// layout instead.
func SortBundlesForDisplay(bundles []domain.Bundle) []domain.Bundle {
	out := make([]domain.Bundle, len(bundles))
	copy(out, bundles)
	sort.SliceStable(out, func(i, j int) bool {
		si, oki := out[i].MinSemester()
		sj, okj := out[j].MinSemester()
		if oki != okj {
			return oki // bundles with a semester first
		}
		if oki && okj && si != sj {
			return si < sj
		}
		return out[i][0].Code < out[j][0].Code
	})
	return out
}

// CourseLabel renders "CODE — Name (S3)", omitting the semester suffix when
// the course carries none.
func CourseLabel(c *domain.Course) string {
	if c.Semester != nil {
		return fmt.Sprintf("%s — %s (S%d)", c.Code, c.Name, *c.Semester)
	}
	return fmt.Sprintf("%s — %s", c.Code, c.Name)
}

// BundleLine renders one bundle's members joined for a single display row.
func BundleLine(b domain.Bundle) string {
	labels := make([]string, len(b))
	for i, c := range b {
		labels[i] = CourseLabel(c)
	}
	line := strings.Join(labels, "  |  ")
	if b.AnyInProgress() {
		line += "  " + StyleYellow.Render("● cursando")
	}
	return line
}

// FormatBundles renders the available-bundles listing.
func FormatBundles(bundles []domain.Bundle) string {
	var sb strings.Builder
	sb.WriteString(Header("Materias disponibles") + "\n")

	if len(bundles) == 0 {
		sb.WriteString(Dim("No hay materias disponibles por ahora.") + "\n")
		return sb.String()
	}

	for _, b := range SortBundlesForDisplay(bundles) {
		sb.WriteString("  • " + BundleLine(b) + "\n")
	}
	return sb.String()
}
