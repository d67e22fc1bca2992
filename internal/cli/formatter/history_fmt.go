package formatter

import (
	"fmt"
	"strings"

	"github.com/rcastellanos/malla/internal/domain"
)

// FormatHistory renders journaled status transitions, oldest first.
func FormatHistory(entries []*domain.ProgressEntry) string {
	var sb strings.Builder
	sb.WriteString(Header("Historial") + "\n")

	if len(entries) == 0 {
		sb.WriteString(Dim("Sin movimientos registrados.") + "\n")
		return sb.String()
	}

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s  %s  %s → %s\n",
			Dim(e.LoggedAt.Format("2006-01-02 15:04")),
			StyleGreen.Render(padRight(e.CourseCode, 11)),
			StatusStyle(e.FromStatus).Render(e.FromStatus.String()),
			StatusStyle(e.ToStatus).Render(e.ToStatus.String()),
		))
	}
	return sb.String()
}
