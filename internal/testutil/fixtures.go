package testutil

import "github.com/rcastellanos/malla/internal/planfile"

func intPtr(v int) *int { return &v }

// SamplePlan returns a small plan covering the interesting shapes: a free
// course, a prerequisite chain and a corequisite pair behind a prerequisite.
func SamplePlan() planfile.Records {
	return planfile.Records{
		"MAT-14100": {
			Nombre:   "Cálculo I",
			Creditos: 8,
			Prerreqs: []string{},
			Coreqs:   []string{},
			Semestre: intPtr(1),
		},
		"MAT-14210": {
			Nombre:   "Cálculo II",
			Creditos: 8,
			Prerreqs: []string{"MAT-14100"},
			Coreqs:   []string{},
			Semestre: intPtr(2),
		},
		"FIS-11010": {
			Nombre:   "Física I",
			Creditos: 6,
			Prerreqs: []string{"MAT-14100"},
			Coreqs:   []string{"FIS-11011"},
			Semestre: intPtr(2),
		},
		"FIS-11011": {
			Nombre:   "Laboratorio de Física I",
			Creditos: 2,
			Prerreqs: []string{},
			Coreqs:   []string{"FIS-11010"},
			Semestre: intPtr(2),
		},
		"COM-11101": {
			Nombre:   "Programación",
			Creditos: 6,
			Prerreqs: []string{},
			Coreqs:   []string{},
			Semestre: intPtr(1),
		},
	}
}
