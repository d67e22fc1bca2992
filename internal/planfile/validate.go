package planfile

import (
	"fmt"
	"sort"
)

// ValidateRecords checks a plan record set before it is handed to Build.
// It returns every problem found. Build itself stays trusting (plan files
// normally come from the extraction pipeline already well-formed); this is
// the opt-in hardening used for ad hoc uploads and the validate command.
// Unknown prerequisite/corequisite references are reported here even though
// Build tolerates them by dropping the edge.
func ValidateRecords(records Records) []error {
	var errs []error

	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		rec := records[code]

		if code == "" {
			errs = append(errs, fmt.Errorf("empty course code"))
			continue
		}
		if rec.Nombre == "" {
			errs = append(errs, fmt.Errorf("%s: nombre is required", code))
		}
		if rec.Creditos < 0 {
			errs = append(errs, fmt.Errorf("%s: creditos must be >= 0, got %d", code, rec.Creditos))
		}
		if rec.Estado < 0 || rec.Estado > 2 {
			errs = append(errs, fmt.Errorf("%s: estado: invalid value %d (expected 0, 1 or 2)", code, rec.Estado))
		}
		if rec.Semestre != nil && *rec.Semestre <= 0 {
			errs = append(errs, fmt.Errorf("%s: semestre must be positive, got %d", code, *rec.Semestre))
		}

		for _, pr := range rec.Prerreqs {
			if pr == code {
				errs = append(errs, fmt.Errorf("%s: prerreqs: course lists itself as prerequisite", code))
				continue
			}
			if _, ok := records[pr]; !ok {
				errs = append(errs, fmt.Errorf("%s: prerreqs: unknown course %q", code, pr))
			}
		}
		for _, co := range rec.Coreqs {
			if _, ok := records[co]; !ok {
				errs = append(errs, fmt.Errorf("%s: coreqs: unknown course %q", code, co))
			}
		}
	}

	return errs
}
