package evaluation

import (
	"fmt"

	"talent-optimizer/internal/domain/employee"
)

// NarrativeFields is the JSON shape the completion capability is asked to
// produce for a qualitative assessment.
type NarrativeFields struct {
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	SuitableProjects []string `json:"suitable_projects"`
	DevelopmentAreas []string `json:"development_areas"`
	Assessment       string   `json:"assessment"`
}

type QualitativeReport struct {
	EmployeeID       string           `json:"employee_id"`
	Strengths        []string         `json:"strengths"`
	Weaknesses       []string         `json:"weaknesses"`
	SuitableProjects []string         `json:"suitable_projects"`
	DevelopmentAreas []string         `json:"development_areas"`
	Narrative        string           `json:"narrative"`
	SuspiciousFlags  []SuspiciousFlag `json:"suspicious_flags"`
	SkillGaps        SkillGapAnalysis `json:"skill_gap_analysis"`
}

// DefaultNarrativeFields is the deterministic fallback used when the
// completion capability fails or returns an unparseable payload.
func DefaultNarrativeFields(emp employee.Employee) NarrativeFields {
	strengths := []string{
		fmt.Sprintf("%.0f years of hands-on experience", emp.YearsOfExperience),
		fmt.Sprintf("worked across %d projects", len(emp.WorkExperiences)),
		fmt.Sprintf("covers %d distinct skills", len(emp.NormalizedSkillNames())),
	}
	return NarrativeFields{
		Strengths:        strengths,
		Weaknesses:       []string{"automated assessment unavailable", "manual review recommended"},
		SuitableProjects: []string{"projects matching the declared stack"},
		DevelopmentAreas: []string{"broaden exposure beyond the current stack"},
		Assessment: fmt.Sprintf(
			"%s has %.0f years of experience across %d projects. A narrative assessment could not be generated automatically; scores above are computed from the profile.",
			emp.Name, emp.YearsOfExperience, len(emp.WorkExperiences),
		),
	}
}
