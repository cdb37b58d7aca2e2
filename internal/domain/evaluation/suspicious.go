package evaluation

import (
	"fmt"
	"strings"

	"talent-optimizer/internal/domain/employee"
)

type FlagSeverity string

const (
	SeverityLow    FlagSeverity = "low"
	SeverityMedium FlagSeverity = "medium"
	SeverityHigh   FlagSeverity = "high"
)

type SuspiciousFlag struct {
	Type     string       `json:"type"`
	Severity FlagSeverity `json:"severity"`
	Detail   string       `json:"detail"`
}

// Korean superlatives that mark overclaiming in a self-introduction.
var superlatives = []string{
	"최고", "완벽", "항상", "모든", "절대", "누구보다", "완전히", "유일",
}

// DetectSuspiciousContent runs the deterministic credibility checks over a
// profile and returns every triggered flag.
func DetectSuspiciousContent(emp employee.Employee) []SuspiciousFlag {
	flags := make([]SuspiciousFlag, 0)

	years := emp.YearsOfExperience
	projectCount := float64(len(emp.WorkExperiences))

	// A project every ~2 months sustained over a career is implausible; so
	// is almost none over a long one.
	if projectCount > years/2*3 {
		flags = append(flags, SuspiciousFlag{
			Type:     "project_count_mismatch",
			Severity: SeverityMedium,
			Detail:   fmt.Sprintf("%d projects is high for %.1f years of experience", len(emp.WorkExperiences), years),
		})
	} else if years > 3 && projectCount < years/2*0.3 {
		flags = append(flags, SuspiciousFlag{
			Type:     "project_count_mismatch",
			Severity: SeverityLow,
			Detail:   fmt.Sprintf("%d projects is low for %.1f years of experience", len(emp.WorkExperiences), years),
		})
	}

	for _, s := range emp.Skills {
		if s.Level == employee.LevelExpert && s.Years < 3 {
			flags = append(flags, SuspiciousFlag{
				Type:     "skill_level_mismatch",
				Severity: SeverityHigh,
				Detail:   fmt.Sprintf("%s claimed Expert with %.1f years", s.Name, s.Years),
			})
		}
		if s.Years > years+1 {
			flags = append(flags, SuspiciousFlag{
				Type:     "skill_years_exceed_experience",
				Severity: SeverityHigh,
				Detail:   fmt.Sprintf("%s claims %.1f years against %.1f total", s.Name, s.Years, years),
			})
		}
	}

	for _, word := range superlatives {
		if strings.Contains(emp.SelfIntroduction, word) {
			flags = append(flags, SuspiciousFlag{
				Type:     "exaggerated_claims",
				Severity: SeverityLow,
				Detail:   fmt.Sprintf("self introduction contains %q", word),
			})
			break
		}
	}

	for _, we := range emp.WorkExperiences {
		if we.PerformanceResult == "" {
			continue
		}
		if containsSuccessVocabulary(we.PerformanceResult) && !containsDigit(we.PerformanceResult) {
			flags = append(flags, SuspiciousFlag{
				Type:     "vague_performance",
				Severity: SeverityMedium,
				Detail:   fmt.Sprintf("%s: success claimed without any figure", we.ProjectName),
			})
		}
	}

	return flags
}

func containsSuccessVocabulary(s string) bool {
	lowered := strings.ToLower(s)
	for _, kw := range positiveKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
