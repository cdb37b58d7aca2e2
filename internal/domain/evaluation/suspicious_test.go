package evaluation

import (
	"testing"

	"talent-optimizer/internal/domain/employee"
)

func countFlags(flags []SuspiciousFlag, flagType string) int {
	n := 0
	for _, f := range flags {
		if f.Type == flagType {
			n++
		}
	}
	return n
}

func severityOf(flags []SuspiciousFlag, flagType string) (FlagSeverity, bool) {
	for _, f := range flags {
		if f.Type == flagType {
			return f.Severity, true
		}
	}
	return "", false
}

func TestDetectSuspiciousContent_InflatedProfile(t *testing.T) {
	emp := employee.Employee{
		UserID:            "EMP010",
		YearsOfExperience: 2,
		WorkExperiences:   make([]employee.WorkExperience, 7),
		Skills: []employee.Skill{
			{Name: "AWS", Level: employee.LevelExpert, Years: 1},
		},
	}

	flags := DetectSuspiciousContent(emp)

	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %d: %+v", len(flags), flags)
	}
	if sev, ok := severityOf(flags, "project_count_mismatch"); !ok || sev != SeverityMedium {
		t.Errorf("project_count_mismatch: got %v %v", sev, ok)
	}
	if sev, ok := severityOf(flags, "skill_level_mismatch"); !ok || sev != SeverityHigh {
		t.Errorf("skill_level_mismatch: got %v %v", sev, ok)
	}
}

func TestDetectSuspiciousContent_LowProjectCount(t *testing.T) {
	emp := employee.Employee{
		YearsOfExperience: 10,
		WorkExperiences:   make([]employee.WorkExperience, 1),
	}
	flags := DetectSuspiciousContent(emp)
	sev, ok := severityOf(flags, "project_count_mismatch")
	if !ok || sev != SeverityLow {
		t.Errorf("got %v %v, want low severity flag", sev, ok)
	}
}

func TestDetectSuspiciousContent_SkillYearsExceedExperience(t *testing.T) {
	emp := employee.Employee{
		YearsOfExperience: 3,
		WorkExperiences:   make([]employee.WorkExperience, 2),
		Skills: []employee.Skill{
			{Name: "Java", Level: employee.LevelAdvanced, Years: 5},
		},
	}
	flags := DetectSuspiciousContent(emp)
	if sev, ok := severityOf(flags, "skill_years_exceed_experience"); !ok || sev != SeverityHigh {
		t.Errorf("got %v %v", sev, ok)
	}
}

func TestDetectSuspiciousContent_ExaggeratedClaims(t *testing.T) {
	emp := employee.Employee{
		YearsOfExperience: 5,
		WorkExperiences:   make([]employee.WorkExperience, 5),
		SelfIntroduction:  "저는 항상 최고의 결과를 냅니다",
	}
	flags := DetectSuspiciousContent(emp)
	if got := countFlags(flags, "exaggerated_claims"); got != 1 {
		t.Errorf("expected one exaggerated_claims flag, got %d", got)
	}
}

func TestDetectSuspiciousContent_VaguePerformance(t *testing.T) {
	emp := employee.Employee{
		YearsOfExperience: 5,
		WorkExperiences: []employee.WorkExperience{
			{ProjectName: "A", PerformanceResult: "great success"},
			{ProjectName: "B", PerformanceResult: "improved latency by 30%"},
			{ProjectName: "C"},
		},
	}
	flags := DetectSuspiciousContent(emp)
	if got := countFlags(flags, "vague_performance"); got != 1 {
		t.Errorf("expected one vague_performance flag, got %d: %+v", got, flags)
	}
}

func TestDetectSuspiciousContent_CleanProfile(t *testing.T) {
	emp := employee.Employee{
		YearsOfExperience: 8,
		WorkExperiences: []employee.WorkExperience{
			{ProjectName: "A", PerformanceResult: "reduced costs by 12%"},
			{ProjectName: "B"},
			{ProjectName: "C"},
		},
		Skills: []employee.Skill{
			{Name: "Go", Level: employee.LevelExpert, Years: 6},
			{Name: "Kubernetes", Level: employee.LevelIntermediate, Years: 3},
		},
	}
	if flags := DetectSuspiciousContent(emp); len(flags) != 0 {
		t.Errorf("expected no flags, got %+v", flags)
	}
}
