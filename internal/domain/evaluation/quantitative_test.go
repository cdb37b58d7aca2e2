package evaluation

import (
	"math"
	"testing"

	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/trend"
)

func trendTable(rows map[string]trend.TechTrend) TrendLookup {
	return func(name string) (trend.TechTrend, bool) {
		r, ok := rows[name]
		return r, ok
	}
}

func TestEvaluateQuantitative_SeniorProfile(t *testing.T) {
	emp := employee.Employee{
		UserID:            "EMP001",
		Name:              "Kim",
		YearsOfExperience: 20,
		Skills:            make([]employee.Skill, 0, 15),
		WorkExperiences:   make([]employee.WorkExperience, 0, 10),
	}
	skillNames := []string{
		"Java", "Python", "Go", "React", "Vue.js", "PostgreSQL", "MySQL",
		"Redis", "Kafka", "Docker", "Kubernetes", "AWS", "Terraform",
		"GraphQL", "Elasticsearch",
	}
	for i, name := range skillNames {
		lvl := employee.LevelAdvanced
		if i < 2 {
			lvl = employee.LevelExpert
		}
		emp.Skills = append(emp.Skills, employee.Skill{Name: name, Level: lvl, Years: 5})
	}
	for i := 0; i < 10; i++ {
		emp.WorkExperiences = append(emp.WorkExperiences, employee.WorkExperience{
			ProjectID:         "PRJ00" + string(rune('0'+i)),
			ProjectName:       "Project",
			Role:              "Lead Developer",
			Period:            "2022-01 ~ 2023-12",
			PerformanceResult: "success: completion with 40% throughput improvement and revenue increase",
		})
	}

	rows := make(map[string]trend.TechTrend, len(skillNames))
	for _, name := range skillNames {
		rows[name] = trend.TechTrend{TechName: name, TrendScore: 90, DemandScore: 90}
	}

	report := EvaluateQuantitative(emp, trendTable(rows))

	if report.Experience.ExperienceScore != 100 {
		t.Errorf("experience score = %v, want 100", report.Experience.ExperienceScore)
	}
	if report.Experience.ProjectScore != 100 {
		t.Errorf("project score = %v, want 100", report.Experience.ProjectScore)
	}
	if report.Experience.DiversityScore != 100 {
		t.Errorf("diversity score = %v, want 100", report.Experience.DiversityScore)
	}
	if math.Abs(report.Tech.TechStackScore-90) > 1e-9 {
		t.Errorf("tech stack score = %v, want 90", report.Tech.TechStackScore)
	}
	if report.OverallScore < 95 {
		t.Errorf("overall = %v, want >= 95", report.OverallScore)
	}
	if report.Experience.LevelBreakdown["Expert"] != 2 {
		t.Errorf("expert count = %d, want 2", report.Experience.LevelBreakdown["Expert"])
	}
}

func TestEvaluateQuantitative_EmptyProfileIsFinite(t *testing.T) {
	report := EvaluateQuantitative(employee.Employee{UserID: "EMP404"}, nil)
	for label, v := range map[string]float64{
		"overall":   report.OverallScore,
		"exp":       report.Experience.ExperienceScore,
		"tech":      report.Tech.TechStackScore,
		"proj":      report.ProjectExperience.ProjectExperienceScore,
		"diversity": report.Experience.DiversityScore,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
			t.Errorf("%s score out of range: %v", label, v)
		}
	}
	if report.OverallScore != 0 {
		t.Errorf("empty profile overall = %v, want 0", report.OverallScore)
	}
}

func TestEvaluateQuantitative_MissingTrendDefaults(t *testing.T) {
	emp := employee.Employee{
		UserID: "EMP002",
		Skills: []employee.Skill{{Name: "ObscureTool", Level: employee.LevelBeginner, Years: 1}},
	}
	report := EvaluateQuantitative(emp, trendTable(nil))
	if report.Tech.TechStackScore != 50 {
		t.Errorf("default trend should give 50, got %v", report.Tech.TechStackScore)
	}
	if len(report.Tech.Skills) != 1 || report.Tech.Skills[0].RecencyScore != 90 {
		t.Errorf("recency: got %+v", report.Tech.Skills)
	}
}

func TestPeriodMonths(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2023-01 ~ 2023-12", 11},
		{"2022.01 - 2024.01", 24},
		{"not a range", 6},
		{"", 6},
		{"2023-05", 6},
	}
	for _, c := range cases {
		if got := periodMonths(c.in); got != c.want {
			t.Errorf("periodMonths(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoleScore(t *testing.T) {
	cases := []struct {
		role string
		want float64
	}{
		{"Principal Engineer", 100},
		{"Solution Architect", 95},
		{"Tech Lead", 90},
		{"Senior Developer", 85},
		{"Project Manager", 80},
		{"Backend Developer", 70},
		{"Junior Developer", 50},
		{"Designer", 60},
	}
	for _, c := range cases {
		if got := roleScore(c.role); got != c.want {
			t.Errorf("roleScore(%q) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestPerformanceScore(t *testing.T) {
	if got := performanceScore(""); got != 70 {
		t.Errorf("empty result = %v, want 70", got)
	}
	if got := performanceScore("success and improvement"); got != 80 {
		t.Errorf("two positives = %v, want 80", got)
	}
	if got := performanceScore("project delay"); got != 60 {
		t.Errorf("one negative = %v, want 60", got)
	}
}
