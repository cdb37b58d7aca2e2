package evaluation

import (
	"regexp"
	"strings"
	"time"

	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/trend"
	"talent-optimizer/internal/skills"
)

// Overall score weights.
const (
	weightExperience   = 0.20
	weightProjectCount = 0.15
	weightDiversity    = 0.15
	weightTechStack    = 0.25
	weightProjectExp   = 0.25
)

type ExperienceMetrics struct {
	ExperienceScore float64        `json:"experience_score"`
	ProjectScore    float64        `json:"project_score"`
	DiversityScore  float64        `json:"diversity_score"`
	LevelBreakdown  map[string]int `json:"level_breakdown"`
}

type SkillTechScore struct {
	SkillName    string  `json:"skill_name"`
	TrendScore   float64 `json:"trend_score"`
	DemandScore  float64 `json:"demand_score"`
	RecencyScore float64 `json:"recency_score"`
}

type TechEvaluation struct {
	TechStackScore float64          `json:"tech_stack_score"`
	AvgTrendScore  float64          `json:"avg_trend_score"`
	AvgDemandScore float64          `json:"avg_demand_score"`
	Skills         []SkillTechScore `json:"skills"`
}

type ProjectScore struct {
	ProjectName      string  `json:"project_name"`
	ScaleScore       float64 `json:"scale_score"`
	RoleScore        float64 `json:"role_score"`
	PerformanceScore float64 `json:"performance_score"`
}

type ProjectExperience struct {
	ProjectExperienceScore float64        `json:"project_experience_score"`
	Projects               []ProjectScore `json:"projects"`
}

type QuantitativeReport struct {
	EmployeeID        string            `json:"employee_id"`
	Experience        ExperienceMetrics `json:"experience_metrics"`
	Tech              TechEvaluation    `json:"tech_evaluation"`
	ProjectExperience ProjectExperience `json:"project_experience"`
	OverallScore      float64           `json:"overall_score"`
}

// TrendLookup resolves market data for a normalized skill name.
type TrendLookup func(name string) (trend.TechTrend, bool)

// EvaluateQuantitative computes the numeric report for one employee. Every
// output is finite and in [0,100]; empty aggregates score 0.
func EvaluateQuantitative(emp employee.Employee, lookup TrendLookup) QuantitativeReport {
	exp := experienceMetrics(emp)
	tech := techEvaluation(emp, lookup)
	projExp := projectExperience(emp)

	overall := weightExperience*exp.ExperienceScore +
		weightProjectCount*exp.ProjectScore +
		weightDiversity*exp.DiversityScore +
		weightTechStack*tech.TechStackScore +
		weightProjectExp*projExp.ProjectExperienceScore

	return QuantitativeReport{
		EmployeeID:        emp.UserID,
		Experience:        exp,
		Tech:              tech,
		ProjectExperience: projExp,
		OverallScore:      clamp100(overall),
	}
}

func experienceMetrics(emp employee.Employee) ExperienceMetrics {
	breakdown := map[string]int{
		string(employee.LevelBeginner):     0,
		string(employee.LevelIntermediate): 0,
		string(employee.LevelAdvanced):     0,
		string(employee.LevelExpert):       0,
	}
	for _, s := range emp.Skills {
		if lvl, ok := employee.ParseSkillLevel(string(s.Level)); ok {
			breakdown[string(lvl)]++
		}
	}

	return ExperienceMetrics{
		ExperienceScore: clamp100(emp.YearsOfExperience / 20 * 100),
		ProjectScore:    clamp100(float64(len(emp.WorkExperiences)) / 10 * 100),
		DiversityScore:  clamp100(float64(len(emp.NormalizedSkillNames())) / 15 * 100),
		LevelBreakdown:  breakdown,
	}
}

func techEvaluation(emp employee.Employee, lookup TrendLookup) TechEvaluation {
	if len(emp.Skills) == 0 {
		return TechEvaluation{Skills: []SkillTechScore{}}
	}

	var trendSum, demandSum float64
	out := make([]SkillTechScore, 0, len(emp.Skills))
	for _, s := range emp.Skills {
		name := skills.Normalize(s.Name)
		row, ok := trend.TechTrend{}, false
		if lookup != nil {
			row, ok = lookup(name)
		}
		if !ok {
			row = trend.Default(name)
		}

		recency := 100 - s.Years*10
		if recency < 0 {
			recency = 0
		}

		out = append(out, SkillTechScore{
			SkillName:    name,
			TrendScore:   row.TrendScore,
			DemandScore:  row.DemandScore,
			RecencyScore: recency,
		})
		trendSum += row.TrendScore
		demandSum += row.DemandScore
	}

	n := float64(len(out))
	avgTrend := trendSum / n
	avgDemand := demandSum / n

	return TechEvaluation{
		TechStackScore: clamp100(0.5*avgTrend + 0.5*avgDemand),
		AvgTrendScore:  avgTrend,
		AvgDemandScore: avgDemand,
		Skills:         out,
	}
}

func projectExperience(emp employee.Employee) ProjectExperience {
	if len(emp.WorkExperiences) == 0 {
		return ProjectExperience{Projects: []ProjectScore{}}
	}

	var scaleSum, roleSum, perfSum float64
	out := make([]ProjectScore, 0, len(emp.WorkExperiences))
	for _, we := range emp.WorkExperiences {
		ps := ProjectScore{
			ProjectName:      we.ProjectName,
			ScaleScore:       scaleScore(we.Period),
			RoleScore:        roleScore(we.Role),
			PerformanceScore: performanceScore(we.PerformanceResult),
		}
		out = append(out, ps)
		scaleSum += ps.ScaleScore
		roleSum += ps.RoleScore
		perfSum += ps.PerformanceScore
	}

	n := float64(len(out))
	score := 0.3*(scaleSum/n) + 0.4*(roleSum/n) + 0.3*(perfSum/n)

	return ProjectExperience{
		ProjectExperienceScore: clamp100(score),
		Projects:               out,
	}
}

// scaleScore maps the project length in months onto [0,100] with a 24-month
// cap. Unparseable periods count as 6 months.
func scaleScore(period string) float64 {
	months := periodMonths(period)
	if months > 24 {
		months = 24
	}
	return clamp100(months / 24 * 100)
}

var periodDateRe = regexp.MustCompile(`(\d{4})[./-](\d{1,2})`)

// periodMonths extracts two year-month tokens from a free-form range like
// "2023-01 ~ 2023-12" and returns the span in months. Default is 6.
func periodMonths(period string) float64 {
	matches := periodDateRe.FindAllStringSubmatch(period, 2)
	if len(matches) < 2 {
		return 6
	}
	from, ok1 := yearMonth(matches[0])
	to, ok2 := yearMonth(matches[1])
	if !ok1 || !ok2 || to.Before(from) {
		return 6
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months <= 0 {
		return 6
	}
	return float64(months)
}

func yearMonth(m []string) (time.Time, bool) {
	t, err := time.Parse("2006-1", m[1]+"-"+m[2])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// roleScores is checked in order: seniority modifiers first so that
// "junior developer" and "senior engineer" land on the modifier.
var roleScores = []struct {
	keyword string
	score   float64
}{
	{"junior", 50},
	{"principal", 100},
	{"architect", 95},
	{"lead", 90},
	{"senior", 85},
	{"manager", 80},
	{"developer", 70},
	{"engineer", 70},
}

func roleScore(role string) float64 {
	lowered := strings.ToLower(role)
	for _, rs := range roleScores {
		if strings.Contains(lowered, rs.keyword) {
			return rs.score
		}
	}
	return 60
}

var (
	positiveKeywords = []string{
		"success", "completion", "achievement", "improvement", "increase", "excellent",
		"성공", "완료", "달성", "개선", "증가", "우수",
	}
	negativeKeywords = []string{
		"failure", "delay", "cancelled", "canceled",
		"실패", "지연", "중단",
	}
)

func performanceScore(result string) float64 {
	score := 70.0
	lowered := strings.ToLower(result)
	for _, kw := range positiveKeywords {
		if strings.Contains(lowered, kw) {
			score += 5
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lowered, kw) {
			score -= 10
		}
	}
	return clamp100(score)
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
