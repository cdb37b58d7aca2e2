// Package employee defines the employee aggregate as it is stored and
// exchanged. Documents are decoded tolerantly: unknown fields are ignored
// and optional fields may be absent.
package employee

import (
	"regexp"
	"strings"
	"time"

	"talent-optimizer/internal/skills"
)

// SkillLevel is a declared proficiency band.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// ParseSkillLevel accepts any casing of the four levels.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return LevelBeginner, true
	case "intermediate":
		return LevelIntermediate, true
	case "advanced":
		return LevelAdvanced, true
	case "expert":
		return LevelExpert, true
	}
	return "", false
}

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
	Years float64    `json:"years"`
}

type WorkExperience struct {
	ProjectID         string `json:"project_id"`
	ProjectName       string `json:"project_name"`
	Role              string `json:"role"`
	Period            string `json:"period"`
	MainTasks         string `json:"main_tasks"`
	PerformanceResult string `json:"performance_result,omitempty"`
}

var periodTokenRe = regexp.MustCompile(`(\d{4})[./-](\d{1,2})`)

// PeriodRange parses the free-form period ("2022-01 ~ 2023-06",
// "2022.01 - 2023.06") into its start and end months. ok is false when the
// string does not carry two year-month tokens in order.
func (we WorkExperience) PeriodRange() (start, end time.Time, ok bool) {
	matches := periodTokenRe.FindAllStringSubmatch(we.Period, 2)
	if len(matches) < 2 {
		return time.Time{}, time.Time{}, false
	}
	start, ok1 := parseYearMonth(matches[0])
	end, ok2 := parseYearMonth(matches[1])
	if !ok1 || !ok2 || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseYearMonth(m []string) (time.Time, bool) {
	t, err := time.Parse("2006-1", m[1]+"-"+m[2])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
}

type Employee struct {
	UserID            string           `json:"user_id"`
	Name              string           `json:"name"`
	Role              string           `json:"role"`
	YearsOfExperience float64          `json:"years_of_experience"`
	Email             string           `json:"email"`
	SelfIntroduction  string           `json:"self_introduction,omitempty"`
	Skills            []Skill          `json:"skills"`
	WorkExperiences   []WorkExperience `json:"work_experiences"`
	Education         *Education       `json:"education,omitempty"`
	Certifications    []string         `json:"certifications"`
	CurrentProject    string           `json:"current_project,omitempty"`
	AssignmentDate    string           `json:"assignment_date,omitempty"`
}

// NormalizedSkillNames returns the employee's skill names post-normalization
// with duplicates removed, preserving declaration order.
func (e Employee) NormalizedSkillNames() []string {
	names := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		names = append(names, s.Name)
	}
	return skills.DedupeNormalized(names)
}

// HasAllSkills reports whether the employee's normalized skill set is a
// superset of required (which is normalized here as well).
func (e Employee) HasAllSkills(required []string) bool {
	have := skills.NormalizeSet(e.skillNames())
	for _, r := range required {
		n := skills.Normalize(r)
		if n == "" {
			continue
		}
		if _, ok := have[n]; !ok {
			return false
		}
	}
	return true
}

func (e Employee) skillNames() []string {
	names := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		names = append(names, s.Name)
	}
	return names
}
