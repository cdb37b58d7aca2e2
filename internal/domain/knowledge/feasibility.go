package knowledge

import (
	"sort"

	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/skills"
)

// A candidate needs at least this share of a domain's required skills to
// count as transferable.
const transferableThreshold = 0.3

// Five transferable employees saturate the workforce component.
const workforceSaturation = 5

type DomainFeasibility struct {
	Domain                string   `json:"domain"`
	FeasibilityScore      float64  `json:"feasibility_score"`
	SkillCoverage         float64  `json:"skill_coverage"`
	CoveredSkills         []string `json:"covered_skills"`
	SkillGap              []string `json:"skill_gap"`
	TransferableCount     int      `json:"transferable_count"`
	TransferableEmployees []string `json:"transferable_employees"`
}

// RankNewDomains scores every known domain absent from the current set by
// how feasible an entry would be with the present workforce. Results are
// sorted by feasibility descending.
func RankNewDomains(current map[string]struct{}, employees []employee.Employee) []DomainFeasibility {
	workforce := skillUnion(employees)

	out := make([]DomainFeasibility, 0)
	for _, domain := range AllDomains {
		if _, present := current[domain]; present {
			continue
		}
		out = append(out, scoreDomain(domain, workforce, employees))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FeasibilityScore != out[j].FeasibilityScore {
			return out[i].FeasibilityScore > out[j].FeasibilityScore
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

func scoreDomain(domain string, workforce map[string]struct{}, employees []employee.Employee) DomainFeasibility {
	required := RequiredSkills(domain)

	covered := make([]string, 0, len(required))
	gap := make([]string, 0)
	for _, r := range required {
		if _, ok := workforce[r]; ok {
			covered = append(covered, r)
		} else {
			gap = append(gap, r)
		}
	}

	coverage := 0.0
	if len(required) > 0 {
		coverage = float64(len(covered)) / float64(len(required))
	}

	threshold := transferableThreshold * float64(len(required))
	transferable := make([]string, 0)
	for _, emp := range employees {
		have := skills.NormalizeSet(empSkillNames(emp))
		matched := 0
		for _, r := range required {
			if _, ok := have[r]; ok {
				matched++
			}
		}
		if float64(matched) >= threshold && matched > 0 {
			transferable = append(transferable, emp.UserID)
		}
	}
	sort.Strings(transferable)

	workforceRatio := float64(len(transferable)) / workforceSaturation
	if workforceRatio > 1 {
		workforceRatio = 1
	}

	sample := transferable
	if len(sample) > 5 {
		sample = sample[:5]
	}

	return DomainFeasibility{
		Domain:                domain,
		FeasibilityScore:      100 * (0.6*coverage + 0.4*workforceRatio),
		SkillCoverage:         coverage,
		CoveredSkills:         covered,
		SkillGap:              gap,
		TransferableCount:     len(transferable),
		TransferableEmployees: sample,
	}
}

func skillUnion(employees []employee.Employee) map[string]struct{} {
	union := make(map[string]struct{})
	for _, emp := range employees {
		for _, name := range emp.NormalizedSkillNames() {
			union[name] = struct{}{}
		}
	}
	return union
}

func empSkillNames(emp employee.Employee) []string {
	names := make([]string, 0, len(emp.Skills))
	for _, s := range emp.Skills {
		names = append(names, s.Name)
	}
	return names
}
