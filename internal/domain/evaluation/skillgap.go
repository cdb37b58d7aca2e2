package evaluation

import (
	"sort"

	"talent-optimizer/internal/domain/employee"
)

type GapPriority string

const (
	GapRequired    GapPriority = "required"
	GapRecommended GapPriority = "recommended"
)

type SkillGap struct {
	SkillName string      `json:"skill_name"`
	PeerRatio float64     `json:"peer_ratio"`
	Priority  GapPriority `json:"priority"`
}

type SkillGapAnalysis struct {
	// PeerGroup documents how the peer set was chosen so consumers can
	// interpret the ratios.
	PeerGroup string     `json:"peer_group"`
	PeerCount int        `json:"peer_count"`
	Gaps      []SkillGap `json:"gaps"`
}

// AnalyzeSkillGaps compares an employee against peers (same role group, self
// excluded by the caller). Skills held by at least half the peers but not by
// the employee are required gaps; skills held by 30–50% are recommended.
func AnalyzeSkillGaps(emp employee.Employee, peers []employee.Employee) SkillGapAnalysis {
	analysis := SkillGapAnalysis{
		PeerGroup: "employees sharing the role \"" + emp.Role + "\", excluding the subject",
		PeerCount: len(peers),
		Gaps:      []SkillGap{},
	}
	if len(peers) == 0 {
		return analysis
	}

	counts := make(map[string]int)
	for _, p := range peers {
		for _, name := range p.NormalizedSkillNames() {
			counts[name]++
		}
	}

	own := make(map[string]struct{})
	for _, name := range emp.NormalizedSkillNames() {
		own[name] = struct{}{}
	}

	total := float64(len(peers))
	for name, c := range counts {
		if _, has := own[name]; has {
			continue
		}
		ratio := float64(c) / total
		switch {
		case ratio >= 0.5:
			analysis.Gaps = append(analysis.Gaps, SkillGap{SkillName: name, PeerRatio: ratio, Priority: GapRequired})
		case ratio >= 0.3:
			analysis.Gaps = append(analysis.Gaps, SkillGap{SkillName: name, PeerRatio: ratio, Priority: GapRecommended})
		}
	}

	sort.Slice(analysis.Gaps, func(i, j int) bool {
		if analysis.Gaps[i].PeerRatio != analysis.Gaps[j].PeerRatio {
			return analysis.Gaps[i].PeerRatio > analysis.Gaps[j].PeerRatio
		}
		return analysis.Gaps[i].SkillName < analysis.Gaps[j].SkillName
	})
	return analysis
}
