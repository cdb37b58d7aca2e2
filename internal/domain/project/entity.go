// Package project defines the project aggregate.
package project

import (
	"encoding/json"
	"strings"
	"time"
)

// Period is a project schedule. Start and End are ISO dates; either may be
// empty for open-ended projects.
type Period struct {
	Start          string  `json:"start"`
	End            string  `json:"end"`
	DurationMonths float64 `json:"duration_months"`
}

// ParseStart returns the parsed start date, or false when absent/invalid.
func (p Period) ParseStart() (time.Time, bool) {
	return parseISODate(p.Start)
}

// ParseEnd returns the parsed end date, or false when absent/invalid.
func (p Period) ParseEnd() (time.Time, bool) {
	return parseISODate(p.End)
}

func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006/01/02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TechStack maps a stack category (backend, frontend, data, infra) to an
// ordered list of skill names.
type TechStack map[string][]string

// AllSkills flattens the stack in a stable category order.
func (ts TechStack) AllSkills() []string {
	out := make([]string, 0)
	for _, cat := range []string{"backend", "frontend", "data", "infra"} {
		out = append(out, ts[cat]...)
	}
	for cat, names := range ts {
		switch cat {
		case "backend", "frontend", "data", "infra":
		default:
			out = append(out, names...)
		}
	}
	return out
}

// TeamSlot is either a headcount or an explicit member list, depending on
// how upstream ingestion shaped the document.
type TeamSlot struct {
	Count   int      `json:"-"`
	Members []string `json:"-"`
}

// UnmarshalJSON accepts a bare number or a list of user ids.
func (s *TeamSlot) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		s.Count = int(n)
		s.Members = nil
		return nil
	}
	var members []string
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}
	s.Members = members
	s.Count = len(members)
	return nil
}

// MarshalJSON writes the member list when present, count otherwise.
func (s TeamSlot) MarshalJSON() ([]byte, error) {
	if s.Members != nil {
		return json.Marshal(s.Members)
	}
	return json.Marshal(s.Count)
}

// TeamComposition maps role to a slot.
type TeamComposition map[string]TeamSlot

// MemberIDs returns every explicit member id across roles.
func (tc TeamComposition) MemberIDs() []string {
	out := make([]string, 0)
	for _, slot := range tc {
		out = append(out, slot.Members...)
	}
	return out
}

type Project struct {
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	ClientIndustry  string          `json:"client_industry"`
	Period          Period          `json:"period"`
	BudgetScale     string          `json:"budget_scale,omitempty"`
	Description     string          `json:"description,omitempty"`
	TechStack       TechStack       `json:"tech_stack"`
	Requirements    []string        `json:"requirements"`
	TeamComposition TeamComposition `json:"team_composition"`
	KnowledgeDomain string          `json:"knowledge_domain,omitempty"`
	TechDomains     []string        `json:"tech_domains,omitempty"`
}

// HasMember reports whether userID appears in any team slot.
func (p Project) HasMember(userID string) bool {
	for _, slot := range p.TeamComposition {
		for _, m := range slot.Members {
			if m == userID {
				return true
			}
		}
	}
	return false
}
