// Package affinity holds the pairwise employee closeness model and the pure
// score math used by the daily batch.
package affinity

import "strings"

// EmployeePair is semantically unordered but stored in canonical order
// (employee_1 < employee_2 lexicographically).
type EmployeePair struct {
	Employee1 string `json:"employee_1"`
	Employee2 string `json:"employee_2"`
}

// Canonical returns the pair with members in canonical order.
func (p EmployeePair) Canonical() EmployeePair {
	if strings.Compare(p.Employee1, p.Employee2) > 0 {
		return EmployeePair{Employee1: p.Employee2, Employee2: p.Employee1}
	}
	return p
}

// Mentions reports whether the pair involves userID.
func (p EmployeePair) Mentions(userID string) bool {
	return p.Employee1 == userID || p.Employee2 == userID
}

// PairID derives the canonical affinity id for two employees.
func PairID(e1, e2 string) string {
	p := EmployeePair{Employee1: e1, Employee2: e2}.Canonical()
	return "AFF_" + p.Employee1 + "_" + p.Employee2
}

// SharedProject is collaboration evidence for one common project.
type SharedProject struct {
	ProjectID     string  `json:"project_id"`
	ProjectName   string  `json:"project_name"`
	OverlapMonths float64 `json:"overlap_months"`
	// SameTeam is carried through from ingestion; scoring does not read it
	// and the batch records true for every detected overlap.
	SameTeam bool `json:"same_team"`
}

type ProjectCollaboration struct {
	Score          float64         `json:"score"`
	SharedProjects []SharedProject `json:"shared_projects"`
	TotalOverlap   float64         `json:"total_overlap_months"`
}

type MessengerCommunication struct {
	Score              float64 `json:"score"`
	TotalMessages      int     `json:"total_messages"`
	AvgResponseMinutes float64 `json:"avg_response_minutes"`
}

type CompanyEvents struct {
	Score        float64 `json:"score"`
	SharedEvents int     `json:"shared_events"`
}

type PersonalCloseness struct {
	Score            float64 `json:"score"`
	PaydayContacts   int     `json:"payday_contacts"`
	VacationContacts int     `json:"vacation_contacts"`
}

type Affinity struct {
	AffinityID    string                 `json:"affinity_id"`
	Pair          EmployeePair           `json:"employee_pair"`
	Collaboration ProjectCollaboration   `json:"project_collaboration"`
	Communication MessengerCommunication `json:"messenger_communication"`
	Events        CompanyEvents          `json:"company_events"`
	Personal      PersonalCloseness      `json:"personal_closeness"`
	OverallScore  float64                `json:"overall_affinity_score"`
}
