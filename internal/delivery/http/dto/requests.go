// Package dto defines the request and response shapes of the HTTP surface.
package dto

type RecommendationRequest struct {
	ProjectID      string   `json:"project_id"`
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size"`
	Priority       string   `json:"priority"`
}

type EvaluationRequest struct {
	EmployeeID string `json:"employee_id"`
}

type TransitionRequest struct {
	Comment string `json:"comment"`
	Reason  string `json:"reason"`
}

type DomainAnalysisRequest struct {
	AnalysisType string `json:"analysis_type"`
}

type AssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	ProjectID  string `json:"project_id"`
}
