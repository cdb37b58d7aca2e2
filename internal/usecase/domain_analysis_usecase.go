package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"talent-optimizer/internal/ai"
	"talent-optimizer/internal/domain/knowledge"
	"talent-optimizer/internal/repository"
)

// Analysis types accepted by the domain-analysis endpoint.
const (
	AnalysisNewDomains        = "new_domains"
	AnalysisExpansionStrategy = "expansion_strategy"
)

type DomainAnalysis struct {
	AnalysisType   string                        `json:"analysis_type"`
	CurrentDomains []knowledge.DomainGroup       `json:"current_domains"`
	NewDomains     []knowledge.DomainFeasibility `json:"new_domains"`
	Strategy       string                        `json:"strategy,omitempty"`
}

type DomainAnalysisUsecase interface {
	Analyze(ctx context.Context, analysisType string) (DomainAnalysis, error)
}

type DomainAnalyzer struct {
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	completer ai.Completer
	logger    *zap.Logger
}

func NewDomainAnalyzer(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	completer ai.Completer,
	logger *zap.Logger,
) *DomainAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DomainAnalyzer{
		employees: employees,
		projects:  projects,
		completer: completer,
		logger:    logger,
	}
}

func (u *DomainAnalyzer) Analyze(ctx context.Context, analysisType string) (DomainAnalysis, error) {
	analysisType = strings.ToLower(strings.TrimSpace(analysisType))
	switch analysisType {
	case AnalysisNewDomains, AnalysisExpansionStrategy:
	default:
		return DomainAnalysis{}, validationError("analysis_type must be new_domains or expansion_strategy")
	}

	projs, err := u.projects.ListAll(ctx, 0)
	if err != nil {
		return DomainAnalysis{}, fmt.Errorf("%w: list projects: %v", ErrInternal, err)
	}
	emps, err := u.employees.ListAll(ctx, 0)
	if err != nil {
		return DomainAnalysis{}, fmt.Errorf("%w: list employees: %v", ErrInternal, err)
	}

	out := DomainAnalysis{
		AnalysisType:   analysisType,
		CurrentDomains: knowledge.ClassifyProjects(projs),
		NewDomains:     knowledge.RankNewDomains(knowledge.CurrentDomains(projs), emps),
	}

	if analysisType == AnalysisExpansionStrategy {
		out.Strategy = u.strategy(ctx, out)
	}

	return out, nil
}

// strategy narrates the ranked feasibility table, falling back to a
// deterministic summary when the completion capability is unavailable.
func (u *DomainAnalyzer) strategy(ctx context.Context, analysis DomainAnalysis) string {
	fallback := strategyFallback(analysis)
	if u.completer == nil {
		return fallback
	}

	var b strings.Builder
	b.WriteString("Current knowledge domains: ")
	for i, g := range analysis.CurrentDomains {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (%d projects)", g.Domain, len(g.Projects))
	}
	b.WriteString(". Candidate new domains ranked by feasibility: ")
	for i, d := range analysis.NewDomains {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (score %.0f, %d transferable employees, missing: %s)",
			d.Domain, d.FeasibilityScore, d.TransferableCount, strings.Join(d.SkillGap, "/"))
	}

	prompt := fmt.Sprintf(
		"You advise an IT services company on expansion. %s\nWrite a short expansion strategy (one paragraph): which domain to enter first, what to hire or train for, and why. Plain prose only.",
		b.String(),
	)
	text, err := u.completer.Complete(ctx, prompt, 512)
	if err != nil || strings.TrimSpace(text) == "" {
		u.logger.Warn("expansion strategy fallback", zap.Error(err))
		return fallback
	}
	return strings.TrimSpace(text)
}

func strategyFallback(analysis DomainAnalysis) string {
	if len(analysis.NewDomains) == 0 {
		return "The workforce already covers every known domain; focus on deepening existing capabilities."
	}
	top := analysis.NewDomains[0]
	return fmt.Sprintf(
		"Entering %s is the most feasible next step (score %.0f): %d employees could transfer and the remaining gap is %s.",
		top.Domain, top.FeasibilityScore, top.TransferableCount, strings.Join(top.SkillGap, ", "),
	)
}
