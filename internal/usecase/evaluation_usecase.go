package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-optimizer/internal/ai"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/evaluation"
	"talent-optimizer/internal/domain/trend"
	"talent-optimizer/internal/event"
	"talent-optimizer/internal/repository"
)

type EvaluationUsecase interface {
	Quantitative(ctx context.Context, employeeID string) (evaluation.QuantitativeReport, error)
	Qualitative(ctx context.Context, employeeID string) (evaluation.QualitativeReport, error)
	Evaluate(ctx context.Context, employeeID string) (evaluation.Evaluation, error)
	Transition(ctx context.Context, evaluationID, target, note string) (evaluation.Evaluation, error)
}

type Evaluator struct {
	employees   repository.EmployeeRepository
	trends      repository.TechTrendRepository
	evaluations repository.EvaluationRepository
	completer   ai.Completer
	publisher   event.Publisher
	logger      *zap.Logger
	now         func() time.Time
}

func NewEvaluator(
	employees repository.EmployeeRepository,
	trends repository.TechTrendRepository,
	evaluations repository.EvaluationRepository,
	completer ai.Completer,
	publisher event.Publisher,
	logger *zap.Logger,
) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = event.NewMockPublisher()
	}
	return &Evaluator{
		employees:   employees,
		trends:      trends,
		evaluations: evaluations,
		completer:   completer,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Evaluator) Quantitative(ctx context.Context, employeeID string) (evaluation.QuantitativeReport, error) {
	emp, err := u.loadEmployee(ctx, employeeID)
	if err != nil {
		return evaluation.QuantitativeReport{}, err
	}
	if err := validateProfileNumbers(emp); err != nil {
		return evaluation.QuantitativeReport{}, err
	}
	return evaluation.EvaluateQuantitative(emp, u.trendLookup(ctx)), nil
}

func (u *Evaluator) Qualitative(ctx context.Context, employeeID string) (evaluation.QualitativeReport, error) {
	emp, err := u.loadEmployee(ctx, employeeID)
	if err != nil {
		return evaluation.QualitativeReport{}, err
	}

	peers, err := u.employees.FindByRole(ctx, emp.Role)
	if err != nil {
		return evaluation.QualitativeReport{}, fmt.Errorf("%w: load peers: %v", ErrInternal, err)
	}
	peerGroup := make([]employee.Employee, 0, len(peers))
	for _, p := range peers {
		if p.UserID != emp.UserID {
			peerGroup = append(peerGroup, p)
		}
	}

	fields := u.narrative(ctx, emp)

	return evaluation.QualitativeReport{
		EmployeeID:       emp.UserID,
		Strengths:        fields.Strengths,
		Weaknesses:       fields.Weaknesses,
		SuitableProjects: fields.SuitableProjects,
		DevelopmentAreas: fields.DevelopmentAreas,
		Narrative:        fields.Assessment,
		SuspiciousFlags:  evaluation.DetectSuspiciousContent(emp),
		SkillGaps:        evaluation.AnalyzeSkillGaps(emp, peerGroup),
	}, nil
}

// Evaluate runs both analyses and stores a pending evaluation record.
func (u *Evaluator) Evaluate(ctx context.Context, employeeID string) (evaluation.Evaluation, error) {
	quant, err := u.Quantitative(ctx, employeeID)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	qual, err := u.Qualitative(ctx, employeeID)
	if err != nil {
		return evaluation.Evaluation{}, err
	}

	now := u.now().UTC()
	ev := evaluation.Evaluation{
		EvaluationID: "EVAL_" + uuid.NewString(),
		EmployeeID:   employeeID,
		Status:       evaluation.StatusPending,
		Quantitative: &quant,
		Qualitative:  &qual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.evaluations.Create(ctx, ev); err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("%w: store evaluation: %v", ErrInternal, err)
	}
	return ev, nil
}

// Transition moves an evaluation to a new status and publishes the change.
func (u *Evaluator) Transition(ctx context.Context, evaluationID, target, note string) (evaluation.Evaluation, error) {
	status, err := evaluation.ParseStatus(target)
	if err != nil {
		return evaluation.Evaluation{}, validationError(err.Error())
	}

	ev, err := u.evaluations.Get(ctx, evaluationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return evaluation.Evaluation{}, ErrEvaluationNotFound
		}
		return evaluation.Evaluation{}, fmt.Errorf("%w: load evaluation: %v", ErrInternal, err)
	}

	from := ev.Status
	if err := ev.Transition(status, note, u.now().UTC()); err != nil {
		return evaluation.Evaluation{}, validationError(err.Error())
	}

	if err := u.evaluations.Update(ctx, ev); err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("%w: update evaluation: %v", ErrInternal, err)
	}

	if err := u.publisher.Publish(&event.Event{
		EventType: event.TypeEvaluationStatusChanged,
		SubjectID: ev.EvaluationID,
		Payload: map[string]any{
			"employee_id": ev.EmployeeID,
			"from":        string(from),
			"to":          string(ev.Status),
		},
	}); err != nil {
		u.logger.Warn("publish status change", zap.Error(err))
	}

	return ev, nil
}

func (u *Evaluator) loadEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	if strings.TrimSpace(employeeID) == "" {
		return employee.Employee{}, validationError("employee_id is required")
	}
	emp, err := u.employees.Get(ctx, employeeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("%w: load employee: %v", ErrInternal, err)
	}
	return emp, nil
}

// trendLookup adapts the trend repository to the evaluator's lookup shape.
// Missing trends fall back to neutral defaults inside the evaluator.
func (u *Evaluator) trendLookup(ctx context.Context) evaluation.TrendLookup {
	return func(name string) (trend.TechTrend, bool) {
		t, err := u.trends.Get(ctx, name)
		if err != nil {
			if !repository.IsNotFound(err) {
				u.logger.Warn("trend lookup", zap.String("tech", name), zap.Error(err))
			}
			return trend.TechTrend{}, false
		}
		return t, true
	}
}

func (u *Evaluator) narrative(ctx context.Context, emp employee.Employee) evaluation.NarrativeFields {
	fallback := evaluation.DefaultNarrativeFields(emp)
	if u.completer == nil {
		return fallback
	}

	profile, err := json.Marshal(emp)
	if err != nil {
		return fallback
	}

	prompt := fmt.Sprintf(`You are an HR analyst. Given this employee profile as JSON:

%s

Respond with ONLY a JSON object of this shape:
{"strengths": ["3-4 items"], "weaknesses": ["2-3 items"], "suitable_projects": ["project categories"], "development_areas": ["items"], "assessment": "one paragraph"}`, profile)

	text, err := u.completer.Complete(ctx, prompt, 1024)
	if err != nil {
		u.logger.Warn("qualitative narrative fallback", zap.String("user_id", emp.UserID), zap.Error(err))
		return fallback
	}

	var fields evaluation.NarrativeFields
	if err := json.Unmarshal([]byte(ai.ExtractJSON(text)), &fields); err != nil {
		u.logger.Warn("qualitative narrative unparseable", zap.String("user_id", emp.UserID), zap.Error(err))
		return fallback
	}
	if len(fields.Strengths) == 0 || fields.Assessment == "" {
		return fallback
	}
	return fields
}

func validateProfileNumbers(emp employee.Employee) error {
	if math.IsNaN(emp.YearsOfExperience) || math.IsInf(emp.YearsOfExperience, 0) {
		return validationError("years_of_experience is not a finite number")
	}
	if emp.YearsOfExperience < 0 {
		return validationError("years_of_experience must not be negative")
	}
	for _, s := range emp.Skills {
		if math.IsNaN(s.Years) || math.IsInf(s.Years, 0) || s.Years < 0 {
			return validationError("skill years must be finite and non-negative")
		}
	}
	return nil
}
