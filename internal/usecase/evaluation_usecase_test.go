package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/evaluation"
	"talent-optimizer/internal/event"
)

func evalEmployee() employee.Employee {
	return employee.Employee{
		UserID:            "u1",
		Name:              "Kim",
		Role:              "Backend Developer",
		YearsOfExperience: 10,
		Skills: []employee.Skill{
			{Name: "Go", Level: employee.LevelExpert, Years: 5},
			{Name: "PostgreSQL", Level: employee.LevelAdvanced, Years: 4},
		},
		WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", ProjectName: "Billing", Role: "Senior Developer", Period: "2020.01 - 2021.01", PerformanceResult: "cut costs by 20%"},
		},
	}
}

func newTestEvaluator(emps *fakeEmployeeRepo, completer *fakeCompleter, pub event.Publisher) (*Evaluator, *fakeEvaluationRepo) {
	evals := newFakeEvaluationRepo()
	ev := NewEvaluator(emps, &fakeTrendRepo{}, evals, nil, pub, nil)
	if completer != nil {
		ev.completer = completer
	}
	return ev, evals
}

func TestQuantitativeProducesFiniteScores(t *testing.T) {
	ev, _ := newTestEvaluator(newFakeEmployeeRepo(evalEmployee()), nil, nil)

	report, err := ev.Quantitative(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if report.OverallScore <= 0 || report.OverallScore > 100 {
		t.Fatalf("overall = %f, want (0,100]", report.OverallScore)
	}
	if math.IsNaN(report.OverallScore) {
		t.Fatal("overall is NaN")
	}
	if report.Experience.ExperienceScore != 50 {
		t.Errorf("experience = %f, want 50 (10 of 20 years)", report.Experience.ExperienceScore)
	}
}

func TestQuantitativeRejectsNonFiniteYears(t *testing.T) {
	emp := evalEmployee()
	emp.YearsOfExperience = math.NaN()
	ev, _ := newTestEvaluator(newFakeEmployeeRepo(emp), nil, nil)

	if _, err := ev.Quantitative(context.Background(), "u1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	emp.YearsOfExperience = -2
	ev2, _ := newTestEvaluator(newFakeEmployeeRepo(emp), nil, nil)
	if _, err := ev2.Quantitative(context.Background(), "u1"); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative years err = %v, want ErrValidation", err)
	}
}

func TestQuantitativeUnknownEmployee(t *testing.T) {
	ev, _ := newTestEvaluator(newFakeEmployeeRepo(), nil, nil)
	if _, err := ev.Quantitative(context.Background(), "nobody"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestQualitativeParsesLLMNarrative(t *testing.T) {
	completer := &fakeCompleter{response: "```json\n" + `{
		"strengths": ["deep Go expertise", "database design", "mentoring"],
		"weaknesses": ["limited frontend exposure", "narrow domain"],
		"suitable_projects": ["backend platforms"],
		"development_areas": ["cloud architecture"],
		"assessment": "A strong backend engineer."
	}` + "\n```"}

	ev, _ := newTestEvaluator(newFakeEmployeeRepo(evalEmployee()), completer, nil)

	report, err := ev.Qualitative(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Strengths) != 3 || report.Strengths[0] != "deep Go expertise" {
		t.Fatalf("strengths = %v", report.Strengths)
	}
	if report.Narrative != "A strong backend engineer." {
		t.Fatalf("narrative = %q", report.Narrative)
	}
}

func TestQualitativeFallsBackOnFailure(t *testing.T) {
	ev, _ := newTestEvaluator(newFakeEmployeeRepo(evalEmployee()), &fakeCompleter{err: errStub}, nil)

	report, err := ev.Qualitative(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Strengths) == 0 || report.Narrative == "" {
		t.Fatal("deterministic defaults missing")
	}
	if !strings.Contains(report.Narrative, "could not be generated") {
		t.Errorf("narrative = %q, want fallback text", report.Narrative)
	}
}

func TestQualitativeIncludesSkillGapsAgainstPeers(t *testing.T) {
	subject := evalEmployee()
	peer := func(id string, skills ...string) employee.Employee {
		return skillEmployee(id, "Peer "+id, "Backend Developer", 5, skills...)
	}
	emps := newFakeEmployeeRepo(subject,
		peer("u2", "Go", "Kubernetes"),
		peer("u3", "Go", "Kubernetes"),
		peer("u4", "Go"),
	)
	ev, _ := newTestEvaluator(emps, &fakeCompleter{err: errStub}, nil)

	report, err := ev.Qualitative(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if report.SkillGaps.PeerCount != 3 {
		t.Fatalf("peer count = %d, want 3 (self excluded)", report.SkillGaps.PeerCount)
	}
	found := false
	for _, g := range report.SkillGaps.Gaps {
		if g.SkillName == "Kubernetes" && g.Priority == evaluation.GapRequired {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected required Kubernetes gap, got %+v", report.SkillGaps.Gaps)
	}
}

func TestEvaluateStoresPendingRecord(t *testing.T) {
	ev, evals := newTestEvaluator(newFakeEmployeeRepo(evalEmployee()), nil, nil)

	stored, err := ev.Evaluate(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stored.EvaluationID, "EVAL_") {
		t.Fatalf("evaluation id = %q", stored.EvaluationID)
	}
	if stored.Status != evaluation.StatusPending {
		t.Fatalf("status = %s, want pending", stored.Status)
	}
	if stored.Quantitative == nil || stored.Qualitative == nil {
		t.Fatal("reports missing from record")
	}
	if _, ok := evals.byID[stored.EvaluationID]; !ok {
		t.Fatal("record not persisted")
	}
}

func TestTransitionLifecycle(t *testing.T) {
	pub := event.NewMockPublisher()
	ev, evals := newTestEvaluator(newFakeEmployeeRepo(evalEmployee()), nil, pub)

	stored, err := ev.Evaluate(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ev.Transition(context.Background(), stored.EvaluationID, "review", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("review without comment: err = %v, want ErrValidation", err)
	}

	reviewed, err := ev.Transition(context.Background(), stored.EvaluationID, "review", "needs a second look")
	if err != nil {
		t.Fatal(err)
	}
	if reviewed.Comment != "needs a second look" {
		t.Fatalf("comment = %q", reviewed.Comment)
	}

	approved, err := ev.Transition(context.Background(), stored.EvaluationID, "approved", "")
	if err != nil {
		t.Fatal(err)
	}
	if approved.ApprovedAt == nil {
		t.Fatal("approved_at not stamped")
	}

	// Terminal states stay re-enterable.
	rejected, err := ev.Transition(context.Background(), stored.EvaluationID, "rejected", "profile inconsistencies")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != evaluation.StatusRejected {
		t.Fatalf("status = %s", rejected.Status)
	}

	if got := evals.byID[stored.EvaluationID].Status; got != evaluation.StatusRejected {
		t.Fatalf("persisted status = %s, want rejected", got)
	}
	if len(pub.Events) != 3 {
		t.Fatalf("published %d events, want 3", len(pub.Events))
	}
	if pub.Events[0].EventType != event.TypeEvaluationStatusChanged {
		t.Fatalf("event type = %s", pub.Events[0].EventType)
	}
}

func TestTransitionUnknownEvaluation(t *testing.T) {
	ev, _ := newTestEvaluator(newFakeEmployeeRepo(), nil, nil)
	if _, err := ev.Transition(context.Background(), "EVAL_missing", "approved", ""); !errors.Is(err, ErrEvaluationNotFound) {
		t.Fatalf("err = %v, want ErrEvaluationNotFound", err)
	}
	if _, err := ev.Transition(context.Background(), "EVAL_missing", "archived", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad status err = %v, want ErrValidation", err)
	}
}
