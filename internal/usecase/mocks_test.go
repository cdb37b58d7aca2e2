package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talent-optimizer/internal/domain/affinity"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/evaluation"
	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/domain/trend"
	"talent-optimizer/internal/repository"
)

func notFoundErr(op string) error {
	return &repository.Error{Kind: repository.KindNotFound, Op: op}
}

type fakeEmployeeRepo struct {
	byID    map[string]employee.Employee
	listErr error
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.byID[e.UserID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) error {
	r.byID[emp.UserID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Get(ctx context.Context, userID string) (employee.Employee, error) {
	emp, ok := r.byID[userID]
	if !ok {
		return employee.Employee{}, notFoundErr("employee.get")
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	r.byID[emp.UserID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, userID string) error {
	delete(r.byID, userID)
	return nil
}

func (r *fakeEmployeeRepo) ListAll(ctx context.Context, limit int) ([]employee.Employee, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]employee.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindBySkills(ctx context.Context, required []string) ([]employee.Employee, error) {
	all, _ := r.ListAll(ctx, 0)
	out := make([]employee.Employee, 0)
	for _, e := range all {
		if e.HasAllSkills(required) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	all, _ := r.ListAll(ctx, 0)
	out := make([]employee.Employee, 0)
	for _, e := range all {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeProjectRepo struct {
	byID    map[string]project.Project
	listErr error
}

func newFakeProjectRepo(projs ...project.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{byID: make(map[string]project.Project)}
	for _, p := range projs {
		r.byID[p.ProjectID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(ctx context.Context, p project.Project) error {
	r.byID[p.ProjectID] = p
	return nil
}

func (r *fakeProjectRepo) Get(ctx context.Context, projectID string) (project.Project, error) {
	p, ok := r.byID[projectID]
	if !ok {
		return project.Project{}, notFoundErr("project.get")
	}
	return p, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, p project.Project) error {
	r.byID[p.ProjectID] = p
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, projectID string) error {
	delete(r.byID, projectID)
	return nil
}

func (r *fakeProjectRepo) ListAll(ctx context.Context, limit int) ([]project.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]project.Project, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByIndustry(ctx context.Context, industry string) ([]project.Project, error) {
	out := make([]project.Project, 0)
	for _, p := range r.byID {
		if p.ClientIndustry == industry {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAffinityRepo struct {
	records []affinity.Affinity
}

func (r *fakeAffinityRepo) Put(ctx context.Context, aff affinity.Affinity) error {
	r.records = append(r.records, aff)
	return nil
}

func (r *fakeAffinityRepo) Get(ctx context.Context, affinityID string) (affinity.Affinity, error) {
	for _, a := range r.records {
		if a.AffinityID == affinityID {
			return a, nil
		}
	}
	return affinity.Affinity{}, notFoundErr("affinity.get")
}

func (r *fakeAffinityRepo) Delete(ctx context.Context, affinityID string) error { return nil }

func (r *fakeAffinityRepo) ListAll(ctx context.Context, limit int) ([]affinity.Affinity, error) {
	return r.records, nil
}

func (r *fakeAffinityRepo) FindByPair(ctx context.Context, e1, e2 string) (affinity.Affinity, error) {
	return r.Get(ctx, affinity.PairID(e1, e2))
}

func (r *fakeAffinityRepo) FindByEmployee(ctx context.Context, userID string) ([]affinity.Affinity, error) {
	out := make([]affinity.Affinity, 0)
	for _, a := range r.records {
		if a.Pair.Mentions(userID) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTrendRepo struct {
	byName map[string]trend.TechTrend
}

func (r *fakeTrendRepo) Get(ctx context.Context, techName string) (trend.TechTrend, error) {
	t, ok := r.byName[techName]
	if !ok {
		return trend.TechTrend{}, notFoundErr("trend.get")
	}
	return t, nil
}

func (r *fakeTrendRepo) ListAll(ctx context.Context, limit int) ([]trend.TechTrend, error) {
	out := make([]trend.TechTrend, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	return out, nil
}

type fakeEvaluationRepo struct {
	byID map[string]evaluation.Evaluation
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{byID: make(map[string]evaluation.Evaluation)}
}

func (r *fakeEvaluationRepo) Create(ctx context.Context, ev evaluation.Evaluation) error {
	r.byID[ev.EvaluationID] = ev
	return nil
}

func (r *fakeEvaluationRepo) Get(ctx context.Context, evaluationID string) (evaluation.Evaluation, error) {
	ev, ok := r.byID[evaluationID]
	if !ok {
		return evaluation.Evaluation{}, notFoundErr("evaluation.get")
	}
	return ev, nil
}

func (r *fakeEvaluationRepo) Update(ctx context.Context, ev evaluation.Evaluation) error {
	r.byID[ev.EvaluationID] = ev
	return nil
}

func (r *fakeEvaluationRepo) Delete(ctx context.Context, evaluationID string) error {
	delete(r.byID, evaluationID)
	return nil
}

func (r *fakeEvaluationRepo) ListAll(ctx context.Context, limit int) ([]evaluation.Evaluation, error) {
	out := make([]evaluation.Evaluation, 0, len(r.byID))
	for _, ev := range r.byID {
		out = append(out, ev)
	}
	return out, nil
}

func (r *fakeEvaluationRepo) FindByStatus(ctx context.Context, status evaluation.Status) ([]evaluation.Evaluation, error) {
	out := make([]evaluation.Evaluation, 0)
	for _, ev := range r.byID {
		if ev.Status == status {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (c *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

type fakeEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	dim      int
	err      error
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	if e.fallback != nil {
		return e.fallback, nil
	}
	return make([]float32, e.dim), nil
}

func (e *fakeEmbedder) Dimensions() int { return e.dim }

type fakeCache struct {
	json       map[string][]byte
	embeddings map[string][]float32
}

func newFakeCache() *fakeCache {
	return &fakeCache{json: make(map[string][]byte), embeddings: make(map[string][]float32)}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok := c.json[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.json[key] = raw
	return nil
}

func (c *fakeCache) GetEmbedding(ctx context.Context, text string) ([]float32, bool) {
	v, ok := c.embeddings[text]
	return v, ok
}

func (c *fakeCache) PutEmbedding(ctx context.Context, text string, vec []float32) {
	c.embeddings[text] = vec
}

var errStub = errors.New("stub failure")
