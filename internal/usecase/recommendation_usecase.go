package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"talent-optimizer/internal/ai"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/infrastructure/cache"
	"talent-optimizer/internal/pkg/workerpool"
	"talent-optimizer/internal/repository"
	"talent-optimizer/internal/skills"
	"talent-optimizer/internal/vectorindex"
)

// Priorities accepted by the recommendation endpoint.
const (
	PrioritySkill    = "skill"
	PriorityAffinity = "affinity"
	PriorityBalanced = "balanced"
)

const semanticTopK = 20

type signalWeights struct {
	skill    float64
	semantic float64
	affinity float64
}

var priorityWeights = map[string]signalWeights{
	PrioritySkill:    {skill: 0.6, semantic: 0.3, affinity: 0.1},
	PriorityAffinity: {skill: 0.3, semantic: 0.2, affinity: 0.5},
	PriorityBalanced: {skill: 0.4, semantic: 0.3, affinity: 0.3},
}

type RecommendationInput struct {
	ProjectID      string   `json:"project_id"`
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size"`
	Priority       string   `json:"priority"`
}

type CandidateScore struct {
	UserID            string   `json:"user_id"`
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	YearsOfExperience float64  `json:"years_of_experience"`
	SkillScore        float64  `json:"skill_match_score"`
	SemanticScore     float64  `json:"similarity_score"`
	AffinityScore     float64  `json:"affinity_score"`
	OverallScore      float64  `json:"overall_score"`
	MatchedSkills     []string `json:"matched_skills"`
	CurrentProject    string   `json:"current_project"`
	Availability      string   `json:"availability"`
	Reasoning         string   `json:"reasoning"`
}

type Recommendation struct {
	ProjectID      string           `json:"project_id"`
	ProjectName    string           `json:"project_name"`
	Priority       string           `json:"priority"`
	RequiredSkills []string         `json:"required_skills"`
	TeamSize       int              `json:"team_size"`
	Candidates     []CandidateScore `json:"candidates"`
}

// ResultCache is the slice of the Redis cache the recommendation pipeline
// uses. A nil cache disables both result and embedding caching.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetEmbedding(ctx context.Context, text string) ([]float32, bool)
	PutEmbedding(ctx context.Context, text string, vec []float32)
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, in RecommendationInput) (Recommendation, error)
}

type RecommendationEngine struct {
	employees  repository.EmployeeRepository
	projects   repository.ProjectRepository
	affinities repository.AffinityRepository
	embedder   ai.Embedder
	completer  ai.Completer
	cache      ResultCache
	logger     *zap.Logger
	workers    int
}

func NewRecommendationEngine(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	affinities repository.AffinityRepository,
	embedder ai.Embedder,
	completer ai.Completer,
	resultCache ResultCache,
	logger *zap.Logger,
	workers int,
) *RecommendationEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 8
	}
	return &RecommendationEngine{
		employees:  employees,
		projects:   projects,
		affinities: affinities,
		embedder:   embedder,
		completer:  completer,
		cache:      resultCache,
		logger:     logger,
		workers:    workers,
	}
}

func (e *RecommendationEngine) Recommend(ctx context.Context, in RecommendationInput) (Recommendation, error) {
	in.Priority = strings.ToLower(strings.TrimSpace(in.Priority))
	if in.Priority == "" {
		in.Priority = PriorityBalanced
	}
	weights, ok := priorityWeights[in.Priority]
	if !ok {
		return Recommendation{}, validationError("priority must be one of skill, affinity, balanced")
	}
	if in.TeamSize < 1 {
		return Recommendation{}, validationError("team_size must be at least 1")
	}
	if strings.TrimSpace(in.ProjectID) == "" {
		return Recommendation{}, validationError("project_id is required")
	}

	proj, err := e.projects.Get(ctx, in.ProjectID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Recommendation{}, ErrProjectNotFound
		}
		return Recommendation{}, fmt.Errorf("%w: load project: %v", ErrInternal, err)
	}

	required := skills.DedupeNormalized(in.RequiredSkills)
	if len(required) == 0 {
		required = skills.DedupeNormalized(proj.TechStack.AllSkills())
	}
	if len(required) == 0 {
		return Recommendation{}, validationError("required_skills is empty and the project declares no tech stack")
	}

	cacheKey := recommendationCacheKey(in.ProjectID, required, in.TeamSize, in.Priority)
	if e.cache != nil {
		var cached Recommendation
		if hit, err := e.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := e.employees.ListAll(ctx, 0)
	if err != nil {
		return Recommendation{}, fmt.Errorf("%w: list employees: %v", ErrInternal, err)
	}

	projs, projsErr := e.projects.ListAll(ctx, 0)

	scores := e.scoreCandidates(ctx, candidates, required)
	if len(scores) == 0 {
		return Recommendation{
			ProjectID:      proj.ProjectID,
			ProjectName:    proj.ProjectName,
			Priority:       in.Priority,
			RequiredSkills: required,
			TeamSize:       in.TeamSize,
			Candidates:     []CandidateScore{},
		}, nil
	}

	for i := range scores {
		c := &scores[i]
		c.OverallScore = weights.skill*c.SkillScore +
			weights.semantic*c.SemanticScore +
			weights.affinity*c.AffinityScore
		c.Availability = availability(c.UserID, proj.ProjectID, projs, projsErr)
	}

	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.SkillScore != b.SkillScore {
			return a.SkillScore > b.SkillScore
		}
		if a.YearsOfExperience != b.YearsOfExperience {
			return a.YearsOfExperience < b.YearsOfExperience
		}
		return a.UserID < b.UserID
	})

	if len(scores) > in.TeamSize {
		scores = scores[:in.TeamSize]
	}

	e.fillReasoning(ctx, scores, proj, required)

	out := Recommendation{
		ProjectID:      proj.ProjectID,
		ProjectName:    proj.ProjectName,
		Priority:       in.Priority,
		RequiredSkills: required,
		TeamSize:       in.TeamSize,
		Candidates:     scores,
	}

	if e.cache != nil {
		if err := e.cache.SetJSON(ctx, cacheKey, out, cache.RecommendationTTL); err != nil {
			e.logger.Warn("cache recommendation", zap.Error(err))
		}
	}

	return out, nil
}

// scoreCandidates computes skill, semantic and affinity signals. The
// candidate set is the union of skill-matched and vector-matched employees;
// a signal the candidate lacks stays at zero.
func (e *RecommendationEngine) scoreCandidates(ctx context.Context, candidates []employee.Employee, required []string) []CandidateScore {
	reqSet := skills.NormalizeSet(required)

	byID := make(map[string]*CandidateScore)
	ordered := make([]*CandidateScore, 0, len(candidates))
	for _, emp := range candidates {
		matched := make([]string, 0)
		for _, name := range emp.NormalizedSkillNames() {
			if _, ok := reqSet[name]; ok {
				matched = append(matched, name)
			}
		}
		if len(matched) == 0 {
			continue
		}
		cs := newCandidateScore(emp)
		cs.SkillScore = 100 * float64(len(matched)) / float64(len(required))
		cs.MatchedSkills = matched
		byID[emp.UserID] = cs
		ordered = append(ordered, cs)
	}

	ordered = e.fillSemanticScores(ctx, candidates, required, byID, ordered)
	e.fillAffinityScores(ctx, ordered)

	out := make([]CandidateScore, 0, len(ordered))
	for _, cs := range ordered {
		out = append(out, *cs)
	}
	return out
}

func newCandidateScore(emp employee.Employee) *CandidateScore {
	return &CandidateScore{
		UserID:            emp.UserID,
		Name:              emp.Name,
		Role:              emp.Role,
		YearsOfExperience: emp.YearsOfExperience,
		CurrentProject:    emp.CurrentProject,
		MatchedSkills:     []string{},
	}
}

// fillSemanticScores indexes every employee profile and merges the top
// vector matches into the candidate set, adding employees that matched no
// required skill with a zero skill score.
func (e *RecommendationEngine) fillSemanticScores(ctx context.Context, candidates []employee.Employee, required []string, byID map[string]*CandidateScore, ordered []*CandidateScore) []*CandidateScore {
	if e.embedder == nil {
		return ordered
	}

	query, err := e.embed(ctx, "Project requirements: "+strings.Join(required, ", "))
	if err != nil {
		e.logger.Warn("embed requirements, skipping semantic signal", zap.Error(err))
		return ordered
	}

	empByID := make(map[string]employee.Employee, len(candidates))
	index := vectorindex.New(e.embedder.Dimensions(), 16, 512)
	for _, emp := range candidates {
		if emp.UserID == "" {
			continue
		}
		empByID[emp.UserID] = emp
		vec, err := e.embed(ctx, profileText(emp))
		if err != nil {
			e.logger.Warn("embed profile", zap.String("user_id", emp.UserID), zap.Error(err))
			continue
		}
		if err := index.Upsert(emp.UserID, vec); err != nil {
			e.logger.Warn("index profile", zap.String("user_id", emp.UserID), zap.Error(err))
		}
	}

	matches, err := index.Search(query, semanticTopK)
	if err != nil {
		e.logger.Warn("semantic search", zap.Error(err))
		return ordered
	}
	for _, m := range matches {
		cs, ok := byID[m.ID]
		if !ok {
			cs = newCandidateScore(empByID[m.ID])
			byID[m.ID] = cs
			ordered = append(ordered, cs)
		}
		score := m.Score * 100
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		cs.SemanticScore = score
	}
	return ordered
}

func (e *RecommendationEngine) fillAffinityScores(ctx context.Context, ordered []*CandidateScore) {
	for _, cs := range ordered {
		affs, err := e.affinities.FindByEmployee(ctx, cs.UserID)
		if err != nil {
			e.logger.Warn("load affinities", zap.String("user_id", cs.UserID), zap.Error(err))
			continue
		}
		if len(affs) == 0 {
			continue
		}
		var sum float64
		for _, a := range affs {
			sum += a.OverallScore
		}
		cs.AffinityScore = sum / float64(len(affs))
	}
}

func (e *RecommendationEngine) embed(ctx context.Context, text string) ([]float32, error) {
	if e.cache != nil {
		if vec, ok := e.cache.GetEmbedding(ctx, text); ok {
			return vec, nil
		}
	}
	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.PutEmbedding(ctx, text, vec)
	}
	return vec, nil
}

// fillReasoning asks the completion model for a one-paragraph rationale per
// selected candidate, bounded by the worker pool. Failures fall back to a
// deterministic template.
func (e *RecommendationEngine) fillReasoning(ctx context.Context, selected []CandidateScore, proj project.Project, required []string) {
	if len(selected) == 0 {
		return
	}

	pool := workerpool.New(e.workers, len(selected))
	var mu sync.Mutex

	for i := range selected {
		idx := i
		pool.Submit(ctx, func(ctx context.Context) error {
			text := e.reasoningFor(ctx, selected[idx], proj, required)
			mu.Lock()
			selected[idx].Reasoning = text
			mu.Unlock()
			return nil
		})
	}
	pool.Close()
	for range pool.Run(ctx) {
	}
}

func (e *RecommendationEngine) reasoningFor(ctx context.Context, c CandidateScore, proj project.Project, required []string) string {
	fallback := fmt.Sprintf(
		"%s matches %d of %d required skills (%s) with %.0f years of experience and is %s.",
		c.Name, len(c.MatchedSkills), len(required), strings.Join(c.MatchedSkills, ", "),
		c.YearsOfExperience, strings.ToLower(c.Availability),
	)
	if e.completer == nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"In two sentences, explain why %s (role %s, %.0f years of experience, skills: %s) fits the project %q which requires: %s. Answer in plain prose.",
		c.Name, c.Role, c.YearsOfExperience, strings.Join(c.MatchedSkills, ", "),
		proj.ProjectName, strings.Join(required, ", "),
	)
	text, err := e.completer.Complete(ctx, prompt, 256)
	if err != nil || strings.TrimSpace(text) == "" {
		e.logger.Warn("candidate reasoning fallback", zap.String("user_id", c.UserID), zap.Error(err))
		return fallback
	}
	return strings.TrimSpace(text)
}

// availability reports whether the candidate is free for the target project.
func availability(userID, targetProjectID string, projs []project.Project, projsErr error) string {
	if projsErr != nil {
		return "Unknown"
	}
	now := time.Now()
	for _, p := range projs {
		if p.ProjectID == targetProjectID || !p.HasMember(userID) {
			continue
		}
		if projectActive(p, now) {
			return "Busy (" + p.ProjectName + ")"
		}
	}
	return "Available"
}

func projectActive(p project.Project, now time.Time) bool {
	end, ok := p.Period.ParseEnd()
	if !ok {
		// open-ended projects count as active
		return true
	}
	return end.After(now)
}

func profileText(emp employee.Employee) string {
	var b strings.Builder
	b.WriteString(emp.Role)
	b.WriteString(". Skills: ")
	b.WriteString(strings.Join(emp.NormalizedSkillNames(), ", "))
	for _, we := range emp.WorkExperiences {
		b.WriteString(". ")
		b.WriteString(we.ProjectName)
		b.WriteString(": ")
		b.WriteString(we.MainTasks)
	}
	return b.String()
}

func recommendationCacheKey(projectID string, required []string, teamSize int, priority string) string {
	payload, _ := json.Marshal(struct {
		ProjectID string   `json:"p"`
		Required  []string `json:"r"`
		TeamSize  int      `json:"n"`
		Priority  string   `json:"w"`
	}{projectID, required, teamSize, priority})
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("rec:%x", sum[:16])
}
