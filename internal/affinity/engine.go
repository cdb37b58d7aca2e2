// Package affinity runs the pairwise affinity batch over the whole workforce.
package affinity

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	affdomain "talent-optimizer/internal/domain/affinity"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/event"
	"talent-optimizer/internal/pkg/workerpool"
	"talent-optimizer/internal/repository"
	"talent-optimizer/internal/ws"
)

const batchLockTTL = 30 * time.Minute

// BatchLocker guards against overlapping batch runs.
type BatchLocker interface {
	AcquireBatchLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	ReleaseBatchLock(ctx context.Context)
}

// BatchResult summarizes one completed batch run.
type BatchResult struct {
	TotalPairs     int           `json:"total_pairs"`
	ProcessedPairs int           `json:"processed_pairs"`
	FailedPairs    int           `json:"failed_pairs"`
	Elapsed        time.Duration `json:"-"`
}

// Engine recomputes affinity scores for every employee pair. A run is
// idempotent: existing records are overwritten in place.
type Engine struct {
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	messenger repository.MessengerLogRepository
	events    repository.CompanyEventRepository
	store     repository.AffinityRepository
	locker    BatchLocker
	publisher event.Publisher
	logger    *zap.Logger
	workers   int
	now       func() time.Time
}

func NewEngine(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	messenger repository.MessengerLogRepository,
	events repository.CompanyEventRepository,
	store repository.AffinityRepository,
	locker BatchLocker,
	publisher event.Publisher,
	logger *zap.Logger,
	workers int,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 8
	}
	if publisher == nil {
		publisher = event.NewMockPublisher()
	}
	return &Engine{
		employees: employees,
		projects:  projects,
		messenger: messenger,
		events:    events,
		store:     store,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
		workers:   workers,
		now:       time.Now,
	}
}

// ErrBatchRunning is returned when another batch holds the lock.
var ErrBatchRunning = fmt.Errorf("affinity batch already running")

// Run computes and stores affinity for every unordered employee pair. A
// failing pair is logged and skipped; it never aborts the batch.
func (e *Engine) Run(ctx context.Context) (BatchResult, error) {
	started := e.now()

	if e.locker != nil {
		owner := uuid.NewString()
		ok, err := e.locker.AcquireBatchLock(ctx, owner, batchLockTTL)
		if err != nil {
			return BatchResult{}, fmt.Errorf("acquire batch lock: %w", err)
		}
		if !ok {
			return BatchResult{}, ErrBatchRunning
		}
		defer e.locker.ReleaseBatchLock(ctx)
	}

	emps, err := e.employees.ListAll(ctx, 0)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list employees: %w", err)
	}
	projs, err := e.projects.ListAll(ctx, 0)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list projects: %w", err)
	}

	ids := make([]string, 0, len(emps))
	byID := make(map[string]employee.Employee, len(emps))
	for _, emp := range emps {
		if emp.UserID != "" {
			ids = append(ids, emp.UserID)
			byID[emp.UserID] = emp
		}
	}
	sort.Strings(ids)

	total := len(ids) * (len(ids) - 1) / 2
	e.logger.Info("affinity batch started",
		zap.Int("employees", len(ids)),
		zap.Int("pairs", total),
		zap.Int("workers", e.workers))

	pool := workerpool.New(e.workers, e.workers*2)

	var (
		mu        sync.Mutex
		processed int
		failed    int
	)

	go func() {
		defer pool.Close()
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				e1, e2 := byID[ids[i]], byID[ids[j]]
				accepted := pool.Submit(ctx, func(ctx context.Context) error {
					aff, err := e.computePair(ctx, e1, e2, projs)
					if err != nil {
						return fmt.Errorf("pair %s/%s: %w", e1.UserID, e2.UserID, err)
					}
					if err := e.store.Put(ctx, aff); err != nil {
						return fmt.Errorf("store pair %s/%s: %w", e1.UserID, e2.UserID, err)
					}
					return nil
				})
				if !accepted {
					return
				}
			}
		}
	}()

	for result := range pool.Run(ctx) {
		mu.Lock()
		processed++
		if result.Err != nil {
			failed++
			e.logger.Warn("affinity pair skipped", zap.Error(result.Err))
		}
		done, bad := processed, failed
		mu.Unlock()

		if done%100 == 0 || done == total {
			ws.NotifyBatchProgress(done, total, bad)
		}
	}

	if err := ctx.Err(); err != nil {
		return BatchResult{TotalPairs: total, ProcessedPairs: processed, FailedPairs: failed}, err
	}

	res := BatchResult{
		TotalPairs:     total,
		ProcessedPairs: processed,
		FailedPairs:    failed,
		Elapsed:        e.now().Sub(started),
	}

	ws.NotifyBatchCompleted(res.ProcessedPairs, res.TotalPairs, res.FailedPairs)

	if err := e.publisher.Publish(&event.Event{
		EventType: event.TypeAffinityBatchCompleted,
		SubjectID: "affinity-batch",
		Payload: map[string]any{
			"total_pairs":     res.TotalPairs,
			"processed_pairs": res.ProcessedPairs,
			"failed_pairs":    res.FailedPairs,
			"elapsed_seconds": res.Elapsed.Seconds(),
		},
	}); err != nil {
		e.logger.Warn("publish batch completion event", zap.Error(err))
	}

	e.logger.Info("affinity batch finished",
		zap.Int("processed", res.ProcessedPairs),
		zap.Int("failed", res.FailedPairs),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// ComputePair recalculates a single pair on demand.
func (e *Engine) ComputePair(ctx context.Context, e1, e2 string) (affdomain.Affinity, error) {
	emp1, err := e.employees.Get(ctx, e1)
	if err != nil {
		return affdomain.Affinity{}, fmt.Errorf("load employee %s: %w", e1, err)
	}
	emp2, err := e.employees.Get(ctx, e2)
	if err != nil {
		return affdomain.Affinity{}, fmt.Errorf("load employee %s: %w", e2, err)
	}
	projs, err := e.projects.ListAll(ctx, 0)
	if err != nil {
		return affdomain.Affinity{}, fmt.Errorf("list projects: %w", err)
	}
	return e.computePair(ctx, emp1, emp2, projs)
}

func (e *Engine) computePair(ctx context.Context, emp1, emp2 employee.Employee, projs []project.Project) (affdomain.Affinity, error) {
	pair := affdomain.EmployeePair{Employee1: emp1.UserID, Employee2: emp2.UserID}.Canonical()
	if pair.Employee1 != emp1.UserID {
		emp1, emp2 = emp2, emp1
	}

	shared, totalOverlap := sharedProjects(emp1, emp2, projs)

	stats, err := e.messenger.StatsForPair(ctx, pair.Employee1, pair.Employee2)
	if err != nil {
		return affdomain.Affinity{}, fmt.Errorf("messenger stats: %w", err)
	}

	sharedEvents, err := e.events.SharedEventCount(ctx, pair.Employee1, pair.Employee2)
	if err != nil {
		return affdomain.Affinity{}, fmt.Errorf("shared events: %w", err)
	}

	collab := affdomain.CollaborationScore(totalOverlap)
	comm := affdomain.CommunicationScore(stats.TotalMessages, stats.AvgResponseMinutes)
	social := affdomain.SocialScore(sharedEvents)
	personal := affdomain.PersonalScore(stats.PaydayContacts, stats.VacationContacts)

	return affdomain.Affinity{
		AffinityID: affdomain.PairID(pair.Employee1, pair.Employee2),
		Pair:       pair,
		Collaboration: affdomain.ProjectCollaboration{
			Score:          collab,
			SharedProjects: shared,
			TotalOverlap:   totalOverlap,
		},
		Communication: affdomain.MessengerCommunication{
			Score:              comm,
			TotalMessages:      stats.TotalMessages,
			AvgResponseMinutes: stats.AvgResponseMinutes,
		},
		Events: affdomain.CompanyEvents{
			Score:        social,
			SharedEvents: sharedEvents,
		},
		Personal: affdomain.PersonalCloseness{
			Score:            personal,
			PaydayContacts:   stats.PaydayContacts,
			VacationContacts: stats.VacationContacts,
		},
		OverallScore: affdomain.Overall(collab, comm, social, personal),
	}, nil
}

// sharedProjects derives collaboration evidence from the two work histories:
// every project id both employees list counts, whether or not the project
// document still names them, and the overlap is the intersection of the two
// declared periods rather than the project's own duration.
func sharedProjects(emp1, emp2 employee.Employee, projs []project.Project) ([]affdomain.SharedProject, float64) {
	type span struct {
		name       string
		start, end time.Time
	}
	otherSpans := make(map[string]span, len(emp2.WorkExperiences))
	for _, we := range emp2.WorkExperiences {
		if we.ProjectID == "" {
			continue
		}
		if _, seen := otherSpans[we.ProjectID]; seen {
			continue
		}
		start, end, ok := we.PeriodRange()
		if !ok {
			continue
		}
		otherSpans[we.ProjectID] = span{name: we.ProjectName, start: start, end: end}
	}

	byProjectID := make(map[string]project.Project, len(projs))
	for _, p := range projs {
		byProjectID[p.ProjectID] = p
	}

	shared := make([]affdomain.SharedProject, 0)
	seen := make(map[string]bool)
	var total float64
	for _, we := range emp1.WorkExperiences {
		other, ok := otherSpans[we.ProjectID]
		if !ok || seen[we.ProjectID] {
			continue
		}
		seen[we.ProjectID] = true
		start, end, okRange := we.PeriodRange()
		if !okRange {
			continue
		}
		overlap := affdomain.OverlapCalendarMonths(start, end, other.start, other.end)

		name := we.ProjectName
		if name == "" {
			name = other.name
		}
		sameTeam := false
		if p, known := byProjectID[we.ProjectID]; known {
			if name == "" {
				name = p.ProjectName
			}
			sameTeam = p.HasMember(emp1.UserID) && p.HasMember(emp2.UserID)
		}
		shared = append(shared, affdomain.SharedProject{
			ProjectID:     we.ProjectID,
			ProjectName:   name,
			OverlapMonths: overlap,
			SameTeam:      sameTeam,
		})
		total += overlap
	}
	return shared, total
}
