package affinity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	affdomain "talent-optimizer/internal/domain/affinity"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/event"
	"talent-optimizer/internal/repository"
)

type stubEmployeeRepo struct {
	repository.EmployeeRepository
	employees []employee.Employee
}

func (s *stubEmployeeRepo) ListAll(ctx context.Context, limit int) ([]employee.Employee, error) {
	return s.employees, nil
}

type stubProjectRepo struct {
	repository.ProjectRepository
	projects []project.Project
}

func (s *stubProjectRepo) ListAll(ctx context.Context, limit int) ([]project.Project, error) {
	return s.projects, nil
}

type stubMessengerRepo struct {
	stats map[string]repository.PairStats
	fail  map[string]error
}

func (s *stubMessengerRepo) StatsForPair(ctx context.Context, e1, e2 string) (repository.PairStats, error) {
	key := e1 + "/" + e2
	if err, ok := s.fail[key]; ok {
		return repository.PairStats{}, err
	}
	return s.stats[key], nil
}

type stubEventRepo struct {
	shared map[string]int
}

func (s *stubEventRepo) ListAll(ctx context.Context, limit int) ([]repository.CompanyEvent, error) {
	return nil, nil
}

func (s *stubEventRepo) SharedEventCount(ctx context.Context, e1, e2 string) (int, error) {
	return s.shared[e1+"/"+e2], nil
}

type memAffinityStore struct {
	repository.AffinityRepository
	mu   sync.Mutex
	byID map[string]affdomain.Affinity
}

func (m *memAffinityStore) Put(ctx context.Context, aff affdomain.Affinity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byID == nil {
		m.byID = make(map[string]affdomain.Affinity)
	}
	m.byID[aff.AffinityID] = aff
	return nil
}

type stubLocker struct {
	acquired bool
	denied   bool
	released bool
}

func (l *stubLocker) AcquireBatchLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	if l.denied {
		return false, nil
	}
	l.acquired = true
	return true, nil
}

func (l *stubLocker) ReleaseBatchLock(ctx context.Context) { l.released = true }

func newTestEngine(emps []employee.Employee, projs []project.Project, msgr *stubMessengerRepo, evts *stubEventRepo, store *memAffinityStore, locker *stubLocker, pub event.Publisher) *Engine {
	if msgr == nil {
		msgr = &stubMessengerRepo{}
	}
	if evts == nil {
		evts = &stubEventRepo{}
	}
	e := NewEngine(
		&stubEmployeeRepo{employees: emps},
		&stubProjectRepo{projects: projs},
		msgr, evts, store, locker, pub, nil, 4,
	)
	e.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func testEmployees(ids ...string) []employee.Employee {
	out := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, employee.Employee{UserID: id})
	}
	return out
}

func TestRunComputesEveryPair(t *testing.T) {
	store := &memAffinityStore{}
	locker := &stubLocker{}
	pub := event.NewMockPublisher()

	eng := newTestEngine(testEmployees("u1", "u2", "u3"), nil, nil, nil, store, locker, pub)

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalPairs != 3 || res.ProcessedPairs != 3 || res.FailedPairs != 0 {
		t.Fatalf("result = %+v, want 3/3/0", res)
	}
	if len(store.byID) != 3 {
		t.Fatalf("stored %d records, want 3", len(store.byID))
	}
	for _, id := range []string{"AFF_u1_u2", "AFF_u1_u3", "AFF_u2_u3"} {
		if _, ok := store.byID[id]; !ok {
			t.Errorf("missing affinity record %s", id)
		}
	}
	if !locker.acquired || !locker.released {
		t.Error("batch lock not acquired/released")
	}
	if len(pub.Events) != 1 || pub.Events[0].EventType != event.TypeAffinityBatchCompleted {
		t.Fatalf("events = %+v, want one batch completion", pub.Events)
	}
}

func TestRunScoresFromEvidence(t *testing.T) {
	projs := []project.Project{{
		ProjectID:   "PJ1",
		ProjectName: "Payments Revamp",
		Period:      project.Period{Start: "2023-01-01", End: "2024-01-01", DurationMonths: 12},
		TeamComposition: project.TeamComposition{
			"backend": {Members: []string{"u1", "u2"}},
		},
	}}
	emps := []employee.Employee{
		{UserID: "u1", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", ProjectName: "Payments Revamp", Period: "2023-01 ~ 2024-01"},
		}},
		{UserID: "u2", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", ProjectName: "Payments Revamp", Period: "2023-01 ~ 2024-01"},
		}},
	}
	msgr := &stubMessengerRepo{stats: map[string]repository.PairStats{
		"u1/u2": {TotalMessages: 200, AvgResponseMinutes: 20, PaydayContacts: 2, VacationContacts: 1},
	}}
	evts := &stubEventRepo{shared: map[string]int{"u1/u2": 3}}
	store := &memAffinityStore{}

	eng := newTestEngine(emps, projs, msgr, evts, store, &stubLocker{}, nil)

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	aff, ok := store.byID["AFF_u1_u2"]
	if !ok {
		t.Fatal("missing AFF_u1_u2")
	}
	if aff.Collaboration.Score != 60 {
		t.Errorf("collaboration = %f, want 60", aff.Collaboration.Score)
	}
	if aff.Communication.Score != 98 {
		t.Errorf("communication = %f, want 98", aff.Communication.Score)
	}
	if aff.Events.Score != 60 {
		t.Errorf("events = %f, want 60", aff.Events.Score)
	}
	if aff.Personal.Score != 50 {
		t.Errorf("personal = %f, want 50", aff.Personal.Score)
	}
	if aff.OverallScore != 70.5 {
		t.Errorf("overall = %f, want 70.5", aff.OverallScore)
	}
	if len(aff.Collaboration.SharedProjects) != 1 || aff.Collaboration.SharedProjects[0].ProjectID != "PJ1" {
		t.Errorf("shared projects = %+v", aff.Collaboration.SharedProjects)
	}
	if !aff.Collaboration.SharedProjects[0].SameTeam {
		t.Error("same_team should be true when the project document lists both")
	}
}

func TestCollaborationFromWorkHistories(t *testing.T) {
	// The project document no longer names either employee; their work
	// histories are the source of truth.
	emps := []employee.Employee{
		{UserID: "u1", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", ProjectName: "Data Lake", Period: "2022-01 ~ 2023-01"},
		}},
		{UserID: "u2", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", ProjectName: "Data Lake", Period: "2022-01 ~ 2023-01"},
		}},
	}
	store := &memAffinityStore{}
	eng := newTestEngine(emps, nil, nil, nil, store, &stubLocker{}, nil)

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	aff := store.byID["AFF_u1_u2"]
	if aff.Collaboration.Score != 60 {
		t.Errorf("collaboration = %f, want 60", aff.Collaboration.Score)
	}
	if aff.Collaboration.TotalOverlap != 12 {
		t.Errorf("total overlap = %f, want 12", aff.Collaboration.TotalOverlap)
	}
	if len(aff.Collaboration.SharedProjects) != 1 || aff.Collaboration.SharedProjects[0].SameTeam {
		t.Errorf("shared projects = %+v, want one with same_team false", aff.Collaboration.SharedProjects)
	}
}

func TestCollaborationUsesPeriodIntersection(t *testing.T) {
	emps := []employee.Employee{
		{UserID: "u1", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", Period: "2022-01 ~ 2024-01"},
		}},
		{UserID: "u2", WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PJ1", Period: "2023-07 ~ 2024-07"},
		}},
	}
	store := &memAffinityStore{}
	eng := newTestEngine(emps, nil, nil, nil, store, &stubLocker{}, nil)

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	aff := store.byID["AFF_u1_u2"]
	// Histories intersect for six months only, Jul 2023 through Jan 2024.
	if aff.Collaboration.TotalOverlap != 6 {
		t.Errorf("total overlap = %f, want 6", aff.Collaboration.TotalOverlap)
	}
	if aff.Collaboration.Score != 30 {
		t.Errorf("collaboration = %f, want 30", aff.Collaboration.Score)
	}
}

func TestRunSkipsFailingPair(t *testing.T) {
	msgr := &stubMessengerRepo{
		fail: map[string]error{"u1/u2": errors.New("stats unavailable")},
	}
	store := &memAffinityStore{}

	eng := newTestEngine(testEmployees("u1", "u2", "u3"), nil, msgr, nil, store, &stubLocker{}, nil)

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.FailedPairs != 1 || res.ProcessedPairs != 3 {
		t.Fatalf("result = %+v, want processed 3 with 1 failure", res)
	}
	if _, ok := store.byID["AFF_u1_u2"]; ok {
		t.Error("failed pair should not be stored")
	}
	if _, ok := store.byID["AFF_u1_u3"]; !ok {
		t.Error("healthy pair u1/u3 missing")
	}
}

func TestRunRefusesWhenLockHeld(t *testing.T) {
	eng := newTestEngine(testEmployees("u1", "u2"), nil, nil, nil, &memAffinityStore{}, &stubLocker{denied: true}, nil)

	if _, err := eng.Run(context.Background()); !errors.Is(err, ErrBatchRunning) {
		t.Fatalf("err = %v, want ErrBatchRunning", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	store := &memAffinityStore{}
	eng := newTestEngine(testEmployees("u1", "u2"), nil, nil, nil, store, &stubLocker{}, nil)

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := store.byID["AFF_u1_u2"]

	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(store.byID) != 1 {
		t.Fatalf("second run grew the store to %d records", len(store.byID))
	}
	if store.byID["AFF_u1_u2"].OverallScore != first.OverallScore {
		t.Error("second run changed the score with identical evidence")
	}
}
