package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/event"
	"talent-optimizer/internal/repository"
)

type AssignmentInput struct {
	EmployeeID string `json:"employee_id"`
	ProjectID  string `json:"project_id"`
}

type Assignment struct {
	EmployeeID     string `json:"employee_id"`
	ProjectID      string `json:"project_id"`
	ProjectName    string `json:"project_name"`
	Role           string `json:"role"`
	AssignmentDate string `json:"assignment_date"`
}

type AssignmentUsecase interface {
	Assign(ctx context.Context, in AssignmentInput) (Assignment, error)
}

type Assigner struct {
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	publisher event.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewAssigner(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	publisher event.Publisher,
	logger *zap.Logger,
) *Assigner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = event.NewMockPublisher()
	}
	return &Assigner{
		employees: employees,
		projects:  projects,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Assign commits an employee to a project. The employee must not already be
// assigned elsewhere; re-assigning to the same project is a no-op success.
func (u *Assigner) Assign(ctx context.Context, in AssignmentInput) (Assignment, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return Assignment{}, validationError("employee_id is required")
	}
	if strings.TrimSpace(in.ProjectID) == "" {
		return Assignment{}, validationError("project_id is required")
	}

	emp, err := u.employees.Get(ctx, in.EmployeeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Assignment{}, ErrEmployeeNotFound
		}
		return Assignment{}, fmt.Errorf("%w: load employee: %v", ErrInternal, err)
	}

	proj, err := u.projects.Get(ctx, in.ProjectID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Assignment{}, ErrProjectNotFound
		}
		return Assignment{}, fmt.Errorf("%w: load project: %v", ErrInternal, err)
	}

	if emp.CurrentProject != "" && emp.CurrentProject != proj.ProjectID {
		return Assignment{}, &ConflictError{
			EmployeeID:         emp.UserID,
			ConflictingProject: u.projectName(ctx, emp.CurrentProject),
		}
	}

	date := u.now().UTC().Format("2006-01-02")
	emp.CurrentProject = proj.ProjectID
	emp.AssignmentDate = date

	if !proj.HasMember(emp.UserID) {
		addMember(&proj, emp.Role, emp.UserID)
		if err := u.projects.Update(ctx, proj); err != nil {
			return Assignment{}, fmt.Errorf("%w: update project: %v", ErrInternal, err)
		}
	}

	if err := u.employees.Update(ctx, emp); err != nil {
		return Assignment{}, fmt.Errorf("%w: update employee: %v", ErrInternal, err)
	}

	if err := u.publisher.Publish(&event.Event{
		EventType: event.TypeAssignmentCreated,
		SubjectID: emp.UserID,
		Payload: map[string]any{
			"project_id":   proj.ProjectID,
			"project_name": proj.ProjectName,
		},
	}); err != nil {
		u.logger.Warn("publish assignment event", zap.Error(err))
	}

	return Assignment{
		EmployeeID:     emp.UserID,
		ProjectID:      proj.ProjectID,
		ProjectName:    proj.ProjectName,
		Role:           emp.Role,
		AssignmentDate: date,
	}, nil
}

// projectName resolves the display name for the conflict message, falling
// back to the raw id when the referenced project no longer exists.
func (u *Assigner) projectName(ctx context.Context, projectID string) string {
	p, err := u.projects.Get(ctx, projectID)
	if err != nil || p.ProjectName == "" {
		return projectID
	}
	return p.ProjectName
}

func addMember(p *project.Project, role, userID string) {
	if p.TeamComposition == nil {
		p.TeamComposition = make(project.TeamComposition)
	}
	key := strings.ToLower(strings.TrimSpace(role))
	if key == "" {
		key = "members"
	}
	slot := p.TeamComposition[key]
	slot.Members = append(slot.Members, userID)
	slot.Count = len(slot.Members)
	p.TeamComposition[key] = slot
}
