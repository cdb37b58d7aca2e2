package seeder

import (
	"context"
	"fmt"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/employee"
	"talent-optimizer/internal/domain/project"
	"talent-optimizer/internal/repository"
)

// DemoDataSeeder loads a small consistent dataset for local development:
// a handful of employees, two projects, and the interaction evidence the
// affinity batch reads.
type DemoDataSeeder struct{}

func (DemoDataSeeder) Name() string { return "demo_data" }

func (DemoDataSeeder) Run(ctx context.Context, db database.DB) error {
	for _, e := range demoEmployees {
		if err := upsertDoc(ctx, db, "employees", "user_id", e.UserID, e); err != nil {
			return err
		}
	}
	for _, p := range demoProjects {
		if err := upsertDoc(ctx, db, "projects", "project_id", p.ProjectID, p); err != nil {
			return err
		}
	}
	for i, m := range demoMessengerLogs {
		key := fmt.Sprintf("MSG_%04d", i+1)
		if err := upsertDoc(ctx, db, "messenger_logs", "log_id", key, m); err != nil {
			return err
		}
	}
	for _, ev := range demoEvents {
		if err := upsertDoc(ctx, db, "company_events", "event_id", ev.EventID, ev); err != nil {
			return err
		}
	}
	return nil
}

type messengerLog struct {
	SenderID        string  `json:"sender_id"`
	ReceiverID      string  `json:"receiver_id"`
	SentAt          string  `json:"sent_at"`
	ResponseMinutes float64 `json:"response_minutes"`
	OnPayday        bool    `json:"on_payday"`
	OnVacation      bool    `json:"on_vacation"`
}

var demoEmployees = []employee.Employee{
	{
		UserID: "USR_1001", Name: "Mira Tanaka", Role: "Backend Engineer",
		YearsOfExperience: 7, Email: "mira.tanaka@example.com",
		Skills: []employee.Skill{
			{Name: "Go", Level: employee.LevelAdvanced, Years: 5},
			{Name: "PostgreSQL", Level: employee.LevelAdvanced, Years: 6},
			{Name: "Kubernetes", Level: employee.LevelIntermediate, Years: 3},
		},
		WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PRJ_2001", ProjectName: "Billing Platform", Role: "Backend Engineer", Period: "2022-01 to 2023-06", MainTasks: "Payment pipeline and reconciliation services"},
		},
		Certifications: []string{"CKA"},
	},
	{
		UserID: "USR_1002", Name: "Jonas Weber", Role: "Backend Engineer",
		YearsOfExperience: 4, Email: "jonas.weber@example.com",
		Skills: []employee.Skill{
			{Name: "Python", Level: employee.LevelAdvanced, Years: 4},
			{Name: "PostgreSQL", Level: employee.LevelIntermediate, Years: 3},
			{Name: "Docker", Level: employee.LevelIntermediate, Years: 3},
		},
		WorkExperiences: []employee.WorkExperience{
			{ProjectID: "PRJ_2001", ProjectName: "Billing Platform", Role: "Backend Engineer", Period: "2022-06 to 2023-06", MainTasks: "Invoice generation and batch jobs"},
		},
		Certifications: []string{},
	},
	{
		UserID: "USR_1003", Name: "Aisha Patel", Role: "Frontend Engineer",
		YearsOfExperience: 5, Email: "aisha.patel@example.com",
		Skills: []employee.Skill{
			{Name: "TypeScript", Level: employee.LevelAdvanced, Years: 5},
			{Name: "React", Level: employee.LevelExpert, Years: 5},
		},
		WorkExperiences:  []employee.WorkExperience{},
		Certifications:   []string{},
		CurrentProject:   "PRJ_2002",
		AssignmentDate:   "2025-03-01",
		SelfIntroduction: "Design-systems focused frontend engineer.",
	},
	{
		UserID: "USR_1004", Name: "Diego Alvarez", Role: "Data Engineer",
		YearsOfExperience: 6, Email: "diego.alvarez@example.com",
		Skills: []employee.Skill{
			{Name: "Python", Level: employee.LevelExpert, Years: 6},
			{Name: "PyTorch", Level: employee.LevelIntermediate, Years: 2},
			{Name: "AWS", Level: employee.LevelAdvanced, Years: 4},
		},
		WorkExperiences: []employee.WorkExperience{},
		Certifications:  []string{"AWS Solutions Architect"},
	},
}

var demoProjects = []project.Project{
	{
		ProjectID: "PRJ_2001", ProjectName: "Billing Platform", ClientIndustry: "Finance",
		Period:      project.Period{Start: "2022-01-01", End: "2023-06-30", DurationMonths: 18},
		BudgetScale: "large",
		Description: "Subscription billing and reconciliation backend.",
		TechStack: project.TechStack{
			"backend": {"Go", "PostgreSQL"},
			"infra":   {"Kubernetes", "Docker"},
		},
		Requirements: []string{"Go", "PostgreSQL"},
		TeamComposition: project.TeamComposition{
			"backend engineer": {Members: []string{"USR_1001", "USR_1002"}},
		},
	},
	{
		ProjectID: "PRJ_2002", ProjectName: "Storefront Revamp", ClientIndustry: "Retail",
		Period:      project.Period{Start: "2025-02-01", DurationMonths: 12},
		BudgetScale: "medium",
		Description: "Customer-facing storefront rebuild.",
		TechStack: project.TechStack{
			"frontend": {"TypeScript", "React"},
			"backend":  {"Node.js"},
		},
		Requirements: []string{"React", "TypeScript"},
		TeamComposition: project.TeamComposition{
			"frontend engineer": {Members: []string{"USR_1003"}},
		},
	},
}

var demoMessengerLogs = []messengerLog{
	{SenderID: "USR_1001", ReceiverID: "USR_1002", SentAt: "2025-06-02T09:14:00Z", ResponseMinutes: 12},
	{SenderID: "USR_1002", ReceiverID: "USR_1001", SentAt: "2025-06-02T09:40:00Z", ResponseMinutes: 8},
	{SenderID: "USR_1001", ReceiverID: "USR_1002", SentAt: "2025-06-25T16:05:00Z", ResponseMinutes: 45, OnPayday: true},
	{SenderID: "USR_1003", ReceiverID: "USR_1001", SentAt: "2025-07-10T11:00:00Z", ResponseMinutes: 90},
	{SenderID: "USR_1004", ReceiverID: "USR_1002", SentAt: "2025-08-01T14:30:00Z", ResponseMinutes: 30, OnVacation: true},
}

var demoEvents = []repository.CompanyEvent{
	{EventID: "EVT_3001", EventName: "Summer Offsite", EventDate: "2025-07-18", Attendees: []string{"USR_1001", "USR_1002", "USR_1003"}},
	{EventID: "EVT_3002", EventName: "Tech Talk: Vector Search", EventDate: "2025-08-05", Attendees: []string{"USR_1001", "USR_1004"}},
}
