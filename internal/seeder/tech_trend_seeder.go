package seeder

import (
	"context"

	"talent-optimizer/internal/database"
	"talent-optimizer/internal/domain/trend"
)

// TechTrendSeeder loads the market reference rows for the canonical skills.
type TechTrendSeeder struct{}

func (TechTrendSeeder) Name() string { return "tech_trends" }

func (TechTrendSeeder) Run(ctx context.Context, db database.DB) error {
	for _, t := range techTrends {
		if err := upsertDoc(ctx, db, "tech_trends", "tech_name", t.TechName, t); err != nil {
			return err
		}
	}
	return nil
}

var techTrends = []trend.TechTrend{
	{TechName: "Python", Category: "language", TrendScore: 92, DemandScore: 95, GrowthRate: 8.5, MarketShare: 28.1, RelatedDomains: []string{"AI/ML", "Data Engineering", "Web Development"}, SkillLevelRequired: "intermediate"},
	{TechName: "Go", Category: "language", TrendScore: 85, DemandScore: 82, GrowthRate: 12.3, MarketShare: 11.2, RelatedDomains: []string{"Cloud Infrastructure", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "JavaScript", Category: "language", TrendScore: 88, DemandScore: 90, GrowthRate: 3.2, MarketShare: 31.5, RelatedDomains: []string{"Web Development", "Frontend"}, SkillLevelRequired: "beginner"},
	{TechName: "TypeScript", Category: "language", TrendScore: 90, DemandScore: 88, GrowthRate: 10.7, MarketShare: 22.4, RelatedDomains: []string{"Web Development", "Frontend"}, SkillLevelRequired: "intermediate"},
	{TechName: "Java", Category: "language", TrendScore: 72, DemandScore: 80, GrowthRate: -1.5, MarketShare: 24.8, RelatedDomains: []string{"Enterprise", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "Kotlin", Category: "language", TrendScore: 78, DemandScore: 70, GrowthRate: 6.8, MarketShare: 6.1, RelatedDomains: []string{"Mobile", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "Rust", Category: "language", TrendScore: 86, DemandScore: 68, GrowthRate: 15.4, MarketShare: 3.9, RelatedDomains: []string{"Systems", "Cloud Infrastructure"}, SkillLevelRequired: "advanced"},
	{TechName: "C#", Category: "language", TrendScore: 74, DemandScore: 76, GrowthRate: 1.1, MarketShare: 17.3, RelatedDomains: []string{"Enterprise", "Game Development"}, SkillLevelRequired: "intermediate"},
	{TechName: "React", Category: "framework", TrendScore: 87, DemandScore: 91, GrowthRate: 4.6, MarketShare: 40.6, RelatedDomains: []string{"Frontend", "Web Development"}, SkillLevelRequired: "intermediate"},
	{TechName: "Vue.js", Category: "framework", TrendScore: 76, DemandScore: 72, GrowthRate: 2.9, MarketShare: 16.4, RelatedDomains: []string{"Frontend", "Web Development"}, SkillLevelRequired: "beginner"},
	{TechName: "Django", Category: "framework", TrendScore: 73, DemandScore: 74, GrowthRate: 2.1, MarketShare: 12.0, RelatedDomains: []string{"Web Development", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "Spring Boot", Category: "framework", TrendScore: 75, DemandScore: 79, GrowthRate: 1.8, MarketShare: 14.6, RelatedDomains: []string{"Enterprise", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "Node.js", Category: "runtime", TrendScore: 82, DemandScore: 85, GrowthRate: 3.8, MarketShare: 42.7, RelatedDomains: []string{"Backend Services", "Web Development"}, SkillLevelRequired: "intermediate"},
	{TechName: "PostgreSQL", Category: "database", TrendScore: 89, DemandScore: 87, GrowthRate: 7.2, MarketShare: 45.5, RelatedDomains: []string{"Data Engineering", "Backend Services"}, SkillLevelRequired: "intermediate"},
	{TechName: "MySQL", Category: "database", TrendScore: 70, DemandScore: 78, GrowthRate: -2.4, MarketShare: 41.1, RelatedDomains: []string{"Backend Services"}, SkillLevelRequired: "beginner"},
	{TechName: "MongoDB", Category: "database", TrendScore: 71, DemandScore: 73, GrowthRate: 0.9, MarketShare: 24.9, RelatedDomains: []string{"Backend Services", "Web Development"}, SkillLevelRequired: "beginner"},
	{TechName: "Redis", Category: "database", TrendScore: 81, DemandScore: 77, GrowthRate: 4.1, MarketShare: 20.3, RelatedDomains: []string{"Backend Services", "Cloud Infrastructure"}, SkillLevelRequired: "intermediate"},
	{TechName: "Kubernetes", Category: "infrastructure", TrendScore: 91, DemandScore: 89, GrowthRate: 11.6, MarketShare: 33.8, RelatedDomains: []string{"Cloud Infrastructure", "DevOps"}, SkillLevelRequired: "advanced"},
	{TechName: "Docker", Category: "infrastructure", TrendScore: 84, DemandScore: 88, GrowthRate: 5.3, MarketShare: 57.2, RelatedDomains: []string{"Cloud Infrastructure", "DevOps"}, SkillLevelRequired: "beginner"},
	{TechName: "AWS", Category: "cloud", TrendScore: 88, DemandScore: 92, GrowthRate: 6.7, MarketShare: 31.0, RelatedDomains: []string{"Cloud Infrastructure", "DevOps"}, SkillLevelRequired: "intermediate"},
	{TechName: "Terraform", Category: "infrastructure", TrendScore: 83, DemandScore: 80, GrowthRate: 9.4, MarketShare: 18.7, RelatedDomains: []string{"Cloud Infrastructure", "DevOps"}, SkillLevelRequired: "intermediate"},
	{TechName: "TensorFlow", Category: "library", TrendScore: 79, DemandScore: 75, GrowthRate: 3.5, MarketShare: 14.2, RelatedDomains: []string{"AI/ML", "Data Engineering"}, SkillLevelRequired: "advanced"},
	{TechName: "PyTorch", Category: "library", TrendScore: 88, DemandScore: 81, GrowthRate: 13.9, MarketShare: 17.8, RelatedDomains: []string{"AI/ML"}, SkillLevelRequired: "advanced"},
}
