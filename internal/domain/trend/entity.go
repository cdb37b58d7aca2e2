// Package trend models market reference data per canonical skill. The table
// is read-only for this service.
package trend

// TechTrend is keyed by normalized skill name.
type TechTrend struct {
	TechName           string   `json:"tech_name"`
	Category           string   `json:"category"`
	TrendScore         float64  `json:"trend_score"`
	DemandScore        float64  `json:"demand_score"`
	GrowthRate         float64  `json:"growth_rate"`
	MarketShare        float64  `json:"market_share"`
	RelatedDomains     []string `json:"related_domains"`
	SkillLevelRequired string   `json:"skill_level_required"`
	Description        string   `json:"description,omitempty"`
}

// Default is used when a skill has no trend row: neutral market scores.
func Default(techName string) TechTrend {
	return TechTrend{
		TechName:    techName,
		TrendScore:  50,
		DemandScore: 50,
	}
}
