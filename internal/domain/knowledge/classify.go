package knowledge

import (
	"sort"
	"strings"

	"talent-optimizer/internal/domain/project"
)

// DomainGroup is one knowledge domain and the current projects in it.
type DomainGroup struct {
	Domain   string   `json:"domain"`
	Projects []string `json:"project_ids"`
}

// ClassifyProjects groups the corpus by knowledge domain. An explicit
// knowledge_domain field wins; otherwise the project name is matched against
// the keyword table. Unmatched projects land in "Other".
func ClassifyProjects(projects []project.Project) []DomainGroup {
	groups := make(map[string][]string)
	for _, p := range projects {
		domain := ClassifyProject(p)
		groups[domain] = append(groups[domain], p.ProjectID)
	}

	out := make([]DomainGroup, 0, len(groups))
	for domain, ids := range groups {
		sort.Strings(ids)
		out = append(out, DomainGroup{Domain: domain, Projects: ids})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Projects) != len(out[j].Projects) {
			return len(out[i].Projects) > len(out[j].Projects)
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// ClassifyProject resolves a single project's knowledge domain.
func ClassifyProject(p project.Project) string {
	if d := strings.TrimSpace(p.KnowledgeDomain); d != "" {
		return d
	}
	lowered := strings.ToLower(p.ProjectName)
	for _, kd := range domainKeywords {
		if strings.Contains(lowered, kd.keyword) {
			return kd.domain
		}
	}
	// Fall back to the client industry before giving up.
	industry := strings.ToLower(p.ClientIndustry)
	for _, kd := range domainKeywords {
		if strings.Contains(industry, kd.keyword) {
			return kd.domain
		}
	}
	return "Other"
}

// CurrentDomains returns the distinct domains present in the corpus,
// excluding the unmatched bucket.
func CurrentDomains(projects []project.Project) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range projects {
		if d := ClassifyProject(p); d != "Other" {
			out[d] = struct{}{}
		}
	}
	return out
}
