// Package knowledge classifies projects into knowledge domains and ranks
// candidate new domains by entry feasibility.
package knowledge

// Known knowledge domains.
const (
	DomainFinance           = "Finance"
	DomainHealthcare        = "Healthcare"
	DomainECommerce         = "E-commerce"
	DomainManufacturing     = "Manufacturing"
	DomainLogistics         = "Logistics"
	DomainTelecom           = "Telecommunications"
	DomainEducation         = "Education"
	DomainAviation          = "Aviation"
)

// AllDomains in presentation order.
var AllDomains = []string{
	DomainFinance, DomainHealthcare, DomainECommerce, DomainManufacturing,
	DomainLogistics, DomainTelecom, DomainEducation, DomainAviation,
}

// domainKeyword pairs a lowercase name fragment with its domain. The list
// is matched in order, so a name hitting several domains always resolves to
// the first listed one. Korean terms cover the upstream ingestion sources.
type domainKeyword struct {
	keyword string
	domain  string
}

var domainKeywords = []domainKeyword{
	{"bank", DomainFinance}, {"banking", DomainFinance}, {"finance", DomainFinance},
	{"payment", DomainFinance}, {"금융", DomainFinance}, {"은행", DomainFinance}, {"결제", DomainFinance},

	{"hospital", DomainHealthcare}, {"health", DomainHealthcare}, {"medical", DomainHealthcare},
	{"병원", DomainHealthcare}, {"의료", DomainHealthcare}, {"헬스케어", DomainHealthcare},

	{"commerce", DomainECommerce}, {"shop", DomainECommerce}, {"mall", DomainECommerce},
	{"쇼핑", DomainECommerce}, {"이커머스", DomainECommerce}, {"커머스", DomainECommerce},

	{"factory", DomainManufacturing}, {"manufacturing", DomainManufacturing},
	{"제조", DomainManufacturing}, {"공장", DomainManufacturing},

	{"logistics", DomainLogistics}, {"delivery", DomainLogistics}, {"shipping", DomainLogistics},
	{"물류", DomainLogistics}, {"배송", DomainLogistics},

	{"telecom", DomainTelecom}, {"통신", DomainTelecom},

	{"education", DomainEducation}, {"learning", DomainEducation}, {"lms", DomainEducation},
	{"교육", DomainEducation}, {"학습", DomainEducation},

	{"airline", DomainAviation}, {"aviation", DomainAviation}, {"flight", DomainAviation},
	{"항공", DomainAviation},
}

// domainRequiredSkills lists the canonical stack each domain is assumed to
// require for an entry attempt.
var domainRequiredSkills = map[string][]string{
	DomainFinance:       {"Java", "Spring Boot", "Oracle", "Kafka", "SQL"},
	DomainHealthcare:    {"Java", "Python", "PostgreSQL", "React", "AWS"},
	DomainECommerce:     {"Java", "Spring Boot", "MySQL", "Redis", "React"},
	DomainManufacturing: {"C++", "Python", "MySQL", "MQTT", "Linux"},
	DomainLogistics:     {"Java", "PostgreSQL", "Kafka", "Redis", "GCP"},
	DomainTelecom:       {"C++", "Go", "Kubernetes", "gRPC", "Linux"},
	DomainEducation:     {"JavaScript", "React", "Node.js", "MongoDB", "AWS"},
	DomainAviation:      {"C++", "Java", "Oracle", "Linux", "SQL"},
}

// RequiredSkills returns the entry stack for a domain, nil when unknown.
func RequiredSkills(domain string) []string {
	return domainRequiredSkills[domain]
}
