package jobs

import "strings"

// CategoryOther is returned when no keyword list matches the title.
const CategoryOther = "Other"

type categoryKeywords struct {
	name     string
	keywords []string
}

// categoryTable is ordered: keyword sets overlap, and the first matching
// category wins ("lead" hits Management/Leadership before Operations is
// ever checked). Reordering entries changes categorization results.
var categoryTable = []categoryKeywords{
	{"Engineering/Software", []string{"engineer", "developer", "software", "full stack", "frontend", "backend", "programmer", "coding"}},
	{"Data/Analytics", []string{"data scientist", "data analyst", "analytics", "business intelligence", "machine learning", "ai"}},
	{"Product/Design", []string{"product manager", "ux", "ui", "designer", "product owner", "product design"}},
	{"DevOps/Infrastructure", []string{"devops", "sre", "site reliability", "infrastructure", "cloud", "kubernetes", "aws"}},
	{"Management/Leadership", []string{"manager", "director", "head of", "vp", "chief", "cto", "ceo", "lead"}},
	{"Marketing/Sales", []string{"marketing", "sales", "growth", "seo", "content", "brand", "account manager"}},
	{"HR/Recruiting", []string{"hr", "recruiter", "talent", "people", "hiring", "recruitment"}},
	{"Finance/Accounting", []string{"finance", "accounting", "financial", "controller", "cfo", "analyst"}},
	{"Customer Support", []string{"support", "customer success", "customer service", "help desk"}},
	{"Operations", []string{"operations", "operational", "logistics", "supply chain"}},
	{"Hospitality/Tourism", []string{"hotel", "restaurant", "chef", "receptionist", "waiter", "tourism", "travel"}},
	{"Social/NGO", []string{"social", "ngo", "non-profit", "volunteer", "community", "charity"}},
}

// Categorize maps a job title to a category by substring keyword match
// against the lower-cased title, in fixed priority order. It always
// returns a value from the closed category set.
func Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.name
			}
		}
	}
	return CategoryOther
}
