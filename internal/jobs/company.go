package jobs

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxCompanyLen rejects pipe segments that are clearly not a company name
// (navigation blobs, whole descriptions).
const maxCompanyLen = 100

var (
	companyAtPattern   = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9\s&\-\.]+?)(?:\s*\(|\.|$)`)
	companyDashPattern = regexp.MustCompile(`\-\s*([A-Z][A-Za-z0-9\s&\-\.]+)$`)
)

// ExtractCompany pulls a company name out of noisy scraped text. It tries,
// in order: the last pipe-delimited segment of the container's full text,
// an "at <Company>" phrase in the title, and a trailing "- <Company>" in
// the title. Each tier short-circuits on success; if nothing works it
// returns the Unknown sentinel. It never fails.
func ExtractCompany(fullText, title string) string {
	if company, ok := companyFromPipes(fullText); ok {
		return company
	}
	if m := companyAtPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := companyDashPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	return CompanyUnknown
}

func companyFromPipes(fullText string) (string, bool) {
	if !strings.Contains(fullText, "|") {
		return "", false
	}
	parts := strings.Split(fullText, "|")
	company := strings.TrimSpace(parts[len(parts)-1])
	if n := utf8.RuneCountInString(company); n > 0 && n < maxCompanyLen {
		return company, true
	}
	return "", false
}
