package domain

// RoleRecord is one normalized graduate-programme listing scraped from the
// tracker table. Date fields hold ISO calendar dates ("2006-01-02") or the
// empty string when the source cell didn't parse. Everything else defaults
// to "".
type RoleRecord struct {
	Category           string `json:"category"`
	CompanyName        string `json:"company_name"`
	CompanyLink        string `json:"company_link"`
	RoleTitle          string `json:"role_title"`
	RoleLink           string `json:"role_link"`
	ApplicationOpens   string `json:"application_opens"`
	ApplicationCloses  string `json:"application_closes"`
	LastYearOpened     string `json:"last_year_opened"`
	InterviewStages    string `json:"interview_stages"`
	AssessmentPlatform string `json:"assessment_platform"`
	OnlineApplication  string `json:"online_application"`
	CVRequired         string `json:"cv_required"`
	CoverLetter        string `json:"cover_letter"`
	TestRequired       string `json:"test_required"`
	Notes              string `json:"notes"`
}

// DefaultCategory labels rows seen before the first category marker.
const DefaultCategory = "Uncategorized"
