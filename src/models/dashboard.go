package models

import "time"

// DomainScore aggregated score of one domain within an assessment.
type DomainScore struct {
	DomainID       string  `json:"domain_id"`
	DomainName     string  `json:"domain_name"`
	AverageScore   float64 `json:"average_score"`
	TotalQuestions int     `json:"total_questions"`
	TotalScore     int     `json:"total_score"`
}

// ControlPerformance aggregated score of one control, carrying its
// parent domain for grouping in the dashboard.
type ControlPerformance struct {
	ControlID      string  `json:"control_id"`
	ControlName    string  `json:"control_name"`
	DomainID       string  `json:"domain_id"`
	DomainName     string  `json:"domain_name"`
	AverageScore   float64 `json:"average_score"`
	TotalQuestions int     `json:"total_questions"`
}

// AssessmentStats is the dashboard payload for one assessment. An
// assessment without responses short-circuits to the zero value with
// empty score lists and without the omitzero keys. omitzero (not
// omitempty) so a non-nil empty focus_areas still serializes as [].
type AssessmentStats struct {
	TotalResponses     int                  `json:"total_responses"`
	DomainsCompleted   int                  `json:"domains_completed"`
	OverallAverage     float64              `json:"overall_average"`
	SubmissionDate     *time.Time           `json:"submission_date,omitzero"`
	DomainScores       []DomainScore        `json:"domain_scores"`
	ControlPerformance []ControlPerformance `json:"control_performance"`
	TopStrengths       []DomainScore        `json:"top_strengths,omitzero"`
	FocusAreas         []DomainScore        `json:"focus_areas,omitzero"`
}

// UserStats user totals by role for the admin dashboard.
type UserStats struct {
	TotalUsers   int64 `json:"total_users"`
	AdminUsers   int64 `json:"admin_users"`
	RegularUsers int64 `json:"regular_users"`
}

// AssessmentTotals platform-wide assessment counters.
type AssessmentTotals struct {
	TotalAssessments              int64   `json:"total_assessments"`
	TotalResponses                int64   `json:"total_responses"`
	AverageResponsesPerAssessment float64 `json:"average_responses_per_assessment"`
}

// RecentAssessment is an assessment annotated with its owner.
type RecentAssessment struct {
	Assessment `bson:",inline"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
}

// UserActivity is one row of the per-user activity table.
type UserActivity struct {
	UserID           string     `json:"user_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Organization     string     `json:"organization"`
	AssessmentCount  int64      `json:"assessment_count"`
	LatestAssessment *time.Time `json:"latest_assessment"`
	Status           string     `json:"status"`
}

// PlatformStats is the admin platform dashboard payload.
type PlatformStats struct {
	UserStats         UserStats          `json:"user_stats"`
	AssessmentStats   AssessmentTotals   `json:"assessment_stats"`
	RecentAssessments []RecentAssessment `json:"recent_assessments"`
	UserActivities    []UserActivity     `json:"user_activities"`
}

// ContentStats counts of the catalog collections.
type ContentStats struct {
	Domains    int64 `json:"domains"`
	SubDomains int64 `json:"subdomains"`
	Controls   int64 `json:"controls"`
	Metrics    int64 `json:"metrics"`
	Questions  int64 `json:"questions"`
}
