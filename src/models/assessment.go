package models

import "time"

// Assessment statuses. Submissions are written as completed; the
// in_progress state exists for assessments created ahead of time.
const (
	AssessmentInProgress = "in_progress"
	AssessmentCompleted  = "completed"
)

// Assessment หนึ่งครั้งของการส่งแบบประเมินโดยผู้ใช้หนึ่งคน
type Assessment struct {
	ID             string    `bson:"_id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	SubmissionDate time.Time `bson:"submission_date" json:"submission_date"`
	Status         string    `bson:"status" json:"status"`
}

// Response is one answered question within an assessment. The catalog
// path and the score are denormalized at write time, so the recorded
// score survives later catalog edits. Responses are append-only.
type Response struct {
	ID               string    `bson:"_id" json:"id"`
	AssessmentID     string    `bson:"assessment_id" json:"assessment_id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	SelectedAnswerID string    `bson:"selected_answer_id" json:"selected_answer_id"`
	DomainID         string    `bson:"domain_id" json:"domain_id"`
	SubDomainID      string    `bson:"subdomain_id" json:"subdomain_id"`
	ControlID        string    `bson:"control_id" json:"control_id"`
	MetricID         string    `bson:"metric_id" json:"metric_id"`
	ScoreValue       int       `bson:"score_value" json:"score_value"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// AnswerSelection is one (question, answer) pair in a submission.
type AnswerSelection struct {
	QuestionID       string `json:"question_id" validate:"required"`
	SelectedAnswerID string `json:"selected_answer_id" validate:"required"`
}

// SubmissionRequest is the body of POST /assessments/submit. An empty
// list is allowed; the assessment is still recorded.
type SubmissionRequest struct {
	Responses []AnswerSelection `json:"responses" validate:"dive"`
}
