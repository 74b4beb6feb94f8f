package models

// Answer ตัวเลือกคำตอบพร้อมคะแนน maturity 0-5, ฝังอยู่ใน Question
type Answer struct {
	ID         string `bson:"id" json:"id"`
	AnswerText string `bson:"answer_text" json:"answer_text" validate:"required"`
	ScoreValue int    `bson:"score_value" json:"score_value" validate:"min=0,max=5"`
}

// Question denormalizes the whole catalog path so a response can be
// recorded without extra lookups.
type Question struct {
	ID           string   `bson:"_id" json:"id"`
	QuestionText string   `bson:"question_text" json:"question_text" validate:"required"`
	DomainID     string   `bson:"domain_id" json:"domain_id" validate:"required"`
	SubDomainID  string   `bson:"subdomain_id" json:"subdomain_id" validate:"required"`
	ControlID    string   `bson:"control_id" json:"control_id" validate:"required"`
	MetricID     string   `bson:"metric_id" json:"metric_id" validate:"required"`
	Answers      []Answer `bson:"answers" json:"answers" validate:"required,min=1,dive"`
}

// FindAnswer scans the embedded answers for the given id. Answer ids
// are unique within a question.
func (q *Question) FindAnswer(answerID string) (*Answer, bool) {
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			return &q.Answers[i], true
		}
	}
	return nil, false
}

// QuestionUpdate partial update for admin edits.
type QuestionUpdate struct {
	QuestionText *string   `json:"question_text"`
	DomainID     *string   `json:"domain_id"`
	SubDomainID  *string   `json:"subdomain_id"`
	ControlID    *string   `json:"control_id"`
	MetricID     *string   `json:"metric_id"`
	Answers      *[]Answer `json:"answers" validate:"omitempty,min=1,dive"`
}

// ControlSummary is the nested control block in question detail.
type ControlSummary struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// QuestionDetail is a question joined with the names of its catalog
// path, as served to the questionnaire UI. Missing catalog rows render
// as empty names rather than errors.
type QuestionDetail struct {
	ID           string         `json:"id"`
	QuestionText string         `json:"question_text"`
	Answers      []Answer       `json:"answers"`
	SubDomain    string         `json:"subdomain"`
	Control      ControlSummary `json:"control"`
	Metric       string         `json:"metric"`
	DomainID     string         `json:"domain_id"`
	SubDomainID  string         `json:"subdomain_id"`
	ControlID    string         `json:"control_id"`
	MetricID     string         `json:"metric_id"`
}
