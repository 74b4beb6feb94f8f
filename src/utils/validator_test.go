package utils

import (
	"testing"

	"Backend-SecAssess/src/models"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		OrganizationName: "Analytical Engines",
		Email:            "ada@example.com",
		Designation:      "Security Lead",
		Password:         "secret123",
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, ValidateStruct(&req))
}

func TestValidateRejectsBadEmail(t *testing.T) {
	req := validRegisterRequest()
	req.Email = "not-an-email"
	assert.Error(t, ValidateStruct(&req))
}

func TestValidateRejectsShortPassword(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "abc"
	assert.Error(t, ValidateStruct(&req))
}

func TestValidateRejectsMissingFields(t *testing.T) {
	req := models.RegisterRequest{Email: "a@b.com", Password: "secret123"}
	assert.Error(t, ValidateStruct(&req))
}

func TestValidateUserUpdateRole(t *testing.T) {
	bad := "superuser"
	update := models.UserUpdate{Role: &bad}
	assert.Error(t, ValidateStruct(&update))

	good := "admin"
	update = models.UserUpdate{Role: &good}
	assert.NoError(t, ValidateStruct(&update))
}

func TestValidateAnswerScoreRange(t *testing.T) {
	question := models.Question{
		QuestionText: "How mature is your patching process?",
		DomainID:     "d1",
		SubDomainID:  "s1",
		ControlID:    "c1",
		MetricID:     "m1",
		Answers: []models.Answer{
			{AnswerText: "Off the scale", ScoreValue: 9},
		},
	}
	assert.Error(t, ValidateStruct(&question))

	question.Answers[0].ScoreValue = 5
	assert.NoError(t, ValidateStruct(&question))
}
