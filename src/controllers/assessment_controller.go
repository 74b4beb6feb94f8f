package controllers

import (
	"Backend-SecAssess/src/middleware"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services/assessments"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AssessmentController struct {
	assessments *assessments.Service
}

func NewAssessmentController(svc *assessments.Service) *AssessmentController {
	return &AssessmentController{assessments: svc}
}

// SubmitAssessment godoc
// @Summary      Submit an answered questionnaire
// @Description  Records one assessment; unresolvable question/answer pairs are skipped
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body body models.SubmissionRequest true "Selected answers"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /assessments/submit [post]
func (ctl *AssessmentController) SubmitAssessment(c *fiber.Ctx) error {
	var req models.SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user := middleware.CurrentUser(c)
	assessmentID, err := ctl.assessments.Submit(c.Context(), user.ID, req.Responses)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error submitting assessment")
	}

	return c.JSON(fiber.Map{
		"assessment_id": assessmentID,
		"message":       "Assessment submitted successfully",
	})
}

// MyAssessments godoc
// @Summary      List the caller's assessments, newest first
// @Tags         assessments
// @Produce      json
// @Success      200  {array}  models.Assessment
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /assessments/my-assessments [get]
func (ctl *AssessmentController) MyAssessments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	list, err := ctl.assessments.ListByUser(c.Context(), user.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching assessments")
	}
	return c.JSON(list)
}
