package controllers

import (
	"Backend-SecAssess/src/middleware"
	"Backend-SecAssess/src/services/assessments"
	"Backend-SecAssess/src/services/scoring"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	assessments *assessments.Service
	scoring     *scoring.Service
}

func NewDashboardController(a *assessments.Service, s *scoring.Service) *DashboardController {
	return &DashboardController{assessments: a, scoring: s}
}

// AssessmentStats godoc
// @Summary      Aggregated scores for one of the caller's assessments
// @Tags         dashboard
// @Produce      json
// @Param        assessmentId path string true "Assessment ID"
// @Success      200  {object}  models.AssessmentStats
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/stats/{assessmentId} [get]
func (ctl *DashboardController) AssessmentStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	assessment, err := ctl.assessments.GetOwned(c.Context(), c.Params("assessmentId"), user.ID)
	if err != nil {
		if err == assessments.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Assessment not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching assessment")
	}

	stats, err := ctl.scoring.AssessmentStats(c.Context(), assessment)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error computing stats")
	}

	return c.JSON(stats)
}
