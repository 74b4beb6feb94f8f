package controllers

import (
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type QuestionController struct {
	questions *services.QuestionService
}

func NewQuestionController(questions *services.QuestionService) *QuestionController {
	return &QuestionController{questions: questions}
}

func (ctl *QuestionController) GetQuestions(c *fiber.Ctx) error {
	questions, err := ctl.questions.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching questions")
	}
	return c.JSON(questions)
}

// CreateQuestion godoc
// @Summary      Create a question with embedded answers
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        body body models.Question true "Question with answers"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /admin/questions [post]
func (ctl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := c.BodyParser(&question); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&question); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.questions.Create(c.Context(), &question); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating question")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Question created successfully",
		"question": question,
	})
}

func (ctl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	var update models.QuestionUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.questions.Update(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating question")
	}

	return c.JSON(fiber.Map{"message": "Question updated successfully"})
}

func (ctl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	if err := ctl.questions.Delete(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Question not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting question")
	}

	return c.JSON(fiber.Map{"message": "Question deleted successfully"})
}
