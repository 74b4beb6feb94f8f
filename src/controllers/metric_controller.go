package controllers

import (
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type MetricController struct {
	metrics *services.MetricService
}

func NewMetricController(metrics *services.MetricService) *MetricController {
	return &MetricController{metrics: metrics}
}

func (ctl *MetricController) GetMetrics(c *fiber.Ctx) error {
	metrics, err := ctl.metrics.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching metrics")
	}
	return c.JSON(metrics)
}

func (ctl *MetricController) CreateMetric(c *fiber.Ctx) error {
	var metric models.Metric
	if err := c.BodyParser(&metric); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&metric); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.metrics.Create(c.Context(), &metric); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating metric")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Metric created successfully",
		"metric":  metric,
	})
}

func (ctl *MetricController) UpdateMetric(c *fiber.Ctx) error {
	var update models.MetricUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := ctl.metrics.Update(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Metric not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating metric")
	}

	return c.JSON(fiber.Map{"message": "Metric updated successfully"})
}

func (ctl *MetricController) DeleteMetric(c *fiber.Ctx) error {
	if err := ctl.metrics.Delete(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Metric not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting metric")
	}

	return c.JSON(fiber.Map{"message": "Metric deleted successfully"})
}
