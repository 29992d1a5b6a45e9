// activities.go
//
// Activity CRUD, filtering, and the completion flow.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityHandler handles activity routes
type ActivityHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// completeBody is the request body for activity completion.
type completeBody struct {
	Report string `json:"report" validate:"required"`
}

// List handles GET /api/activities
// @Summary List activities
// @Description List activities filtered by supporter/service user/status/date range, with a related-name search
// @Tags Activities
// @Produce json
// @Param search query string false "Substring over supporter/service-user/skill names"
// @Param supporter query string false "Supporter id ('all' disables)"
// @Param service_user query string false "Service user id ('all' disables)"
// @Param status query string false "Status id ('all' disables)"
// @Param date_from query string false "Inclusive lower bound, YYYY-MM-DD"
// @Param date_to query string false "Inclusive upper bound, YYYY-MM-DD"
// @Success 200 {array} models.Activity
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	filters := services.ActivityFilters{
		Search:      c.Query("search"),
		Supporter:   c.Query("supporter"),
		ServiceUser: c.Query("service_user"),
		Status:      c.Query("status"),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
	}

	activities, err := services.ListActivities(h.DB, filters)
	if err != nil {
		h.Log.Error("list activities failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "activities.list")
	}
	return utils.SuccessResponse(c, activities, fiber.StatusOK)
}

// Get handles GET /api/activities/:id
// @Summary Get one activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} models.Activity
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id} [get]
func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	activity, err := services.GetActivity(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity '%s' not found", id), "activities.get")
	}
	return utils.SuccessResponse(c, activity, fiber.StatusOK)
}

// Create handles POST /api/activities
// @Summary Register an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param body body services.ActivityInput true "Activity form"
// @Success 201 {object} models.Activity
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in services.ActivityInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	activity, err := services.CreateActivity(h.DB, in)
	if err != nil {
		h.Log.Error("create activity failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "activities.create")
	}
	return utils.SuccessResponse(c, activity, fiber.StatusCreated)
}

// Update handles PUT /api/activities/:id
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param body body services.ActivityInput true "Activity form"
// @Success 200 {object} models.Activity
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.ActivityInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	activity, err := services.UpdateActivity(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity '%s' not found", id), "activities.update")
	}
	return utils.SuccessResponse(c, activity, fiber.StatusOK)
}

// Delete handles DELETE /api/activities/:id
// @Summary Delete an activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteActivity(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity '%s' not found", id), "activities.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}

// Complete handles POST /api/activities/:id/complete
// @Summary Mark an activity completed, appending the report to its notes
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param body body handlers.completeBody true "Completion report"
// @Success 200 {object} models.Activity
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id}/complete [post]
func (h *ActivityHandler) Complete(c *fiber.Ctx) error {
	id := c.Params("id")

	var body completeBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(body); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	activity, err := services.CompleteActivity(h.DB, id, body.Report)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity '%s' not found", id), "activities.complete")
	}
	return utils.SuccessResponse(c, activity, fiber.StatusOK)
}
