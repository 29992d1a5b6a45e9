// service_users.go
//
// Service-user CRUD routes.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ServiceUserHandler handles service-user routes
type ServiceUserHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// List handles GET /api/service-users
// @Summary List service users
// @Tags ServiceUsers
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param area query string false "Area filter ('all' disables)"
// @Success 200 {array} models.ServiceUser
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /service-users [get]
func (h *ServiceUserHandler) List(c *fiber.Ctx) error {
	filters := services.ServiceUserFilters{
		Search: c.Query("search"),
		Area:   c.Query("area"),
	}

	users, err := services.ListServiceUsers(h.DB, filters)
	if err != nil {
		h.Log.Error("list service users failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "service_users.list")
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// Get handles GET /api/service-users/:id
// @Summary Get one service user
// @Tags ServiceUsers
// @Produce json
// @Param id path string true "Service user ID"
// @Success 200 {object} models.ServiceUser
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /service-users/{id} [get]
func (h *ServiceUserHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := services.GetServiceUser(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Service user '%s' not found", id), "service_users.get")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// Create handles POST /api/service-users
// @Summary Register a service user
// @Tags ServiceUsers
// @Accept json
// @Produce json
// @Param body body services.ServiceUserInput true "Service user form"
// @Success 201 {object} models.ServiceUser
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /service-users [post]
func (h *ServiceUserHandler) Create(c *fiber.Ctx) error {
	var in services.ServiceUserInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	user, err := services.CreateServiceUser(h.DB, in)
	if err != nil {
		h.Log.Error("create service user failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "service_users.create")
	}
	return utils.SuccessResponse(c, user, fiber.StatusCreated)
}

// Update handles PUT /api/service-users/:id
// @Summary Update a service user
// @Tags ServiceUsers
// @Accept json
// @Produce json
// @Param id path string true "Service user ID"
// @Param body body services.ServiceUserInput true "Service user form"
// @Success 200 {object} models.ServiceUser
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /service-users/{id} [put]
func (h *ServiceUserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.ServiceUserInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	user, err := services.UpdateServiceUser(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Service user '%s' not found", id), "service_users.update")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// Delete handles DELETE /api/service-users/:id
// @Summary Delete a service user
// @Tags ServiceUsers
// @Produce json
// @Param id path string true "Service user ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /service-users/{id} [delete]
func (h *ServiceUserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteServiceUser(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Service user '%s' not found", id), "service_users.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}

// Areas handles GET /api/areas
// @Summary List distinct areas for filter dropdowns
// @Tags ServiceUsers
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /areas [get]
func (h *ServiceUserHandler) Areas(c *fiber.Ctx) error {
	areas, err := services.ListAreas(h.DB)
	if err != nil {
		h.Log.Error("list areas failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "areas.list")
	}
	return utils.SuccessResponse(c, areas, fiber.StatusOK)
}
