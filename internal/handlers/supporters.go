// supporters.go
//
// Supporter CRUD routes.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/types"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SupporterHandler handles supporter routes
type SupporterHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// supporterBody is the request body for supporter mutations. Skill and
// schedule ids tolerate both array and single-value encodings.
type supporterBody struct {
	Name      string                 `json:"name"`
	Phone     string                 `json:"phone"`
	Email     string                 `json:"email"`
	Address   string                 `json:"address"`
	Area      string                 `json:"area"`
	Status    string                 `json:"status"`
	Notes     string                 `json:"notes"`
	Skills    types.FlexList[string] `json:"skills"`
	Schedules types.FlexList[string] `json:"schedules"`
}

func (b supporterBody) input() services.SupporterInput {
	return services.SupporterInput{
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		Address:     b.Address,
		Area:        b.Area,
		Status:      b.Status,
		Notes:       b.Notes,
		SkillIDs:    b.Skills.Slice(),
		ScheduleIDs: b.Schedules.Slice(),
	}
}

// List handles GET /api/supporters
// @Summary List supporters
// @Description List supporters with optional search/status/area/skill/time_slot filters
// @Tags Supporters
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param status query string false "Status filter ('all' disables)"
// @Param area query string false "Area filter ('all' disables)"
// @Param skill query string false "Skill name filter ('all' disables)"
// @Param time_slot query string false "Time slot id filter ('all' disables)"
// @Success 200 {array} models.Supporter
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /supporters [get]
func (h *SupporterHandler) List(c *fiber.Ctx) error {
	filters := services.SupporterFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Area:     c.Query("area"),
		Skill:    c.Query("skill"),
		TimeSlot: c.Query("time_slot"),
	}

	supporters, err := services.ListSupporters(h.DB, filters)
	if err != nil {
		h.Log.Error("list supporters failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "supporters.list")
	}
	return utils.SuccessResponse(c, supporters, fiber.StatusOK)
}

// Get handles GET /api/supporters/:id
// @Summary Get one supporter
// @Tags Supporters
// @Produce json
// @Param id path string true "Supporter ID"
// @Success 200 {object} models.Supporter
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /supporters/{id} [get]
func (h *SupporterHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	supporter, err := services.GetSupporter(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Supporter '%s' not found", id), "supporters.get")
	}
	return utils.SuccessResponse(c, supporter, fiber.StatusOK)
}

// Create handles POST /api/supporters
// @Summary Register a supporter
// @Tags Supporters
// @Accept json
// @Produce json
// @Param body body handlers.supporterBody true "Supporter form"
// @Success 201 {object} models.Supporter
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /supporters [post]
func (h *SupporterHandler) Create(c *fiber.Ctx) error {
	var body supporterBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	in := body.input()
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	supporter, err := services.CreateSupporter(h.DB, in)
	if err != nil {
		h.Log.Error("create supporter failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "supporters.create")
	}
	return utils.SuccessResponse(c, supporter, fiber.StatusCreated)
}

// Update handles PUT /api/supporters/:id
// @Summary Update a supporter
// @Tags Supporters
// @Accept json
// @Produce json
// @Param id path string true "Supporter ID"
// @Param body body handlers.supporterBody true "Supporter form"
// @Success 200 {object} models.Supporter
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /supporters/{id} [put]
func (h *SupporterHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var body supporterBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	in := body.input()
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	supporter, err := services.UpdateSupporter(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Supporter '%s' not found", id), "supporters.update")
	}
	return utils.SuccessResponse(c, supporter, fiber.StatusOK)
}

// Delete handles DELETE /api/supporters/:id
// @Summary Delete a supporter
// @Tags Supporters
// @Produce json
// @Param id path string true "Supporter ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /supporters/{id} [delete]
func (h *SupporterHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteSupporter(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Supporter '%s' not found", id), "supporters.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}
