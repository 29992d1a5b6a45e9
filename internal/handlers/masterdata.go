// masterdata.go
//
// Settings-screen routes: skills, time slots, activity statuses.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MasterDataHandler handles skill, time-slot, and activity-status routes
type MasterDataHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// ListSkills handles GET /api/skills
// @Summary List skills
// @Tags MasterData
// @Produce json
// @Param active query bool false "Only active skills"
// @Success 200 {array} models.Skill
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /skills [get]
func (h *MasterDataHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := services.ListSkills(h.DB, c.QueryBool("active"))
	if err != nil {
		h.Log.Error("list skills failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "skills.list")
	}
	return utils.SuccessResponse(c, skills, fiber.StatusOK)
}

// CreateSkill handles POST /api/skills
// @Summary Create a skill
// @Tags MasterData
// @Accept json
// @Produce json
// @Param body body services.SkillInput true "Skill form"
// @Success 201 {object} models.Skill
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /skills [post]
func (h *MasterDataHandler) CreateSkill(c *fiber.Ctx) error {
	var in services.SkillInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	skill, err := services.CreateSkill(h.DB, in)
	if err != nil {
		h.Log.Error("create skill failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "skills.create")
	}
	return utils.SuccessResponse(c, skill, fiber.StatusCreated)
}

// UpdateSkill handles PUT /api/skills/:id
// @Summary Update a skill
// @Tags MasterData
// @Accept json
// @Produce json
// @Param id path string true "Skill ID"
// @Param body body services.SkillInput true "Skill form"
// @Success 200 {object} models.Skill
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /skills/{id} [put]
func (h *MasterDataHandler) UpdateSkill(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.SkillInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	skill, err := services.UpdateSkill(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Skill '%s' not found", id), "skills.update")
	}
	return utils.SuccessResponse(c, skill, fiber.StatusOK)
}

// DeleteSkill handles DELETE /api/skills/:id
// @Summary Delete a skill
// @Tags MasterData
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /skills/{id} [delete]
func (h *MasterDataHandler) DeleteSkill(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteSkill(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Skill '%s' not found", id), "skills.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}

// ListTimeSlots handles GET /api/time-slots
// @Summary List time slots
// @Tags MasterData
// @Produce json
// @Success 200 {array} models.TimeSlot
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /time-slots [get]
func (h *MasterDataHandler) ListTimeSlots(c *fiber.Ctx) error {
	slots, err := services.ListTimeSlots(h.DB)
	if err != nil {
		h.Log.Error("list time slots failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "time_slots.list")
	}
	return utils.SuccessResponse(c, slots, fiber.StatusOK)
}

// CreateTimeSlot handles POST /api/time-slots
// @Summary Create a time slot
// @Tags MasterData
// @Accept json
// @Produce json
// @Param body body services.TimeSlotInput true "Time slot form"
// @Success 201 {object} models.TimeSlot
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /time-slots [post]
func (h *MasterDataHandler) CreateTimeSlot(c *fiber.Ctx) error {
	var in services.TimeSlotInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	slot, err := services.CreateTimeSlot(h.DB, in)
	if err != nil {
		h.Log.Error("create time slot failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "time_slots.create")
	}
	return utils.SuccessResponse(c, slot, fiber.StatusCreated)
}

// UpdateTimeSlot handles PUT /api/time-slots/:id
// @Summary Update a time slot
// @Tags MasterData
// @Accept json
// @Produce json
// @Param id path string true "Time slot ID"
// @Param body body services.TimeSlotInput true "Time slot form"
// @Success 200 {object} models.TimeSlot
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /time-slots/{id} [put]
func (h *MasterDataHandler) UpdateTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.TimeSlotInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	slot, err := services.UpdateTimeSlot(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Time slot '%s' not found", id), "time_slots.update")
	}
	return utils.SuccessResponse(c, slot, fiber.StatusOK)
}

// DeleteTimeSlot handles DELETE /api/time-slots/:id
// @Summary Delete a time slot
// @Tags MasterData
// @Produce json
// @Param id path string true "Time slot ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /time-slots/{id} [delete]
func (h *MasterDataHandler) DeleteTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteTimeSlot(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Time slot '%s' not found", id), "time_slots.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}

// ListActivityStatuses handles GET /api/activity-statuses
// @Summary List activity statuses
// @Tags MasterData
// @Produce json
// @Success 200 {array} models.ActivityStatus
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activity-statuses [get]
func (h *MasterDataHandler) ListActivityStatuses(c *fiber.Ctx) error {
	statuses, err := services.ListActivityStatuses(h.DB)
	if err != nil {
		h.Log.Error("list activity statuses failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "activity_statuses.list")
	}
	return utils.SuccessResponse(c, statuses, fiber.StatusOK)
}

// CreateActivityStatus handles POST /api/activity-statuses
// @Summary Create an activity status
// @Tags MasterData
// @Accept json
// @Produce json
// @Param body body services.ActivityStatusInput true "Activity status form"
// @Success 201 {object} models.ActivityStatus
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /activity-statuses [post]
func (h *MasterDataHandler) CreateActivityStatus(c *fiber.Ctx) error {
	var in services.ActivityStatusInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	status, err := services.CreateActivityStatus(h.DB, in)
	if err != nil {
		h.Log.Error("create activity status failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "activity_statuses.create")
	}
	return utils.SuccessResponse(c, status, fiber.StatusCreated)
}

// UpdateActivityStatus handles PUT /api/activity-statuses/:id
// @Summary Update an activity status
// @Tags MasterData
// @Accept json
// @Produce json
// @Param id path string true "Activity status ID"
// @Param body body services.ActivityStatusInput true "Activity status form"
// @Success 200 {object} models.ActivityStatus
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activity-statuses/{id} [put]
func (h *MasterDataHandler) UpdateActivityStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var in services.ActivityStatusInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}
	if fields := validateInput(in); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}

	status, err := services.UpdateActivityStatus(h.DB, id, in)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity status '%s' not found", id), "activity_statuses.update")
	}
	return utils.SuccessResponse(c, status, fiber.StatusOK)
}

// DeleteActivityStatus handles DELETE /api/activity-statuses/:id
// @Summary Delete an activity status
// @Tags MasterData
// @Produce json
// @Param id path string true "Activity status ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activity-statuses/{id} [delete]
func (h *MasterDataHandler) DeleteActivityStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	affected, err := services.DeleteActivityStatus(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, fmt.Sprintf("Activity status '%s' not found", id), "activity_statuses.delete")
	}
	return utils.MutationSuccessResponse(c, id, affected)
}
