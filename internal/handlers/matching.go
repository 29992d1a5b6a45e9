// matching.go
//
// Matching-search route.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/services"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MatchingHandler handles the supporter matching search
type MatchingHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// matchingResult is the matching-search response payload. CriteriaRequired
// marks the prompt state that an empty request produces.
type matchingResult struct {
	CriteriaRequired bool                        `json:"criteria_required"`
	Supporters       []services.MatchedSupporter `json:"supporters"`
}

// Search handles GET /api/matching
// @Summary Search supporters by required skills and availability
// @Description Returns supporters holding every requested skill AND every requested time slot. With no criteria the result is empty and criteria_required is set.
// @Tags Matching
// @Produce json
// @Param skills query string false "Comma-separated skill ids, all required"
// @Param time_slots query string false "Comma-separated time slot ids, all required"
// @Success 200 {object} handlers.matchingResult
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /matching [get]
func (h *MatchingHandler) Search(c *fiber.Ctx) error {
	skillIDs := parseIDList(c, "skills")
	slotIDs := parseIDList(c, "time_slots")

	supporters, err := services.MatchSupporters(h.DB, skillIDs, slotIDs)
	if err != nil {
		h.Log.Error("matching search failed", zap.Error(err))
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "matching.search")
	}

	return utils.SuccessResponse(c, matchingResult{
		CriteriaRequired: len(skillIDs) == 0 && len(slotIDs) == 0,
		Supporters:       supporters,
	}, fiber.StatusOK)
}
