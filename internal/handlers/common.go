// common.go
//
// Shared handler plumbing: DTO validation, query-parameter parsing, and
// service-error mapping.

package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"gorm.io/gorm"
)

var validate = validator.New()

// validateInput runs struct validation and returns per-field messages, or nil
// when the input is valid.
func validateInput(in interface{}) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fmt.Sprintf("failed %q validation", fe.Tag())
		}
		return fields
	}
	fields["_"] = err.Error()
	return fields
}

// parseIDList extracts an id list from query parameters, supporting both
// repeated keys and comma-separated values. Blank segments are dropped.
func parseIDList(c *fiber.Ctx, name string) []string {
	var ids []string
	seen := make(map[string]struct{})

	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		if string(key) != name {
			return
		}
		for _, v := range strings.Split(string(value), ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			ids = append(ids, v)
		}
	})

	return ids
}

// respondServiceError maps a service error to the uniform envelope: record
// not found becomes a 404, anything else a 500. A store failure is therefore
// distinguishable from a legitimate empty result.
func respondServiceError(c *fiber.Ctx, err error, notFoundMessage, errorType string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFoundResponse(c, notFoundMessage)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
