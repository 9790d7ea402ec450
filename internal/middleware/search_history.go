package middleware

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/internal/controller"
	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/history"
)

// RecordSearchHistory remembers the criteria of every successful search
// after the handler has responded. History failures never affect the
// response; the cache is best-effort by design.
func RecordSearchHistory(h *history.History) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		criteria, ok := c.Locals(controller.CriteriaLocalKey).(model.Criteria)
		if ok && c.Response().StatusCode() == fiber.StatusOK {
			h.RememberSearch(c.Context(), criteria)
		}
		return nil
	}
}
