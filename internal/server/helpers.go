package server

import (
	"errors"
	"strconv"
	"strings"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// requireForm reads and trims the named form fields, failing with a
// ValidationError naming the first missing field.
func requireForm(c *fiber.Ctx, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		v := strings.TrimSpace(c.FormValue(name))
		if v == "" {
			return nil, models.NewValidationError(name + " is required")
		}
		values[name] = v
	}
	return values, nil
}

// formTagIDs parses the repeated "tags" checkbox values into tag IDs,
// skipping anything that is not a positive integer.
func formTagIDs(c *fiber.Ctx) []uint {
	raw := c.Request().PostArgs().PeekMulti("tags")
	ids := make([]uint, 0, len(raw))
	for _, b := range raw {
		n, err := strconv.ParseUint(string(b), 10, 32)
		if err != nil || n == 0 {
			continue
		}
		ids = append(ids, uint(n))
	}
	return ids
}
