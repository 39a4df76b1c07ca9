package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// pathParams returns the named route parameters percent-decoded, in order.
// Routing runs on the raw path, so an encoded "/" stays inside its segment.
func pathParams(c *fiber.Ctx, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		v, err := url.PathUnescape(utils.CopyString(c.Params(name)))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func writeBadPath(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid path parameter")
}
