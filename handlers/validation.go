package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// formLookup returns a field accessor over the submitted form that tells
// an absent field apart from an empty one. Both url-encoded and multipart
// bodies are supported.
func formLookup(c *fiber.Ctx) func(name string) (string, bool) {
	if form, err := c.MultipartForm(); err == nil {
		return func(name string) (string, bool) {
			values, ok := form.Value[name]
			if !ok || len(values) == 0 {
				return "", false
			}
			return values[0], true
		}
	}

	args := c.Request().PostArgs()
	return func(name string) (string, bool) {
		if !args.Has(name) {
			return "", false
		}
		return string(args.Peek(name)), true
	}
}
