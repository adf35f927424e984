package session

import "github.com/gofiber/fiber/v2"

const (
	localsUser  = "session_user"
	localsToken = "session_token"
)

// Attach stores the session user and token on the request context.
func Attach(c *fiber.Ctx, token string, user *User) {
	c.Locals(localsToken, token)
	c.Locals(localsUser, user)
}

// Current returns the user attached to the request, or nil.
func Current(c *fiber.Ctx) *User {
	if u, ok := c.Locals(localsUser).(*User); ok {
		return u
	}
	return nil
}

// Token returns the bearer token attached to the request.
func Token(c *fiber.Ctx) string {
	if t, ok := c.Locals(localsToken).(string); ok {
		return t
	}
	return ""
}
