package auth

import (
	"errors"

	"redelex-panel/core/access"
	"redelex-panel/core/logger"
	"redelex-panel/core/session"
	"redelex-panel/feature/usuarios"
	"redelex-panel/feature/usuarios/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogoutHook is called with the token of every closed session.
type LogoutHook func(token string)

// Handler handles login, registration and session endpoints.
type Handler struct {
	users  *usuarios.Service
	store  session.Store
	logger *zap.Logger
	hooks  []LogoutHook
}

// NewHandler creates a new auth handler.
func NewHandler(users *usuarios.Service, store session.Store, logger *zap.Logger) *Handler {
	return &Handler{users: users, store: store, logger: logger}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nit      string `json:"nit"`
}

// Response is returned by login and register.
type Response struct {
	Token    string       `json:"token"`
	User     session.User `json:"user"`
	Redirect string       `json:"redirect"`
}

// HandleLogin authenticates a user and opens a session.
// @Summary Login
// @Description Checks the credentials and returns an opaque bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentials true "Credentials"
// @Success 200 {object} Response
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Correo y contraseña son obligatorios"})
	}

	u, err := h.users.Authenticate(c.UserContext(), in.Email, in.Password)
	switch {
	case errors.Is(err, usuarios.ErrInvalidCredentials):
		logger.WithRayID(h.logger, c).Info("Login rejected", zap.String("email", in.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	case errors.Is(err, usuarios.ErrInactive):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tu cuenta está desactivada"})
	case err != nil:
		logger.WithRayID(h.logger, c).Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error interno"})
	}

	return h.open(c, fiber.StatusOK, u)
}

// HandleRegister creates an inmobiliaria account and opens a session.
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registration true "Account"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email taken"
// @Router /auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var in registration
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	v, err := h.users.Create(c.UserContext(), usuarios.Input{
		Nombre:   in.Nombre,
		Email:    in.Email,
		Password: in.Password,
		Rol:      session.RoleInmobiliaria,
		Nit:      in.Nit,
	})
	var verr *usuarios.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, usuarios.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "El correo ya está registrado"})
	case err != nil:
		logger.WithRayID(h.logger, c).Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error interno"})
	}

	u := models.Usuario{ID: v.ID, Nombre: v.Nombre, Email: v.Email, Rol: v.Rol, Nit: v.Nit}
	u.SetPermissions(v.Permisos)
	return h.open(c, fiber.StatusCreated, &u)
}

func (h *Handler) open(c *fiber.Ctx, status int, u *models.Usuario) error {
	token := uuid.NewString()
	user := u.ToSessionUser()
	if err := h.store.Save(c.UserContext(), token, user); err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to store session", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "session store unavailable"})
	}

	logger.WithRayID(h.logger, c).Info("Session opened", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return c.Status(status).JSON(Response{Token: token, User: user, Redirect: access.FallbackRoute(user.Role)})
}

// HandleLogout closes the current session.
// @Summary Logout
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	token := session.Token(c)
	if token == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.store.Delete(c.UserContext(), token); err != nil {
		logger.WithUser(h.logger, c).Warn("Failed to delete session", zap.Error(err))
	}
	for _, hook := range h.hooks {
		hook(token)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMe returns the session user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} session.User
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Router /auth/me [get]
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	u := session.Current(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "unauthenticated",
			"redirect": access.LoginRoute,
		})
	}
	return c.JSON(u)
}
