package auth

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"
	"livpulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	AuthService AuthService
}

func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} api.Response
// @Failure 401 {object} api.Response
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	session, err := ctrl.AuthService.Login(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, session)
}

// Register godoc
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterInput true "Registration"
// @Success 201 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(ctx *fiber.Ctx) error {
	var input RegisterInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	session, err := ctrl.AuthService.Register(ctx.UserContext(), input)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Created(ctx, session)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response
// @Failure 401 {object} api.Response
// @Router /api/auth/me [get]
func (ctrl *AuthController) Me(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if claims == nil {
		return api.Fail(ctx, apperror.Unauthorized("Authentication required"))
	}

	u, err := ctrl.AuthService.CurrentUser(ctx.UserContext(), claims.UserID)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, u)
}

// Logout godoc
// @Summary Log out
// @Description Stateless logout; the client discards its token
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(ctx *fiber.Ctx) error {
	return api.Success(ctx, fiber.Map{"message": "Logged out successfully"})
}
