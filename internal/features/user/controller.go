package user

import (
	"livpulse/internal/common/api"
	"livpulse/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/admin/users [get]
func (ctrl *UserController) ListUsers(ctx *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsers(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, users)
}

// GetUser godoc
// @Summary Get user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/admin/users/{id} [get]
func (ctrl *UserController) GetUser(ctx *fiber.Ctx) error {
	u, err := ctrl.UserService.GetUser(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, u)
}

// CreateUser godoc
// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param user body CreateUserInput true "User"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/admin/users [post]
func (ctrl *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input CreateUserInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	created, err := ctrl.UserService.CreateUser(ctx.UserContext(), input)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Created(ctx, created)
}

// UpdateUser godoc
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param patch body UpdateUserInput true "Fields to update"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Failure 409 {object} api.Response
// @Router /api/admin/users/{id} [put]
func (ctrl *UserController) UpdateUser(ctx *fiber.Ctx) error {
	var input UpdateUserInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, apperror.BadRequest("Invalid request body: %s", err.Error()))
	}

	updated, err := ctrl.UserService.UpdateUser(ctx.UserContext(), ctx.Params("id"), input)
	if err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, updated)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /api/admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(ctx *fiber.Ctx) error {
	if err := ctrl.UserService.DeleteUser(ctx.UserContext(), ctx.Params("id")); err != nil {
		return api.Fail(ctx, err)
	}
	return api.Success(ctx, fiber.Map{"message": "User deleted successfully"})
}
