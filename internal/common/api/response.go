package api

import (
	"errors"

	"livpulse/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every non-validation endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{Success: true, Data: data})
}

// Created writes a 201 envelope.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{Success: true, Data: data})
}

// Fail translates a domain error to its HTTP status and failure envelope.
// Unknown errors collapse to an opaque 500 so internals never leak.
func Fail(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(statusFor(appErr.Kind)).JSON(Response{Success: false, Error: appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Response{Success: false, Error: "internal server error"})
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindBadRequest, apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
