package fiber

import (
	"context"
	"errors"
	"net/http"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/usecase"
	"peakdash-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

type AuthUseCase interface {
	SignUp(ctx context.Context, in usecase.SignUpInput) (*usecase.AuthResult, error)
	SignIn(ctx context.Context, in usecase.SignInInput) (*usecase.AuthResult, error)
	SignOut(ctx context.Context, session domain.Session) error
}

type AuthHandler struct {
	uc AuthUseCase
}

func NewAuthHandler(uc AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary Create an account
// @Description Creates the account and its user profile, then signs the user in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Sign-up payload"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	res, err := h.uc.SignUp(c.UserContext(), usecase.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(toAuthResponse(res))
}

// SignIn godoc
// @Summary Sign in
// @Description Exchanges e-mail and password for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	res, err := h.uc.SignIn(c.UserContext(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(toAuthResponse(res))
}

// Session godoc
// @Summary Current session
// @Description Returns the identity behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, ok := SessionFrom(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}
	return c.Status(http.StatusOK).JSON(toSessionResponse(session))
}

// SignOut godoc
// @Summary Sign out
// @Description Revokes the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	session, ok := SessionFrom(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}
	if err := h.uc.SignOut(c.UserContext(), session); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *AuthHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignUp):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_sign_up",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "email_taken",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "invalid_credentials",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthenticated",
			Message: err.Error(),
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("auth request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toAuthResponse(res *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:   res.Token,
		Session: toSessionResponse(res.Session),
	}
}

func toSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{
		UserID:    s.UserID,
		Email:     s.Email,
		Admin:     s.Admin,
		ExpiresAt: s.ExpiresAt,
	}
}
