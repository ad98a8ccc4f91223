package controllers

import (
	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// Register creates a new operator account.
func (ac *AuthController) Register(c *ctx.Context) {
	var input services.RegisterInput
	if !c.BindJSON(&input) {
		return
	}

	user, err := ac.service.Register(input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(user)
}

// Login verifies credentials and returns a token pair plus the account.
func (ac *AuthController) Login(c *ctx.Context) {
	var input services.LoginInput
	if !c.BindJSON(&input) {
		return
	}

	tokens, user, err := ac.service.Login(input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"tokens": tokens, "user": user})
}

// Refresh exchanges a refresh token for a new pair.
func (ac *AuthController) Refresh(c *ctx.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if !c.BindJSON(&input) {
		return
	}

	tokens, err := ac.service.Refresh(input.RefreshToken)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(tokens)
}

// Profile returns the authenticated user's account.
func (ac *AuthController) Profile(c *ctx.Context) {
	user, err := ac.service.Profile(actorID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(user)
}

// Users lists accounts (admin only).
func (ac *AuthController) Users(c *ctx.Context) {
	users, pagination, err := ac.service.Users(c.QueryInt("page", 1), c.QueryInt("limit", 15))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Paginated(users, pagination)
}
