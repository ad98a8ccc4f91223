// Package controllers holds the HTTP handlers. Controllers bind and
// validate input, delegate to services and translate domain errors into
// the JSON envelope; they contain no business rules themselves.
package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/auth"
	"github.com/fabiogif/moday-backoffice/pkg/ctx"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
	"github.com/fabiogif/moday-backoffice/pkg/timetable"
)

// respondErr maps a service error onto the response envelope. Domain
// rejections become 422 field errors; missing rows become 404s;
// anything unexpected is logged and returned as a 500.
func respondErr(c *ctx.Context, err error) {
	var ferr *services.FieldError
	if errors.As(err, &ferr) {
		c.FieldError(ferr.Field, ferr.Message)
		return
	}

	var perr *pricing.Error
	if errors.As(err, &perr) {
		c.FieldError(perr.Field, perr.Detail)
		return
	}

	var verr *timetable.ValidationError
	if errors.As(err, &verr) {
		c.FieldError(verr.Field, verr.Detail)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.NotFound()
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.Unauthorized("Invalid credentials")
		return
	}

	logger.WithCtx(c.Context()).Error("request failed", "error", err)
	c.Error(http.StatusInternalServerError, "Internal Server Error")
}

// actorID returns the authenticated user's ID, 0 on public routes.
func actorID(c *ctx.Context) uint {
	if claims := auth.ClaimsFromCtx(c.Context()); claims != nil {
		return claims.UserID
	}
	return 0
}
