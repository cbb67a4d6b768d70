// Package services contains the application's business logic. This file
// implements AstroService, a thin layer over the people-in-space API.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/astro"
	"github.com/dmitrijs2005/officerdemo/internal/config"
	"github.com/dmitrijs2005/officerdemo/internal/models"
)

// AstroAPI is the remote API as seen by AstroService. *astro.Client
// implements it.
type AstroAPI interface {
	GetRaw(ctx context.Context) (string, error)
	GetAstroResponse(ctx context.Context) (*models.AstroResponse, error)
	GetAstroResponseAsync(ctx context.Context) *astro.Pending
}

// AstroService answers "who is in space right now". It keeps no state and
// caches nothing; every call is an independent round trip.
type AstroService struct {
	api          AstroAPI
	asyncTimeout time.Duration
}

// NewAstroService constructs an AstroService. A non-positive
// cfg.AstroAsyncTimeout falls back to astro.DefaultAsyncTimeout.
func NewAstroService(api AstroAPI, cfg *config.Config) *AstroService {
	timeout := cfg.AstroAsyncTimeout
	if timeout <= 0 {
		timeout = astro.DefaultAsyncTimeout
	}
	return &AstroService{api: api, asyncTimeout: timeout}
}

// GetPeopleInSpace returns the raw response body.
func (s *AstroService) GetPeopleInSpace(ctx context.Context) (string, error) {
	return s.api.GetRaw(ctx)
}

// GetAstroResponse performs a blocking typed call.
func (s *AstroService) GetAstroResponse(ctx context.Context) (*models.AstroResponse, error) {
	return s.api.GetAstroResponse(ctx)
}

// GetAstroResponseAsync issues the call asynchronously and waits at most the
// configured ceiling. On expiry it returns common.ErrTimeout and abandons
// the request.
func (s *AstroService) GetAstroResponseAsync(ctx context.Context) (*models.AstroResponse, error) {
	return s.api.GetAstroResponseAsync(ctx).Wait(s.asyncTimeout)
}
