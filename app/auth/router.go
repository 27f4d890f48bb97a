// Package auth provides the /auth endpoints.
package auth

import (
	"context"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/schema"
)

// DemoToken is the fixed token issued by the demo endpoint.
const DemoToken = "1234567890"

// TokenResponse is returned by GET /auth.
type TokenResponse struct {
	Token string `json:"token" validate:"required"`
}

// Register mounts the auth endpoints on r.
func Register(r *router.Router) {
	r.Get(token, router.Schemas{
		Response: schema.Struct[TokenResponse](),
	})
}

func token(context.Context, *handler.Request) (any, error) {
	return TokenResponse{Token: DemoToken}, nil
}
