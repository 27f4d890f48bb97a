package app

import (
	"context"
	"log/slog"

	"github.com/ForestKatsch/phosphor/app/auth"
	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/health"
	"github.com/ForestKatsch/phosphor/core/openapi"
	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/schema"
)

// StatusQuery is the query accepted by GET /status.
type StatusQuery struct {
	Foo *float64 `json:"foo,omitempty" doc:"echoed back as num"`
	Bar *string  `json:"bar,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Status string   `json:"status" validate:"required"`
	Num    *float64 `json:"num,omitempty"`
	Bar    *string  `json:"bar,omitempty"`
}

// RegisterRoutes mounts the application endpoints on r.
func RegisterRoutes(r *router.Router, docs *openapi.Source) {
	auth.Register(r.Route("/auth"))

	r.Route("/status").Get(status, router.Schemas{
		Query:    schema.Struct[StatusQuery](schema.WithCoercion()),
		Response: schema.Struct[StatusResponse](),
	})

	r.Route("/openapi.json").Get(docs.JSONHandler(), router.Schemas{
		Response: schema.Any(),
	})
}

// RegisterHealth mounts the liveness, readiness and ping probes.
func RegisterHealth(r *router.Router, log *slog.Logger, checks ...func(context.Context) error) {
	probe := router.Schemas{Response: health.StatusSchema()}
	r.Route("/health/live").Get(health.Liveness, probe)
	r.Route("/health/ready").Get(health.Readiness(log, checks...), probe)
	r.Route("/ping").Get(health.NoContent)
}

func status(_ context.Context, req *handler.Request) (any, error) {
	q, _ := handler.QueryAs[StatusQuery](req)
	return StatusResponse{
		Status: "ok",
		Num:    q.Foo,
		Bar:    q.Bar,
	}, nil
}
