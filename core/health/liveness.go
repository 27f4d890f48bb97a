package health

import (
	"context"

	"github.com/ForestKatsch/phosphor/core/handler"
	"github.com/ForestKatsch/phosphor/core/schema"
)

const (
	StatusAlive = "alive"
	StatusReady = "ready"
)

// Status is the body of the liveness and readiness probes.
type Status struct {
	Status string `json:"status" validate:"required,oneof=alive ready"`
}

// StatusSchema validates probe responses.
func StatusSchema() schema.Schema {
	return schema.Struct[Status]()
}

// Liveness indicates the process is running. It always succeeds.
func Liveness(context.Context, *handler.Request) (any, error) {
	return Status{Status: StatusAlive}, nil
}

// NoContent answers with 204 and no body.
func NoContent(context.Context, *handler.Request) (any, error) {
	return nil, nil
}
