// Package schema defines the validation capability used by the router and the
// request pipeline. A Schema turns an untyped value into a typed one or reports
// a tree of issues keyed by field path.
//
// The pipeline never depends on a particular validation library: anything that
// implements Schema can be attached to a route. The package ships a struct-tag
// implementation backed by mapstructure and go-playground/validator:
//
//	type CreateUser struct {
//		Name  string `json:"name" validate:"required"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	r.Route("/users").Post(createUser, router.Schemas{
//		Body: schema.Struct[CreateUser](),
//	})
//
// Query strings arrive as raw strings; use WithCoercion to convert them into
// numeric or boolean fields:
//
//	type ListQuery struct {
//		Page  int    `json:"page"`
//		Order string `json:"order" validate:"omitempty,oneof=asc desc"`
//	}
//
//	schema.Struct[ListQuery](schema.WithCoercion())
//
// Schemas that also implement Describer expose a JSON-Schema subset which the
// openapi package uses to document routes.
package schema
