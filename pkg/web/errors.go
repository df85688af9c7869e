package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/orchahq/nodekit/pkg/resolve"
	"github.com/orchahq/nodekit/pkg/routing"
)

// validationProblem extends the RFC 7807 shape with the per-field errors of
// a failed resolution pass.
type validationProblem struct {
	problems.Problem

	Errors []FieldErrorResponse `json:"errors"`
}

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(fiber.StatusBadRequest).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(fiber.StatusNotFound).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(fiber.StatusInternalServerError).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

func fieldErrors(c fiber.Ctx, errs resolve.FieldErrors) error {
	problem := problems.NewStatusProblem(fiber.StatusUnprocessableEntity).
		WithInstance(c.Path()).
		WithType("invalid_parameters").
		WithDetail("one or more parameters failed validation")

	out := make([]FieldErrorResponse, len(errs))
	for i, fieldErr := range errs {
		out[i] = FieldErrorResponse{
			Path:    fieldErr.Path,
			Kind:    string(fieldErr.Kind),
			Message: fieldErr.Message,
		}
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(validationProblem{
		Problem: *problem,
		Errors:         out,
	})
}

// handleResolveError maps engine and compiler failures onto problem
// responses.
func handleResolveError(c fiber.Ctx, err error) error {
	if errs, ok := resolve.AsFieldErrors(err); ok {
		return fieldErrors(c, errs)
	}

	if routing.IsRoutingError(err) {
		problem := problems.NewStatusProblem(fiber.StatusUnprocessableEntity).
			WithInstance(c.Path()).
			WithType("routing_error").
			WithDetail(err.Error())

		return c.Status(fiber.StatusUnprocessableEntity).JSON(problem)
	}

	return internalError(c, err)
}
