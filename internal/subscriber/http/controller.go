// Package http adapts mailing list registration to HTTP. The Controller works
// on transport-agnostic requests and responses; SubscriberHandler binds it to gin.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/httputil"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
	"github.com/allisson/mailinglist/internal/subscriber/http/dto"
	"github.com/allisson/mailinglist/internal/subscriber/usecase"
)

// Request is an HTTP-shaped registration request. Body may be nil.
type Request struct {
	Body map[string]any
}

// Response is an HTTP-shaped result. Body is a dto.SubscriberResponse, a
// domain.RegistrationError or an httputil.ErrorResponse.
type Response struct {
	StatusCode int
	Body       any
}

// Controller maps registration outcomes to responses. Each Handle call is
// independent; the controller keeps no per-request state.
type Controller struct {
	subscriberUseCase usecase.SubscriberUseCase
	logger            *slog.Logger
}

// NewController creates a Controller.
func NewController(subscriberUseCase usecase.SubscriberUseCase, logger *slog.Logger) *Controller {
	return &Controller{
		subscriberUseCase: subscriberUseCase,
		logger:            logger,
	}
}

// Handle runs the registration and always returns a well-formed Response,
// including when the use case panics.
func (c *Controller) Handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = c.serverError(fmt.Errorf("panic: %v", r))
		}
	}()

	input := dto.ToUserData(dto.ParseRegisterSubscriberRequest(req.Body))

	result, err := c.subscriberUseCase.Register(ctx, input)
	if err != nil {
		return c.errorResponse(err)
	}

	return Response{
		StatusCode: http.StatusCreated,
		Body:       dto.ToSubscriberResponse(result),
	}
}

func (c *Controller) errorResponse(err error) Response {
	var regErr domain.RegistrationError
	if !apperrors.As(err, &regErr) {
		return c.serverError(err)
	}

	switch regErr.Kind() {
	case domain.KindMissingParam, domain.KindInvalidName, domain.KindInvalidEmail:
		c.logger.Warn("registration rejected",
			slog.String("operation", usecase.RegisterOperation),
			slog.String("error_type", regErr.Kind().String()),
			slog.String("message", regErr.Error()),
		)
		return Response{StatusCode: http.StatusBadRequest, Body: regErr}
	default:
		return c.serverError(err)
	}
}

func (c *Controller) serverError(err error) Response {
	c.logger.Error("registration failed",
		slog.String("operation", usecase.RegisterOperation),
		slog.Any("error", err),
	)
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       httputil.InternalErrorResponse(),
	}
}
