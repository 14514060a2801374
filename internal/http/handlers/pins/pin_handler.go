package pins

import (
	"context"
	"log/slog"
	"net/http"

	"reviewdeck/internal/http/api"
	"reviewdeck/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PinService --output=../mocks --outpkg=mocks
type PinService interface {
	List(ctx context.Context) []string
	Toggle(ctx context.Context, id string) (bool, error)
}

type PinHandler struct {
	log     *slog.Logger
	service PinService
}

func NewPinHandler(log *slog.Logger, s PinService) *PinHandler {
	return &PinHandler{
		log:     log,
		service: s,
	}
}

// List returns the pinned identifiers in insertion order.
func (h *PinHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.service.List(r.Context())

	render.JSON(w, r, api.PinsResponse{PinnedIDs: ids})
}

type ToggleRequest struct {
	PullRequestID string `json:"pull_request_id" validate:"required"`
}

// Toggle flips the pinned state of one pull request and reports the new state.
func (h *PinHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pins.Toggle"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input ToggleRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	pinned, err := h.service.Toggle(ctx, input.PullRequestID)
	if err != nil {
		log.Error("error while toggling pin", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.ToggleResponse{
		PullRequestID: input.PullRequestID,
		Pinned:        pinned,
	})
}
