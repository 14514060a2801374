package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr   = "INTERNAL_ERROR"
	ErrValidationErr = "VALIDATION_ERROR"
	ErrBadRequest    = "BAD_REQUEST"
	ErrCodeUpstream  = "UPSTREAM_ERROR"
)

type DashboardResponse struct {
	Groups      map[string][]PullRequestSchema `json:"groups"`
	Colors      map[string]ColorSchema         `json:"colors"`
	Total       int                            `json:"total"`
	Visible     int                            `json:"visible"`
	RefreshedAt time.Time                      `json:"refreshed_at"`
}

type FiltersResponse struct {
	Filters FilterOptionsSchema `json:"filters"`
}

type PinsResponse struct {
	PinnedIDs []string `json:"pinned_ids"`
}

type ToggleResponse struct {
	PullRequestID string `json:"pull_request_id"`
	Pinned        bool   `json:"pinned"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of: %s", err.Field(), err.Param()),
			)
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
