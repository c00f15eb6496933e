package server

import (
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int                      `json:"status"`
	Message string                   `json:"message"`
	Reason  domain.Reason            `json:"reason,omitempty"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

// ReasonValidation tags 422 replies caused by field validation.
const ReasonValidation domain.Reason = "VALIDATION"

const contentTypeJSON = "application/json"

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusInternalServerError, Message: "encoding response: " + err.Error(), Reason: domain.ReasonInternal})
		return
	}
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, resp ErrorResponse) {
	body, _ := json.Marshal(resp)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(resp.Status)
	ctx.SetBody(body)
}
