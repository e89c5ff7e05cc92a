package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
)

// Response is the envelope used for error bodies. Successful chat, history,
// and summary responses return their wire contract directly.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoContentResponse returns 204, typically for the session clear.
func NoContentResponse(c *app.RequestContext) {
	c.Status(consts.StatusNoContent)
}

// ErrorResponse maps domain error kinds to HTTP status codes. Provider
// failures surface as 502 because the fault is upstream, not in this
// service; internal details never leak past UserMessage.
func ErrorResponse(c *app.RequestContext, err error) {
	getUserMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	code := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.Code
		}
		return "INTERNAL_ERROR"
	}

	switch {
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    code(err),
			Message: getUserMessage(err),
		})
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, Response{
			Code:    code(err),
			Message: getUserMessage(err),
		})
	case domain.IsTranscription(err), domain.IsTranslation(err), domain.IsSummarization(err):
		c.JSON(consts.StatusBadGateway, Response{
			Code:    code(err),
			Message: getUserMessage(err),
		})
	case domain.IsStorage(err):
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    code(err),
			Message: getUserMessage(err),
		})
	default:
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}
