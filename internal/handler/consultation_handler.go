package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
	"github.com/gaurav-code098/Neo-Translate/internal/handler/dto"
)

// ConsultationHandler serves the session boundary, the summary, and the
// patient-language configuration.
type ConsultationHandler struct {
	session domain.SessionUsecase
	summary domain.SummaryUsecase
	logger  *slog.Logger
}

// NewConsultationHandler creates a ConsultationHandler.
func NewConsultationHandler(session domain.SessionUsecase, summary domain.SummaryUsecase, logger *slog.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		session: session,
		summary: summary,
		logger:  logger,
	}
}

// Clear resets the consultation. Clients call this on attachment so every
// page load starts a fresh session; repeating it is harmless.
//
//	@Summary		Start a fresh consultation
//	@Description	Removes all turns and stored audio clips
//	@Tags			session
//	@Success		204
//	@Router			/session [delete]
func (h *ConsultationHandler) Clear(ctx context.Context, c *app.RequestContext) {
	if err := h.session.Attach(ctx); err != nil {
		h.logger.Error("session clear failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}

// Summarize generates the clinical report for the current log.
//
//	@Summary		Summarize the consultation
//	@Tags			summary
//	@Produce		json
//	@Success		200	{object}	dto.SummaryResponse
//	@Failure		502	{object}	Response
//	@Router			/summary [get]
func (h *ConsultationHandler) Summarize(ctx context.Context, c *app.RequestContext) {
	summary, err := h.summary.GenerateSummary(ctx)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.SummaryResponse{Summary: summary})
}

// GetLanguage returns the configured patient language and the supported set.
//
//	@Summary		Read the patient language configuration
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	dto.LanguageConfigResponse
//	@Router			/config/language [get]
func (h *ConsultationHandler) GetLanguage(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, dto.LanguageConfigResponse{
		PatientLanguage: h.session.PatientLanguage(),
		Supported:       entity.PatientLanguages,
	})
}

// SetLanguage replaces the configured patient language.
//
//	@Summary		Change the patient language
//	@Tags			config
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LanguageConfigRequest	true	"language"
//	@Success		200		{object}	dto.LanguageConfigResponse
//	@Failure		400		{object}	Response
//	@Router			/config/language [put]
func (h *ConsultationHandler) SetLanguage(ctx context.Context, c *app.RequestContext) {
	var req dto.LanguageConfigRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("request body must be valid JSON"))
		return
	}

	if err := h.session.SetPatientLanguage(req.PatientLanguage); err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.LanguageConfigResponse{
		PatientLanguage: h.session.PatientLanguage(),
		Supported:       entity.PatientLanguages,
	})
}
