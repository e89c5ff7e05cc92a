package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/gaurav-code098/Neo-Translate/internal/domain"
	"github.com/gaurav-code098/Neo-Translate/internal/domain/entity"
	"github.com/gaurav-code098/Neo-Translate/internal/handler/dto"
)

// ChatHandler accepts typed and recorded messages and hands them to the
// message pipeline.
type ChatHandler struct {
	usecase domain.ChatUsecase
	logger  *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(usecase domain.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// SubmitText handles a typed message.
//
//	@Summary		Submit a typed chat message
//	@Description	Translates the message for the counterpart role and appends it to the consultation log
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TextMessageRequest	true	"message"
//	@Success		200		{object}	dto.TurnResponse
//	@Failure		400		{object}	Response
//	@Failure		502		{object}	Response
//	@Router			/chat/text [post]
func (h *ChatHandler) SubmitText(ctx context.Context, c *app.RequestContext) {
	var req dto.TextMessageRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		ErrorResponse(c, domain.NewInvalidInputError("request body must be valid JSON"))
		return
	}

	turn, err := h.usecase.SubmitText(ctx, &domain.SubmitTextRequest{
		Role:       entity.Role(req.Role),
		Text:       req.Text,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromTurn(turn))
}

// SubmitAudio handles a recorded clip uploaded as multipart form data. The
// stored clip is served back at the URL in the response for playback.
//
//	@Summary		Submit a recorded chat message
//	@Description	Stores the clip, transcribes and translates it, and appends the turn
//	@Tags			chat
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"audio clip"
//	@Param			role		formData	string	true	"doctor or patient"
//	@Param			target_lang	formData	string	false	"target language"
//	@Success		200	{object}	dto.TurnResponse
//	@Failure		400	{object}	Response
//	@Failure		502	{object}	Response
//	@Router			/chat/audio [post]
func (h *ChatHandler) SubmitAudio(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("an audio file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ErrorResponse(c, domain.NewInvalidInputError("could not open the uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ErrorResponse(c, domain.NewStorageError("could not read the uploaded file", err))
		return
	}

	turn, err := h.usecase.SubmitAudio(ctx, &domain.SubmitAudioRequest{
		Role:       entity.Role(c.PostForm("role")),
		TargetLang: c.PostForm("target_lang"),
		Filename:   fileHeader.Filename,
		Data:       data,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromTurn(turn))
}

// History returns the ordered consultation log. The optional q parameter
// filters turns whose original or translated text contains the substring.
//
//	@Summary		Read the consultation log
//	@Tags			chat
//	@Produce		json
//	@Param			q	query		string	false	"substring filter"
//	@Success		200	{array}		dto.TurnResponse
//	@Router			/history [get]
func (h *ChatHandler) History(ctx context.Context, c *app.RequestContext) {
	turns, err := h.usecase.History(ctx, c.Query("q"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromTurns(turns))
}
