package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetinsight-team/meeting-insight/errors"
	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
)

// Pipeline is the processing dependency behind the upload endpoint.
type Pipeline interface {
	Process(ctx context.Context, filename string, audio io.Reader, languageCode string) (*entities.PipelineResult, error)
}

// Upload handles the audio upload endpoint
type Upload struct {
	pipeline Pipeline
	logger   *zap.Logger
}

// NewUpload creates a new upload handler
func NewUpload(pipeline Pipeline, logger *zap.Logger) *Upload {
	return &Upload{pipeline: pipeline, logger: logger}
}

// uploadRequest carries the optional form fields of an upload.
type uploadRequest struct {
	Language string `form:"language" validate:"omitempty,bcp47_language_tag"`
}

// Handle processes one multipart audio upload and responds with the
// speaker-segmented transcript plus derived insights.
func (h *Upload) Handle(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid language code"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing audio file"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	if h.logger != nil {
		h.logger.Info("processing upload",
			zap.String("request_id", getRequestID(c)),
			zap.String("filename", fileHeader.Filename),
			zap.Int64("size_bytes", fileHeader.Size),
		)
	}

	result, err := h.pipeline.Process(c.Request().Context(), fileHeader.Filename, src, req.Language)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, result)
}
