package handlers

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnuscit/magnus-mail/internal/mail"
)

// MailHandler drives the bulk-send pipeline from the HTTP boundary. Batching
// is enforced server-side: handlers accept the full recipient set and the
// pipeline chunks it, so at most one batch of sends is in flight at a time.
type MailHandler struct {
	pipeline *mail.Pipeline
	progress atomic.Int64 // percent of the most recent campaign
	logger   *zap.Logger
}

// NewMailHandler creates a MailHandler over a pipeline built with the given
// dispatcher and config. The handler installs its own progress hook.
func NewMailHandler(dispatcher *mail.Dispatcher, cfg mail.PipelineConfig, logger *zap.Logger) *MailHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &MailHandler{logger: logger}
	cfg.OnProgress = func(done, total int) {
		if total > 0 {
			h.progress.Store(int64(done * 100 / total))
		}
	}
	h.pipeline = mail.NewPipeline(dispatcher, cfg, logger)
	return h
}

// SendRequest is the JSON payload of the send endpoint. Recipients is the
// full, unbatched set; each row's first element is the destination address.
type SendRequest struct {
	Subject    string     `json:"subject" binding:"required"`
	Body       string     `json:"body" binding:"required"`
	Recipients [][]string `json:"recipients" binding:"required,min=1"`
}

// Send runs a campaign from a JSON request body.
func (h *MailHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	rows := make([]mail.Recipient, 0, len(req.Recipients))
	for _, row := range req.Recipients {
		rows = append(rows, mail.Recipient(row))
	}

	h.progress.Store(0)
	report, err := h.pipeline.Run(c.Request.Context(), req.Subject, req.Body, rows)
	if err != nil {
		h.logger.Error("campaign failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Error sending emails",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SendResponse{
		Success: true,
		Message: "Emails sent successfully",
		Report:  report,
	})
}

// Campaign runs a campaign from a multipart form carrying the subject, body
// template, and the recipient CSV file.
func (h *MailHandler) Campaign(c *gin.Context) {
	subject := c.PostForm("subject")
	body := c.PostForm("body")
	if subject == "" || body == "" {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Subject and body are required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Recipient file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
		return
	}
	defer file.Close()

	h.progress.Store(0)
	report, err := h.pipeline.RunCSV(c.Request.Context(), subject, body, file)
	if err != nil {
		h.logger.Error("campaign failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Error sending emails",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SendResponse{
		Success: true,
		Message: "Emails sent successfully",
		Report:  report,
	})
}

// Progress reports the percent of rows processed by the campaign in flight.
func (h *MailHandler) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progress": h.progress.Load()})
}
