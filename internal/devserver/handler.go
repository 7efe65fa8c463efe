package devserver

import (
	"github.com/MKhiriev/go-mail-notes/internal/logger"
)

type Handler struct {
	mailbox *Mailbox

	logger *logger.Logger
}

func NewHandler(mailbox *Mailbox, logger *logger.Logger) *Handler {
	logger.Info().Msg("dev server handler created")
	return &Handler{
		mailbox: mailbox,
		logger:  logger,
	}
}
