package worker

// email_worker.go
// Processes notification jobs from QueueEmail: status-change notices and
// report deliveries, with the PDF pulled from object storage when present.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbenteu/lance-pro-control/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail. An empty ToEmail
// falls back to the configured team address.
type EmailJobPayload struct {
	ToEmail     string `json:"to_email,omitempty"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	PDFPath     string `json:"pdf_path,omitempty"`
	PDFFileName string `json:"pdf_file_name,omitempty"`
}

type EmailWorker struct {
	mailer    *infra.Mailer
	storage   infra.Storage
	defaultTo string
}

func NewEmailWorker(mailer *infra.Mailer, storage infra.Storage, defaultTo string) *EmailWorker {
	return &EmailWorker{mailer: mailer, storage: storage, defaultTo: defaultTo}
}

// Process sends one notification email.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil // not retryable
	}

	to := payload.ToEmail
	if to == "" {
		to = w.defaultTo
	}
	if to == "" {
		log.Warn().Msg("email_worker: no recipient configured — skipping")
		return nil
	}

	var pdfData []byte
	if payload.PDFPath != "" {
		data, err := w.storage.Download(payload.PDFPath)
		if err != nil {
			return fmt.Errorf("email_worker: fetch attachment: %w", err)
		}
		pdfData = data
	}

	if err := w.mailer.Send(to, payload.Subject, payload.Body, payload.PDFFileName, pdfData); err != nil {
		return fmt.Errorf("email_worker: send: %w", err)
	}
	log.Info().Str("to", to).Str("subject", payload.Subject).Msg("email_worker: notification sent")
	return nil
}
