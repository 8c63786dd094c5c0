package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/ventasuite/crm-backend/internal/access"
)

// attachmentStore defines the object storage operations needed by
// AttachmentHandler.
type attachmentStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// AttachmentHandler serves attachment upload endpoints backed by object
// storage. Uploads return a key that message sends reference.
type AttachmentHandler struct {
	store          attachmentStore
	maxUploadBytes int64
	log            *slog.Logger
}

// NewAttachmentHandler creates an AttachmentHandler.
func NewAttachmentHandler(store attachmentStore, maxUploadBytes int64, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		store:          store,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "attachment"),
	}
}

// Upload handles POST /attachments; multipart form with a "file" part.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.requireSender(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.store.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "attachment uploaded",
		slog.String("key", key),
		slog.Int64("size", header.Size))

	writeJSON(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": h.store.PublicURL(key),
	})
}

// requireSender rejects callers who may not send messages; attachments
// only exist to ride along with sends.
func (h *AttachmentHandler) requireSender(w http.ResponseWriter, r *http.Request) bool {
	scope, ok := access.FromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !access.Can(scope.Role, access.EntityMessage, access.ActionSend, true) {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
