package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barbershop-api/internal/httperr"
	"github.com/barberhub/barbershop-api/internal/media"
)

const maxUploadBytes = 10 << 20

type MediaHandler struct {
	storage *media.Storage
}

func NewMediaHandler(storage *media.Storage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// Upload takes a multipart image, converts it to webp and stores it,
// returning the URL to put on a barber or service record.
func (h *MediaHandler) Upload(c *gin.Context) {
	if !h.storage.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable,
			"uploads_disabled", "No media bucket is configured.")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if header.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload limit.")
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read image.")
		return
	}
	defer file.Close()

	encoded, err := media.EncodeWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File is not a decodable image.")
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
