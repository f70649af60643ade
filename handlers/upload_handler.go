package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Modassir22/dream-home-hub/services"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is headroom for boundaries and part headers on top of the file limit.
const multipartOverhead = 64 << 10

type UploadHandler struct {
	svc      services.UploadService
	maxBytes int64
}

func NewUploadHandler(svc services.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes}
}

// Image handles POST /upload/image with a multipart "image" field.
func (h *UploadHandler) Image(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			badRequest(c, h.tooLarge())
			return
		}
		badRequest(c, "No image uploaded")
		return
	}
	if fh.Size > h.maxBytes {
		badRequest(c, h.tooLarge())
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	out, err := h.svc.SaveImage(f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *UploadHandler) tooLarge() string {
	return fmt.Sprintf("Image must be at most %d bytes", h.maxBytes)
}
