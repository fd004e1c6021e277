package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/service"
)

// ImageHandler handles image upload, public serving, listing, and deletion.
type ImageHandler struct {
	images *service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// HandleUpload processes a multipart image upload and returns the stored
// metadata plus the public URL.
// POST /api/images/upload
func (h *ImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	// Parse multipart form (10MB limit).
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Detect content type from file bytes (more reliable than multipart header).
	contentType := http.DetectContentType(data)

	image, url, err := h.images.Upload(r.Context(), sess, header.Filename, contentType, data)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, storedImageDTO{
		ID:          image.ID,
		Filename:    image.Filename,
		ContentType: image.ContentType,
		Size:        image.Size,
		StorageKey:  image.StorageKey,
		URL:         url,
		CreatedAt:   image.CreatedAt,
	})
}

// HandleServe serves image bytes with correct Content-Type. Public: the
// site embeds these URLs directly.
// GET /images/{key}
func (h *ImageHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, contentType, err := h.images.GetFile(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// HandleList returns all stored image metadata, newest first.
// GET /api/images
func (h *ImageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	images, err := h.images.List(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]storedImageDTO, 0, len(images))
	for _, img := range images {
		dtos = append(dtos, storedImageDTO{
			ID:          img.ID,
			Filename:    img.Filename,
			ContentType: img.ContentType,
			Size:        img.Size,
			StorageKey:  img.StorageKey,
			URL:         h.images.PublicURL(img.StorageKey),
			CreatedAt:   img.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleDelete removes an image and its stored bytes.
// DELETE /api/images/{key}
func (h *ImageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := h.images.Delete(r.Context(), sess, r.PathValue("key")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
