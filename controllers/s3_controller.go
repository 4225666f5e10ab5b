package controllers

import (
	"net/http"

	"loveconnect_server/services"
)

// S3Controller hands out presigned photo URLs.
type S3Controller struct {
	S3Service *services.S3Service
}

func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// GetUploadURL returns a presigned PUT URL for a new photo.
func (c *S3Controller) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileName == "" || fileType == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "fileName and fileType are required."})
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// GetReadURL returns a presigned GET URL for a stored photo.
func (c *S3Controller) GetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "key is required."})
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
