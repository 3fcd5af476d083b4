// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"devfolio/internal/imaging"
	"devfolio/internal/middleware"
	"devfolio/internal/models"
	"devfolio/internal/storage"
	"devfolio/internal/store"
)

const (
	// maxUploadBytes is the hard cap on a single media upload (5 MB).
	maxUploadBytes = 5 << 20

	// sniffLen is how many leading bytes feed content type detection.
	sniffLen = 512
)

// allowedMediaTypes are the MIME types accepted for upload, keyed by the
// sniffed type. The client-declared type is ignored.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// thumbableTypes get a generated thumbnail. GIF is excluded to keep
// animation intact.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Media groups the media library HTTP handlers.
type Media struct {
	media   *store.MediaStore
	storage *storage.Client
}

// NewMedia creates a new Media handler group. A nil storage client means
// object storage is unconfigured; uploads then fail with 503.
func NewMedia(media *store.MediaStore, st *storage.Client) *Media {
	return &Media{media: media, storage: st}
}

// extensionFromType returns the canonical extension for an accepted type.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	return ""
}

// mediaView decorates a stored file with its public URLs.
type mediaView struct {
	models.MediaFile
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url,omitempty"`
}

func (h *Media) view(m models.MediaFile) mediaView {
	mv := mediaView{MediaFile: m, URL: h.storage.FileURL(m.Key)}
	if m.ThumbKey != nil {
		mv.ThumbURL = h.storage.FileURL(*m.ThumbKey)
	}
	return mv
}

// Upload validates and stores one multipart file. Every rule is checked
// before anything touches object storage, so a rejected upload leaves no
// orphaned objects behind.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1024)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 5 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respondError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 5 MB")
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(fileBytes) == 0 {
		respondError(w, http.StatusBadRequest, "file is empty")
		return
	}

	sniff := fileBytes
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	contentType := http.DetectContentType(sniff)
	if !allowedMediaTypes[contentType] {
		respondError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type %q, accepted: JPEG, PNG, WebP, GIF", contentType))
		return
	}

	now := time.Now().UTC()
	fileID := uuid.New().String()
	ext := extensionFromType(contentType)
	folder := fmt.Sprintf("media/%d/%02d", now.Year(), now.Month())
	key := fmt.Sprintf("%s/%s%s", folder, fileID, ext)

	ctx := r.Context()
	if err := h.storage.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("media upload failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	// Thumbnails are best effort; the original is already stored.
	var thumbKey *string
	if thumbableTypes[contentType] {
		thumbData, err := imaging.Thumbnail(bytes.NewReader(fileBytes), imaging.DefaultMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		} else if thumbData != nil {
			tk := fmt.Sprintf("%s/%s_thumb.jpg", folder, fileID)
			if err := h.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	created, err := h.media.Create(&models.MediaFile{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		Folder:       folder,
		Key:          key,
		ThumbKey:     thumbKey,
		UploaderID:   sess.UserID,
	})
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, h.view(*created))
}

// List returns stored media files, newest first, with ?limit= and
// ?offset= bounds.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}

	items, err := h.media.List(limit, offset)
	if err != nil {
		slog.Error("list media failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		views = append(views, h.view(m))
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": views})
}

// Delete removes a stored file by its public URL, cleaning up the
// object, its thumbnail, and the metadata row.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil || req.URL == "" {
		respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	key, ok := h.storage.ExtractS3Key(req.URL)
	if !ok {
		respondError(w, http.StatusBadRequest, "url does not belong to this site's storage")
		return
	}

	deleted, err := h.media.DeleteByKey(key)
	if err != nil {
		slog.Error("delete media row failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if deleted == nil {
		respondError(w, http.StatusNotFound, "file not found")
		return
	}

	ctx := r.Context()
	if err := h.storage.Delete(ctx, deleted.Key); err != nil {
		slog.Warn("delete object failed", "error", err, "key", deleted.Key)
	}
	if deleted.ThumbKey != nil {
		if err := h.storage.Delete(ctx, *deleted.ThumbKey); err != nil {
			slog.Warn("delete thumbnail failed", "error", err, "key", *deleted.ThumbKey)
		}
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
