package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"servlink/services/storage"
	"servlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler serves profile photo uploads.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(s storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: s}
}

// UploadPhotoHandler accepts a multipart file, pushes it to the blob store,
// and returns the delivery URL for the caller to save on their profile.
func (h *StorageHandler) UploadPhotoHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A 'file' form field is required", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.GetLogger().Error("upload: failed to buffer file", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process upload", "")
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Service.UploadFile(c.Request.Context(), tmpPath, "profile_photos")
	if err != nil {
		utils.GetLogger().Error("upload: blob store rejected file", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to store upload", "")
		return
	}

	url, err := h.Service.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		utils.GetLogger().Error("upload: failed to build download URL", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to resolve upload URL", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publicId": publicID, "url": url})
}
