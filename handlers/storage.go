package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"lensbook/models"
	"lensbook/services/storage"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// allowedImageExts defines permitted portfolio uploads.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// UploadPortfolio stores an image for one of the vendor's services and
// attaches it to the listing.
func (h *VendorHandler) UploadPortfolio(c *gin.Context) {
	if h.Media == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "media storage is not configured", "")
		return
	}
	serviceID := c.Param("id")

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		utils.JSONError(c, http.StatusBadRequest, "unsupported file type", "allowed: jpg, jpeg, png, webp, heic")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	asset, err := h.Media.Upload(ctx, file, storage.PortfolioFolder(serviceID), fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	item := models.PortfolioItem{PublicID: asset.PublicID, URL: asset.URL, UploadedAt: time.Now().UTC()}
	if err := h.Catalog.AddPortfolioItem(ctx, serviceID, currentUser(c), item); err != nil {
		if derr := h.Media.Delete(ctx, asset.PublicID); derr != nil {
			getLogger(c).Warn("orphaned portfolio upload", zap.String("publicId", asset.PublicID), zap.Error(derr))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
