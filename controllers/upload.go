package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"restaurantapi/models"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

const (
	maxImageWidth  = 800
	maxImageHeight = 600
	jpegQuality    = 85
)

// saveImage decodes an uploaded image, shrinks it to fit the catalog bounds
// (never enlarging) and stores it as JPEG under the upload directory.
func (api *API) saveImage(file *multipart.FileHeader, prefix string) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", fmt.Errorf("not-an-image")
	}

	src, err := file.Open()
	if err != nil {
		log.Println(err)
		return "", err
	}

	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		log.Println(err)
		return "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageWidth || bounds.Dy() > maxImageHeight {
		img = imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
	}

	if err := os.MkdirAll(api.UploadDir, 0755); err != nil {
		log.Println(err)
		return "", err
	}

	name := fmt.Sprintf("%s-%d-%s.jpg", prefix, time.Now().UnixNano(), tokenGenerator()[:8])
	path := filepath.Join(api.UploadDir, name)

	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		log.Println(err)
		return "", err
	}

	if info, err := os.Stat(path); err == nil {
		log.Println("stored", name, humanize.Bytes(uint64(info.Size())))
	}

	return "/uploads/" + name, nil
}

func (api *API) uploadedFile(url, originalName string) gin.H {
	name := filepath.Base(url)

	var size int64
	if info, err := os.Stat(filepath.Join(api.UploadDir, name)); err == nil {
		size = info.Size()
	}

	return gin.H{
		"filename":     name,
		"url":          url,
		"originalName": originalName,
		"size":         size,
	}
}

func (api *API) UploadSingleImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, "missing-file")
		return
	}

	url, err := api.saveImage(file, "upload")
	if err != nil {
		if err.Error() == "not-an-image" {
			sendError(c, http.StatusBadRequest, err.Error())
			return
		}
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ItemResponse{
		Success: true,
		Message: "image-uploaded",
		Data:    api.uploadedFile(url, file.Filename),
	})
}

func (api *API) UploadMultipleImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, "missing-files")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendError(c, http.StatusBadRequest, "missing-files")
		return
	}

	if len(files) > 5 {
		sendError(c, http.StatusBadRequest, "too-many-files")
		return
	}

	uploaded := make([]gin.H, 0, len(files))
	for _, file := range files {
		url, err := api.saveImage(file, "upload")
		if err != nil {
			if err.Error() == "not-an-image" {
				sendError(c, http.StatusBadRequest, err.Error())
				return
			}
			sendServerError(c, err)
			return
		}

		uploaded = append(uploaded, api.uploadedFile(url, file.Filename))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "images-uploaded",
		"count":   len(uploaded),
		"data":    uploaded,
	})
}

func (api *API) DeleteImage(c *gin.Context) {
	// Base strips any path traversal from the parameter
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(api.UploadDir, filename)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		sendError(c, http.StatusNotFound, "file-not-found")
		return
	}

	if err := os.Remove(path); err != nil {
		sendServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Message: "file-deleted"})
}
