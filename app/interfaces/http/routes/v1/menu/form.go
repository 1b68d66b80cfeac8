package menu

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/upload"
	"pizzaops.io/admin-dashboard/app/interfaces/http/responses"
)

const imageField = "image"

// readImage returns the optional image part of a multipart form. Requests
// that are not multipart carry no image.
func readImage(reqCtx *gin.Context) (*upload.File, error) {
	header, err := reqCtx.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size > upload.MaxImageSize {
		return nil, &common.ValidationError{Fields: map[string]string{imageField: "image must be at most 10MB"}}
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, upload.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &upload.File{Name: header.Filename, ContentType: contentType, Data: data}, nil
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

type featuredRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

func badRequest(reqCtx *gin.Context, code string, err error) {
	reqCtx.AbortWithStatusJSON(http.StatusBadRequest, errorBody(code, err))
}

func errorBody(code string, err error) responses.ErrorResponse {
	return responses.ErrorResponse{Code: code, Error: err.Error()}
}
