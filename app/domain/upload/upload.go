package upload

import (
	"fmt"
	"slices"
)

type EntityType string

const (
	EntityPizza   EntityType = "pizza"
	EntityTopping EntityType = "topping"
	EntityUser    EntityType = "user"
)

const MaxImageSize = 10 << 20

var AllowedContentTypes = []string{"image/png", "image/jpeg", "image/webp"}

// File is an image picked in a form.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *File) Validate() error {
	if len(f.Data) > MaxImageSize {
		return fmt.Errorf("image must be at most 10MB")
	}
	if !slices.Contains(AllowedContentTypes, f.ContentType) {
		return fmt.Errorf("image must be png, jpeg or webp")
	}
	return nil
}

// PresignRequest is the one snake_case body the backend accepts.
type PresignRequest struct {
	EntityType  EntityType `json:"entity_type"`
	ContentType string     `json:"content_type"`
}

type PresignedURL struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
}
