package pizzahub

import (
	"context"
	"fmt"
	"net/http"

	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/upload"
)

func (c *Client) PresignUpload(ctx context.Context, entityType upload.EntityType, contentType string) (*upload.PresignedURL, error) {
	var presigned upload.PresignedURL
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/uploads/presigned-url",
		body:   upload.PresignRequest{EntityType: entityType, ContentType: contentType},
	}, &presigned)
	if err != nil {
		return nil, err
	}
	if presigned.UploadURL == "" {
		return nil, fmt.Errorf("pizzahub: presigned url response without uploadUrl")
	}
	return &presigned, nil
}

// PutObject uploads directly to object storage. The session cookies are not sent.
func (c *Client) PutObject(ctx context.Context, uploadURL string, contentType string, data []byte) error {
	resp, err := c.objectStore.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-amz-acl", "public-read").
		SetBody(data).
		SetDoNotParseResponse(true).
		Put(uploadURL)
	if err != nil {
		return &common.ApiError{Err: err}
	}
	defer resp.RawResponse.Body.Close()
	if resp.StatusCode() >= http.StatusBadRequest {
		return &common.ApiError{Status: resp.StatusCode(), Message: "object storage rejected the upload"}
	}
	return nil
}
