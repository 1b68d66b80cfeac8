package upload

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

const FailedMessage = "Image upload failed. You can submit without an image."

// FailurePolicy decides what a create or update does when its image upload fails.
type FailurePolicy string

const (
	PolicyAbort    FailurePolicy = "abort"
	PolicyContinue FailurePolicy = "continue"
)

// Uploader is what menu services need to attach an image.
type Uploader interface {
	Upload(ctx context.Context, entity EntityType, file *File) (string, error)
}

type Gateway interface {
	PresignUpload(ctx context.Context, entityType EntityType, contentType string) (*PresignedURL, error)
	PutObject(ctx context.Context, uploadURL string, contentType string, data []byte) error
}

// Error reports a failed image upload. It is kept apart from the
// create/update error so the form can offer to submit without the image.
type Error struct {
	Entity EntityType
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("upload %s image: %v", e.Entity, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) UserMessage() string {
	return FailedMessage
}

type UploadService struct {
	gateway  Gateway
	notifier notice.Notifier
	policies map[EntityType]FailurePolicy
}

func NewService(gateway Gateway, notifier notice.Notifier) *UploadService {
	policies := map[EntityType]FailurePolicy{}
	for entity, policy := range environment_variables.ParseKeyValues(environment_variables.EnvironmentVariables.UPLOAD_FAILURE_POLICY) {
		switch FailurePolicy(policy) {
		case PolicyAbort, PolicyContinue:
			policies[EntityType(entity)] = FailurePolicy(policy)
		default:
			logger.GetLogger().Warnf("unknown upload failure policy %q for %s, using abort", policy, entity)
		}
	}
	return &UploadService{gateway: gateway, notifier: notifier, policies: policies}
}

func (s *UploadService) Policy(entity EntityType) FailurePolicy {
	if policy, ok := s.policies[entity]; ok {
		return policy
	}
	return PolicyAbort
}

// Upload stores file and returns its public URL. A nil file uploads nothing
// and yields an empty URL.
func (s *UploadService) Upload(ctx context.Context, entity EntityType, file *File) (string, error) {
	if file == nil {
		return "", nil
	}
	if err := file.Validate(); err != nil {
		return "", &common.ValidationError{Fields: map[string]string{"image": err.Error()}}
	}

	fileURL, err := s.put(ctx, entity, file)
	if err == nil {
		return fileURL, nil
	}

	log := logger.GetLogger().WithFields(logrus.Fields{"entity": entity, "file": file.Name})
	s.notifier.Error(fmt.Sprintf("failed to upload %s image", entity))
	if s.Policy(entity) == PolicyContinue {
		log.Warnf("image upload failed, continuing without image: %v", err)
		return "", nil
	}
	log.Errorf("image upload failed: %v", err)
	return "", &Error{Entity: entity, Err: err}
}

func (s *UploadService) put(ctx context.Context, entity EntityType, file *File) (string, error) {
	presigned, err := s.gateway.PresignUpload(ctx, entity, file.ContentType)
	if err != nil {
		return "", err
	}
	if err := s.gateway.PutObject(ctx, presigned.UploadURL, file.ContentType, file.Data); err != nil {
		return "", err
	}
	return presigned.FileURL, nil
}
