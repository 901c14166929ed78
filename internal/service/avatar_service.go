package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tuitionhub/internal/errdefs"
)

// AvatarStore is the blob store the avatar flow writes to. Keys are
// whole-object overwrites, last write wins.
type AvatarStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Locator(key string) string
}

type AvatarService struct {
	userRepository UserRepository
	store          AvatarStore
}

func NewAvatarService(userRepository UserRepository, store AvatarStore) *AvatarService {
	return &AvatarService{
		userRepository: userRepository,
		store:          store,
	}
}

// avatarKey derives the object key from the user id alone, so re-uploads
// overwrite the previous picture in place.
func avatarKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile_%s.jpg", userID)
}

func (s *AvatarService) UpdateAvatar(ctx context.Context, pictureBase64 string) (string, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return "", err
	}
	if pictureBase64 == "" {
		return "", fmt.Errorf("profile picture data is required: %w", errdefs.ErrValidation)
	}

	// clients may send a data URI; only the payload matters
	if strings.HasPrefix(pictureBase64, "data:image") {
		if _, rest, found := strings.Cut(pictureBase64, ","); found {
			pictureBase64 = rest
		}
	}

	data, err := base64.StdEncoding.DecodeString(pictureBase64)
	if err != nil {
		return "", fmt.Errorf("profile picture is not valid base64: %w", errdefs.ErrValidation)
	}

	key := avatarKey(userID)
	if err := s.store.Put(ctx, key, data); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.userRepository.UpdateAvatarKey(ctx, userID, key); err != nil {
		return "", err
	}

	return s.store.Locator(key), nil
}

// GetAvatar returns the locator for the user's avatar, or nil when the
// user has never uploaded one.
func (s *AvatarService) GetAvatar(ctx context.Context, userID uuid.UUID) (*string, error) {
	key, err := s.userRepository.GetAvatarKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, nil
	}
	locator := s.store.Locator(*key)
	return &locator, nil
}
