package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipefy/backend/internal/model"
)

// ObjectStore is the subset of the S3 client used for recipe media.
// config.S3Config satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ObjectURL(key string) string
}

// MediaService uploads recipe images to object storage.
type MediaService struct {
	store   ObjectStore
	recipes *RecipeService
	prefix  string
	log     *zap.Logger
}

// NewMediaService creates a media service. A nil store disables uploads.
func NewMediaService(store ObjectStore, recipes *RecipeService, prefix string, log *zap.Logger) *MediaService {
	return &MediaService{store: store, recipes: recipes, prefix: strings.Trim(prefix, "/"), log: log}
}

// UploadRecipeImage stores body under {prefix}/{recipe_id}/{uuid}{ext} and
// points the recipe's media_image_url at it.
func (s *MediaService) UploadRecipeImage(ctx context.Context, userID, recipeID uuid.UUID, filename, contentType string, body io.Reader) (*model.Recipe, error) {
	if s.store == nil {
		return nil, ErrMediaUnavailable
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: only image uploads are accepted", ErrInvalidInput)
	}
	if _, err := s.recipes.GetRecipe(ctx, userID, recipeID); err != nil {
		return nil, err
	}

	key := ObjectKey(s.prefix, recipeID, filename, mediaType)
	_, err = s.store.PutObject(ctx, &s3.PutObjectInput{
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		s.log.Error("media upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url := s.store.ObjectURL(key)
	s.log.Info("recipe image stored", zap.String("recipe_id", recipeID.String()), zap.String("url", url))
	return s.recipes.SetMediaImage(ctx, userID, recipeID, url)
}

// ObjectKey builds the storage key for a recipe image. The extension comes
// from the uploaded filename, or from the media type when the name has none.
func ObjectKey(prefix string, recipeID uuid.UUID, filename, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return path.Join(prefix, recipeID.String(), uuid.NewString()+ext)
}
