// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/models"
)

// contentService stores uploaded files in the configured file storage and
// their metadata in the content repository.
type contentService struct {
	content store.ContentRepository
	files   store.FileStorage
	ids     idGenerator

	logger *logger.Logger
}

func NewContentService(storages *store.Storages, logger *logger.Logger) ContentService {
	return &contentService{
		content: storages.ContentRepository,
		files:   storages.FileStorage,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *contentService) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	items, err := s.content.ListContent(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contentService.List").Msg("content listing failed")
		return nil, fmt.Errorf("content listing failed: %w", err)
	}
	return items, nil
}

// Upload decodes req.FileData, stores the file under
// "{type}s/{uuid}_{file name}" and records the item on behalf of userID.
func (s *contentService) Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.ContentItem, error) {
	log := logger.FromContext(ctx)

	data, err := decodeFileData(req.FileData)
	if err != nil {
		log.Info().Err(err).Str("func", "*contentService.Upload").Msg("file_data is not base64")
		return models.ContentItem{}, ErrInvalidFileData
	}

	key := objectKey(req.Type, s.ids.Generate(), req.FileName)
	fileURL, err := s.files.Put(ctx, key, req.Type.MIMEType(), data)
	if err != nil {
		log.Err(err).Str("func", "*contentService.Upload").Str("key", key).Msg("storing file failed")
		return models.ContentItem{}, fmt.Errorf("storing file failed: %w", err)
	}

	item, err := s.content.CreateContent(ctx, models.ContentItem{
		UserID:      userID,
		Type:        req.Type,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		FileURL:     fileURL,
		Category:    optionalString(req.Category),
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		log.Err(err).Str("func", "*contentService.Upload").Int64("user_id", userID).Msg("saving content failed")
		return models.ContentItem{}, fmt.Errorf("saving content failed: %w", err)
	}

	log.Info().Int64("id", item.ID).Str("type", string(item.Type)).Msg("content uploaded")
	return item, nil
}

// decodeFileData accepts padded and unpadded standard base64.
func decodeFileData(encoded string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(encoded); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(encoded)
}

// objectKey builds the storage key for an upload. Only the base name of
// fileName is kept.
func objectKey(contentType models.ContentType, id, fileName string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return fmt.Sprintf("%ss/%s_%s", contentType, id, name)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
