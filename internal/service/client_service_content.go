// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/digiplay/dineo/internal/adapter"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
)

// ErrStaleResponse is returned by Load when a later Load started before this
// one finished. The list is left untouched.
var ErrStaleResponse = errors.New("response superseded by a newer request")

// LoadStatus describes the content list of the active section.
type LoadStatus int

const (
	LoadStatusIdle LoadStatus = iota
	LoadStatusLoading
	LoadStatusError
)

// BrowserState is a snapshot of the browser's load state. Err is set for
// LoadStatusError only.
type BrowserState struct {
	Section models.Section
	Status  LoadStatus
	Err     error
}

type contentBrowser struct {
	adapter  adapter.ServerAdapter
	sessions SessionManager
	messages models.EmptyMessages

	mu sync.Mutex
	// generation is bumped by every Load; only the response of the latest
	// generation may replace items.
	generation uint64
	section    models.Section
	items      []models.ContentItem
	state      BrowserState

	logger *logger.Logger
}

func NewContentBrowser(serverAdapter adapter.ServerAdapter, sessions SessionManager, messages models.EmptyMessages, logger *logger.Logger) ContentBrowser {
	if messages == nil {
		messages = models.DefaultEmptyMessages()
	}

	return &contentBrowser{
		adapter:  serverAdapter,
		sessions: sessions,
		messages: messages,
		section:  models.SectionHome,
		items:    []models.ContentItem{},
		state:    BrowserState{Section: models.SectionHome},
		logger:   logger,
	}
}

// Load makes section the active one. On failure the list is emptied so it
// never shows another section's items.
func (b *contentBrowser) Load(ctx context.Context, section models.Section) ([]models.ContentItem, error) {
	b.mu.Lock()
	b.generation++
	generation := b.generation
	b.section = section
	b.state = BrowserState{Section: section, Status: LoadStatusLoading}
	b.mu.Unlock()

	var filter models.ContentFilter
	if contentType, ok := section.ContentType(); ok {
		filter.Type = &contentType
	}

	items, err := b.adapter.ListContent(ctx, filter)

	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		b.logger.Debug().Str("section", string(section)).Msg("dropping stale content response")
		return nil, ErrStaleResponse
	}

	if err != nil {
		b.items = []models.ContentItem{}
		b.state = BrowserState{Section: section, Status: LoadStatusError, Err: err}
		b.logger.Warn().Err(err).Str("func", "*contentBrowser.Load").Str("section", string(section)).Msg("content load failed")
		return nil, err
	}

	if items == nil {
		items = []models.ContentItem{}
	}
	b.items = items
	b.state = BrowserState{Section: section, Status: LoadStatusIdle}

	return slices.Clone(items), nil
}

// Upload checks the session and the file before any network call.
func (b *contentBrowser) Upload(ctx context.Context, in models.UploadInput) (models.ContentItem, error) {
	if !b.sessions.IsAuthenticated() {
		return models.ContentItem{}, ErrNotAuthenticated
	}
	if len(in.FileData) == 0 {
		return models.ContentItem{}, ErrNoFileSelected
	}

	item, err := b.adapter.UploadContent(ctx, b.sessions.Token(), models.UploadRequest{
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Discount:    in.Discount,
		FileData:    base64.StdEncoding.EncodeToString(in.FileData),
		FileName:    in.FileName,
	})
	if err != nil {
		return models.ContentItem{}, err
	}

	if _, err := b.Load(ctx, b.Section()); err != nil && !errors.Is(err, ErrStaleResponse) {
		b.logger.Warn().Err(err).Str("func", "*contentBrowser.Upload").Msg("reload after upload failed")
	}

	return item, nil
}

func (b *contentBrowser) Items() []models.ContentItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.items)
}

func (b *contentBrowser) MyItems(ownerID int64) []models.ContentItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	mine := make([]models.ContentItem, 0)
	for _, item := range b.items {
		if item.UserID == ownerID {
			mine = append(mine, item)
		}
	}
	return mine
}

func (b *contentBrowser) Section() models.Section {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.section
}

func (b *contentBrowser) State() BrowserState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *contentBrowser) EmptyMessage() string {
	b.mu.Lock()
	section := b.section
	b.mu.Unlock()

	if contentType, ok := section.ContentType(); ok {
		return b.messages.For(&contentType)
	}
	return b.messages.For(nil)
}

// ReadUploadFile reads the file at path for the upload form and returns its
// base name and content.
func ReadUploadFile(path string) (string, []byte, error) {
	if path == "" {
		return "", nil, ErrNoFileSelected
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading upload file: %w", err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("reading upload file: %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading upload file: %w", err)
	}
	if len(data) == 0 {
		return "", nil, ErrNoFileSelected
	}

	return filepath.Base(path), data, nil
}
