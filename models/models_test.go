// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{name: "no discount", price: 2499, discount: 0, want: 2499},
		{name: "half off", price: 1000, discount: 50, want: 500},
		{name: "rounds half up", price: 899, discount: 50, want: 450},
		{name: "rounds down", price: 1999, discount: 30, want: 1399},
		{name: "free stays free", price: 0, discount: 40, want: 0},
		{name: "full discount", price: 499, discount: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ContentItem{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, item.EffectivePrice())
		})
	}
}

func TestContentItem_IsFree(t *testing.T) {
	assert.True(t, ContentItem{Price: 0, Discount: 10}.IsFree())
	assert.False(t, ContentItem{Price: 1}.IsFree())
}

func TestSection_ContentType(t *testing.T) {
	mapped := map[Section]ContentType{
		SectionStore:   ContentTypeGame,
		SectionMusic:   ContentTypeMusic,
		SectionVideos:  ContentTypeVideo,
		SectionShorts:  ContentTypeShortVideo,
		SectionGallery: ContentTypeImage,
	}

	for _, s := range Sections {
		got, ok := s.ContentType()
		want, mappedOK := mapped[s]
		assert.Equal(t, mappedOK, ok, "section %s", s)
		assert.Equal(t, want, got, "section %s", s)
	}
}

func TestSection_Title(t *testing.T) {
	assert.Equal(t, "Store", SectionStore.Title())
	assert.Equal(t, "unknown", Section("unknown").Title())
}

func TestContentType_ValidAndMIME(t *testing.T) {
	assert.True(t, ContentTypeShortVideo.Valid())
	assert.False(t, ContentType("podcast").Valid())

	assert.Equal(t, "application/zip", ContentTypeGame.MIMEType())
	assert.Equal(t, "audio/mpeg", ContentTypeMusic.MIMEType())
	assert.Equal(t, "video/mp4", ContentTypeVideo.MIMEType())
	assert.Equal(t, "video/mp4", ContentTypeShortVideo.MIMEType())
	assert.Equal(t, "image/jpeg", ContentTypeImage.MIMEType())
}

func TestEmptyMessages_For(t *testing.T) {
	msgs := DefaultEmptyMessages()
	image := ContentTypeImage
	unknown := ContentType("podcast")

	assert.Equal(t, "The gallery is empty.", msgs.For(&image))
	assert.Equal(t, DefaultEmptyMessage, msgs.For(nil))
	assert.Equal(t, DefaultEmptyMessage, msgs.For(&unknown))
}

func TestSession_IsEmpty(t *testing.T) {
	assert.True(t, Session{}.IsEmpty())
	assert.True(t, Session{Token: "t"}.IsEmpty())
	assert.False(t, Session{Token: "t", User: &User{ID: 1}}.IsEmpty())
}

func TestStoredSession_Expired(t *testing.T) {
	now := time.Now()
	assert.False(t, StoredSession{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, StoredSession{ExpiresAt: now}.Expired(now))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")
	assert.Equal(t, "1.2.0", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "Di-NEO 1.2.0 (built N/A, commit abc123)", info.String())
}
