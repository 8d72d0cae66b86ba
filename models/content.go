// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// ContentType is the kind of media a content item holds.
type ContentType string

const (
	ContentTypeGame       ContentType = "game"
	ContentTypeMusic      ContentType = "music"
	ContentTypeVideo      ContentType = "video"
	ContentTypeShortVideo ContentType = "short_video"
	ContentTypeImage      ContentType = "image"
)

// ContentTypes lists every accepted content type in display order.
var ContentTypes = []ContentType{
	ContentTypeGame,
	ContentTypeMusic,
	ContentTypeVideo,
	ContentTypeShortVideo,
	ContentTypeImage,
}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	for _, known := range ContentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MIMEType returns the content type used when storing an uploaded file of
// this kind.
func (t ContentType) MIMEType() string {
	switch t {
	case ContentTypeGame:
		return "application/zip"
	case ContentTypeMusic:
		return "audio/mpeg"
	case ContentTypeVideo, ContentTypeShortVideo:
		return "video/mp4"
	case ContentTypeImage:
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

// ContentItem is a published piece of media. Items are immutable once
// created; clients re-fetch the list after every write.
type ContentItem struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"user_id"`
	Type         ContentType `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	FileURL      string      `json:"file_url"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	Category     *string     `json:"category,omitempty"`

	// Price is in whole currency units; 0 means free.
	Price int64 `json:"price"`

	// Discount is a percentage in the range 0..100.
	Discount int `json:"discount"`

	Downloads int64     `json:"downloads"`
	Views     int64     `json:"views"`
	Author    *string   `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ContentItem model.
func (c ContentItem) TableName() string {
	return "content"
}

// EffectivePrice returns the price after discount, rounded to the nearest
// whole unit.
func (c ContentItem) EffectivePrice() int64 {
	return EffectivePrice(c.Price, c.Discount)
}

// IsFree reports whether the item is distributed at no cost.
func (c ContentItem) IsFree() bool {
	return c.Price == 0
}

// EffectivePrice applies discount percent to price.
func EffectivePrice(price int64, discount int) int64 {
	if discount == 0 {
		return price
	}
	return int64(math.Round(float64(price) * (1 - float64(discount)/100)))
}

// ContentFilter narrows a content listing. Nil fields are not applied.
type ContentFilter struct {
	Type   *ContentType
	UserID *int64
}
