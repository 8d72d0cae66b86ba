// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultEmptyMessage is shown when the unfiltered list has no items.
const DefaultEmptyMessage = "Nothing has been published yet."

// EmptyMessages holds the empty-state text per content type.
type EmptyMessages map[ContentType]string

// DefaultEmptyMessages returns the built-in empty-state texts.
func DefaultEmptyMessages() EmptyMessages {
	return EmptyMessages{
		ContentTypeGame:       "No games in the store yet. Be the first to upload one!",
		ContentTypeMusic:      "No tracks yet. Upload your first track.",
		ContentTypeVideo:      "No videos yet.",
		ContentTypeShortVideo: "No shorts yet.",
		ContentTypeImage:      "The gallery is empty.",
	}
}

// For returns the message for t, or DefaultEmptyMessage when t is nil or has
// no configured text.
func (m EmptyMessages) For(t *ContentType) string {
	if t == nil {
		return DefaultEmptyMessage
	}
	if msg, ok := m[*t]; ok && msg != "" {
		return msg
	}
	return DefaultEmptyMessage
}
