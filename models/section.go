// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Section is a navigable area of the client.
type Section string

const (
	SectionHome     Section = "home"
	SectionChats    Section = "chats"
	SectionGroups   Section = "groups"
	SectionChannels Section = "channels"
	SectionVideos   Section = "videos"
	SectionShorts   Section = "shorts"
	SectionMusic    Section = "music"
	SectionGallery  Section = "gallery"
	SectionStore    Section = "store"
	SectionCalls    Section = "calls"
	SectionProfile  Section = "profile"
	SectionAdmin    Section = "admin"
)

// Sections lists every section in sidebar order.
var Sections = []Section{
	SectionHome,
	SectionChats,
	SectionGroups,
	SectionChannels,
	SectionVideos,
	SectionShorts,
	SectionMusic,
	SectionGallery,
	SectionStore,
	SectionCalls,
	SectionProfile,
	SectionAdmin,
}

var sectionContentTypes = map[Section]ContentType{
	SectionStore:   ContentTypeGame,
	SectionMusic:   ContentTypeMusic,
	SectionVideos:  ContentTypeVideo,
	SectionShorts:  ContentTypeShortVideo,
	SectionGallery: ContentTypeImage,
}

var sectionTitles = map[Section]string{
	SectionHome:     "Home",
	SectionChats:    "Chats",
	SectionGroups:   "Groups",
	SectionChannels: "Channels",
	SectionVideos:   "Videos",
	SectionShorts:   "Shorts",
	SectionMusic:    "Music",
	SectionGallery:  "Gallery",
	SectionStore:    "Store",
	SectionCalls:    "Calls",
	SectionProfile:  "Profile",
	SectionAdmin:    "Admin",
}

// ContentType returns the content type listed by the section.
// ok is false for sections that show the unfiltered list.
func (s Section) ContentType() (t ContentType, ok bool) {
	t, ok = sectionContentTypes[s]
	return t, ok
}

// Title returns the human-readable sidebar label.
func (s Section) Title() string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}
