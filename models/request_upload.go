// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadRequest is the body of POST /api/content.
type UploadRequest struct {
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Price       int64       `json:"price"`
	Discount    int         `json:"discount"`

	// FileData is the file content encoded with standard base64.
	FileData string `json:"file_data"`

	// FileName is the original file name; it becomes part of the object key.
	FileName string `json:"file_name"`
}

// UploadInput is what the client's upload form collects. FileData holds the
// raw file bytes; they are base64-encoded when the request is built.
type UploadInput struct {
	Type        ContentType
	Title       string
	Description string
	Category    string
	Price       int64
	Discount    int
	FileName    string
	FileData    []byte
}
