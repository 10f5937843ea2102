// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

import "io"

// InputFile is the content of a file to be sent with a request. The Bot API
// accepts three shapes: a file_id of a file already on the servers, an HTTP
// URL the servers fetch themselves, or a fresh upload via multipart/form-data.
type InputFile struct {
	// FileID or URL, sent as a plain string parameter.
	FileID string
	URL    string

	// Upload data. Name is the file name reported in the form part.
	Name   string
	Reader io.Reader

	// AttachName is the multipart part name assigned at request-build time.
	// When set, the file marshals as an "attach://<name>" reference.
	AttachName string
}

// FileID references a file that already exists on the Telegram servers.
func FileID(id string) *InputFile { return &InputFile{FileID: id} }

// FileURL tells the Telegram servers to fetch the file from url.
func FileURL(url string) *InputFile { return &InputFile{URL: url} }

// FileReader uploads the contents of r under the given file name.
func FileReader(name string, r io.Reader) *InputFile {
	return &InputFile{Name: name, Reader: r}
}

// NeedsUpload reports whether the file must be sent as a multipart form
// part rather than a string parameter.
func (f *InputFile) NeedsUpload() bool {
	return f != nil && f.Reader != nil
}

// Ref returns the string form of the file for JSON parameters: the
// attach:// reference for uploads wired to a multipart part, the file_id,
// or the URL.
func (f *InputFile) Ref() string {
	if f == nil {
		return ""
	}
	if f.AttachName != "" {
		return "attach://" + f.AttachName
	}
	if f.FileID != "" {
		return f.FileID
	}
	return f.URL
}

// MarshalJSON encodes the file reference as a JSON string. Upload files
// must be wired to attach:// references before marshaling; encoding one
// directly yields an empty string, which the API rejects, making the bug
// visible at the call site.
func (f *InputFile) MarshalJSON() ([]byte, error) {
	return Marshal(f.Ref())
}

// InputMedia is implemented by the five media types accepted by
// sendMediaGroup and editMessageMedia.
type InputMedia interface {
	// MediaFile returns the media payload, for upload detection.
	MediaFile() *InputFile
	// ThumbFile returns the thumbnail payload, nil when the type has none.
	ThumbFile() *InputFile
}

func (m *InputMediaPhoto) MediaFile() *InputFile     { return m.Media }
func (m *InputMediaVideo) MediaFile() *InputFile     { return m.Media }
func (m *InputMediaAnimation) MediaFile() *InputFile { return m.Media }
func (m *InputMediaAudio) MediaFile() *InputFile     { return m.Media }
func (m *InputMediaDocument) MediaFile() *InputFile  { return m.Media }

func (m *InputMediaPhoto) ThumbFile() *InputFile     { return nil }
func (m *InputMediaVideo) ThumbFile() *InputFile     { return m.Thumb }
func (m *InputMediaAnimation) ThumbFile() *InputFile { return m.Thumb }
func (m *InputMediaAudio) ThumbFile() *InputFile     { return m.Thumb }
func (m *InputMediaDocument) ThumbFile() *InputFile  { return m.Thumb }

// InputMediaPhoto represents a photo to be sent.
type InputMediaPhoto struct {
	Type            string          `json:"type"` // must be "photo"
	Media           *InputFile      `json:"media"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

// InputMediaVideo represents a video to be sent.
type InputMediaVideo struct {
	Type              string          `json:"type"` // must be "video"
	Media             *InputFile      `json:"media"`
	Thumb             *InputFile      `json:"thumb,omitempty"`
	Caption           string          `json:"caption,omitempty"`
	ParseMode         string          `json:"parse_mode,omitempty"`
	CaptionEntities   []MessageEntity `json:"caption_entities,omitempty"`
	Width             int             `json:"width,omitempty"`
	Height            int             `json:"height,omitempty"`
	Duration          int             `json:"duration,omitempty"`
	SupportsStreaming bool            `json:"supports_streaming,omitempty"`
}

// InputMediaAnimation represents an animation to be sent.
type InputMediaAnimation struct {
	Type            string          `json:"type"` // must be "animation"
	Media           *InputFile      `json:"media"`
	Thumb           *InputFile      `json:"thumb,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Width           int             `json:"width,omitempty"`
	Height          int             `json:"height,omitempty"`
	Duration        int             `json:"duration,omitempty"`
}

// InputMediaAudio represents an audio file to be sent.
type InputMediaAudio struct {
	Type            string          `json:"type"` // must be "audio"
	Media           *InputFile      `json:"media"`
	Thumb           *InputFile      `json:"thumb,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Duration        int             `json:"duration,omitempty"`
	Performer       string          `json:"performer,omitempty"`
	Title           string          `json:"title,omitempty"`
}

// InputMediaDocument represents a general file to be sent.
type InputMediaDocument struct {
	Type                        string          `json:"type"` // must be "document"
	Media                       *InputFile      `json:"media"`
	Thumb                       *InputFile      `json:"thumb,omitempty"`
	Caption                     string          `json:"caption,omitempty"`
	ParseMode                   string          `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection bool            `json:"disable_content_type_detection,omitempty"`
}
