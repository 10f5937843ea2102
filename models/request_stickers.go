// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// SendStickerParams are the parameters of sendSticker.
type SendStickerParams struct {
	ChatID                   ChatID      `json:"chat_id"`
	Sticker                  *InputFile  `json:"sticker"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

func (p *SendStickerParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "sticker", p.Sticker)
	return files
}

// GetStickerSetParams are the parameters of getStickerSet.
type GetStickerSetParams struct {
	Name string `json:"name"`
}

// UploadStickerFileParams are the parameters of uploadStickerFile.
type UploadStickerFileParams struct {
	UserID int64 `json:"user_id"`
	// PNGSticker must be a fresh upload: a PNG image up to 512 kilobytes,
	// at most 512x512 with one side exactly 512.
	PNGSticker *InputFile `json:"png_sticker"`
}

func (p *UploadStickerFileParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "png_sticker", p.PNGSticker)
	return files
}

// CreateNewStickerSetParams are the parameters of createNewStickerSet.
// Exactly one of PNGSticker and TGSSticker must be set.
type CreateNewStickerSetParams struct {
	UserID        int64         `json:"user_id"`
	Name          string        `json:"name"`
	Title         string        `json:"title"`
	PNGSticker    *InputFile    `json:"png_sticker,omitempty"`
	TGSSticker    *InputFile    `json:"tgs_sticker,omitempty"`
	Emojis        string        `json:"emojis"`
	ContainsMasks bool          `json:"contains_masks,omitempty"`
	MaskPosition  *MaskPosition `json:"mask_position,omitempty"`
}

func (p *CreateNewStickerSetParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "png_sticker", p.PNGSticker)
	addUpload(files, "tgs_sticker", p.TGSSticker)
	return files
}

// AddStickerToSetParams are the parameters of addStickerToSet.
type AddStickerToSetParams struct {
	UserID       int64         `json:"user_id"`
	Name         string        `json:"name"`
	PNGSticker   *InputFile    `json:"png_sticker,omitempty"`
	TGSSticker   *InputFile    `json:"tgs_sticker,omitempty"`
	Emojis       string        `json:"emojis"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
}

func (p *AddStickerToSetParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "png_sticker", p.PNGSticker)
	addUpload(files, "tgs_sticker", p.TGSSticker)
	return files
}

// SetStickerPositionInSetParams are the parameters of
// setStickerPositionInSet.
type SetStickerPositionInSetParams struct {
	Sticker  string `json:"sticker"`
	Position int    `json:"position"`
}

// DeleteStickerFromSetParams are the parameters of deleteStickerFromSet.
type DeleteStickerFromSetParams struct {
	Sticker string `json:"sticker"`
}

// SetStickerSetThumbParams are the parameters of setStickerSetThumb.
type SetStickerSetThumbParams struct {
	Name   string     `json:"name"`
	UserID int64      `json:"user_id"`
	Thumb  *InputFile `json:"thumb,omitempty"`
}

func (p *SetStickerSetThumbParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "thumb", p.Thumb)
	return files
}
