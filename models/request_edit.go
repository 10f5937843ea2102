// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// EditMessageTextParams are the parameters of editMessageText. Either
// ChatID+MessageID or InlineMessageID selects the target.
type EditMessageTextParams struct {
	ChatID                *ChatID               `json:"chat_id,omitempty"`
	MessageID             int64                 `json:"message_id,omitempty"`
	InlineMessageID       string                `json:"inline_message_id,omitempty"`
	Text                  string                `json:"text"`
	ParseMode             string                `json:"parse_mode,omitempty"`
	Entities              []MessageEntity       `json:"entities,omitempty"`
	DisableWebPagePreview bool                  `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// EditMessageCaptionParams are the parameters of editMessageCaption.
type EditMessageCaptionParams struct {
	ChatID          *ChatID               `json:"chat_id,omitempty"`
	MessageID       int64                 `json:"message_id,omitempty"`
	InlineMessageID string                `json:"inline_message_id,omitempty"`
	Caption         string                `json:"caption,omitempty"`
	ParseMode       string                `json:"parse_mode,omitempty"`
	CaptionEntities []MessageEntity       `json:"caption_entities,omitempty"`
	ReplyMarkup     *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// EditMessageMediaParams are the parameters of editMessageMedia.
type EditMessageMediaParams struct {
	ChatID          *ChatID               `json:"chat_id,omitempty"`
	MessageID       int64                 `json:"message_id,omitempty"`
	InlineMessageID string                `json:"inline_message_id,omitempty"`
	Media           InputMedia            `json:"media"`
	ReplyMarkup     *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

func (p *EditMessageMediaParams) UploadFiles() map[string]*InputFile {
	if p.Media == nil {
		return nil
	}
	return mediaUploadFiles([]InputMedia{p.Media})
}

// EditMessageReplyMarkupParams are the parameters of editMessageReplyMarkup.
type EditMessageReplyMarkupParams struct {
	ChatID          *ChatID               `json:"chat_id,omitempty"`
	MessageID       int64                 `json:"message_id,omitempty"`
	InlineMessageID string                `json:"inline_message_id,omitempty"`
	ReplyMarkup     *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// StopPollParams are the parameters of stopPoll.
type StopPollParams struct {
	ChatID      ChatID                `json:"chat_id"`
	MessageID   int64                 `json:"message_id"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// DeleteMessageParams are the parameters of deleteMessage.
type DeleteMessageParams struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int64  `json:"message_id"`
}
