// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/sgerasimov/go-tgbot/models"
)

const (
	FieldChatID          = "chat_id"
	FieldText            = "text"
	FieldCaption         = "caption"
	FieldLimit           = "limit"
	FieldTimeout         = "timeout"
	FieldURL             = "url"
	FieldMaxConnections  = "max_connections"
	FieldQuestion        = "question"
	FieldOptions         = "options"
	FieldCallbackQueryID = "callback_query_id"
	FieldInlineQueryID   = "inline_query_id"
	FieldResults         = "results"
	FieldMedia           = "media"
	FieldFile            = "file"
	FieldReplyMarkup     = "reply_markup"
)

const (
	maxTextLen      = 4096
	maxCaptionLen   = 1024
	maxQuestionLen  = 300
	maxOptionLen    = 100
	maxAnswerLen    = 200
	maxResults      = 50
	maxCallbackData = 64
)

// ParamsValidator checks request parameters against the limits the Bot API
// documents, so obviously broken requests never leave the process.
type ParamsValidator struct {
}

func NewParamsValidator() Validator {
	return &ParamsValidator{}
}

func (v *ParamsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SendMessageParams:
		return v.validateSendMessage(ctx, value, fields...)
	case *models.SendMessageParams:
		return v.validateSendMessage(ctx, *value, fields...)

	case models.GetUpdatesParams:
		return v.validateGetUpdates(ctx, value, fields...)
	case *models.GetUpdatesParams:
		return v.validateGetUpdates(ctx, *value, fields...)

	case models.SetWebhookParams:
		return v.validateSetWebhook(ctx, value, fields...)
	case *models.SetWebhookParams:
		return v.validateSetWebhook(ctx, *value, fields...)

	case models.SendPollParams:
		return v.validateSendPoll(ctx, value, fields...)
	case *models.SendPollParams:
		return v.validateSendPoll(ctx, *value, fields...)

	case models.AnswerCallbackQueryParams:
		return v.validateAnswerCallbackQuery(ctx, value, fields...)
	case *models.AnswerCallbackQueryParams:
		return v.validateAnswerCallbackQuery(ctx, *value, fields...)

	case models.AnswerInlineQueryParams:
		return v.validateAnswerInlineQuery(ctx, value, fields...)
	case *models.AnswerInlineQueryParams:
		return v.validateAnswerInlineQuery(ctx, *value, fields...)

	case models.SendMediaGroupParams:
		return v.validateSendMediaGroup(ctx, value, fields...)
	case *models.SendMediaGroupParams:
		return v.validateSendMediaGroup(ctx, *value, fields...)

	case models.SendPhotoParams:
		return v.validateFileToSend(ctx, value.ChatID, value.Photo, value.Caption)
	case *models.SendPhotoParams:
		return v.validateFileToSend(ctx, value.ChatID, value.Photo, value.Caption)

	case models.SendDocumentParams:
		return v.validateFileToSend(ctx, value.ChatID, value.Document, value.Caption)
	case *models.SendDocumentParams:
		return v.validateFileToSend(ctx, value.ChatID, value.Document, value.Caption)

	default:
		// Most parameter structs have nothing worth checking locally.
		return nil
	}
}

func (v *ParamsValidator) validateSendMessage(_ context.Context, params models.SendMessageParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatID, FieldText, FieldReplyMarkup}
	}

	for _, f := range fields {
		switch f {
		case FieldChatID:
			if params.ChatID.IsZero() {
				return ErrEmptyChatID
			}
		case FieldText:
			if params.Text == "" {
				return ErrEmptyText
			}
			if len([]rune(params.Text)) > maxTextLen {
				return ErrTextTooLong
			}
		case FieldReplyMarkup:
			if err := validateReplyMarkup(params.ReplyMarkup); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateReplyMarkup applies the 1-64 byte callback_data limit to inline
// keyboards. Other markup kinds have nothing to check.
func validateReplyMarkup(rm models.ReplyMarkup) error {
	var kb models.InlineKeyboardMarkup
	switch m := rm.(type) {
	case models.InlineKeyboardMarkup:
		kb = m
	case *models.InlineKeyboardMarkup:
		if m == nil {
			return nil
		}
		kb = *m
	default:
		return nil
	}
	for _, row := range kb.InlineKeyboard {
		for i, btn := range row {
			if len(btn.CallbackData) > maxCallbackData {
				return fmt.Errorf("button at index %d: %w", i, ErrCallbackDataTooLong)
			}
		}
	}
	return nil
}

func (v *ParamsValidator) validateGetUpdates(_ context.Context, params models.GetUpdatesParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldTimeout}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			// Zero means the server default of 100.
			if params.Limit != 0 && (params.Limit < 1 || params.Limit > 100) {
				return ErrInvalidLimit
			}
		case FieldTimeout:
			if params.Timeout < 0 {
				return ErrInvalidTimeout
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateSetWebhook(_ context.Context, params models.SetWebhookParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldMaxConnections}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if params.URL == "" {
				return ErrEmptyWebhookURL
			}
			if !strings.HasPrefix(params.URL, "https://") {
				return ErrInsecureWebhookURL
			}
		case FieldMaxConnections:
			if params.MaxConnections != 0 && (params.MaxConnections < 1 || params.MaxConnections > 100) {
				return ErrInvalidConnections
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateSendPoll(_ context.Context, params models.SendPollParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatID, FieldQuestion, FieldOptions}
	}

	for _, f := range fields {
		switch f {
		case FieldChatID:
			if params.ChatID.IsZero() {
				return ErrEmptyChatID
			}
		case FieldQuestion:
			if params.Question == "" {
				return ErrEmptyQuestion
			}
			if len([]rune(params.Question)) > maxQuestionLen {
				return ErrQuestionTooLong
			}
		case FieldOptions:
			if len(params.Options) < 2 || len(params.Options) > 10 {
				return ErrBadOptionCount
			}
			for i, opt := range params.Options {
				if len([]rune(opt)) > maxOptionLen {
					return fmt.Errorf("option at index %d: %w", i, ErrOptionTooLong)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateAnswerCallbackQuery(_ context.Context, params models.AnswerCallbackQueryParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCallbackQueryID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldCallbackQueryID:
			if params.CallbackQueryID == "" {
				return ErrEmptyCallbackQueryID
			}
		case FieldText:
			if len([]rune(params.Text)) > maxAnswerLen {
				return ErrCallbackTextTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateAnswerInlineQuery(_ context.Context, params models.AnswerInlineQueryParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInlineQueryID, FieldResults}
	}

	for _, f := range fields {
		switch f {
		case FieldInlineQueryID:
			if params.InlineQueryID == "" {
				return ErrEmptyInlineQueryID
			}
		case FieldResults:
			if len(params.Results) > maxResults {
				return ErrTooManyResults
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateSendMediaGroup(_ context.Context, params models.SendMediaGroupParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChatID, FieldMedia}
	}

	for _, f := range fields {
		switch f {
		case FieldChatID:
			if params.ChatID.IsZero() {
				return ErrEmptyChatID
			}
		case FieldMedia:
			if len(params.Media) == 0 {
				return ErrEmptyMedia
			}
			if len(params.Media) < 2 || len(params.Media) > 10 {
				return ErrBadMediaCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ParamsValidator) validateFileToSend(_ context.Context, chatID models.ChatID, file *models.InputFile, caption string) error {
	if chatID.IsZero() {
		return ErrEmptyChatID
	}
	if file == nil || (file.Ref() == "" && !file.NeedsUpload()) {
		return ErrEmptyFile
	}
	if len([]rune(caption)) > maxCaptionLen {
		return ErrCaptionTooLong
	}
	return nil
}
