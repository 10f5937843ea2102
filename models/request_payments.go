// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// SendInvoiceParams are the parameters of sendInvoice.
type SendInvoiceParams struct {
	ChatID      ChatID `json:"chat_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Payload is bot-defined, 1-128 bytes, never shown to the user.
	Payload       string `json:"payload"`
	ProviderToken string `json:"provider_token"`
	// Currency is a three-letter ISO 4217 code.
	Currency                  string         `json:"currency"`
	Prices                    []LabeledPrice `json:"prices"`
	MaxTipAmount              int            `json:"max_tip_amount,omitempty"`
	SuggestedTipAmounts       []int          `json:"suggested_tip_amounts,omitempty"`
	StartParameter            string         `json:"start_parameter,omitempty"`
	ProviderData              string         `json:"provider_data,omitempty"`
	PhotoURL                  string         `json:"photo_url,omitempty"`
	PhotoSize                 int            `json:"photo_size,omitempty"`
	PhotoWidth                int            `json:"photo_width,omitempty"`
	PhotoHeight               int            `json:"photo_height,omitempty"`
	NeedName                  bool           `json:"need_name,omitempty"`
	NeedPhoneNumber           bool           `json:"need_phone_number,omitempty"`
	NeedEmail                 bool           `json:"need_email,omitempty"`
	NeedShippingAddress       bool           `json:"need_shipping_address,omitempty"`
	SendPhoneNumberToProvider bool           `json:"send_phone_number_to_provider,omitempty"`
	SendEmailToProvider       bool           `json:"send_email_to_provider,omitempty"`
	IsFlexible                bool           `json:"is_flexible,omitempty"`
	DisableNotification       bool           `json:"disable_notification,omitempty"`
	ReplyToMessageID          int64          `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply  bool           `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup               *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// AnswerShippingQueryParams are the parameters of answerShippingQuery.
// When OK is false, ErrorMessage explains why delivery is impossible.
type AnswerShippingQueryParams struct {
	ShippingQueryID string           `json:"shipping_query_id"`
	OK              bool             `json:"ok"`
	ShippingOptions []ShippingOption `json:"shipping_options,omitempty"`
	ErrorMessage    string           `json:"error_message,omitempty"`
}

// AnswerPreCheckoutQueryParams are the parameters of
// answerPreCheckoutQuery.
type AnswerPreCheckoutQueryParams struct {
	PreCheckoutQueryID string `json:"pre_checkout_query_id"`
	OK                 bool   `json:"ok"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// SetPassportDataErrorsParams are the parameters of setPassportDataErrors.
type SetPassportDataErrorsParams struct {
	UserID int64                  `json:"user_id"`
	Errors []PassportElementError `json:"errors"`
}

// SendGameParams are the parameters of sendGame.
type SendGameParams struct {
	ChatID                   int64                 `json:"chat_id"`
	GameShortName            string                `json:"game_short_name"`
	DisableNotification      bool                  `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64                 `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool                  `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SetGameScoreParams are the parameters of setGameScore.
type SetGameScoreParams struct {
	UserID             int64  `json:"user_id"`
	Score              int    `json:"score"`
	Force              bool   `json:"force,omitempty"`
	DisableEditMessage bool   `json:"disable_edit_message,omitempty"`
	ChatID             int64  `json:"chat_id,omitempty"`
	MessageID          int64  `json:"message_id,omitempty"`
	InlineMessageID    string `json:"inline_message_id,omitempty"`
}

// GetGameHighScoresParams are the parameters of getGameHighScores.
type GetGameHighScoresParams struct {
	UserID          int64  `json:"user_id"`
	ChatID          int64  `json:"chat_id,omitempty"`
	MessageID       int64  `json:"message_id,omitempty"`
	InlineMessageID string `json:"inline_message_id,omitempty"`
}
