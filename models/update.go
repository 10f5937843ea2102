// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// UpdateType names the kind of payload an Update carries. At most one
// payload field is present in any given update.
type UpdateType string

const (
	UpdateTypeMessage            UpdateType = "message"
	UpdateTypeEditedMessage      UpdateType = "edited_message"
	UpdateTypeChannelPost        UpdateType = "channel_post"
	UpdateTypeEditedChannelPost  UpdateType = "edited_channel_post"
	UpdateTypeInlineQuery        UpdateType = "inline_query"
	UpdateTypeChosenInlineResult UpdateType = "chosen_inline_result"
	UpdateTypeCallbackQuery      UpdateType = "callback_query"
	UpdateTypeShippingQuery      UpdateType = "shipping_query"
	UpdateTypePreCheckoutQuery   UpdateType = "pre_checkout_query"
	UpdateTypePoll               UpdateType = "poll"
	UpdateTypePollAnswer         UpdateType = "poll_answer"
	UpdateTypeMyChatMember       UpdateType = "my_chat_member"
	UpdateTypeChatMember         UpdateType = "chat_member"
	// UpdateTypeUnknown is returned for updates with no recognized payload,
	// e.g. updates introduced by a newer Bot API revision.
	UpdateTypeUnknown UpdateType = "unknown"
)

// AllUpdateTypes lists every update type this library dispatches.
var AllUpdateTypes = []UpdateType{
	UpdateTypeMessage,
	UpdateTypeEditedMessage,
	UpdateTypeChannelPost,
	UpdateTypeEditedChannelPost,
	UpdateTypeInlineQuery,
	UpdateTypeChosenInlineResult,
	UpdateTypeCallbackQuery,
	UpdateTypeShippingQuery,
	UpdateTypePreCheckoutQuery,
	UpdateTypePoll,
	UpdateTypePollAnswer,
	UpdateTypeMyChatMember,
	UpdateTypeChatMember,
}

// Update represents an incoming update from the Bot API.
type Update struct {
	// UpdateID is the update's unique identifier. Identifiers start from a
	// certain positive number and increase sequentially, which makes the
	// field the natural long-polling offset.
	UpdateID           int64               `json:"update_id"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	ChannelPost        *Message            `json:"channel_post,omitempty"`
	EditedChannelPost  *Message            `json:"edited_channel_post,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
	ShippingQuery      *ShippingQuery      `json:"shipping_query,omitempty"`
	PreCheckoutQuery   *PreCheckoutQuery   `json:"pre_checkout_query,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	PollAnswer         *PollAnswer         `json:"poll_answer,omitempty"`
	MyChatMember       *ChatMemberUpdated  `json:"my_chat_member,omitempty"`
	ChatMember         *ChatMemberUpdated  `json:"chat_member,omitempty"`
}

// Type reports which payload the update carries.
func (u *Update) Type() UpdateType {
	switch {
	case u.Message != nil:
		return UpdateTypeMessage
	case u.EditedMessage != nil:
		return UpdateTypeEditedMessage
	case u.ChannelPost != nil:
		return UpdateTypeChannelPost
	case u.EditedChannelPost != nil:
		return UpdateTypeEditedChannelPost
	case u.InlineQuery != nil:
		return UpdateTypeInlineQuery
	case u.ChosenInlineResult != nil:
		return UpdateTypeChosenInlineResult
	case u.CallbackQuery != nil:
		return UpdateTypeCallbackQuery
	case u.ShippingQuery != nil:
		return UpdateTypeShippingQuery
	case u.PreCheckoutQuery != nil:
		return UpdateTypePreCheckoutQuery
	case u.Poll != nil:
		return UpdateTypePoll
	case u.PollAnswer != nil:
		return UpdateTypePollAnswer
	case u.MyChatMember != nil:
		return UpdateTypeMyChatMember
	case u.ChatMember != nil:
		return UpdateTypeChatMember
	default:
		return UpdateTypeUnknown
	}
}
