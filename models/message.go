// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

import "strings"

// Message represents a message.
type Message struct {
	MessageID            int64    `json:"message_id"`
	From                 *User    `json:"from,omitempty"`
	SenderChat           *Chat    `json:"sender_chat,omitempty"`
	Date                 int64    `json:"date"`
	Chat                 Chat     `json:"chat"`
	ForwardFrom          *User    `json:"forward_from,omitempty"`
	ForwardFromChat      *Chat    `json:"forward_from_chat,omitempty"`
	ForwardFromMessageID int64    `json:"forward_from_message_id,omitempty"`
	ForwardSignature     string   `json:"forward_signature,omitempty"`
	ForwardSenderName    string   `json:"forward_sender_name,omitempty"`
	ForwardDate          int64    `json:"forward_date,omitempty"`
	ReplyToMessage       *Message `json:"reply_to_message,omitempty"`
	ViaBot               *User    `json:"via_bot,omitempty"`
	EditDate             int64    `json:"edit_date,omitempty"`
	MediaGroupID         string   `json:"media_group_id,omitempty"`
	AuthorSignature      string   `json:"author_signature,omitempty"`

	Text            string          `json:"text,omitempty"`
	Entities        []MessageEntity `json:"entities,omitempty"`
	Animation       *Animation      `json:"animation,omitempty"`
	Audio           *Audio          `json:"audio,omitempty"`
	Document        *Document       `json:"document,omitempty"`
	Photo           []PhotoSize     `json:"photo,omitempty"`
	Sticker         *Sticker        `json:"sticker,omitempty"`
	Video           *Video          `json:"video,omitempty"`
	VideoNote       *VideoNote      `json:"video_note,omitempty"`
	Voice           *Voice          `json:"voice,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	Contact         *Contact        `json:"contact,omitempty"`
	Dice            *Dice           `json:"dice,omitempty"`
	Game            *Game           `json:"game,omitempty"`
	Poll            *Poll           `json:"poll,omitempty"`
	Venue           *Venue          `json:"venue,omitempty"`
	Location        *Location       `json:"location,omitempty"`

	NewChatMembers                []User                         `json:"new_chat_members,omitempty"`
	LeftChatMember                *User                          `json:"left_chat_member,omitempty"`
	NewChatTitle                  string                         `json:"new_chat_title,omitempty"`
	NewChatPhoto                  []PhotoSize                    `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto               bool                           `json:"delete_chat_photo,omitempty"`
	GroupChatCreated              bool                           `json:"group_chat_created,omitempty"`
	SupergroupChatCreated         bool                           `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated            bool                           `json:"channel_chat_created,omitempty"`
	MessageAutoDeleteTimerChanged *MessageAutoDeleteTimerChanged `json:"message_auto_delete_timer_changed,omitempty"`
	MigrateToChatID               int64                          `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID             int64                          `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage                 *Message                       `json:"pinned_message,omitempty"`

	Invoice                      *Invoice                      `json:"invoice,omitempty"`
	SuccessfulPayment            *SuccessfulPayment            `json:"successful_payment,omitempty"`
	ConnectedWebsite             string                        `json:"connected_website,omitempty"`
	PassportData                 *PassportData                 `json:"passport_data,omitempty"`
	ProximityAlertTriggered      *ProximityAlertTriggered      `json:"proximity_alert_triggered,omitempty"`
	VoiceChatScheduled           *VoiceChatScheduled           `json:"voice_chat_scheduled,omitempty"`
	VoiceChatStarted             *VoiceChatStarted             `json:"voice_chat_started,omitempty"`
	VoiceChatEnded               *VoiceChatEnded               `json:"voice_chat_ended,omitempty"`
	VoiceChatParticipantsInvited *VoiceChatParticipantsInvited `json:"voice_chat_participants_invited,omitempty"`
	ReplyMarkup                  *InlineKeyboardMarkup         `json:"reply_markup,omitempty"`
}

// Command returns the bot command the message starts with, without the
// leading slash and any @botname suffix, or "" when the message is not a
// command.
func (m *Message) Command() string {
	if m.Text == "" || !strings.HasPrefix(m.Text, "/") {
		return ""
	}
	for _, e := range m.Entities {
		if e.Type == MessageEntityBotCommand && e.Offset == 0 {
			// Entity bounds come off the wire, clamp before slicing.
			end := min(e.Length, len(m.Text))
			if end < 1 {
				break
			}
			cmd := m.Text[1:end]
			if at := strings.Index(cmd, "@"); at >= 0 {
				cmd = cmd[:at]
			}
			return cmd
		}
	}
	// Updates delivered without entities still carry the raw text.
	cmd := strings.SplitN(m.Text[1:], " ", 2)[0]
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return cmd
}

// CommandArguments returns everything after the command and one space.
func (m *Message) CommandArguments() string {
	if m.Command() == "" {
		return ""
	}
	parts := strings.SplitN(m.Text, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// MessageEntity types.
const (
	MessageEntityMention       = "mention"
	MessageEntityHashtag       = "hashtag"
	MessageEntityCashtag       = "cashtag"
	MessageEntityBotCommand    = "bot_command"
	MessageEntityURL           = "url"
	MessageEntityEmail         = "email"
	MessageEntityPhoneNumber   = "phone_number"
	MessageEntityBold          = "bold"
	MessageEntityItalic        = "italic"
	MessageEntityUnderline     = "underline"
	MessageEntityStrikethrough = "strikethrough"
	MessageEntityCode          = "code"
	MessageEntityPre           = "pre"
	MessageEntityTextLink      = "text_link"
	MessageEntityTextMention   = "text_mention"
)

// MessageEntity represents one special entity in a text message.
type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	// URL: for "text_link" only, url that will be opened after user taps on
	// the text.
	URL string `json:"url,omitempty"`
	// User: for "text_mention" only, the mentioned user.
	User *User `json:"user,omitempty"`
	// Language: for "pre" only, the programming language of the entity text.
	Language string `json:"language,omitempty"`
}

// MessageID represents a unique message identifier.
type MessageID struct {
	MessageID int64 `json:"message_id"`
}

// MessageAutoDeleteTimerChanged is a service message about a change in
// auto-delete timer settings.
type MessageAutoDeleteTimerChanged struct {
	MessageAutoDeleteTime int `json:"message_auto_delete_time"`
}

// ProximityAlertTriggered is a service message sent whenever a user in the
// chat triggers a proximity alert set by another user.
type ProximityAlertTriggered struct {
	Traveler User `json:"traveler"`
	Watcher  User `json:"watcher"`
	Distance int  `json:"distance"`
}

// VoiceChatScheduled is a service message about a voice chat scheduled in
// the chat.
type VoiceChatScheduled struct {
	StartDate int64 `json:"start_date"`
}

// VoiceChatStarted is a service message about a voice chat started in the
// chat.
type VoiceChatStarted struct{}

// VoiceChatEnded is a service message about a voice chat ended in the chat.
type VoiceChatEnded struct {
	Duration int `json:"duration"`
}

// VoiceChatParticipantsInvited is a service message about new members
// invited to a voice chat.
type VoiceChatParticipantsInvited struct {
	Users []User `json:"users,omitempty"`
}
