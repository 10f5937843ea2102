// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

import "strconv"

// Parse modes for text formatting.
const (
	ParseModeHTML       = "HTML"
	ParseModeMarkdown   = "Markdown"
	ParseModeMarkdownV2 = "MarkdownV2"
)

// SendMessageParams are the parameters of sendMessage.
type SendMessageParams struct {
	ChatID ChatID `json:"chat_id"`
	// Text of the message to be sent, 1-4096 characters after entities
	// parsing.
	Text                     string          `json:"text"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	Entities                 []MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview    bool            `json:"disable_web_page_preview,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

// ForwardMessageParams are the parameters of forwardMessage.
type ForwardMessageParams struct {
	ChatID              ChatID `json:"chat_id"`
	FromChatID          ChatID `json:"from_chat_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	MessageID           int64  `json:"message_id"`
}

// CopyMessageParams are the parameters of copyMessage.
type CopyMessageParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	FromChatID               ChatID          `json:"from_chat_id"`
	MessageID                int64           `json:"message_id"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

// SendPhotoParams are the parameters of sendPhoto.
type SendPhotoParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	Photo                    *InputFile      `json:"photo"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendPhotoParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "photo", p.Photo)
	return files
}

// SendAudioParams are the parameters of sendAudio.
type SendAudioParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	Audio                    *InputFile      `json:"audio"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	Duration                 int             `json:"duration,omitempty"`
	Performer                string          `json:"performer,omitempty"`
	Title                    string          `json:"title,omitempty"`
	Thumb                    *InputFile      `json:"thumb,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendAudioParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 2)
	addUpload(files, "audio", p.Audio)
	addUpload(files, "thumb", p.Thumb)
	return files
}

// SendDocumentParams are the parameters of sendDocument.
type SendDocumentParams struct {
	ChatID                      ChatID          `json:"chat_id"`
	Document                    *InputFile      `json:"document"`
	Thumb                       *InputFile      `json:"thumb,omitempty"`
	Caption                     string          `json:"caption,omitempty"`
	ParseMode                   string          `json:"parse_mode,omitempty"`
	CaptionEntities             []MessageEntity `json:"caption_entities,omitempty"`
	DisableContentTypeDetection bool            `json:"disable_content_type_detection,omitempty"`
	DisableNotification         bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID            int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply    bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup                 ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendDocumentParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 2)
	addUpload(files, "document", p.Document)
	addUpload(files, "thumb", p.Thumb)
	return files
}

// SendVideoParams are the parameters of sendVideo.
type SendVideoParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	Video                    *InputFile      `json:"video"`
	Duration                 int             `json:"duration,omitempty"`
	Width                    int             `json:"width,omitempty"`
	Height                   int             `json:"height,omitempty"`
	Thumb                    *InputFile      `json:"thumb,omitempty"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	SupportsStreaming        bool            `json:"supports_streaming,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendVideoParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 2)
	addUpload(files, "video", p.Video)
	addUpload(files, "thumb", p.Thumb)
	return files
}

// SendAnimationParams are the parameters of sendAnimation.
type SendAnimationParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	Animation                *InputFile      `json:"animation"`
	Duration                 int             `json:"duration,omitempty"`
	Width                    int             `json:"width,omitempty"`
	Height                   int             `json:"height,omitempty"`
	Thumb                    *InputFile      `json:"thumb,omitempty"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendAnimationParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 2)
	addUpload(files, "animation", p.Animation)
	addUpload(files, "thumb", p.Thumb)
	return files
}

// SendVoiceParams are the parameters of sendVoice.
type SendVoiceParams struct {
	ChatID                   ChatID          `json:"chat_id"`
	Voice                    *InputFile      `json:"voice"`
	Caption                  string          `json:"caption,omitempty"`
	ParseMode                string          `json:"parse_mode,omitempty"`
	CaptionEntities          []MessageEntity `json:"caption_entities,omitempty"`
	Duration                 int             `json:"duration,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

func (p *SendVoiceParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "voice", p.Voice)
	return files
}

// SendVideoNoteParams are the parameters of sendVideoNote.
type SendVideoNoteParams struct {
	ChatID                   ChatID      `json:"chat_id"`
	VideoNote                *InputFile  `json:"video_note"`
	Duration                 int         `json:"duration,omitempty"`
	Length                   int         `json:"length,omitempty"`
	Thumb                    *InputFile  `json:"thumb,omitempty"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

func (p *SendVideoNoteParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 2)
	addUpload(files, "video_note", p.VideoNote)
	addUpload(files, "thumb", p.Thumb)
	return files
}

// SendMediaGroupParams are the parameters of sendMediaGroup.
type SendMediaGroupParams struct {
	ChatID ChatID `json:"chat_id"`
	// Media describes 2-10 photos, videos, documents or audios to be sent
	// as an album.
	Media                    []InputMedia `json:"media"`
	DisableNotification      bool         `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64        `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool         `json:"allow_sending_without_reply,omitempty"`
}

func (p *SendMediaGroupParams) UploadFiles() map[string]*InputFile {
	return mediaUploadFiles(p.Media)
}

// mediaUploadFiles wires every uploadable file of a media collection to a
// generated attach name.
func mediaUploadFiles(media []InputMedia) map[string]*InputFile {
	files := make(map[string]*InputFile)
	for i, m := range media {
		addUpload(files, "file-"+strconv.Itoa(i), m.MediaFile())
		addUpload(files, "thumb-"+strconv.Itoa(i), m.ThumbFile())
	}
	return files
}

// SendLocationParams are the parameters of sendLocation.
type SendLocationParams struct {
	ChatID                   ChatID      `json:"chat_id"`
	Latitude                 float64     `json:"latitude"`
	Longitude                float64     `json:"longitude"`
	HorizontalAccuracy       float64     `json:"horizontal_accuracy,omitempty"`
	LivePeriod               int         `json:"live_period,omitempty"`
	Heading                  int         `json:"heading,omitempty"`
	ProximityAlertRadius     int         `json:"proximity_alert_radius,omitempty"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

// EditMessageLiveLocationParams are the parameters of
// editMessageLiveLocation. Either ChatID+MessageID or InlineMessageID
// selects the target.
type EditMessageLiveLocationParams struct {
	ChatID               *ChatID               `json:"chat_id,omitempty"`
	MessageID            int64                 `json:"message_id,omitempty"`
	InlineMessageID      string                `json:"inline_message_id,omitempty"`
	Latitude             float64               `json:"latitude"`
	Longitude            float64               `json:"longitude"`
	HorizontalAccuracy   float64               `json:"horizontal_accuracy,omitempty"`
	Heading              int                   `json:"heading,omitempty"`
	ProximityAlertRadius int                   `json:"proximity_alert_radius,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// StopMessageLiveLocationParams are the parameters of
// stopMessageLiveLocation.
type StopMessageLiveLocationParams struct {
	ChatID          *ChatID               `json:"chat_id,omitempty"`
	MessageID       int64                 `json:"message_id,omitempty"`
	InlineMessageID string                `json:"inline_message_id,omitempty"`
	ReplyMarkup     *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// SendVenueParams are the parameters of sendVenue.
type SendVenueParams struct {
	ChatID                   ChatID      `json:"chat_id"`
	Latitude                 float64     `json:"latitude"`
	Longitude                float64     `json:"longitude"`
	Title                    string      `json:"title"`
	Address                  string      `json:"address"`
	FoursquareID             string      `json:"foursquare_id,omitempty"`
	FoursquareType           string      `json:"foursquare_type,omitempty"`
	GooglePlaceID            string      `json:"google_place_id,omitempty"`
	GooglePlaceType          string      `json:"google_place_type,omitempty"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendContactParams are the parameters of sendContact.
type SendContactParams struct {
	ChatID                   ChatID      `json:"chat_id"`
	PhoneNumber              string      `json:"phone_number"`
	FirstName                string      `json:"first_name"`
	LastName                 string      `json:"last_name,omitempty"`
	VCard                    string      `json:"vcard,omitempty"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendPollParams are the parameters of sendPoll.
type SendPollParams struct {
	ChatID ChatID `json:"chat_id"`
	// Question, 1-300 characters.
	Question string `json:"question"`
	// Options hold 2-10 answer strings, 1-100 characters each.
	Options                  []string        `json:"options"`
	IsAnonymous              *bool           `json:"is_anonymous,omitempty"`
	Type                     string          `json:"type,omitempty"`
	AllowsMultipleAnswers    bool            `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID          *int            `json:"correct_option_id,omitempty"`
	Explanation              string          `json:"explanation,omitempty"`
	ExplanationParseMode     string          `json:"explanation_parse_mode,omitempty"`
	ExplanationEntities      []MessageEntity `json:"explanation_entities,omitempty"`
	OpenPeriod               int             `json:"open_period,omitempty"`
	CloseDate                int64           `json:"close_date,omitempty"`
	IsClosed                 bool            `json:"is_closed,omitempty"`
	DisableNotification      bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64           `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool            `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup     `json:"reply_markup,omitempty"`
}

// SendDiceParams are the parameters of sendDice.
type SendDiceParams struct {
	ChatID ChatID `json:"chat_id"`
	// Emoji on which the dice throw animation is based. Defaults to "🎲".
	Emoji                    string      `json:"emoji,omitempty"`
	DisableNotification      bool        `json:"disable_notification,omitempty"`
	ReplyToMessageID         int64       `json:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool        `json:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              ReplyMarkup `json:"reply_markup,omitempty"`
}

// Chat actions accepted by sendChatAction.
const (
	ChatActionTyping          = "typing"
	ChatActionUploadPhoto     = "upload_photo"
	ChatActionRecordVideo     = "record_video"
	ChatActionUploadVideo     = "upload_video"
	ChatActionRecordVoice     = "record_voice"
	ChatActionUploadVoice     = "upload_voice"
	ChatActionUploadDocument  = "upload_document"
	ChatActionFindLocation    = "find_location"
	ChatActionRecordVideoNote = "record_video_note"
	ChatActionUploadVideoNote = "upload_video_note"
)

// SendChatActionParams are the parameters of sendChatAction.
type SendChatActionParams struct {
	ChatID ChatID `json:"chat_id"`
	Action string `json:"action"`
}
