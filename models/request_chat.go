// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package models

// GetUserProfilePhotosParams are the parameters of getUserProfilePhotos.
type GetUserProfilePhotosParams struct {
	UserID int64 `json:"user_id"`
	Offset int   `json:"offset,omitempty"`
	// Limit caps the number of photos, 1-100. Defaults to 100.
	Limit int `json:"limit,omitempty"`
}

// GetFileParams are the parameters of getFile.
type GetFileParams struct {
	FileID string `json:"file_id"`
}

// BanChatMemberParams are the parameters of banChatMember.
type BanChatMemberParams struct {
	ChatID ChatID `json:"chat_id"`
	UserID int64  `json:"user_id"`
	// UntilDate is the Unix time the user is banned until. Less than 30
	// seconds or more than 366 days from now means forever.
	UntilDate      int64 `json:"until_date,omitempty"`
	RevokeMessages bool  `json:"revoke_messages,omitempty"`
}

// UnbanChatMemberParams are the parameters of unbanChatMember.
type UnbanChatMemberParams struct {
	ChatID       ChatID `json:"chat_id"`
	UserID       int64  `json:"user_id"`
	OnlyIfBanned bool   `json:"only_if_banned,omitempty"`
}

// RestrictChatMemberParams are the parameters of restrictChatMember.
type RestrictChatMemberParams struct {
	ChatID      ChatID          `json:"chat_id"`
	UserID      int64           `json:"user_id"`
	Permissions ChatPermissions `json:"permissions"`
	UntilDate   int64           `json:"until_date,omitempty"`
}

// PromoteChatMemberParams are the parameters of promoteChatMember.
type PromoteChatMemberParams struct {
	ChatID              ChatID `json:"chat_id"`
	UserID              int64  `json:"user_id"`
	IsAnonymous         bool   `json:"is_anonymous,omitempty"`
	CanManageChat       bool   `json:"can_manage_chat,omitempty"`
	CanPostMessages     bool   `json:"can_post_messages,omitempty"`
	CanEditMessages     bool   `json:"can_edit_messages,omitempty"`
	CanDeleteMessages   bool   `json:"can_delete_messages,omitempty"`
	CanManageVoiceChats bool   `json:"can_manage_voice_chats,omitempty"`
	CanRestrictMembers  bool   `json:"can_restrict_members,omitempty"`
	CanPromoteMembers   bool   `json:"can_promote_members,omitempty"`
	CanChangeInfo       bool   `json:"can_change_info,omitempty"`
	CanInviteUsers      bool   `json:"can_invite_users,omitempty"`
	CanPinMessages      bool   `json:"can_pin_messages,omitempty"`
}

// SetChatAdministratorCustomTitleParams are the parameters of
// setChatAdministratorCustomTitle.
type SetChatAdministratorCustomTitleParams struct {
	ChatID ChatID `json:"chat_id"`
	UserID int64  `json:"user_id"`
	// CustomTitle, 0-16 characters, emoji not allowed.
	CustomTitle string `json:"custom_title"`
}

// SetChatPermissionsParams are the parameters of setChatPermissions.
type SetChatPermissionsParams struct {
	ChatID      ChatID          `json:"chat_id"`
	Permissions ChatPermissions `json:"permissions"`
}

// ExportChatInviteLinkParams are the parameters of exportChatInviteLink.
type ExportChatInviteLinkParams struct {
	ChatID ChatID `json:"chat_id"`
}

// CreateChatInviteLinkParams are the parameters of createChatInviteLink.
type CreateChatInviteLinkParams struct {
	ChatID      ChatID `json:"chat_id"`
	ExpireDate  int64  `json:"expire_date,omitempty"`
	MemberLimit int    `json:"member_limit,omitempty"`
}

// EditChatInviteLinkParams are the parameters of editChatInviteLink.
type EditChatInviteLinkParams struct {
	ChatID      ChatID `json:"chat_id"`
	InviteLink  string `json:"invite_link"`
	ExpireDate  int64  `json:"expire_date,omitempty"`
	MemberLimit int    `json:"member_limit,omitempty"`
}

// RevokeChatInviteLinkParams are the parameters of revokeChatInviteLink.
type RevokeChatInviteLinkParams struct {
	ChatID     ChatID `json:"chat_id"`
	InviteLink string `json:"invite_link"`
}

// SetChatPhotoParams are the parameters of setChatPhoto. The photo cannot
// be reused: it must be uploaded.
type SetChatPhotoParams struct {
	ChatID ChatID     `json:"chat_id"`
	Photo  *InputFile `json:"photo"`
}

func (p *SetChatPhotoParams) UploadFiles() map[string]*InputFile {
	files := make(map[string]*InputFile, 1)
	addUpload(files, "photo", p.Photo)
	return files
}

// DeleteChatPhotoParams are the parameters of deleteChatPhoto.
type DeleteChatPhotoParams struct {
	ChatID ChatID `json:"chat_id"`
}

// SetChatTitleParams are the parameters of setChatTitle.
type SetChatTitleParams struct {
	ChatID ChatID `json:"chat_id"`
	// Title, 1-255 characters.
	Title string `json:"title"`
}

// SetChatDescriptionParams are the parameters of setChatDescription.
type SetChatDescriptionParams struct {
	ChatID ChatID `json:"chat_id"`
	// Description, 0-255 characters.
	Description string `json:"description,omitempty"`
}

// PinChatMessageParams are the parameters of pinChatMessage.
type PinChatMessageParams struct {
	ChatID              ChatID `json:"chat_id"`
	MessageID           int64  `json:"message_id"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

// UnpinChatMessageParams are the parameters of unpinChatMessage. Without
// MessageID the most recent pinned message is unpinned.
type UnpinChatMessageParams struct {
	ChatID    ChatID `json:"chat_id"`
	MessageID int64  `json:"message_id,omitempty"`
}

// UnpinAllChatMessagesParams are the parameters of unpinAllChatMessages.
type UnpinAllChatMessagesParams struct {
	ChatID ChatID `json:"chat_id"`
}

// LeaveChatParams are the parameters of leaveChat.
type LeaveChatParams struct {
	ChatID ChatID `json:"chat_id"`
}

// GetChatParams are the parameters of getChat.
type GetChatParams struct {
	ChatID ChatID `json:"chat_id"`
}

// GetChatAdministratorsParams are the parameters of getChatAdministrators.
type GetChatAdministratorsParams struct {
	ChatID ChatID `json:"chat_id"`
}

// GetChatMemberCountParams are the parameters of getChatMemberCount.
type GetChatMemberCountParams struct {
	ChatID ChatID `json:"chat_id"`
}

// GetChatMemberParams are the parameters of getChatMember.
type GetChatMemberParams struct {
	ChatID ChatID `json:"chat_id"`
	UserID int64  `json:"user_id"`
}

// SetChatStickerSetParams are the parameters of setChatStickerSet.
type SetChatStickerSetParams struct {
	ChatID         ChatID `json:"chat_id"`
	StickerSetName string `json:"sticker_set_name"`
}

// DeleteChatStickerSetParams are the parameters of deleteChatStickerSet.
type DeleteChatStickerSetParams struct {
	ChatID ChatID `json:"chat_id"`
}

// AnswerCallbackQueryParams are the parameters of answerCallbackQuery.
type AnswerCallbackQueryParams struct {
	CallbackQueryID string `json:"callback_query_id"`
	// Text of the notification, 0-200 characters.
	Text      string `json:"text,omitempty"`
	ShowAlert bool   `json:"show_alert,omitempty"`
	URL       string `json:"url,omitempty"`
	CacheTime int    `json:"cache_time,omitempty"`
}

// SetMyCommandsParams are the parameters of setMyCommands.
type SetMyCommandsParams struct {
	// Commands, at most 100.
	Commands     []BotCommand     `json:"commands"`
	Scope        *BotCommandScope `json:"scope,omitempty"`
	LanguageCode string           `json:"language_code,omitempty"`
}

// DeleteMyCommandsParams are the parameters of deleteMyCommands.
type DeleteMyCommandsParams struct {
	Scope        *BotCommandScope `json:"scope,omitempty"`
	LanguageCode string           `json:"language_code,omitempty"`
}

// GetMyCommandsParams are the parameters of getMyCommands.
type GetMyCommandsParams struct {
	Scope        *BotCommandScope `json:"scope,omitempty"`
	LanguageCode string           `json:"language_code,omitempty"`
}
