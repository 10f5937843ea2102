// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package client

import (
	"context"

	"github.com/sgerasimov/go-tgbot/models"
)

// GetUpdates receives incoming updates using long polling.
func (c *Client) GetUpdates(ctx context.Context, params *models.GetUpdatesParams) ([]models.Update, error) {
	return invokeTyped[[]models.Update](ctx, c, "getUpdates", params)
}

// SetWebhook specifies a URL to receive incoming updates via an outgoing
// webhook.
func (c *Client) SetWebhook(ctx context.Context, params *models.SetWebhookParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setWebhook", params)
}

// DeleteWebhook removes the webhook integration, switching back to
// getUpdates.
func (c *Client) DeleteWebhook(ctx context.Context, params *models.DeleteWebhookParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteWebhook", params)
}

// GetWebhookInfo returns the current webhook status.
func (c *Client) GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error) {
	return invokeTyped[*models.WebhookInfo](ctx, c, "getWebhookInfo", nil)
}

// GetMe returns basic information about the bot; the simplest way to test
// the token.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	return invokeTyped[*models.User](ctx, c, "getMe", nil)
}

// LogOut logs the bot out of the cloud Bot API server before running it
// locally.
func (c *Client) LogOut(ctx context.Context) (bool, error) {
	return invokeTyped[bool](ctx, c, "logOut", nil)
}

// Close closes the bot instance before moving it between local servers.
func (c *Client) Close(ctx context.Context) (bool, error) {
	return invokeTyped[bool](ctx, c, "close", nil)
}

// SendMessage sends a text message.
func (c *Client) SendMessage(ctx context.Context, params *models.SendMessageParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendMessage", params)
}

// ForwardMessage forwards a message of any kind.
func (c *Client) ForwardMessage(ctx context.Context, params *models.ForwardMessageParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "forwardMessage", params)
}

// CopyMessage copies a message without a link to the original.
func (c *Client) CopyMessage(ctx context.Context, params *models.CopyMessageParams) (*models.MessageID, error) {
	return invokeTyped[*models.MessageID](ctx, c, "copyMessage", params)
}

// SendPhoto sends a photo.
func (c *Client) SendPhoto(ctx context.Context, params *models.SendPhotoParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendPhoto", params)
}

// SendAudio sends an audio file to be displayed in the music player.
func (c *Client) SendAudio(ctx context.Context, params *models.SendAudioParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendAudio", params)
}

// SendDocument sends a general file, up to 50 MB.
func (c *Client) SendDocument(ctx context.Context, params *models.SendDocumentParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendDocument", params)
}

// SendVideo sends a video file, up to 50 MB.
func (c *Client) SendVideo(ctx context.Context, params *models.SendVideoParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendVideo", params)
}

// SendAnimation sends an animation file (GIF or soundless H.264 video).
func (c *Client) SendAnimation(ctx context.Context, params *models.SendAnimationParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendAnimation", params)
}

// SendVoice sends an OGG/OPUS audio as a playable voice message.
func (c *Client) SendVoice(ctx context.Context, params *models.SendVoiceParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendVoice", params)
}

// SendVideoNote sends a rounded square video of up to 1 minute.
func (c *Client) SendVideoNote(ctx context.Context, params *models.SendVideoNoteParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendVideoNote", params)
}

// SendMediaGroup sends a group of photos, videos, documents or audios as an
// album.
func (c *Client) SendMediaGroup(ctx context.Context, params *models.SendMediaGroupParams) ([]models.Message, error) {
	return invokeTyped[[]models.Message](ctx, c, "sendMediaGroup", params)
}

// SendLocation sends a point on the map.
func (c *Client) SendLocation(ctx context.Context, params *models.SendLocationParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendLocation", params)
}

// EditMessageLiveLocation edits a live location message. The returned
// message is nil when the target is an inline message.
func (c *Client) EditMessageLiveLocation(ctx context.Context, params *models.EditMessageLiveLocationParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "editMessageLiveLocation", params)
}

// StopMessageLiveLocation stops updating a live location before live_period
// expires. The returned message is nil for inline messages.
func (c *Client) StopMessageLiveLocation(ctx context.Context, params *models.StopMessageLiveLocationParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "stopMessageLiveLocation", params)
}

// SendVenue sends information about a venue.
func (c *Client) SendVenue(ctx context.Context, params *models.SendVenueParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendVenue", params)
}

// SendContact sends a phone contact.
func (c *Client) SendContact(ctx context.Context, params *models.SendContactParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendContact", params)
}

// SendPoll sends a native poll.
func (c *Client) SendPoll(ctx context.Context, params *models.SendPollParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendPoll", params)
}

// SendDice sends an animated emoji with a random value.
func (c *Client) SendDice(ctx context.Context, params *models.SendDiceParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendDice", params)
}

// SendChatAction tells the user that something is happening on the bot's
// side; the status shows for 5 seconds or until a message arrives.
func (c *Client) SendChatAction(ctx context.Context, params *models.SendChatActionParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "sendChatAction", params)
}

// GetUserProfilePhotos returns a list of profile pictures for a user.
func (c *Client) GetUserProfilePhotos(ctx context.Context, params *models.GetUserProfilePhotosParams) (*models.UserProfilePhotos, error) {
	return invokeTyped[*models.UserProfilePhotos](ctx, c, "getUserProfilePhotos", params)
}

// GetFile returns basic information about a file and prepares it for
// downloading via FileURL.
func (c *Client) GetFile(ctx context.Context, params *models.GetFileParams) (*models.File, error) {
	return invokeTyped[*models.File](ctx, c, "getFile", params)
}

// BanChatMember bans a user in a group, supergroup or channel.
func (c *Client) BanChatMember(ctx context.Context, params *models.BanChatMemberParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "banChatMember", params)
}

// UnbanChatMember lifts a ban from a previously kicked user.
func (c *Client) UnbanChatMember(ctx context.Context, params *models.UnbanChatMemberParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "unbanChatMember", params)
}

// RestrictChatMember restricts a user in a supergroup.
func (c *Client) RestrictChatMember(ctx context.Context, params *models.RestrictChatMemberParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "restrictChatMember", params)
}

// PromoteChatMember promotes or demotes a user in a supergroup or channel.
func (c *Client) PromoteChatMember(ctx context.Context, params *models.PromoteChatMemberParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "promoteChatMember", params)
}

// SetChatAdministratorCustomTitle sets a custom title for an administrator
// promoted by the bot.
func (c *Client) SetChatAdministratorCustomTitle(ctx context.Context, params *models.SetChatAdministratorCustomTitleParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatAdministratorCustomTitle", params)
}

// SetChatPermissions sets default chat permissions for all members.
func (c *Client) SetChatPermissions(ctx context.Context, params *models.SetChatPermissionsParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatPermissions", params)
}

// ExportChatInviteLink generates a new primary invite link, revoking the
// previous one.
func (c *Client) ExportChatInviteLink(ctx context.Context, params *models.ExportChatInviteLinkParams) (string, error) {
	return invokeTyped[string](ctx, c, "exportChatInviteLink", params)
}

// CreateChatInviteLink creates an additional invite link.
func (c *Client) CreateChatInviteLink(ctx context.Context, params *models.CreateChatInviteLinkParams) (*models.ChatInviteLink, error) {
	return invokeTyped[*models.ChatInviteLink](ctx, c, "createChatInviteLink", params)
}

// EditChatInviteLink edits a non-primary invite link created by the bot.
func (c *Client) EditChatInviteLink(ctx context.Context, params *models.EditChatInviteLinkParams) (*models.ChatInviteLink, error) {
	return invokeTyped[*models.ChatInviteLink](ctx, c, "editChatInviteLink", params)
}

// RevokeChatInviteLink revokes an invite link created by the bot.
func (c *Client) RevokeChatInviteLink(ctx context.Context, params *models.RevokeChatInviteLinkParams) (*models.ChatInviteLink, error) {
	return invokeTyped[*models.ChatInviteLink](ctx, c, "revokeChatInviteLink", params)
}

// SetChatPhoto sets a new chat photo.
func (c *Client) SetChatPhoto(ctx context.Context, params *models.SetChatPhotoParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatPhoto", params)
}

// DeleteChatPhoto deletes the chat photo.
func (c *Client) DeleteChatPhoto(ctx context.Context, params *models.DeleteChatPhotoParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteChatPhoto", params)
}

// SetChatTitle changes the chat title.
func (c *Client) SetChatTitle(ctx context.Context, params *models.SetChatTitleParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatTitle", params)
}

// SetChatDescription changes the chat description.
func (c *Client) SetChatDescription(ctx context.Context, params *models.SetChatDescriptionParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatDescription", params)
}

// PinChatMessage adds a message to the list of pinned messages.
func (c *Client) PinChatMessage(ctx context.Context, params *models.PinChatMessageParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "pinChatMessage", params)
}

// UnpinChatMessage removes a message from the list of pinned messages.
func (c *Client) UnpinChatMessage(ctx context.Context, params *models.UnpinChatMessageParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "unpinChatMessage", params)
}

// UnpinAllChatMessages clears the list of pinned messages.
func (c *Client) UnpinAllChatMessages(ctx context.Context, params *models.UnpinAllChatMessagesParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "unpinAllChatMessages", params)
}

// LeaveChat makes the bot leave a group, supergroup or channel.
func (c *Client) LeaveChat(ctx context.Context, params *models.LeaveChatParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "leaveChat", params)
}

// GetChat returns up-to-date information about the chat.
func (c *Client) GetChat(ctx context.Context, params *models.GetChatParams) (*models.Chat, error) {
	return invokeTyped[*models.Chat](ctx, c, "getChat", params)
}

// GetChatAdministrators returns the list of chat administrators, bots
// excluded.
func (c *Client) GetChatAdministrators(ctx context.Context, params *models.GetChatAdministratorsParams) ([]models.ChatMember, error) {
	return invokeTyped[[]models.ChatMember](ctx, c, "getChatAdministrators", params)
}

// GetChatMemberCount returns the number of members in a chat.
func (c *Client) GetChatMemberCount(ctx context.Context, params *models.GetChatMemberCountParams) (int, error) {
	return invokeTyped[int](ctx, c, "getChatMemberCount", params)
}

// GetChatMember returns information about a member of a chat.
func (c *Client) GetChatMember(ctx context.Context, params *models.GetChatMemberParams) (*models.ChatMember, error) {
	return invokeTyped[*models.ChatMember](ctx, c, "getChatMember", params)
}

// SetChatStickerSet sets a new group sticker set for a supergroup.
func (c *Client) SetChatStickerSet(ctx context.Context, params *models.SetChatStickerSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setChatStickerSet", params)
}

// DeleteChatStickerSet deletes the group sticker set from a supergroup.
func (c *Client) DeleteChatStickerSet(ctx context.Context, params *models.DeleteChatStickerSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteChatStickerSet", params)
}

// AnswerCallbackQuery answers a callback query sent from an inline
// keyboard.
func (c *Client) AnswerCallbackQuery(ctx context.Context, params *models.AnswerCallbackQueryParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "answerCallbackQuery", params)
}

// SetMyCommands changes the bot's command list.
func (c *Client) SetMyCommands(ctx context.Context, params *models.SetMyCommandsParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setMyCommands", params)
}

// DeleteMyCommands deletes the bot's command list for the given scope.
func (c *Client) DeleteMyCommands(ctx context.Context, params *models.DeleteMyCommandsParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteMyCommands", params)
}

// GetMyCommands returns the bot's command list for the given scope.
func (c *Client) GetMyCommands(ctx context.Context, params *models.GetMyCommandsParams) ([]models.BotCommand, error) {
	return invokeTyped[[]models.BotCommand](ctx, c, "getMyCommands", params)
}

// EditMessageText edits a text or game message. The returned message is
// nil for inline messages.
func (c *Client) EditMessageText(ctx context.Context, params *models.EditMessageTextParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "editMessageText", params)
}

// EditMessageCaption edits the caption of a message. The returned message
// is nil for inline messages.
func (c *Client) EditMessageCaption(ctx context.Context, params *models.EditMessageCaptionParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "editMessageCaption", params)
}

// EditMessageMedia replaces the media of a message. The returned message is
// nil for inline messages.
func (c *Client) EditMessageMedia(ctx context.Context, params *models.EditMessageMediaParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "editMessageMedia", params)
}

// EditMessageReplyMarkup edits only the reply markup of a message. The
// returned message is nil for inline messages.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, params *models.EditMessageReplyMarkupParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "editMessageReplyMarkup", params)
}

// StopPoll stops a poll sent by the bot.
func (c *Client) StopPoll(ctx context.Context, params *models.StopPollParams) (*models.Poll, error) {
	return invokeTyped[*models.Poll](ctx, c, "stopPoll", params)
}

// DeleteMessage deletes a message, subject to the API's deletion rules.
func (c *Client) DeleteMessage(ctx context.Context, params *models.DeleteMessageParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteMessage", params)
}

// SendSticker sends a static or animated sticker.
func (c *Client) SendSticker(ctx context.Context, params *models.SendStickerParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendSticker", params)
}

// GetStickerSet returns a sticker set.
func (c *Client) GetStickerSet(ctx context.Context, params *models.GetStickerSetParams) (*models.StickerSet, error) {
	return invokeTyped[*models.StickerSet](ctx, c, "getStickerSet", params)
}

// UploadStickerFile uploads a PNG for later use in sticker sets.
func (c *Client) UploadStickerFile(ctx context.Context, params *models.UploadStickerFileParams) (*models.File, error) {
	return invokeTyped[*models.File](ctx, c, "uploadStickerFile", params)
}

// CreateNewStickerSet creates a new sticker set owned by a user.
func (c *Client) CreateNewStickerSet(ctx context.Context, params *models.CreateNewStickerSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "createNewStickerSet", params)
}

// AddStickerToSet adds a sticker to a set created by the bot.
func (c *Client) AddStickerToSet(ctx context.Context, params *models.AddStickerToSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "addStickerToSet", params)
}

// SetStickerPositionInSet moves a sticker to a position in its set.
func (c *Client) SetStickerPositionInSet(ctx context.Context, params *models.SetStickerPositionInSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setStickerPositionInSet", params)
}

// DeleteStickerFromSet deletes a sticker from its set.
func (c *Client) DeleteStickerFromSet(ctx context.Context, params *models.DeleteStickerFromSetParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "deleteStickerFromSet", params)
}

// SetStickerSetThumb sets the thumbnail of a sticker set.
func (c *Client) SetStickerSetThumb(ctx context.Context, params *models.SetStickerSetThumbParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setStickerSetThumb", params)
}

// AnswerInlineQuery sends answers to an inline query.
func (c *Client) AnswerInlineQuery(ctx context.Context, params *models.AnswerInlineQueryParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "answerInlineQuery", params)
}

// SendInvoice sends an invoice.
func (c *Client) SendInvoice(ctx context.Context, params *models.SendInvoiceParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendInvoice", params)
}

// AnswerShippingQuery replies to a shipping query from an invoice with
// flexible price.
func (c *Client) AnswerShippingQuery(ctx context.Context, params *models.AnswerShippingQueryParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "answerShippingQuery", params)
}

// AnswerPreCheckoutQuery responds to a pre-checkout query; must be answered
// within 10 seconds.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, params *models.AnswerPreCheckoutQueryParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "answerPreCheckoutQuery", params)
}

// SetPassportDataErrors informs a user that some of their submitted
// Passport elements contain errors.
func (c *Client) SetPassportDataErrors(ctx context.Context, params *models.SetPassportDataErrorsParams) (bool, error) {
	return invokeTyped[bool](ctx, c, "setPassportDataErrors", params)
}

// SendGame sends a game.
func (c *Client) SendGame(ctx context.Context, params *models.SendGameParams) (*models.Message, error) {
	return invokeTyped[*models.Message](ctx, c, "sendGame", params)
}

// SetGameScore sets the score of a user in a game message. The returned
// message is nil for inline messages.
func (c *Client) SetGameScore(ctx context.Context, params *models.SetGameScoreParams) (*models.Message, error) {
	return invokeMessage(ctx, c, "setGameScore", params)
}

// GetGameHighScores returns the high score table of a game.
func (c *Client) GetGameHighScores(ctx context.Context, params *models.GetGameHighScoresParams) ([]models.GameHighScore, error) {
	return invokeTyped[[]models.GameHighScore](ctx, c, "getGameHighScores", params)
}
