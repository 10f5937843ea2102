package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyChatID          = errors.New("chat_id is required")
	ErrEmptyText            = errors.New("text is required")
	ErrTextTooLong          = errors.New("text exceeds 4096 characters")
	ErrCaptionTooLong       = errors.New("caption exceeds 1024 characters")
	ErrInvalidLimit         = errors.New("limit must be between 1 and 100")
	ErrInvalidTimeout       = errors.New("timeout must not be negative")
	ErrEmptyWebhookURL      = errors.New("webhook url is required")
	ErrInsecureWebhookURL   = errors.New("webhook url must use https")
	ErrInvalidConnections   = errors.New("max_connections must be between 1 and 100")
	ErrEmptyQuestion        = errors.New("poll question is required")
	ErrQuestionTooLong      = errors.New("poll question exceeds 300 characters")
	ErrBadOptionCount       = errors.New("poll must have between 2 and 10 options")
	ErrOptionTooLong        = errors.New("poll option exceeds 100 characters")
	ErrCallbackTextTooLong  = errors.New("callback answer text exceeds 200 characters")
	ErrCallbackDataTooLong  = errors.New("callback_data exceeds 64 bytes")
	ErrEmptyCallbackQueryID = errors.New("callback_query_id is required")
	ErrEmptyInlineQueryID   = errors.New("inline_query_id is required")
	ErrTooManyResults       = errors.New("no more than 50 inline results are allowed")
	ErrEmptyMedia           = errors.New("media list cannot be empty")
	ErrBadMediaCount        = errors.New("media group must have between 2 and 10 items")
	ErrEmptyFile            = errors.New("file to send is required")
)
