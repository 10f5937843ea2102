package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgerasimov/go-tgbot/models"
)

func TestParamsValidator_SendMessage(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		params  models.SendMessageParams
		wantErr error
	}{
		{
			name:   "valid",
			params: models.SendMessageParams{ChatID: models.ChatInt(1), Text: "hi"},
		},
		{
			name:    "missing chat id",
			params:  models.SendMessageParams{Text: "hi"},
			wantErr: ErrEmptyChatID,
		},
		{
			name:    "empty text",
			params:  models.SendMessageParams{ChatID: models.ChatInt(1)},
			wantErr: ErrEmptyText,
		},
		{
			name: "text too long",
			params: models.SendMessageParams{
				ChatID: models.ChatInt(1),
				Text:   strings.Repeat("a", 4097),
			},
			wantErr: ErrTextTooLong,
		},
		{
			name: "text at the limit",
			params: models.SendMessageParams{
				ChatID: models.ChatInt(1),
				Text:   strings.Repeat("a", 4096),
			},
		},
		{
			name: "oversized callback data",
			params: models.SendMessageParams{
				ChatID: models.ChatInt(1),
				Text:   "hi",
				ReplyMarkup: &models.InlineKeyboardMarkup{
					InlineKeyboard: [][]models.InlineKeyboardButton{{
						{Text: "x", CallbackData: strings.Repeat("d", 65)},
					}},
				},
			},
			wantErr: ErrCallbackDataTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParamsValidator_GetUpdates(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.GetUpdatesParams{}))
	assert.NoError(t, v.Validate(ctx, &models.GetUpdatesParams{Limit: 100, Timeout: 30}))
	assert.ErrorIs(t, v.Validate(ctx, &models.GetUpdatesParams{Limit: 101}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, &models.GetUpdatesParams{Limit: -1}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, &models.GetUpdatesParams{Timeout: -1}), ErrInvalidTimeout)
}

func TestParamsValidator_SetWebhook(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.SetWebhookParams{URL: "https://bot.example.com/hook"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.SetWebhookParams{}), ErrEmptyWebhookURL)
	assert.ErrorIs(t, v.Validate(ctx, &models.SetWebhookParams{URL: "http://bot.example.com"}), ErrInsecureWebhookURL)
	assert.ErrorIs(t, v.Validate(ctx, &models.SetWebhookParams{
		URL:            "https://bot.example.com",
		MaxConnections: 101,
	}), ErrInvalidConnections)
}

func TestParamsValidator_SendPoll(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	valid := &models.SendPollParams{
		ChatID:   models.ChatInt(1),
		Question: "tea or coffee?",
		Options:  []string{"tea", "coffee"},
	}
	require.NoError(t, v.Validate(ctx, valid))

	assert.ErrorIs(t, v.Validate(ctx, &models.SendPollParams{
		ChatID:  models.ChatInt(1),
		Options: []string{"a", "b"},
	}), ErrEmptyQuestion)

	assert.ErrorIs(t, v.Validate(ctx, &models.SendPollParams{
		ChatID:   models.ChatInt(1),
		Question: "?",
		Options:  []string{"only one"},
	}), ErrBadOptionCount)

	assert.ErrorIs(t, v.Validate(ctx, &models.SendPollParams{
		ChatID:   models.ChatInt(1),
		Question: strings.Repeat("q", 301),
		Options:  []string{"a", "b"},
	}), ErrQuestionTooLong)
}

func TestParamsValidator_AnswerCallbackQuery(t *testing.T) {
	v := NewParamsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.AnswerCallbackQueryParams{CallbackQueryID: "q1"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AnswerCallbackQueryParams{}), ErrEmptyCallbackQueryID)
	assert.ErrorIs(t, v.Validate(ctx, &models.AnswerCallbackQueryParams{
		CallbackQueryID: "q1",
		Text:            strings.Repeat("t", 201),
	}), ErrCallbackTextTooLong)
}

func TestParamsValidator_UnknownTypePasses(t *testing.T) {
	v := NewParamsValidator()

	// Parameter structs without local rules validate clean.
	assert.NoError(t, v.Validate(context.Background(), &models.GetChatParams{}))
	assert.NoError(t, v.Validate(context.Background(), struct{}{}))
}
