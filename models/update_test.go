package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_Type(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   UpdateType
	}{
		{"message", Update{Message: &Message{}}, UpdateTypeMessage},
		{"edited message", Update{EditedMessage: &Message{}}, UpdateTypeEditedMessage},
		{"channel post", Update{ChannelPost: &Message{}}, UpdateTypeChannelPost},
		{"edited channel post", Update{EditedChannelPost: &Message{}}, UpdateTypeEditedChannelPost},
		{"inline query", Update{InlineQuery: &InlineQuery{}}, UpdateTypeInlineQuery},
		{"chosen inline result", Update{ChosenInlineResult: &ChosenInlineResult{}}, UpdateTypeChosenInlineResult},
		{"callback query", Update{CallbackQuery: &CallbackQuery{}}, UpdateTypeCallbackQuery},
		{"shipping query", Update{ShippingQuery: &ShippingQuery{}}, UpdateTypeShippingQuery},
		{"pre checkout query", Update{PreCheckoutQuery: &PreCheckoutQuery{}}, UpdateTypePreCheckoutQuery},
		{"poll", Update{Poll: &Poll{}}, UpdateTypePoll},
		{"poll answer", Update{PollAnswer: &PollAnswer{}}, UpdateTypePollAnswer},
		{"my chat member", Update{MyChatMember: &ChatMemberUpdated{}}, UpdateTypeMyChatMember},
		{"chat member", Update{ChatMember: &ChatMemberUpdated{}}, UpdateTypeChatMember},
		{"empty update", Update{}, UpdateTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.update.Type())
		})
	}
}

func TestUpdate_Unmarshal(t *testing.T) {
	raw := []byte(`{
		"update_id": 523434342,
		"message": {
			"message_id": 17,
			"date": 1628700000,
			"chat": {"id": 1117431, "type": "private"},
			"from": {"id": 1117431, "is_bot": false, "first_name": "Ann"},
			"text": "/start"
		}
	}`)

	var update Update
	require.NoError(t, Unmarshal(raw, &update))

	assert.Equal(t, int64(523434342), update.UpdateID)
	assert.Equal(t, UpdateTypeMessage, update.Type())
	require.NotNil(t, update.Message)
	assert.Equal(t, "/start", update.Message.Text)
	assert.Equal(t, int64(1117431), update.Message.Chat.ID)
}

func TestAllUpdateTypes_CoverEveryPayload(t *testing.T) {
	assert.Len(t, AllUpdateTypes, 13)
	assert.NotContains(t, AllUpdateTypes, UpdateTypeUnknown)
}
