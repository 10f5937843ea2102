package filters

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgerasimov/go-tgbot/models"
)

func textUpdate(text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Text: text,
			Chat: models.Chat{ID: 1, Type: models.ChatTypePrivate},
		},
	}
}

func callbackUpdate(data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{Data: data},
	}
}

func TestCommand(t *testing.T) {
	f := Command("start")

	assert.True(t, f(textUpdate("/start")))
	assert.True(t, f(textUpdate("/start@my_echo_bot")))
	assert.True(t, f(textUpdate("/start now")))
	assert.False(t, f(textUpdate("/stop")))
	assert.False(t, f(textUpdate("start")))
	assert.False(t, f(callbackUpdate("start")))

	// The leading slash in the argument is optional.
	assert.True(t, Command("/start")(textUpdate("/start")))
}

func TestTextFilters(t *testing.T) {
	assert.True(t, Text("hello")(textUpdate("hello")))
	assert.False(t, Text("hello")(textUpdate("hello world")))

	assert.True(t, TextPrefix("hel")(textUpdate("hello")))
	assert.False(t, TextPrefix("bye")(textUpdate("hello")))

	assert.True(t, HasText()(textUpdate("x")))
	assert.False(t, HasText()(textUpdate("")))
}

func TestRegexp(t *testing.T) {
	f := Regexp(regexp.MustCompile(`^\d+$`))

	assert.True(t, f(textUpdate("12345")))
	assert.False(t, f(textUpdate("12a45")))
	assert.False(t, f(callbackUpdate("12345")))
}

func TestChatType(t *testing.T) {
	private := textUpdate("hi")
	group := &models.Update{
		Message: &models.Message{Chat: models.Chat{ID: -100, Type: models.ChatTypeGroup}},
	}

	assert.True(t, ChatType(models.ChatTypePrivate)(private))
	assert.False(t, ChatType(models.ChatTypePrivate)(group))
	assert.True(t, ChatType(models.ChatTypeGroup)(group))
}

func TestContentFilters(t *testing.T) {
	photo := &models.Update{
		Message: &models.Message{Photo: []models.PhotoSize{{FileID: "x"}}},
	}
	doc := &models.Update{
		Message: &models.Message{Document: &models.Document{FileID: "y"}},
	}

	assert.True(t, HasPhoto()(photo))
	assert.False(t, HasPhoto()(doc))
	assert.True(t, HasDocument()(doc))
	assert.False(t, HasDocument()(photo))
	assert.False(t, HasSticker()(photo))
	assert.False(t, HasVoice()(photo))
	assert.False(t, HasLocation()(photo))
}

func TestCallbackData(t *testing.T) {
	assert.True(t, CallbackData("vote:yes")(callbackUpdate("vote:yes")))
	assert.False(t, CallbackData("vote:yes")(callbackUpdate("vote:no")))
	assert.False(t, CallbackData("vote:yes")(textUpdate("vote:yes")))

	assert.True(t, CallbackDataPrefix("vote:")(callbackUpdate("vote:no")))
	assert.False(t, CallbackDataPrefix("poll:")(callbackUpdate("vote:no")))
}

func TestCombinators(t *testing.T) {
	isCmd := TextPrefix("/")
	hasText := HasText()

	assert.True(t, And(hasText, isCmd)(textUpdate("/start")))
	assert.False(t, And(hasText, isCmd)(textUpdate("start")))

	assert.True(t, Or(isCmd, Text("hi"))(textUpdate("hi")))
	assert.False(t, Or(isCmd, Text("hi"))(textUpdate("bye")))

	assert.True(t, Not(isCmd)(textUpdate("plain")))
	assert.False(t, Not(isCmd)(textUpdate("/cmd")))
}

func TestFiltersOnEditedAndChannelMessages(t *testing.T) {
	edited := &models.Update{EditedMessage: &models.Message{Text: "/start"}}
	post := &models.Update{ChannelPost: &models.Message{Text: "news"}}

	assert.True(t, Command("start")(edited))
	assert.True(t, Text("news")(post))
}
