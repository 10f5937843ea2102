// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package filters provides composable predicates for handler registration.
// A filter inspects one update and reports whether the handler should fire.
package filters

import (
	"regexp"
	"strings"

	"github.com/sgerasimov/go-tgbot/models"
)

// Filter reports whether an update should be handled.
type Filter func(update *models.Update) bool

// And passes when every filter passes.
func And(fs ...Filter) Filter {
	return func(update *models.Update) bool {
		for _, f := range fs {
			if !f(update) {
				return false
			}
		}
		return true
	}
}

// Or passes when at least one filter passes.
func Or(fs ...Filter) Filter {
	return func(update *models.Update) bool {
		for _, f := range fs {
			if f(update) {
				return true
			}
		}
		return false
	}
}

// Not inverts a filter.
func Not(f Filter) Filter {
	return func(update *models.Update) bool {
		return !f(update)
	}
}

// message extracts the message payload regardless of which message-bearing
// field the update uses.
func message(update *models.Update) *models.Message {
	switch {
	case update.Message != nil:
		return update.Message
	case update.EditedMessage != nil:
		return update.EditedMessage
	case update.ChannelPost != nil:
		return update.ChannelPost
	case update.EditedChannelPost != nil:
		return update.EditedChannelPost
	default:
		return nil
	}
}

// Command passes for messages carrying the given bot command, with or
// without the @botname suffix and the leading slash.
func Command(name string) Filter {
	name = strings.TrimPrefix(name, "/")
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Command() == name
	}
}

// Text passes for messages whose text matches exactly.
func Text(text string) Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Text == text
	}
}

// TextPrefix passes for messages whose text starts with prefix.
func TextPrefix(prefix string) Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && strings.HasPrefix(m.Text, prefix)
	}
}

// Regexp passes for messages whose text matches re. Captions are not
// considered.
func Regexp(re *regexp.Regexp) Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && re.MatchString(m.Text)
	}
}

// ChatType passes for messages sent in a chat of the given type, one of
// "private", "group", "supergroup" or "channel".
func ChatType(t string) Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Chat.Type == t
	}
}

// HasText passes for messages with non-empty text.
func HasText() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Text != ""
	}
}

// HasPhoto passes for messages carrying a photo.
func HasPhoto() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && len(m.Photo) > 0
	}
}

// HasDocument passes for messages carrying a document.
func HasDocument() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Document != nil
	}
}

// HasSticker passes for messages carrying a sticker.
func HasSticker() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Sticker != nil
	}
}

// HasVoice passes for messages carrying a voice note.
func HasVoice() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Voice != nil
	}
}

// HasLocation passes for messages carrying a location.
func HasLocation() Filter {
	return func(update *models.Update) bool {
		m := message(update)
		return m != nil && m.Location != nil
	}
}

// CallbackData passes for callback queries with the given data payload.
func CallbackData(data string) Filter {
	return func(update *models.Update) bool {
		return update.CallbackQuery != nil && update.CallbackQuery.Data == data
	}
}

// CallbackDataPrefix passes for callback queries whose data starts with
// prefix, the usual layout for "action:argument" payloads.
func CallbackDataPrefix(prefix string) Filter {
	return func(update *models.Update) bool {
		return update.CallbackQuery != nil && strings.HasPrefix(update.CallbackQuery.Data, prefix)
	}
}
