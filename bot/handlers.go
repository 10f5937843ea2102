// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

package bot

import (
	"github.com/google/uuid"

	"github.com/sgerasimov/go-tgbot/models"
)

// On registers fn for updates of type t. The handler fires only when every
// filter passes. The returned id removes the handler later. Registration
// after Run has started is an error.
func (b *Bot) On(t models.UpdateType, fn Handler, filters ...MatchFunc) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return "", ErrRunning
	}
	id := uuid.NewString()
	b.handlers[t] = append(b.handlers[t], registration{id: id, match: matchAll(filters), fn: fn})
	return id, nil
}

// RemoveHandler unregisters a handler by the id On returned. Safe to call
// while the bot is running.
func (b *Bot) RemoveHandler(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for t, regs := range b.handlers {
		for i, reg := range regs {
			if reg.id == id {
				b.handlers[t] = append(regs[:i:i], regs[i+1:]...)
				return nil
			}
		}
	}
	return ErrUnknownHandler
}

func matchAll(filters []MatchFunc) MatchFunc {
	if len(filters) == 0 {
		return nil
	}
	return func(update *models.Update) bool {
		for _, f := range filters {
			if f != nil && !f(update) {
				return false
			}
		}
		return true
	}
}

func (b *Bot) OnMessage(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeMessage, fn, filters...)
}

func (b *Bot) OnEditedMessage(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeEditedMessage, fn, filters...)
}

func (b *Bot) OnChannelPost(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeChannelPost, fn, filters...)
}

func (b *Bot) OnEditedChannelPost(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeEditedChannelPost, fn, filters...)
}

func (b *Bot) OnInlineQuery(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeInlineQuery, fn, filters...)
}

func (b *Bot) OnChosenInlineResult(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeChosenInlineResult, fn, filters...)
}

func (b *Bot) OnCallbackQuery(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeCallbackQuery, fn, filters...)
}

func (b *Bot) OnShippingQuery(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeShippingQuery, fn, filters...)
}

func (b *Bot) OnPreCheckoutQuery(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypePreCheckoutQuery, fn, filters...)
}

func (b *Bot) OnPoll(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypePoll, fn, filters...)
}

func (b *Bot) OnPollAnswer(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypePollAnswer, fn, filters...)
}

func (b *Bot) OnMyChatMember(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeMyChatMember, fn, filters...)
}

func (b *Bot) OnChatMember(fn Handler, filters ...MatchFunc) (string, error) {
	return b.On(models.UpdateTypeChatMember, fn, filters...)
}
