package handlers

import (
	telebot "gopkg.in/telebot.v3"
)

// Screen is the small capability handlers use to talk back to the admin:
// either reply with a new message or rewrite the message the admin is
// looking at. One implementation exists per update variant.
type Screen interface {
	Respond(text string, markup *telebot.ReplyMarkup) error
	EditInPlace(text string, markup *telebot.ReplyMarkup) error
}

// NewScreen picks the Screen implementation matching the update: callback
// presses can edit the message their button lives on, plain messages cannot.
func NewScreen(c telebot.Context) Screen {
	if c.Callback() != nil {
		return callbackScreen{c: c}
	}
	return messageScreen{c: c}
}

// messageScreen answers plain text messages. There is no bot-owned message
// to rewrite, so EditInPlace degrades to a reply.
type messageScreen struct {
	c telebot.Context
}

func (s messageScreen) Respond(text string, markup *telebot.ReplyMarkup) error {
	return send(s.c, text, markup)
}

func (s messageScreen) EditInPlace(text string, markup *telebot.ReplyMarkup) error {
	return send(s.c, text, markup)
}

// callbackScreen answers inline-button presses, rewriting the menu message
// in place for EditInPlace.
type callbackScreen struct {
	c telebot.Context
}

func (s callbackScreen) Respond(text string, markup *telebot.ReplyMarkup) error {
	return send(s.c, text, markup)
}

func (s callbackScreen) EditInPlace(text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		return s.c.Edit(text, markup)
	}
	return s.c.Edit(text)
}

func send(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}
