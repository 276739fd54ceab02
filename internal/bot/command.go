package bot

import (
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	internalErrorMessage  = "Internal error!"
	sessionExpiredMessage = "Your session has expired. Please /login again."
	maxMessageLength      = 4000
)

type apiInterface interface {
	Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error)
}

type command interface {
	WithKeyboardOnFinalMessage(tgbotapi.ReplyKeyboardMarkup)
	WithFinishCallback(func())
	WithUnauthorizedCallback(func())
	Run()
	OnUserInput(input string)
}

func sendWithLogError(api apiInterface, chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, err := api.Send(chattable)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("error occured while sending message: %v", err)
	}
	return msg, err
}

// commandBase holds what every command needs to talk to the chat and to end itself.
type commandBase struct {
	api                  apiInterface
	chatID               int64
	finishCallback       func()
	unauthorizedCallback func()
	finalMessageKeyboard *tgbotapi.ReplyKeyboardMarkup
	finished             bool
}

func (c *commandBase) WithFinishCallback(callback func()) {
	c.finishCallback = callback
}

func (c *commandBase) WithUnauthorizedCallback(callback func()) {
	c.unauthorizedCallback = callback
}

func (c *commandBase) WithKeyboardOnFinalMessage(keyboard tgbotapi.ReplyKeyboardMarkup) {
	c.finalMessageKeyboard = &keyboard
}

func (c *commandBase) send(chattable tgbotapi.Chattable) {
	if chattable == nil {
		return
	}
	_, _ = sendWithLogError(c.api, chattable)
}

// sendText splits long text on line boundaries to stay under the Telegram limit.
func (c *commandBase) sendText(text string) {
	for _, chunk := range splitMessage(text, maxMessageLength) {
		c.send(tgbotapi.NewMessage(c.chatID, chunk))
	}
}

// finish sends the last message with the menu keyboard and releases the user context.
func (c *commandBase) finish(text string) {
	if c.finished {
		return
	}
	c.finished = true

	chunks := splitMessage(text, maxMessageLength)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(c.chatID, chunk)
		if i == len(chunks)-1 && c.finalMessageKeyboard != nil {
			msg.ReplyMarkup = c.finalMessageKeyboard
		}
		c.send(msg)
	}

	if c.finishCallback != nil {
		c.finishCallback()
	}
}

// fail reports a backend error. An unauthorized answer ends the session.
func (c *commandBase) fail(err error, text string) {
	if errors.Is(err, recruithub.ErrUnauthorized) {
		log.Infof("session of chat %d rejected by backend: %v", c.chatID, err)
		c.finish(sessionExpiredMessage)
		if c.unauthorizedCallback != nil {
			c.unauthorizedCallback()
		}
		return
	}

	if services.IsValidationError(err) {
		c.finish(text)
		return
	}

	entry := log.WithField(logger.ErrorTypeField, logger.ErrorTypeRecruitHubApi)
	if recruithub.StatusOf(err) != 0 || errors.Is(err, recruithub.ErrTimeout) {
		entry.Warnf("backend request failed: %v", err)
	} else {
		entry.Errorf("backend request failed: %v", err)
	}
	c.finish(text)
}

// report tells the user about a failed request and keeps the command running.
// It returns false when the session was rejected and the command has ended.
func (c *commandBase) report(err error, text string) bool {
	if errors.Is(err, recruithub.ErrUnauthorized) {
		c.fail(err, text)
		return false
	}
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeRecruitHubApi).Warnf("backend request failed: %v", err)
	c.sendText(text)
	return true
}

// stepper walks through input handlers; handlers advance it from their onFinish callbacks.
type stepper struct {
	handlers []inputHandler
	index    int
}

func (s *stepper) add(handlers ...inputHandler) {
	s.handlers = append(s.handlers, handlers...)
}

func (s *stepper) next() {
	s.index++
}

func (s *stepper) reset(handlers ...inputHandler) {
	s.handlers = handlers
	s.index = 0
}

func (s *stepper) done() bool {
	return s.index >= len(s.handlers)
}

func (s *stepper) initMessage() tgbotapi.Chattable {
	if s.done() {
		return nil
	}
	return s.handlers[s.index].InitMessage()
}

// handle passes input to the current handler. It returns the message to send and
// whether every handler has finished.
func (s *stepper) handle(input string) (tgbotapi.Chattable, bool) {
	if s.done() {
		return nil, true
	}

	previousIndex := s.index
	msg := s.handlers[s.index].HandleInput(input)

	if previousIndex == s.index {
		return msg, false
	}
	if s.done() {
		return nil, true
	}
	return s.handlers[s.index].InitMessage(), false
}

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func (s *stepper) addText(chatID int64, prompt string, assign func(input string)) *textInput {
	input := newTextInput(chatID, prompt, func(value string) {
		assign(value)
		s.next()
	})
	s.add(input)
	return input
}

func (s *stepper) addOptionalText(chatID int64, prompt string, assign func(input string)) *textInput {
	input := newOptionalTextInput(chatID, prompt, func(value string) {
		assign(value)
		s.next()
	})
	s.add(input)
	return input
}

func (s *stepper) addChoice(chatID int64, prompt string, options []string, assign func(index int)) *choiceInput {
	input := newChoiceInput(chatID, prompt, options, func(index int) {
		assign(index)
		s.next()
	})
	s.add(input)
	return input
}

func (s *stepper) addListChoice(chatID int64, prompt string, options []string, assign func(index int)) *choiceInput {
	input := newListChoiceInput(chatID, prompt, options, func(index int) {
		assign(index)
		s.next()
	})
	s.add(input)
	return input
}
