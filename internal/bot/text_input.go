package bot

import (
	"strings"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type validation struct {
	function     func(input string) bool
	errorMessage string
}

type textInput struct {
	chatID      int64
	initMessage string
	onFinish    func(input string)
	validations []validation
	optional    bool
	extraButton string
}

func newTextInput(chatID int64, initMessage string, onFinish func(input string)) *textInput {
	input := &textInput{chatID: chatID, initMessage: initMessage, onFinish: onFinish}
	input.AddValidation(validation{
		function:     func(input string) bool { return strings.TrimSpace(input) != "" },
		errorMessage: "This field is required.",
	})
	return input
}

// newOptionalTextInput accepts the Skip button as an empty answer.
func newOptionalTextInput(chatID int64, initMessage string, onFinish func(input string)) *textInput {
	return &textInput{chatID: chatID, initMessage: initMessage, onFinish: onFinish, optional: true}
}

func (a *textInput) AddValidation(validation validation) {
	a.validations = append(a.validations, validation)
}

// WithButton shows an additional shortcut button; it is passed to onFinish verbatim.
func (a *textInput) WithButton(label string) *textInput {
	a.extraButton = label
	return a
}

func (a *textInput) InitMessage() botApi.Chattable {
	msg := botApi.NewMessage(a.chatID, a.initMessage)

	var buttons []string
	if a.extraButton != "" {
		buttons = append(buttons, a.extraButton)
	}
	if a.optional {
		buttons = append(buttons, skipButton)
	}
	msg.ReplyMarkup = keyboardWithExit(buttons...)
	return msg
}

func (a *textInput) HandleInput(input string) botApi.Chattable {

	if a.optional && (input == skipButton || strings.TrimSpace(input) == "") {
		a.onFinish("")
		return nil
	}
	if a.extraButton != "" && input == a.extraButton {
		a.onFinish(input)
		return nil
	}

	for _, _validation := range a.validations {
		if !_validation.function(input) {
			return botApi.NewMessage(a.chatID, _validation.errorMessage)
		}
	}

	a.onFinish(strings.TrimSpace(input))
	return nil
}
