package bot

import (
	"fmt"
	"strconv"
	"strings"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxChoiceButtons = 12

// choiceInput lets the user pick one option by its number or by its label.
type choiceInput struct {
	chatID   int64
	prompt   string
	options  []string
	listed   bool
	onFinish func(index int)
}

func newChoiceInput(chatID int64, prompt string, options []string, onFinish func(index int)) *choiceInput {
	return &choiceInput{chatID: chatID, prompt: prompt, options: options, onFinish: onFinish}
}

// newListChoiceInput numbers the options in the prompt instead of showing a button per option.
func newListChoiceInput(chatID int64, prompt string, options []string, onFinish func(index int)) *choiceInput {
	return &choiceInput{chatID: chatID, prompt: prompt, options: options, listed: true, onFinish: onFinish}
}

func (a *choiceInput) InitMessage() botApi.Chattable {
	text := a.prompt
	if a.listed || len(a.options) > maxChoiceButtons {
		var builder strings.Builder
		builder.WriteString(a.prompt)
		builder.WriteString("\n")
		for i, option := range a.options {
			builder.WriteString(fmt.Sprintf("\n%d. %s", i+1, option))
		}
		text = builder.String()
	}

	msg := botApi.NewMessage(a.chatID, text)
	if a.listed || len(a.options) > maxChoiceButtons {
		msg.ReplyMarkup = keyboardWithExit()
	} else {
		msg.ReplyMarkup = keyboardWithExit(a.options...)
	}
	return msg
}

func (a *choiceInput) HandleInput(input string) botApi.Chattable {
	input = strings.TrimSpace(input)

	for i, option := range a.options {
		if strings.EqualFold(option, input) {
			a.onFinish(i)
			return nil
		}
	}

	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > len(a.options) {
		return botApi.NewMessage(a.chatID, fmt.Sprintf("Please choose a number from 1 to %d.", len(a.options)))
	}

	a.onFinish(number - 1)
	return nil
}
