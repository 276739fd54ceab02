package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type userContext struct {
	mu             sync.Mutex
	chatID         int64
	curCommand     command
	curCommandName string
}

func newUserContext(chatID int64) *userContext {
	return &userContext{chatID: chatID}
}

func (u *userContext) RunCommand(command command, name string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	u.setCommand(command, name, keyboard)
	u.curCommand.Run()
}

func (u *userContext) HasRunningCommand() bool {
	return u.curCommand != nil
}

func (u *userContext) OnUserInput(input string) {
	u.curCommand.OnUserInput(input)
}

func (u *userContext) CancelCommand() {
	u.curCommand = nil
	u.curCommandName = ""
}

func (u *userContext) setCommand(command command, name string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	u.curCommand = command
	u.curCommandName = name
	command.WithFinishCallback(func() {
		if u.curCommand == command {
			u.curCommand = nil
			u.curCommandName = ""
		}
	})
	command.WithKeyboardOnFinalMessage(keyboard)
}
