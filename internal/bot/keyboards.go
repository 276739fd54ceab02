package bot

import (
	"slices"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/samber/lo"
)

const (
	backToMenuCommandName   = "Back to menu"
	logoutCommandName       = "Logout"
	emailSettingsButtonName = "Email Settings"
	smartSearchButtonName   = "Smart Search"
	skipButton              = "Skip"
	buttonsPerRow           = 3
)

// menuKeyboard shows exactly the entries the role may open.
func menuKeyboard(role models.Role, smartSearch bool) botApi.ReplyKeyboardMarkup {
	labels := lo.Map(models.MenuFor(role), func(route models.Route, _ int) string { return string(route) })
	if smartSearch {
		labels = append(labels, smartSearchButtonName)
	}
	if role.CanConfigureEmail() {
		labels = append(labels, emailSettingsButtonName)
	}
	labels = append(labels, logoutCommandName)
	return buttonsKeyboard(labels)
}

func keyboardWithExit(buttons ...string) botApi.ReplyKeyboardMarkup {
	return buttonsKeyboard(append(slices.Clone(buttons), backToMenuCommandName))
}

func buttonsKeyboard(labels []string) botApi.ReplyKeyboardMarkup {
	rows := lo.Map(lo.Chunk(labels, buttonsPerRow), func(chunk []string, _ int) []botApi.KeyboardButton {
		return lo.Map(chunk, func(label string, _ int) botApi.KeyboardButton {
			return botApi.NewKeyboardButton(label)
		})
	})
	keyboard := botApi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	return keyboard
}
