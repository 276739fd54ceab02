package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
)

type loginer interface {
	Login(ctx context.Context, userKey int64, email, password string) (*models.Session, error)
}

type loginCommand struct {
	commandBase
	steps    stepper
	userKey  int64
	sessions loginer
	onLogin  func(session *models.Session)
	email    string
	password string
}

func newLoginCommand(api apiInterface, chatID, userKey int64, sessions loginer, onLogin func(*models.Session)) *loginCommand {

	cmd := &loginCommand{commandBase: commandBase{api: api, chatID: chatID}, userKey: userKey, sessions: sessions, onLogin: onLogin}

	email := newTextInput(chatID, "Enter your email:", func(input string) {
		cmd.email = input
		cmd.steps.next()
	})
	email.AddValidation(validation{
		function:     func(input string) bool { return services.ValidateEmail(input) == nil },
		errorMessage: "Please enter a valid email address.",
	})

	password := newTextInput(chatID, "Enter your password:", func(input string) {
		cmd.password = input
		cmd.steps.next()
	})

	cmd.steps.add(email, password)
	return cmd
}

func (c *loginCommand) Run() {
	c.send(c.steps.initMessage())
}

func (c *loginCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.login()
}

func (c *loginCommand) login() {
	session, err := c.sessions.Login(context.Background(), c.userKey, c.email, c.password)
	c.password = ""
	if err != nil {
		c.finish("Login failed: " + services.LoginFailureMessage(err) + "\nUse /login to try again.")
		return
	}

	c.finished = true
	if c.finishCallback != nil {
		c.finishCallback()
	}
	c.onLogin(session)
}
