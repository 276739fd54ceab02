package bot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
)

const customPresetOption = "custom"

type emailSettingsCommand struct {
	commandBase
	steps stepper
	email emailGateway
	form  models.EmailConfig
}

func newEmailSettingsCommand(api apiInterface, chatID int64, email emailGateway) *emailSettingsCommand {

	cmd := &emailSettingsCommand{commandBase: commandBase{api: api, chatID: chatID}, email: email}

	presets := append(lo.Map(models.SMTPPresets, func(p models.SMTPPreset, _ int) string { return p.Name }), customPresetOption)
	cmd.steps.addChoice(chatID, "Choose your email provider:", presets, func(i int) {
		if i < len(models.SMTPPresets) {
			preset := models.SMTPPresets[i]
			cmd.form.SMTPHost, cmd.form.SMTPPort, cmd.form.UseTLS = preset.Host, preset.Port, preset.UseTLS
		} else {
			cmd.addServerSteps()
		}
		cmd.addAccountSteps()
	})

	return cmd
}

func (c *emailSettingsCommand) addServerSteps() {
	form := &c.form
	c.steps.add(
		newTextInput(c.chatID, "SMTP host:", func(v string) {
			form.SMTPHost = v
			c.steps.next()
		}),
		c.portInput(),
		newChoiceInput(c.chatID, "Use TLS?", []string{"Yes", "No"}, func(i int) {
			form.UseTLS = i == 0
			c.steps.next()
		}),
	)
}

func (c *emailSettingsCommand) portInput() inputHandler {
	input := newTextInput(c.chatID, "SMTP port:", func(v string) {
		c.form.SMTPPort, _ = services.ParseInt("SMTP port", v)
		c.steps.next()
	})
	input.AddValidation(wholeNumberValidation("SMTP port", 1))
	return input
}

func (c *emailSettingsCommand) addAccountSteps() {
	form := &c.form

	user := newTextInput(c.chatID, "SMTP user (usually your email address):", func(v string) {
		form.SMTPUser = v
		c.steps.next()
	})
	password := newTextInput(c.chatID, "SMTP password or app password:", func(v string) {
		form.SMTPPassword = v
		c.steps.next()
	})
	from := newTextInput(c.chatID, "Sender email address:", func(v string) {
		form.FromEmail = v
		c.steps.next()
	})
	from.AddValidation(emailValidation())

	c.steps.add(user, password, from)
}

func (c *emailSettingsCommand) Run() {
	current, err := c.email.Config(context.Background())
	switch {
	case err == nil:
		c.sendText(renderEmailConfig(current))
	case recruithub.StatusOf(err) == http.StatusNotFound:
		c.sendText("Email is not configured yet.")
	default:
		if !c.report(err, services.FailureMessage(err, "Failed to load email configuration")) {
			return
		}
	}
	c.send(c.steps.initMessage())
}

func renderEmailConfig(cfg models.EmailConfig) string {
	return fmt.Sprintf("Current email configuration\n\nSMTP server: %s:%d\nUser: %s\nFrom: %s\nTLS: %s",
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.FromEmail, lo.Ternary(cfg.UseTLS, "yes", "no"))
}

func (c *emailSettingsCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.save()
}

func (c *emailSettingsCommand) save() {
	defer func() { c.form.SMTPPassword = "" }()

	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to save email configuration"))
		return
	}
	if err := c.email.Configure(context.Background(), c.form); err != nil {
		c.fail(err, services.DetailedFailureMessage(err, "Failed to save email configuration"))
		return
	}
	c.finish("Email configuration saved successfully!")
}
