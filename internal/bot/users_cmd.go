package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const addUserOption = "Add user"

type usersCommand struct {
	commandBase
	steps stepper
	users userGateway
	form  models.NewUser
}

func newUsersCommand(api apiInterface, chatID int64, users userGateway) *usersCommand {

	cmd := &usersCommand{commandBase: commandBase{api: api, chatID: chatID}, users: users}
	form := &cmd.form

	roles := lo.Map(models.AllRoles, func(role models.Role, _ int) string { return humanize(role) })

	cmd.steps.addChoice(chatID, "What would you like to do?", []string{addUserOption}, func(int) {})
	cmd.steps.addText(chatID, "Full name:", func(v string) { form.Name = v })
	cmd.steps.addText(chatID, "Email:", func(v string) { form.Email = v }).AddValidation(emailValidation())
	cmd.steps.addText(chatID, "Password:", func(v string) { form.Password = v })
	cmd.steps.addChoice(chatID, "Role:", roles, func(i int) { form.Role = models.AllRoles[i] })

	return cmd
}

func (c *usersCommand) Run() {
	users, err := c.users.List(context.Background())
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load users"))
		return
	}
	c.sendText(renderList("Users", "No users yet.", users, userCard))
	c.send(c.steps.initMessage())
}

func (c *usersCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.createUser()
}

func (c *usersCommand) createUser() {
	defer func() { c.form.Password = "" }()

	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to create user"))
		return
	}

	ctx := context.Background()
	if _, err := c.users.Register(ctx, c.form); err != nil {
		c.fail(err, services.DetailedFailureMessage(err, "Failed to create user"))
		return
	}

	users, err := c.users.List(ctx)
	if err != nil {
		log.Warnf("failed to refresh users: %v", err)
		c.finish("User created successfully!")
		return
	}
	c.finish("User created successfully!\n\n" + renderList("Users", "No users yet.", users, userCard))
}
