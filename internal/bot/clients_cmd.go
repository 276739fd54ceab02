package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	log "github.com/sirupsen/logrus"
)

const addClientOption = "Add client"

type clientsCommand struct {
	commandBase
	steps   stepper
	clients clientGateway
	canAdd  bool
	form    models.NewClient
}

func newClientsCommand(api apiInterface, chatID int64, clients clientGateway, canAdd bool) *clientsCommand {

	cmd := &clientsCommand{commandBase: commandBase{api: api, chatID: chatID}, clients: clients, canAdd: canAdd}
	form := &cmd.form

	cmd.steps.addChoice(chatID, "What would you like to do?", []string{addClientOption}, func(int) {})
	cmd.steps.addText(chatID, "Client name:", func(v string) { form.ClientName = v })
	cmd.steps.addText(chatID, "Industry:", func(v string) { form.Industry = v })
	cmd.steps.addText(chatID, "Organization type (e.g. Private, Public, Government):", func(v string) { form.OrganizationType = v })
	cmd.steps.addText(chatID, "Headquarter location:", func(v string) { form.HeadquarterLocation = v })
	cmd.steps.addOptionalText(chatID, "Other branches:", func(v string) { form.OtherBranches = services.OptionalString(v) })
	cmd.steps.addOptionalText(chatID, "Website:", func(v string) { form.Website = services.OptionalString(v) })
	cmd.steps.addText(chatID, "Core business:", func(v string) { form.CoreBusiness = v })
	cmd.steps.addText(chatID, "Contact emails, separated by commas:", func(v string) {
		form.ContactEmails = services.SplitList(v)
	}).AddValidation(emailListValidation())

	return cmd
}

func (c *clientsCommand) Run() {
	clients, err := c.clients.List(context.Background())
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load clients"))
		return
	}

	text := renderList("Clients", "No clients yet.", clients, clientCard)
	if !c.canAdd {
		c.finish(text)
		return
	}

	c.sendText(text)
	c.send(c.steps.initMessage())
}

func (c *clientsCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.createClient()
}

func (c *clientsCommand) createClient() {
	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to create client"))
		return
	}

	ctx := context.Background()
	if _, err := c.clients.Create(ctx, c.form); err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to create client"))
		return
	}

	clients, err := c.clients.List(ctx)
	if err != nil {
		log.Warnf("failed to refresh clients: %v", err)
		c.finish("Client created successfully!")
		return
	}
	c.finish("Client created successfully!\n\n" + renderList("Clients", "No clients yet.", clients, clientCard))
}
