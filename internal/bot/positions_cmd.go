package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const addPositionOption = "Add position"

type positionsCommand struct {
	commandBase
	steps      stepper
	positions  positionGateway
	clients    clientGateway
	users      userGateway
	canAdd     bool
	clientList []models.Client
	form       models.NewPosition
}

func newPositionsCommand(api apiInterface, chatID int64, positions positionGateway, clients clientGateway,
	users userGateway, canAdd bool) *positionsCommand {

	return &positionsCommand{
		commandBase: commandBase{api: api, chatID: chatID},
		positions:   positions,
		clients:     clients,
		users:       users,
		canAdd:      canAdd,
	}
}

func (c *positionsCommand) Run() {
	ctx := context.Background()

	clients, err := c.clients.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load positions"))
		return
	}
	c.clientList = clients

	text, err := c.renderPositions(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load positions"))
		return
	}
	if !c.canAdd {
		c.finish(text)
		return
	}
	if len(clients) == 0 {
		c.finish(text + "\n\nPlease add a client first.")
		return
	}

	users, err := c.users.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load recruiters"))
		return
	}
	recruiters := lo.Filter(users, func(u models.User, _ int) bool { return u.Role == models.RoleRecruiter })

	c.buildSteps(recruiters)
	c.sendText(text)
	c.send(c.steps.initMessage())
}

func (c *positionsCommand) renderPositions(ctx context.Context) (string, error) {
	positions, err := c.positions.List(ctx)
	if err != nil {
		return "", err
	}
	clientNames := namesByID(c.clientList,
		func(cl models.Client) string { return cl.ID },
		func(cl models.Client) string { return cl.ClientName })
	return renderList("Positions", "No positions yet.", positions, positionCard(clientNames)), nil
}

func (c *positionsCommand) buildSteps(recruiters []models.User) {
	form := &c.form
	chatID := c.chatID

	clientNames := lo.Map(c.clientList, func(cl models.Client, _ int) string { return cl.ClientName })
	workModes := lo.Map(models.WorkModes, func(mode models.WorkMode, _ int) string { return humanize(mode) })

	c.steps.addChoice(chatID, "What would you like to do?", []string{addPositionOption}, func(int) {})
	c.steps.addListChoice(chatID, "Choose the client:", clientNames, func(i int) { form.ClientID = c.clientList[i].ID })
	c.steps.addText(chatID, "Job title:", func(v string) { form.JobTitle = v })
	c.steps.addText(chatID, "Department:", func(v string) { form.Department = v })
	c.steps.addText(chatID, "Number of openings:", func(v string) {
		form.NumOpenings, _ = services.ParseInt("number of openings", v)
	}).AddValidation(wholeNumberValidation("number of openings", 1))
	c.steps.addText(chatID, "Reason for hiring:", func(v string) { form.ReasonForHiring = v })
	c.steps.addOptionalText(chatID, "Team size:", func(v string) {
		form.TeamSize, _ = services.ParseOptionalInt("team size", v)
	}).AddValidation(wholeNumberValidation("team size", 1))
	c.steps.addText(chatID, "Location:", func(v string) { form.Location = v })
	c.steps.addChoice(chatID, "Work mode:", workModes, func(i int) { form.WorkMode = models.WorkModes[i] })
	c.steps.addText(chatID, "Working days (e.g. Mon-Fri):", func(v string) { form.WorkingDays = v })
	c.steps.addText(chatID, "Qualification:", func(v string) { form.Qualification = v })
	c.steps.addText(chatID, "Experience (e.g. 3-5 years):", func(v string) { form.Experience = v })
	c.steps.addText(chatID, "Must have skills, separated by commas:", func(v string) {
		form.MustHaveSkills = services.SplitList(v)
	})
	c.steps.addOptionalText(chatID, "Good to have skills, separated by commas:", func(v string) {
		form.GoodToHaveSkills = services.SplitList(v)
	})
	c.steps.addOptionalText(chatID, "Gender preference:", func(v string) { form.GenderPreference = services.OptionalString(v) })

	if len(recruiters) == 0 {
		return
	}
	names := lo.Map(recruiters, func(u models.User, _ int) string { return u.Name + " (" + u.Email + ")" })
	c.steps.addOptionalText(chatID, renderList("Assign recruiters by number, separated by commas:", "", names,
		func(name string) string { return name }), func(v string) {
		indexes, _ := parseNumbers(v, len(recruiters))
		form.AssignedRecruiters = lo.Map(indexes, func(i int, _ int) string { return recruiters[i].ID })
	}).AddValidation(numbersValidation(len(recruiters)))
}

func (c *positionsCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.createPosition()
}

func (c *positionsCommand) createPosition() {
	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to create position"))
		return
	}

	ctx := context.Background()
	if _, err := c.positions.Create(ctx, c.form); err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to create position"))
		return
	}

	text, err := c.renderPositions(ctx)
	if err != nil {
		log.Warnf("failed to refresh positions: %v", err)
		c.finish("Position created successfully!")
		return
	}
	c.finish("Position created successfully!\n\n" + text)
}
