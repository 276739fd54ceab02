package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const addCandidateOption = "Add candidate"

type candidatesCommand struct {
	commandBase
	steps      stepper
	candidates candidateGateway
	positions  positionGateway
	form       models.NewCandidate
}

func newCandidatesCommand(api apiInterface, chatID int64, candidates candidateGateway, positions positionGateway) *candidatesCommand {
	return &candidatesCommand{commandBase: commandBase{api: api, chatID: chatID}, candidates: candidates, positions: positions}
}

func (c *candidatesCommand) Run() {
	ctx := context.Background()

	candidates, err := c.candidates.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load candidates"))
		return
	}
	positions, err := c.positions.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load positions"))
		return
	}

	text := renderList("Candidates", "No candidates yet.", candidates, candidateCard)
	if len(positions) == 0 {
		c.finish(text + "\n\nPlease add a position first.")
		return
	}

	c.buildSteps(positions)
	c.sendText(text)
	c.send(c.steps.initMessage())
}

func (c *candidatesCommand) buildSteps(positions []models.Position) {
	form := &c.form
	chatID := c.chatID

	titles := lo.Map(positions, func(p models.Position, _ int) string { return p.JobTitle + ", " + p.Location })

	c.steps.addChoice(chatID, "What would you like to do?", []string{addCandidateOption}, func(int) {})
	c.steps.addListChoice(chatID, "Choose the position:", titles, func(i int) { form.PositionID = positions[i].ID })
	c.steps.addText(chatID, "Full name:", func(v string) { form.Name = v })
	c.steps.addText(chatID, "Email:", func(v string) { form.Email = v }).AddValidation(emailValidation())
	c.steps.addText(chatID, "Contact number:", func(v string) { form.ContactNumber = v })
	c.steps.addText(chatID, "Qualification:", func(v string) { form.Qualification = v })
	c.steps.addText(chatID, "Industry sector:", func(v string) { form.IndustrySector = v })
	c.steps.addText(chatID, "Current designation:", func(v string) { form.CurrentDesignation = v })
	c.steps.addText(chatID, "Department:", func(v string) { form.Department = v })
	c.steps.addText(chatID, "Current location:", func(v string) { form.CurrentLocation = v })
	c.steps.addText(chatID, "Current CTC:", func(v string) {
		form.CurrentCTC, _ = services.ParseFloat("current CTC", v)
	}).AddValidation(numberValidation("current CTC"))
	c.steps.addText(chatID, "Years of experience:", func(v string) {
		form.YearsOfExperience, _ = services.ParseFloat("years of experience", v)
	}).AddValidation(numberValidation("years of experience"))
	c.steps.addText(chatID, "Expected CTC:", func(v string) {
		form.ExpectedCTC, _ = services.ParseFloat("expected CTC", v)
	}).AddValidation(numberValidation("expected CTC"))
	c.steps.addText(chatID, "Notice period (e.g. 30 days):", func(v string) { form.NoticePeriod = v })
}

func (c *candidatesCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.addCandidate()
}

func (c *candidatesCommand) addCandidate() {
	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to add candidate"))
		return
	}

	ctx := context.Background()
	if _, err := c.candidates.Create(ctx, c.form); err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to add candidate"))
		return
	}

	candidates, err := c.candidates.List(ctx)
	if err != nil {
		log.Warnf("failed to refresh candidates: %v", err)
		c.finish("Candidate added successfully!")
		return
	}
	c.finish("Candidate added successfully!\n\n" + renderList("Candidates", "No candidates yet.", candidates, candidateCard))
}
