package bot

import (
	"context"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const scheduleInterviewOption = "Schedule interview"

type interviewsCommand struct {
	commandBase
	steps       stepper
	interviews  interviewGateway
	candidates  candidateGateway
	positions   positionGateway
	canSchedule bool
	location    *time.Location
	names       map[string]string
	form        models.NewInterview
}

func newInterviewsCommand(api apiInterface, chatID int64, interviews interviewGateway, candidates candidateGateway,
	positions positionGateway, canSchedule bool, location *time.Location) *interviewsCommand {

	return &interviewsCommand{
		commandBase: commandBase{api: api, chatID: chatID},
		interviews:  interviews,
		candidates:  candidates,
		positions:   positions,
		canSchedule: canSchedule,
		location:    location,
	}
}

func (c *interviewsCommand) Run() {
	ctx := context.Background()

	candidates, err := c.candidates.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load interviews"))
		return
	}
	c.names = namesByID(candidates,
		func(cd models.Candidate) string { return cd.ID },
		func(cd models.Candidate) string { return cd.Name })

	text, err := c.renderInterviews(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load interviews"))
		return
	}
	if !c.canSchedule {
		c.finish(text)
		return
	}

	eligible := lo.Filter(candidates, func(cd models.Candidate, _ int) bool {
		return cd.HasStatus(models.StatusApproved, models.StatusSharedWithClient)
	})
	if len(eligible) == 0 {
		c.finish(text + "\n\nNo approved candidates to schedule.")
		return
	}

	positions, err := c.positions.List(ctx)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load positions"))
		return
	}
	if len(positions) == 0 {
		c.finish(text + "\n\nPlease add a position first.")
		return
	}

	c.buildSteps(eligible, positions)
	c.sendText(text)
	c.send(c.steps.initMessage())
}

func (c *interviewsCommand) renderInterviews(ctx context.Context) (string, error) {
	interviews, err := c.interviews.List(ctx)
	if err != nil {
		return "", err
	}
	return renderList("Interviews", "No interviews scheduled.", interviews, interviewCard(c.location, c.names)), nil
}

func (c *interviewsCommand) buildSteps(candidates []models.Candidate, positions []models.Position) {
	form := &c.form
	chatID := c.chatID

	candidateNames := lo.Map(candidates, func(cd models.Candidate, _ int) string { return candidateSummary(cd) })
	titles := lo.Map(positions, func(p models.Position, _ int) string { return p.JobTitle + ", " + p.Location })
	modes := lo.Map(models.InterviewModes, func(mode models.InterviewMode, _ int) string { return humanize(mode) })

	c.steps.addChoice(chatID, "What would you like to do?", []string{scheduleInterviewOption}, func(int) {})
	c.steps.addListChoice(chatID, "Choose the candidate:", candidateNames, func(i int) {
		form.CandidateID = candidates[i].ID
	})
	c.steps.addListChoice(chatID, "Choose the position:", titles, func(i int) { form.PositionID = positions[i].ID })
	c.steps.addChoice(chatID, "Interview mode:", modes, func(i int) { form.InterviewMode = models.InterviewModes[i] })
	c.steps.addText(chatID, "Date and time ("+services.LocalDateTimeLayout+", "+c.location.String()+"):", func(v string) {
		instant, _ := services.ParseLocalDateTime(v, c.location)
		form.InterviewDate = models.FormatInstant(instant)
	}).AddValidation(validation{
		function: func(input string) bool {
			_, err := services.ParseLocalDateTime(input, c.location)
			return err == nil
		},
		errorMessage: "Please enter the date and time as YYYY-MM-DD HH:MM.",
	})
	c.steps.addOptionalText(chatID, "Action plan:", func(v string) { form.ActionPlan = v })
}

func (c *interviewsCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.schedule()
}

func (c *interviewsCommand) schedule() {
	if err := services.Validate(c.form); err != nil {
		c.finish(services.FailureMessage(err, "Failed to schedule interview"))
		return
	}

	ctx := context.Background()
	if _, err := c.interviews.Schedule(ctx, c.form); err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to schedule interview"))
		return
	}

	text, err := c.renderInterviews(ctx)
	if err != nil {
		log.Warnf("failed to refresh interviews: %v", err)
		c.finish("Interview scheduled successfully!")
		return
	}
	c.finish("Interview scheduled successfully!\n\n" + text)
}
