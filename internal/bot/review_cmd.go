package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
)

var reviewActionLabels = []string{"Shortlist", "Approve", "Reject"}

type candidateReviewer interface {
	Pending(ctx context.Context) ([]models.Candidate, error)
	Apply(ctx context.Context, candidateID string, action models.ProfileAction, reason string) ([]models.Candidate, error)
}

type reviewCommand struct {
	commandBase
	steps     stepper
	reviewer  candidateReviewer
	pending   []models.Candidate
	candidate models.Candidate
	action    models.ProfileAction
	reason    string
}

func newReviewCommand(api apiInterface, chatID int64, reviewer candidateReviewer) *reviewCommand {
	return &reviewCommand{commandBase: commandBase{api: api, chatID: chatID}, reviewer: reviewer}
}

func (c *reviewCommand) Run() {
	pending, err := c.reviewer.Pending(context.Background())
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load candidates"))
		return
	}
	if len(pending) == 0 {
		c.finish("No profiles pending review.")
		return
	}
	c.startRound(pending)
}

// startRound lets the user pick the next pending profile and a decision for it.
func (c *reviewCommand) startRound(pending []models.Candidate) {
	c.pending = pending
	c.reason = ""

	summaries := lo.Map(pending, func(cd models.Candidate, _ int) string { return candidateSummary(cd) })

	candidateChoice := newListChoiceInput(c.chatID, "Profiles pending review:", summaries, func(i int) {
		c.candidate = c.pending[i]
		c.sendText(candidateCard(c.candidate))
		c.steps.next()
	})
	actionChoice := newChoiceInput(c.chatID, "Choose an action:", reviewActionLabels, func(i int) {
		c.action = models.ProfileActions[i]
		if c.action == models.ActionReject {
			c.steps.add(newTextInput(c.chatID, "Please enter the rejection reason:", func(v string) {
				c.reason = v
				c.steps.next()
			}))
		}
		c.steps.next()
	})

	c.steps.reset(candidateChoice, actionChoice)
	c.send(c.steps.initMessage())
}

func (c *reviewCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.apply()
}

func (c *reviewCommand) apply() {
	pending, err := c.reviewer.Apply(context.Background(), c.candidate.ID, c.action, c.reason)
	if err != nil {
		if !c.report(err, services.ReviewFailureMessage(err, c.action)) {
			return
		}
		c.startRound(c.pending)
		return
	}

	success := services.ReviewSuccessMessage(c.action)
	if len(pending) == 0 {
		c.finish(success + "\n\nNo more profiles pending review.")
		return
	}
	c.sendText(success)
	c.startRound(pending)
}
