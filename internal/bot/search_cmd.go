package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
)

const searchNowButton = "Search now"

type candidateSearcher interface {
	Search(ctx context.Context, form services.SearchForm) ([]models.Candidate, error)
}

type searchCommand struct {
	commandBase
	steps    stepper
	searcher candidateSearcher
	form     services.SearchForm
}

func newSearchCommand(api apiInterface, chatID int64, searcher candidateSearcher) *searchCommand {

	cmd := &searchCommand{commandBase: commandBase{api: api, chatID: chatID}, searcher: searcher}
	form := &cmd.form

	fields := []struct {
		prompt  string
		target  *string
		numeric bool
	}{
		{"Keywords:", &form.Keywords, false},
		{"Current city:", &form.CurrentCity, false},
		{"Minimum experience, years:", &form.MinExperience, true},
		{"Maximum experience, years:", &form.MaxExperience, true},
		{"Minimum salary:", &form.MinSalary, true},
		{"Maximum salary:", &form.MaxSalary, true},
		{"Qualification:", &form.Qualification, false},
		{"Industry:", &form.Industry, false},
		{"Department:", &form.Department, false},
		{"Designation:", &form.Designation, false},
	}

	for _, field := range fields {
		target := field.target
		input := cmd.steps.addOptionalText(chatID, field.prompt, func(v string) {
			if v == searchNowButton {
				cmd.steps.index = len(cmd.steps.handlers)
				return
			}
			*target = v
		}).WithButton(searchNowButton)
		if field.numeric {
			input.AddValidation(numberValidation(field.prompt))
		}
	}

	return cmd
}

func (c *searchCommand) Run() {
	c.send(c.steps.initMessage())
}

func (c *searchCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.search()
}

func (c *searchCommand) search() {
	candidates, err := c.searcher.Search(context.Background(), c.form)
	if err != nil {
		c.fail(err, services.SearchFailureMessage(err))
		return
	}
	c.finish(renderSearchResult(candidates))
}

func renderSearchResult(candidates []models.Candidate) string {
	return renderList(services.FoundMessage(len(candidates)), "Try fewer filters.", candidates, candidateCard)
}
