package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type smartSearchCommand struct {
	commandBase
	steps      stepper
	translator searchTranslator
	searcher   candidateSearcher
	request    string
}

func newSmartSearchCommand(api apiInterface, chatID int64, translator searchTranslator, searcher candidateSearcher) *smartSearchCommand {

	cmd := &smartSearchCommand{commandBase: commandBase{api: api, chatID: chatID}, translator: translator, searcher: searcher}
	cmd.steps.addText(chatID, "Describe the candidates you are looking for, e.g. "+
		"\"java developers in Pune with 3 to 5 years of experience\":", func(v string) { cmd.request = v })
	return cmd
}

func (c *smartSearchCommand) Run() {
	c.send(c.steps.initMessage())
}

func (c *smartSearchCommand) OnUserInput(input string) {
	msg, done := c.steps.handle(input)
	if !done {
		c.send(msg)
		return
	}
	c.search()
}

func (c *smartSearchCommand) search() {
	ctx := context.Background()

	form, err := c.translator.Translate(ctx, c.request)
	if err != nil {
		if errors.Is(err, services.ErrUnreadableAIResponse) {
			log.Warnf("unreadable smart search response: %v", err)
			c.finish("Could not understand the request. Please rephrase it or use the regular search.")
			return
		}
		if services.IsValidationError(err) {
			c.finish(services.FailureMessage(err, ""))
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).Errorf("smart search failed: %v", err)
		c.finish("Smart search is not available right now. Please use the regular search.")
		return
	}

	candidates, err := c.searcher.Search(ctx, form)
	if err != nil {
		c.fail(err, services.SearchFailureMessage(err))
		return
	}
	c.finish(renderSearchResult(candidates))
}
