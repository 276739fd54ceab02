package bot

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	generatePDFButton = "Generate PDF"
	sendEmailButton   = "Send Email"
	proceedButton     = "Proceed"
	cancelButton      = "Cancel"
	sendButton        = "Send"
	defaultPDFName    = "candidates.pdf"
)

type shareState int

const (
	shareSelecting shareState = iota
	shareConfirming
	shareDrafting
)

type profileSharer interface {
	Approved(ctx context.Context) ([]models.Candidate, error)
	NeedsConfirmation(ids []string) bool
	GeneratePDF(ctx context.Context, ids []string) (models.Document, error)
	PrepareEmail(ctx context.Context, approved []models.Candidate, ids []string) (services.EmailDraft, error)
	SendEmail(ctx context.Context, draft services.EmailDraft) ([]models.Candidate, error)
}

type shareCommand struct {
	commandBase
	sharer    profileSharer
	state     shareState
	approved  []models.Candidate
	selection services.Selection
	operation string
	draft     services.EmailDraft
}

func newShareCommand(api apiInterface, chatID int64, sharer profileSharer) *shareCommand {
	return &shareCommand{commandBase: commandBase{api: api, chatID: chatID}, sharer: sharer}
}

func (c *shareCommand) Run() {
	approved, err := c.sharer.Approved(context.Background())
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load candidates"))
		return
	}
	if len(approved) == 0 {
		c.finish("No approved profiles to share.")
		return
	}
	c.approved = approved
	c.showSelection()
}

func (c *shareCommand) OnUserInput(input string) {
	input = strings.TrimSpace(input)
	switch c.state {
	case shareSelecting:
		c.onSelectionInput(input)
	case shareConfirming:
		c.onConfirmationInput(input)
	case shareDrafting:
		c.onDraftInput(input)
	}
}

func (c *shareCommand) onSelectionInput(input string) {
	if input == generatePDFButton || input == sendEmailButton {
		c.operation = input
		ids := c.selection.IDs()
		if len(ids) == 0 {
			c.sendText(services.ErrNoCandidatesSelected.Error())
			return
		}
		if c.operation == generatePDFButton && c.sharer.NeedsConfirmation(ids) {
			c.state = shareConfirming
			msg := botApi.NewMessage(c.chatID, services.SingleProfileWarning)
			msg.ReplyMarkup = keyboardWithExit(proceedButton, cancelButton)
			c.send(msg)
			return
		}
		c.runOperation()
		return
	}

	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > len(c.approved) {
		c.sendText(fmt.Sprintf("Send a number from 1 to %d to select a profile, or choose an action.", len(c.approved)))
		return
	}
	c.selection.Toggle(c.approved[number-1].ID)
	c.showSelection()
}

func (c *shareCommand) onConfirmationInput(input string) {
	switch input {
	case proceedButton:
		c.runOperation()
	case cancelButton:
		c.showSelection()
	default:
		msg := botApi.NewMessage(c.chatID, services.SingleProfileWarning)
		msg.ReplyMarkup = keyboardWithExit(proceedButton, cancelButton)
		c.send(msg)
	}
}

func (c *shareCommand) onDraftInput(input string) {
	if input == sendButton {
		c.sendEmail()
		return
	}

	recipients := emailListValidation()
	if !recipients.function(input) {
		c.sendText(recipients.errorMessage)
		return
	}
	c.draft.To = strings.Join(services.SplitList(input), ", ")
	c.showDraft()
}

func (c *shareCommand) runOperation() {
	if c.operation == generatePDFButton {
		c.generatePDF()
		return
	}
	c.prepareEmail()
}

func (c *shareCommand) generatePDF() {
	document, err := c.sharer.GeneratePDF(context.Background(), c.selection.IDs())
	if err != nil {
		if c.report(err, services.DetailedFailureMessage(err, "Failed to generate PDF")) {
			c.showSelection()
		}
		return
	}

	if err = c.sendDocument(document); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).Errorf("failed to send PDF: %v", err)
		c.sendText("Failed to send the PDF file.")
	}
	c.showSelection()
}

func (c *shareCommand) sendDocument(document models.Document) error {
	data, err := base64.StdEncoding.DecodeString(document.Base64)
	if err != nil {
		return errors.Wrap(err, "invalid PDF content")
	}
	name := document.Filename
	if name == "" {
		name = defaultPDFName
	}
	_, err = c.api.Send(botApi.NewDocument(c.chatID, botApi.FileBytes{Name: name, Bytes: data}))
	return err
}

func (c *shareCommand) prepareEmail() {
	draft, err := c.sharer.PrepareEmail(context.Background(), c.approved, c.selection.IDs())
	if err != nil {
		if c.report(err, services.PrepareFailureMessage(err)) {
			c.showSelection()
		}
		return
	}
	c.draft = draft
	c.showDraft()
}

func (c *shareCommand) sendEmail() {
	approved, err := c.sharer.SendEmail(context.Background(), c.draft)
	if err != nil {
		if c.report(err, services.ShareFailureMessage(err)) {
			c.showDraft()
		}
		return
	}

	c.approved = approved
	c.selection.Clear()
	if len(approved) == 0 {
		c.finish(services.ShareSuccessMessage)
		return
	}
	c.sendText(services.ShareSuccessMessage)
	c.showSelection()
}

func (c *shareCommand) showSelection() {
	c.state = shareSelecting
	c.selection.Retain(lo.Map(c.approved, func(cd models.Candidate, _ int) string { return cd.ID }))

	text := renderList("Approved profiles:", "", c.approved, func(cd models.Candidate) string {
		mark := "[ ]"
		if c.selection.Contains(cd.ID) {
			mark = "[x]"
		}
		return mark + " " + candidateSummary(cd)
	})
	text += fmt.Sprintf("\n\nSelected: %d. Send a number to select or unselect a profile.", c.selection.Len())

	chunks := splitMessage(text, maxMessageLength)
	for i, chunk := range chunks {
		msg := botApi.NewMessage(c.chatID, chunk)
		if i == len(chunks)-1 {
			msg.ReplyMarkup = keyboardWithExit(generatePDFButton, sendEmailButton)
		}
		c.send(msg)
	}
}

func (c *shareCommand) showDraft() {
	c.state = shareDrafting

	to := c.draft.To
	hint := "Press Send, or enter other recipients separated by commas."
	if to == "" {
		to = "-"
		hint = "No client contacts were found. Enter recipients separated by commas."
	}

	msg := botApi.NewMessage(c.chatID, fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n\n%s", to, c.draft.Subject, c.draft.Body, hint))
	msg.ReplyMarkup = keyboardWithExit(sendButton)
	c.send(msg)
}
