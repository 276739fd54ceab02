package bot

import (
	"testing"
	"time"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_ClientsCmd_WhenValidData_ShouldCreateClient(t *testing.T) {

	assert := assert.New(t)

	clients := &mockClientGateway{}
	api := &mockApi{}
	finished := false

	cmd := newClientsCommand(api, 0, clients, true)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{addClientOption, "Acme", "IT", "Private", "Pune", skipButton, "acme.io",
		"Software", "hr@acme.io, , ops@acme.io"})

	assert.True(finished)
	assert.Len(clients.Clients, 1)
	assert.Equal("Acme", clients.Clients[0].ClientName)
	assert.Equal([]string{"hr@acme.io", "ops@acme.io"}, clients.Clients[0].ContactEmails)
	assert.Nil(clients.Clients[0].OtherBranches)
	assert.Equal("acme.io", *clients.Clients[0].Website)
	assert.Contains(api.lastText(), "Client created successfully!")
}

func Test_ClientsCmd_WhenInvalidEmail_ShouldWaitForValid(t *testing.T) {

	assert := assert.New(t)

	clients := &mockClientGateway{}
	api := &mockApi{}
	finished := false

	cmd := newClientsCommand(api, 0, clients, true)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{addClientOption, "Acme", "IT", "Private", "Pune", skipButton, skipButton,
		"Software", "hr@acme.io, nope"})

	assert.False(finished)
	assert.Empty(clients.Clients)
	assert.Equal(emailListValidation().errorMessage, api.lastText())

	cmd.OnUserInput("hr@acme.io")

	assert.True(finished)
	assert.Len(clients.Clients, 1)
}

func Test_ClientsCmd_WhenCannotAdd_ShouldOnlyList(t *testing.T) {
	clients := &mockClientGateway{Clients: []models.Client{{ID: "1", ClientName: "Acme"}}}
	api := &mockApi{}
	finished := false

	cmd := newClientsCommand(api, 0, clients, false)
	cmd.WithFinishCallback(func() { finished = true })
	cmd.Run()

	assert.True(t, finished)
	assert.Contains(t, api.lastText(), "1. Acme")
}

func Test_PositionsCmd_WhenNoClients_ShouldAskToAddClientFirst(t *testing.T) {
	api := &mockApi{}

	cmd := newPositionsCommand(api, 0, &mockPositionGateway{}, &mockClientGateway{}, &mockUserGateway{}, true)
	cmd.Run()

	assert.Contains(t, api.lastText(), "Please add a client first.")
}

func Test_PositionsCmd_WhenValidData_ShouldAssignRecruiters(t *testing.T) {

	assert := assert.New(t)

	positions := &mockPositionGateway{}
	clients := &mockClientGateway{Clients: []models.Client{{ID: "c1", ClientName: "Acme"}}}
	users := &mockUserGateway{Users: []models.User{
		{ID: "m1", Name: "Mona", Role: models.RoleManager},
		{ID: "r1", Name: "Ravi", Role: models.RoleRecruiter},
		{ID: "r2", Name: "Rita", Role: models.RoleRecruiter},
	}}
	finished := false

	cmd := newPositionsCommand(&mockApi{}, 0, positions, clients, users, true)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{addPositionOption, "1", "Backend Engineer", "Engineering", "0", "2",
		"Growth", skipButton, "Pune", "hybrid", "Mon-Fri", "B.Tech", "3-5 years", "Go, SQL", skipButton, skipButton, "2, 1"})

	assert.True(finished)
	assert.Len(positions.Created, 1)
	created := positions.Created[0]
	assert.Equal("c1", created.ClientID)
	assert.Equal(2, created.NumOpenings)
	assert.Nil(created.TeamSize)
	assert.Equal(models.WorkModeHybrid, created.WorkMode)
	assert.Equal([]string{"Go", "SQL"}, created.MustHaveSkills)
	assert.Equal([]string{"r2", "r1"}, created.AssignedRecruiters)
}

func Test_CandidatesCmd_WhenNegativeNumber_ShouldWaitForValid(t *testing.T) {
	api := &mockApi{}
	candidates := &mockCandidateGateway{}
	positions := &mockPositionGateway{Positions: []models.Position{{ID: "p1", JobTitle: "Backend Engineer"}}}

	cmd := newCandidatesCommand(api, 0, candidates, positions)
	cmd.Run()
	simulateUserInput(cmd, []string{addCandidateOption, "1", "Asha", "asha@mail.io", "+91 900", "B.Tech", "IT",
		"Engineer", "Engineering", "Pune", "-5"})

	assert.Equal(t, "Please enter a non-negative number.", api.lastText())

	simulateUserInput(cmd, []string{"12.5", "4", "15", "30 days"})

	assert.Len(t, candidates.Candidates, 1)
	assert.Contains(t, api.lastText(), "Candidate added successfully!")
}

func Test_InterviewsCmd_ShouldSendLocalTimeAsUTC(t *testing.T) {

	assert := assert.New(t)

	interviews := &mockInterviewGateway{}
	candidates := &mockCandidateGateway{Candidates: []models.Candidate{
		{ID: "1", Name: "Sourced", Status: models.StatusSourced},
		{ID: "2", Name: "Approved", Status: models.StatusApproved},
	}}
	positions := &mockPositionGateway{Positions: []models.Position{{ID: "p1", JobTitle: "Backend Engineer"}}}
	location := time.FixedZone("IST", 5*60*60+30*60)
	api := &mockApi{}

	cmd := newInterviewsCommand(api, 0, interviews, candidates, positions, true, location)
	cmd.Run()
	simulateUserInput(cmd, []string{scheduleInterviewOption, "1", "1", "online", "tomorrow"})

	assert.Equal("Please enter the date and time as YYYY-MM-DD HH:MM.", api.lastText())

	simulateUserInput(cmd, []string{"2024-05-01 10:30", skipButton})

	assert.Len(interviews.Scheduled, 1)
	assert.Equal("2", interviews.Scheduled[0].CandidateID)
	assert.Equal(models.ModeOnline, interviews.Scheduled[0].InterviewMode)
	assert.Equal("2024-05-01T05:00:00.000Z", interviews.Scheduled[0].InterviewDate)
}

func Test_UsersCmd_WhenValidData_ShouldRegisterUser(t *testing.T) {
	users := &mockUserGateway{}
	api := &mockApi{}

	cmd := newUsersCommand(api, 0, users)
	cmd.Run()
	simulateUserInput(cmd, []string{addUserOption, "Tara", "tara@acme.io", "secret", "team leader"})

	assert.Len(t, users.Users, 1)
	assert.Equal(t, models.RoleTeamLeader, users.Users[0].Role)
	assert.Empty(t, cmd.form.Password)
}

func Test_ReviewCmd_WhenRejectWithoutReason_ShouldAskAgain(t *testing.T) {

	assert := assert.New(t)

	reviewer := &mockReviewer{PendingCandidates: []models.Candidate{
		{ID: "1", Name: "Asha", Status: models.StatusSourced},
		{ID: "2", Name: "Ravi", Status: models.StatusShortlisted},
	}}
	api := &mockApi{}
	finished := false

	cmd := newReviewCommand(api, 0, reviewer)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{"1", "Reject", "   "})

	assert.Empty(reviewer.Applied)
	assert.Equal("This field is required.", api.lastText())

	cmd.OnUserInput("Not a fit")

	assert.Equal([]appliedReview{{CandidateID: "1", Action: models.ActionReject, Reason: "Not a fit"}}, reviewer.Applied)
	assert.False(finished)

	simulateUserInput(cmd, []string{"1", "Approve"})

	assert.Len(reviewer.Applied, 2)
	assert.Equal(appliedReview{CandidateID: "2", Action: models.ActionApprove}, reviewer.Applied[1])
	assert.True(finished)
	assert.Contains(api.lastText(), "Candidate approved successfully!")
}

func Test_ShareCmd_WhenSingleProfile_ShouldConfirmBeforePDF(t *testing.T) {

	assert := assert.New(t)

	sharer := &mockSharer{ApprovedCandidates: []models.Candidate{
		{ID: "1", Name: "Asha", Status: models.StatusApproved},
		{ID: "2", Name: "Ravi", Status: models.StatusApproved},
	}}
	api := &mockApi{}

	cmd := newShareCommand(api, 0, sharer)
	cmd.Run()
	simulateUserInput(cmd, []string{"1", generatePDFButton})

	assert.Empty(sharer.GeneratedFor)
	assert.Equal(services.SingleProfileWarning, api.lastText())

	cmd.OnUserInput(proceedButton)

	assert.Equal([][]string{{"1"}}, sharer.GeneratedFor)
	var document *botApi.DocumentConfig
	for _, sent := range api.SentMessages {
		if doc, ok := sent.(botApi.DocumentConfig); ok {
			document = &doc
		}
	}
	if assert.NotNil(document) {
		assert.Equal("profiles.pdf", document.File.(botApi.FileBytes).Name)
		assert.Equal([]byte("%PDF-"), document.File.(botApi.FileBytes).Bytes)
	}
}

func Test_ShareCmd_WhenNothingSelected_ShouldNotGenerate(t *testing.T) {
	sharer := &mockSharer{ApprovedCandidates: []models.Candidate{{ID: "1", Status: models.StatusApproved}}}
	api := &mockApi{}

	cmd := newShareCommand(api, 0, sharer)
	cmd.Run()
	cmd.OnUserInput(sendEmailButton)

	assert.Empty(t, sharer.GeneratedFor)
	assert.Equal(t, services.ErrNoCandidatesSelected.Error(), api.lastText())
}

func Test_ShareCmd_WhenRecipientsEdited_ShouldSendToNewRecipients(t *testing.T) {

	assert := assert.New(t)

	sharer := &mockSharer{ApprovedCandidates: []models.Candidate{
		{ID: "1", Name: "Asha", Status: models.StatusApproved},
		{ID: "2", Name: "Ravi", Status: models.StatusApproved},
	}}
	api := &mockApi{}
	finished := false

	cmd := newShareCommand(api, 0, sharer)
	cmd.WithFinishCallback(func() { finished = true })
	cmd.Run()
	simulateUserInput(cmd, []string{"2", "1", sendEmailButton, "a@client.io, b@client.io", sendButton})

	assert.Len(sharer.Sent, 1)
	assert.Equal("a@client.io, b@client.io", sharer.Sent[0].To)
	assert.Equal([]string{"2", "1"}, sharer.Sent[0].CandidateIDs)
	assert.True(finished)
	assert.Equal(services.ShareSuccessMessage, api.lastText())
}

func Test_ShareCmd_WhenSingleProfileEmailed_ShouldShowDraftWithoutConfirmation(t *testing.T) {
	sharer := &mockSharer{ApprovedCandidates: []models.Candidate{
		{ID: "1", Name: "Asha", Status: models.StatusApproved},
		{ID: "2", Name: "Ravi", Status: models.StatusApproved},
	}}
	api := &mockApi{}

	cmd := newShareCommand(api, 0, sharer)
	cmd.Run()
	simulateUserInput(cmd, []string{"1", sendEmailButton})

	assert.NotContains(t, api.texts(), services.SingleProfileWarning)
	assert.Contains(t, api.lastText(), "To: hr@acme.io")
}

func Test_ShareCmd_WhenPrepareFails_ShouldReportPrepareFailure(t *testing.T) {
	sharer := &mockSharer{
		ApprovedCandidates: []models.Candidate{
			{ID: "1", Name: "Asha", Status: models.StatusApproved},
			{ID: "2", Name: "Ravi", Status: models.StatusApproved},
		},
		PrepareErr: errors.New("boom"),
	}
	api := &mockApi{}

	cmd := newShareCommand(api, 0, sharer)
	cmd.Run()
	simulateUserInput(cmd, []string{"1", "2", sendEmailButton})

	assert.Contains(t, api.texts(), "Failed to prepare email")
	assert.NotContains(t, api.texts(), "Failed to send email")
	assert.Empty(t, sharer.Sent)
}

func Test_SearchCmd_WhenSearchNowPressed_ShouldSearchImmediately(t *testing.T) {
	searcher := &mockSearcher{}
	api := &mockApi{}

	cmd := newSearchCommand(api, 0, searcher)
	cmd.Run()
	simulateUserInput(cmd, []string{"golang", skipButton, "3", searchNowButton})

	assert.Equal(t, []services.SearchForm{{Keywords: "golang", MinExperience: "3"}}, searcher.Forms)
	assert.Contains(t, api.lastText(), "Found 1 candidates")
}

func Test_SearchCmd_WhenNumberInvalid_ShouldWaitForValid(t *testing.T) {
	searcher := &mockSearcher{}
	api := &mockApi{}

	cmd := newSearchCommand(api, 0, searcher)
	cmd.Run()
	simulateUserInput(cmd, []string{skipButton, skipButton, "three"})

	assert.Empty(t, searcher.Forms)
	assert.Equal(t, "Please enter a non-negative number.", api.lastText())
}

func Test_ParseNumbers(t *testing.T) {
	indexes, ok := parseNumbers("3, 1, 3", 3)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 0}, indexes)

	_, ok = parseNumbers("4", 3)
	assert.False(t, ok)

	_, ok = parseNumbers(" , ", 3)
	assert.False(t, ok)
}

func Test_EmailSettingsCmd_WhenPresetChosen_ShouldUsePresetServer(t *testing.T) {

	assert := assert.New(t)

	email := &mockEmailGateway{ConfigErr: &recruithub.APIError{Status: 404, Detail: "Email not configured"}}
	api := &mockApi{}

	cmd := newEmailSettingsCommand(api, 0, email)
	cmd.Run()

	assert.Contains(api.texts(), "Email is not configured yet.")

	simulateUserInput(cmd, []string{"gmail", "me@agency.com", "app-password", "me@agency.com"})

	assert.Equal([]models.EmailConfig{{
		SMTPHost: "smtp.gmail.com", SMTPPort: 587, SMTPUser: "me@agency.com",
		SMTPPassword: "app-password", FromEmail: "me@agency.com", UseTLS: true,
	}}, email.Saved)
	assert.Empty(cmd.form.SMTPPassword)
	assert.Equal("Email configuration saved successfully!", api.lastText())
}

func Test_EmailSettingsCmd_WhenCustomServer_ShouldAskForHostAndPort(t *testing.T) {

	assert := assert.New(t)

	email := &mockEmailGateway{Current: models.EmailConfig{SMTPHost: "old.host", SMTPPort: 25, SMTPPassword: "hidden"}}
	api := &mockApi{}

	cmd := newEmailSettingsCommand(api, 0, email)
	cmd.Run()

	for _, text := range api.texts() {
		assert.NotContains(text, "hidden")
	}

	simulateUserInput(cmd, []string{customPresetOption, "smtp.agency.io", "0"})
	assert.Equal("Please enter a whole number of at least 1.", api.lastText())

	simulateUserInput(cmd, []string{"2525", "No", "mailer", "pw", "noreply@agency.io"})

	if assert.Len(email.Saved, 1) {
		assert.Equal("smtp.agency.io", email.Saved[0].SMTPHost)
		assert.Equal(2525, email.Saved[0].SMTPPort)
		assert.False(email.Saved[0].UseTLS)
	}
}
