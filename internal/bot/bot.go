package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/events"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/maxaizer/recruithub-bot/internal/repositories"
	"github.com/maxaizer/recruithub-bot/internal/services"
	log "github.com/sirupsen/logrus"
)

type sessionStore interface {
	Login(ctx context.Context, userKey int64, email, password string) (*models.Session, error)
	Current(ctx context.Context, userKey int64) (*models.Session, error)
	Logout(ctx context.Context, userKey int64) error
	Expire(ctx context.Context, userKey int64) error
}

type positionCache interface {
	Get(ctx context.Context, userKey int64, id string, source repositories.PositionSource) (models.Position, error)
	Forget(userKey int64)
}

type searchTranslator interface {
	Translate(ctx context.Context, text string) (services.SearchForm, error)
}

type Dependencies struct {
	Sessions  sessionStore
	Backend   *recruithub.Client
	Positions positionCache
	// AISearch enables the smart search entry when set.
	AISearch searchTranslator
	Location *time.Location
}

type Bot struct {
	tg           *botApi.BotAPI
	api          apiInterface
	mu           sync.Mutex
	userContexts map[int64]*userContext
	sessions     sessionStore
	positions    positionCache
	aiSearch     searchTranslator
	location     *time.Location
	gatewaysFor  func(session *models.Session) gateways
}

var slashCommands = map[string]string{
	"dashboard":      string(models.RouteDashboard),
	"clients":        string(models.RouteClients),
	"positions":      string(models.RoutePositions),
	"candidates":     string(models.RouteCandidates),
	"search":         string(models.RouteSearch),
	"smart_search":   smartSearchButtonName,
	"review":         string(models.RouteReview),
	"share":          string(models.RouteShare),
	"interviews":     string(models.RouteInterviews),
	"users":          string(models.RouteUsers),
	"email_settings": emailSettingsButtonName,
}

func NewBot(token string, bus EventBus.Bus, deps Dependencies) (*Bot, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if deps.Backend == nil {
		return nil, errors.New("backend client is nil")
	}

	tg, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", tg.Self.UserName)

	if err = botApi.SetLogger(log.StandardLogger()); err != nil {
		return nil, err
	}

	createdBot, err := newBot(tg, bus, recruitHubGateways(deps.Backend), deps)
	if err != nil {
		return nil, err
	}
	createdBot.tg = tg
	return createdBot, nil
}

func newBot(api apiInterface, bus EventBus.Bus, gatewaysFor func(*models.Session) gateways, deps Dependencies) (*Bot, error) {

	if deps.Sessions == nil {
		return nil, errors.New("session store is nil")
	}
	if deps.Positions == nil {
		return nil, errors.New("position cache is nil")
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}

	b := &Bot{
		api:          api,
		userContexts: make(map[int64]*userContext),
		sessions:     deps.Sessions,
		positions:    deps.Positions,
		aiSearch:     deps.AISearch,
		location:     deps.Location,
		gatewaysFor:  gatewaysFor,
	}

	if err := bus.Subscribe(events.SessionEndedTopic, b.onSessionEnded); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bot) Run() {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.tg.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil || update.Message.From == nil {
			continue
		}

		if !update.Message.Chat.IsPrivate() {
			continue
		}

		go b.handleMessage(update.Message)
	}
}

func (b *Bot) Stop() {
	if b.tg != nil {
		b.tg.StopReceivingUpdates()
	}
}

func (b *Bot) handleMessage(message *botApi.Message) {

	userID, chatID := message.From.ID, message.Chat.ID
	ctx := b.userContext(userID, chatID)

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	text := strings.TrimSpace(message.Text)
	cmd := message.Command()

	switch {
	case cmd == "start":
		b.greet(ctx, userID)
	case cmd == "login":
		b.startLogin(ctx, userID)
	case cmd == "logout" || text == logoutCommandName:
		b.logout(chatID, userID)
	case cmd == "cancel" || text == backToMenuCommandName:
		ctx.CancelCommand()
		b.showMenu(chatID, userID, "You are back in the main menu.")
	case slashCommands[cmd] != "":
		b.runAction(ctx, userID, slashCommands[cmd])
	case cmd == "" && isAction(text):
		b.runAction(ctx, userID, text)
	case cmd != "":
		b.reply(chatID, "Unknown command!")
	case ctx.HasRunningCommand():
		ctx.OnUserInput(message.Text)
	default:
		b.showMenu(chatID, userID, "Please choose an item from the menu.")
	}
}

func isAction(text string) bool {
	return models.IsRoute(text) || text == smartSearchButtonName || text == emailSettingsButtonName
}

func (b *Bot) userContext(userID, chatID int64) *userContext {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx := b.userContexts[userID]
	if ctx == nil {
		ctx = newUserContext(chatID)
		b.userContexts[userID] = ctx
	}
	return ctx
}

func (b *Bot) greet(ctx *userContext, userID int64) {
	ctx.CancelCommand()
	session, err := b.sessions.Current(context.Background(), userID)
	if err != nil {
		b.replyWithKeyboard(ctx.chatID, "Welcome to RecruitHub! Please /login to continue.", botApi.NewRemoveKeyboard(true))
		return
	}
	b.replyWithKeyboard(ctx.chatID, fmt.Sprintf("Welcome back, %s! %s", session.UserName, session.UserRole.Title()),
		b.menuKeyboard(session.UserRole))
}

func (b *Bot) startLogin(ctx *userContext, userID int64) {
	cmd := newLoginCommand(b.api, ctx.chatID, userID, b.sessions, func(session *models.Session) {
		b.positions.Forget(userID)
		msg := botApi.NewMessage(ctx.chatID, fmt.Sprintf("Welcome, %s! You are signed in to the %s.",
			session.UserName, session.UserRole.Title()))
		msg.ReplyMarkup = b.menuKeyboard(session.UserRole)
		_, _ = sendWithLogError(b.api, msg)
	})
	ctx.RunCommand(cmd, "login", keyboardWithExit())
}

func (b *Bot) logout(chatID, userID int64) {
	if err := b.sessions.Logout(context.Background(), userID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to log out user %d: %v", userID, err)
		b.reply(chatID, internalErrorMessage)
		return
	}
	b.replyWithKeyboard(chatID, "You have been logged out. Use /login to sign in again.", botApi.NewRemoveKeyboard(true))
}

func (b *Bot) runAction(ctx *userContext, userID int64, action string) {

	session, ok := b.currentSession(ctx.chatID, userID)
	if !ok {
		return
	}

	if !b.canRun(session.UserRole, action) {
		b.replyWithKeyboard(ctx.chatID, "Access denied", b.menuKeyboard(session.UserRole))
		return
	}

	cmd := b.createCommand(action, session, ctx.chatID)
	cmd.WithUnauthorizedCallback(func() { b.expire(userID) })
	ctx.RunCommand(cmd, action, b.menuKeyboard(session.UserRole))
}

func (b *Bot) currentSession(chatID, userID int64) (*models.Session, bool) {
	session, err := b.sessions.Current(context.Background(), userID)
	switch {
	case err == nil:
		return session, true
	case errors.Is(err, models.ErrNoSession):
		b.replyWithKeyboard(chatID, "Please /login first.", botApi.NewRemoveKeyboard(true))
	case errors.Is(err, services.ErrSessionExpired):
		b.replyWithKeyboard(chatID, sessionExpiredMessage, botApi.NewRemoveKeyboard(true))
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load session of user %d: %v", userID, err)
		b.reply(chatID, internalErrorMessage)
	}
	return nil, false
}

func (b *Bot) canRun(role models.Role, action string) bool {
	switch action {
	case smartSearchButtonName:
		return b.aiSearch != nil && models.CanAccess(role, models.RouteSearch)
	case emailSettingsButtonName:
		return role.CanConfigureEmail()
	default:
		return models.CanAccess(role, models.Route(action))
	}
}

func (b *Bot) createCommand(action string, session *models.Session, chatID int64) command {

	gw := b.gatewaysFor(session)
	role := session.UserRole

	switch action {
	case smartSearchButtonName:
		return newSmartSearchCommand(b.api, chatID, b.aiSearch, services.NewSearcher(gw.candidates))
	case emailSettingsButtonName:
		return newEmailSettingsCommand(b.api, chatID, gw.email)
	}

	switch models.Route(action) {
	case models.RouteClients:
		return newClientsCommand(b.api, chatID, gw.clients, role.IsReviewer())
	case models.RoutePositions:
		return newPositionsCommand(b.api, chatID, gw.positions, gw.clients, gw.users, role.IsReviewer())
	case models.RouteCandidates:
		return newCandidatesCommand(b.api, chatID, gw.candidates, gw.positions)
	case models.RouteSearch:
		return newSearchCommand(b.api, chatID, services.NewSearcher(gw.candidates))
	case models.RouteReview:
		return newReviewCommand(b.api, chatID, services.NewReviewer(gw.candidates))
	case models.RouteShare:
		sharer := services.NewSharer(session.UserKey, gw.candidates, gw.positions, gw.clients, gw.email, b.positions)
		return newShareCommand(b.api, chatID, sharer)
	case models.RouteInterviews:
		return newInterviewsCommand(b.api, chatID, gw.interviews, gw.candidates, gw.positions, role.IsReviewer(), b.location)
	case models.RouteUsers:
		return newUsersCommand(b.api, chatID, gw.users)
	default:
		return newDashboardCommand(b.api, chatID, services.NewDashboard(gw.dashboard), role)
	}
}

func (b *Bot) expire(userID int64) {
	if err := b.sessions.Expire(context.Background(), userID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to expire session of user %d: %v", userID, err)
	}
}

func (b *Bot) onSessionEnded(event events.SessionEnded) {
	b.mu.Lock()
	delete(b.userContexts, event.UserKey)
	b.mu.Unlock()

	b.positions.Forget(event.UserKey)
	log.Infof("session of user %d ended: %s", event.UserKey, event.Reason)
}

func (b *Bot) showMenu(chatID, userID int64, text string) {
	session, ok := b.currentSession(chatID, userID)
	if !ok {
		return
	}
	b.replyWithKeyboard(chatID, text, b.menuKeyboard(session.UserRole))
}

func (b *Bot) menuKeyboard(role models.Role) botApi.ReplyKeyboardMarkup {
	return menuKeyboard(role, b.aiSearch != nil)
}

func (b *Bot) reply(chatID int64, text string) {
	_, _ = sendWithLogError(b.api, botApi.NewMessage(chatID, text))
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard any) {
	msg := botApi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, _ = sendWithLogError(b.api, msg)
}
