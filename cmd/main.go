package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/recruithub-bot/internal/bot"
	"github.com/maxaizer/recruithub-bot/internal/clients/gemini"
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/config"
	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/maxaizer/recruithub-bot/internal/metrics"
	"github.com/maxaizer/recruithub-bot/internal/repositories"
	"github.com/maxaizer/recruithub-bot/internal/services"
	log "github.com/sirupsen/logrus"
)

func newAISearch(ctx context.Context, cfg config.BotConfig) (*services.AISearch, func()) {

	aiClient, err := gemini.NewClient(ctx, cfg.AIKey, gemini.Model(cfg.AIModel))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AiMaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AiMaxRequestsPerDay)

	return services.NewAISearch(aiClient), func() {
		if err := aiClient.Close(); err != nil {
			log.Warnf("failed to close AI client: %v", err)
		}
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	if cfg.Metrics.Enabled {
		metrics.StartMetricsServer(cfg.Metrics.Address)
	}

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	bus := EventBus.New()

	backend := recruithub.NewClient(cfg.API.BaseURL)
	backend.SetTimeout(cfg.API.Timeout)
	backend.SetRateLimit(cfg.API.MaxRequestsPerSecond)

	sessions := services.NewSessionStore(bus, repositories.NewSessionRepository(dbContext.DB), backend)

	cleaner, err := services.NewSessionsCleaner(sessions, cfg.DB.SessionCleanupSchedule)
	if err != nil {
		log.Fatalf("can't create sessions cleaner: %v", err)
	}
	defer cleaner.Stop()

	deps := bot.Dependencies{
		Sessions:  sessions,
		Backend:   backend,
		Positions: repositories.NewCachedPositions(),
		Location:  cfg.Bot.Location(),
	}
	if cfg.Bot.SmartSearchEnabled() {
		aiSearch, closeAI := newAISearch(ctx, cfg.Bot)
		defer closeAI()
		deps.AISearch = aiSearch
	}

	tgbot, err := bot.NewBot(cfg.Bot.Token, bus, deps)
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	tgbot.Stop()
	log.Info("Services stopped.")
}
