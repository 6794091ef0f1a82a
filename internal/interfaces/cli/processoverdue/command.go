package processoverdue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/techile/fieldportal/internal/application/automation"
	invoiceUC "github.com/techile/fieldportal/internal/application/invoice/usecases"
	pricingUC "github.com/techile/fieldportal/internal/application/pricing/usecases"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/infrastructure/cache"
	"github.com/techile/fieldportal/internal/infrastructure/config"
	"github.com/techile/fieldportal/internal/infrastructure/database"
	"github.com/techile/fieldportal/internal/infrastructure/email"
	"github.com/techile/fieldportal/internal/infrastructure/repository"
	"github.com/techile/fieldportal/internal/shared/biztime"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/services/markdown"
)

var env string

// NewCommand builds the overdue-invoice sweep, intended to run from cron.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process-overdue",
		Short: "Flag sent invoices past their due date",
		Long:  `Scan sent invoices and mark those past their due date as overdue, notifying the affected clients.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := biztime.Init(cfg.Billing.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	invoiceRepo := repository.NewInvoiceRepository(database.Get(), log)
	clientRepo := repository.NewClientRepository(database.Get(), log)
	notifRepo := repository.NewNotificationRepository(database.Get(), log)
	ticketRepo := repository.NewTicketRepository(database.Get(), log)
	rateSettingRepo := repository.NewRateSettingRepository(database.Get(), log)
	emailSender := email.NewSMTPEmailSender(cfg.Email, markdown.NewService(), log)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	rates := pricingUC.NewGetRatesUseCase(rateSettingRepo, cache.NewRedisRateCache(redisClient, 5*time.Minute), log)
	txManager := db.NewTransactionManager(database.Get())
	fromTicket := invoiceUC.NewCreateInvoiceFromTicketUseCase(invoiceRepo, ticketRepo, rates, txManager, log)

	dispatcher := events.NewInMemoryEventDispatcher(64)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer dispatcher.Stop()

	hooks := automation.NewHandlers(clientRepo, notifRepo, emailSender, fromTicket, log)
	if err := hooks.Register(dispatcher); err != nil {
		return fmt.Errorf("failed to register automation hooks: %w", err)
	}

	uc := invoiceUC.NewProcessOverdueUseCase(invoiceRepo, dispatcher, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := uc.Execute(ctx, invoiceUC.ProcessOverdueCommand{AsOf: biztime.NowUTC()})
	if err != nil {
		return fmt.Errorf("overdue sweep failed: %w", err)
	}

	// Give the dispatcher a moment to drain the notification events.
	time.Sleep(2 * time.Second)

	log.Infow("overdue sweep completed", "flagged", result.Flagged, "numbers", result.Numbers)
	return nil
}
