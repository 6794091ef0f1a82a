package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/techile/fieldportal/internal/application/automation"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/infrastructure/auth"
	"github.com/techile/fieldportal/internal/infrastructure/cache"
	"github.com/techile/fieldportal/internal/infrastructure/config"
	"github.com/techile/fieldportal/internal/infrastructure/email"
	"github.com/techile/fieldportal/internal/infrastructure/ratelimit"
	"github.com/techile/fieldportal/internal/infrastructure/workflow"
	"github.com/techile/fieldportal/internal/interfaces/http/middleware"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// Container wires the infrastructure, repositories, use cases and handlers
// together and owns the lifecycle of the background services.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	hasher            *auth.BcryptPasswordHasher
	jwtSvc            *auth.JWTService
	emailSender       *email.SMTPEmailSender
	rateCache         *cache.RedisRateCache
	loginLimiter      *ratelimit.RedisLoginLimiter
	txManager         *db.TransactionManager
	workflowTemplates *workflow.FileTemplateProvider

	dispatcher *events.InMemoryEventDispatcher
	automation *automation.Handlers
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	c.automation = automation.NewHandlers(
		c.repos.clientRepo, c.repos.notificationRepo, c.emailSender, c.ucs.invoiceFromTicket, c.log,
	)
	if err := c.automation.Register(c.dispatcher); err != nil {
		return nil, err
	}

	return c, nil
}

// Start launches the event dispatcher loop.
func (c *Container) Start() error {
	return c.dispatcher.Start()
}

// Shutdown stops the background services and closes the redis connection.
// The database connection is closed by the caller that opened it.
func (c *Container) Shutdown() error {
	if err := c.dispatcher.Stop(); err != nil {
		c.log.Errorw("failed to stop event dispatcher", "error", err)
	}
	return c.redis.Close()
}
