package http

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techile/fieldportal/internal/infrastructure/auth"
	"github.com/techile/fieldportal/internal/infrastructure/cache"
	"github.com/techile/fieldportal/internal/infrastructure/email"
	"github.com/techile/fieldportal/internal/infrastructure/ratelimit"
	"github.com/techile/fieldportal/internal/infrastructure/workflow"
	"github.com/techile/fieldportal/internal/domain/shared/events"
	"github.com/techile/fieldportal/internal/shared/db"
	"github.com/techile/fieldportal/internal/shared/services/markdown"
)

const (
	rateCacheTTL      = 5 * time.Minute
	loginMaxAttempts  = 5
	loginAttemptsSpan = 15 * time.Minute
	eventBufferSize   = 256
)

// initInfrastructure creates the stateless infrastructure services shared by
// the use cases: redis-backed caches, authentication primitives, email and
// the in-process event dispatcher.
func (c *Container) initInfrastructure() {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT)

	c.emailSender = email.NewSMTPEmailSender(c.cfg.Email, markdown.NewService(), c.log)

	c.rateCache = cache.NewRedisRateCache(c.redis, rateCacheTTL)
	c.loginLimiter = ratelimit.NewRedisLoginLimiter(c.redis, loginMaxAttempts, loginAttemptsSpan)

	c.txManager = db.NewTransactionManager(c.db)
	c.workflowTemplates = workflow.NewFileTemplateProvider(c.cfg.Workflow.TemplatePath, c.log)

	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize)
}
