package main

import (
	"os"
	"time"

	"glory-event-api/config"
	httpctrl "glory-event-api/internal/controllers/http"
	"glory-event-api/internal/infra/mysql"
	"glory-event-api/internal/infra/notify"
	"glory-event-api/internal/infra/rabbitmq"
	"glory-event-api/internal/infra/throttle"
	mysqlrepo "glory-event-api/internal/repository/mysql"
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	db, err := mysql.NewMySQLFromEnv()
	if err != nil {
		logger.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	txManager := mysqlrepo.NewTxManager(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	serviceRepo := mysqlrepo.NewServiceRepository(db)
	portfolioRepo := mysqlrepo.NewPortfolioRepository(db)
	contactRepo := mysqlrepo.NewContactRepository(db)
	adminRepo := mysqlrepo.NewAdminRepository(db)
	pageViewRepo := mysqlrepo.NewPageViewRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, "glory.notifications")
	if err != nil {
		logger.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()
	notifier := notify.NewQueueNotifier(publisher, "order.confirmation")

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":6379",
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	limiter := throttle.NewRedisLimiter(redisClient)

	handler := httpctrl.NewHandler(
		services.NewOrderService(orderRepo, productRepo, txManager, notifier, logger),
		services.NewProductService(productRepo, logger),
		services.NewCatalogService(serviceRepo),
		services.NewPortfolioService(portfolioRepo, logger),
		services.NewContactService(contactRepo, logger),
		services.NewAuthService(adminRepo, logger),
		services.NewPageViewService(pageViewRepo, limiter, logger),
		services.NewDashboardService(serviceRepo, productRepo, orderRepo, contactRepo, portfolioRepo),
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	logger.Infof("starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server run: %v", err)
	}
}
