package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/JhonMohamed/Ravvisant/internal/controller"
	circuitbreaker "github.com/JhonMohamed/Ravvisant/internal/infrastructure/circuit-breaker"
	"github.com/JhonMohamed/Ravvisant/internal/infrastructure/database/elasticsearch"
	"github.com/JhonMohamed/Ravvisant/internal/infrastructure/database/mongodb"
	"github.com/JhonMohamed/Ravvisant/internal/infrastructure/database/postgres"
	"github.com/JhonMohamed/Ravvisant/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/JhonMohamed/Ravvisant/internal/infrastructure/payment-gateway"
	"github.com/JhonMohamed/Ravvisant/internal/infrastructure/tracing"
	localmiddleware "github.com/JhonMohamed/Ravvisant/internal/middleware"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	"github.com/JhonMohamed/Ravvisant/internal/service"
	"github.com/JhonMohamed/Ravvisant/internal/tracker"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	mongoDB, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		panic(err)
	}

	esClient, err := elasticsearch.CreateElasticsearchClient(config)
	if err != nil {
		panic(err)
	}

	kafkaProducer := kafka.CreateKafkaProducer(config)
	kafkaReader := kafka.CreateKafkaReader(config)

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("ravvisant-storefront")

	e := echo.New()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	isLoggedIn := localmiddleware.IsLoggedIn(config.JWTSecret)

	cb := circuitbreaker.CreateCircuitBreaker("paypal")
	paypalClient := paymentgateway.CreatePayPalClient(config, cb)

	productRepo := repository.CreateNewMongoDBProductRepository(mongoDB)
	searchRepo := repository.CreateNewElasticSearchProductRepository(esClient)
	cartRepo := repository.CreateNewMongoDBCartRepository(mongoDB)
	favoriteRepo := repository.CreateNewMongoDBFavoriteRepository(mongoDB)
	transactionRepo := repository.CreateNewMongoDBTransactionRepository(mongoDB)
	userRepo := repository.CreateNewUserRepository(db)
	addressRepo := repository.CreateNewAddressRepository(db)

	cartTracker := tracker.CreateCountTracker()
	favoriteTracker := tracker.CreateCountTracker()

	stockValidator := service.CreateStockValidator(productRepo, cartRepo)
	cartSvc := service.CreateCartService(cartRepo, stockValidator, cartTracker)
	favoriteSvc := service.CreateFavoriteService(favoriteRepo, favoriteTracker)
	productSvc := service.CreateProductService(productRepo, searchRepo, favoriteSvc, kafkaProducer)
	paymentSvc := service.CreatePaymentService(transactionRepo, paypalClient, kafkaReader, kafkaProducer, config)
	go paymentSvc.ConsumeEvent()
	userSvc := service.CreateUserService(userRepo, config)
	addressSvc := service.CreateAddressService(addressRepo)

	cartWatcher := tracker.CreateWatcher("cart-watcher", cartRepo.Watch, cartSvc.ResyncCount)
	favoriteWatcher := tracker.CreateWatcher("favorite-watcher", favoriteRepo.Watch, favoriteSvc.ResyncCount)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateCartController(g, cartSvc, cartTracker, cartWatcher, isLoggedIn)
	controller.CreateFavoriteController(g, favoriteSvc, favoriteTracker, favoriteWatcher, isLoggedIn)
	controller.CreatePaymentController(g, paymentSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc)
	controller.CreateAddressController(g, addressSvc, isLoggedIn)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			time.Minute,
		),
		gocron.NewTask(
			func() {
				if _, err := paymentSvc.CancelStaleTransactions(context.Background()); err != nil {
					log.Error().Err(err).Str("component", "CancelStaleTransactions").Msg("")
				}
			},
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	defer cartWatcher.StopAll()
	defer favoriteWatcher.StopAll()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
