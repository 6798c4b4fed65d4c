package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/delivery/http/controllers"
	"nutrivida-service/internal/app/delivery/http/middlewares"
	"nutrivida-service/internal/app/delivery/http/routers"
	"nutrivida-service/internal/app/drivers/database"
	"nutrivida-service/internal/app/drivers/logger"
	smtp "nutrivida-service/internal/app/drivers/mailer"
	"nutrivida-service/internal/app/drivers/messaging"
	"nutrivida-service/internal/app/drivers/storage"
	"nutrivida-service/internal/app/services/core/appointments"
	"nutrivida-service/internal/app/services/core/attempts"
	"nutrivida-service/internal/app/services/core/auth"
	"nutrivida-service/internal/app/services/core/chat"
	"nutrivida-service/internal/app/services/core/documents"
	"nutrivida-service/internal/app/services/core/fodmap"
	"nutrivida-service/internal/app/services/core/payments"
	"nutrivida-service/internal/app/services/core/questionnaires"
	"nutrivida-service/internal/app/services/core/users"
	"nutrivida-service/internal/app/services/shared/mailer"
	redisrepo "nutrivida-service/internal/app/services/shared/redis"
	"nutrivida-service/internal/app/services/shared/session"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("invalid timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConnection,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, accessLog, workerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server listening", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	stopWorker()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, accessLog *logrus.Logger, workerCtx context.Context) {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService()

	smtpClient := smtp.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		bootstrap.Logger.Fatal("mailer queue declaration failed", zap.Error(err))
	}
	mailerWorker := mailer.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	go func() {
		if err := mailerWorker.Run(workerCtx); err != nil {
			bootstrap.Logger.Error("mailer worker stopped", zap.Error(err))
		}
	}()

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, sessionService, bootstrap.InternalConfig)

	// Users and auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	staffPolicy := auth.NewStaffPolicy(bootstrap.InternalConfig)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, staffPolicy, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Questionnaires
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository)
	questionnaireController := controllers.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	// Attempts
	attemptMongoRepository := attempts.NewAttemptMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	attemptUsecase := attempts.NewAttemptUsecase(bootstrap.Logger, attemptMongoRepository, questionnaireMongoRepository, userMongoRepository, mailerService)
	attemptController := controllers.NewAttemptController(bootstrap.Logger, attemptUsecase, sessionService)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, sessionService)

	// FODMAP checklist
	fodmapMongoRepository := fodmap.NewFodmapMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	fodmapUsecase := fodmap.NewFodmapUsecase(fodmapMongoRepository)
	fodmapController := controllers.NewFodmapController(bootstrap.Logger, fodmapUsecase, sessionService)

	// Documents
	documentStorage := documents.NewDocumentMinioStorage(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.InternalConfig)
	documentUsecase := documents.NewDocumentUsecase(documentStorage)
	documentController := controllers.NewDocumentController(bootstrap.Logger, documentUsecase)

	// Payments
	mbwayGatewayService := payments.NewMbwayGatewayService(bootstrap.InternalConfig)
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	paymentUsecase := payments.NewPaymentUsecase(bootstrap.Logger, mbwayGatewayService, paymentMongoRepository)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, sessionService)

	// Chat assistant
	chatCompletionClient := chat.NewChatCompletionClient(bootstrap.InternalConfig)
	chatUsecase := chat.NewChatUsecase(bootstrap.Logger, chatCompletionClient, redisRepository, bootstrap.InternalConfig)
	chatController := controllers.NewChatController(bootstrap.Logger, chatUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, accessLog, &routers.Controllers{
		Auth:          authController,
		Questionnaire: questionnaireController,
		Attempt:       attemptController,
		Appointment:   appointmentController,
		Fodmap:        fodmapController,
		Document:      documentController,
		Payment:       paymentController,
		Chat:          chatController,
	})
}
