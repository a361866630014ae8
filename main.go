package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindcare/config"
	"mindcare/database"
	appointmentRepoPkg "mindcare/database/repository/appointment"
	counselorRepoPkg "mindcare/database/repository/counselor"
	postRepoPkg "mindcare/database/repository/post"
	userRepoPkg "mindcare/database/repository/user"
	webinarRepoPkg "mindcare/database/repository/webinar"
	"mindcare/handlers"
	"mindcare/routes"
	"mindcare/services/appointment"
	"mindcare/services/counselor"
	"mindcare/services/payment"
	"mindcare/services/post"
	"mindcare/services/user"
	"mindcare/services/webinar"
	"mindcare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	counselorRepo := counselorRepoPkg.NewMongoCounselorRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()
	webinarRepo := webinarRepoPkg.NewMongoWebinarRepo()

	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}
	if err := counselorRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create counselor indexes: %v", err)
	}
	if err := appointmentRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	counselorService := &counselor.DefaultCounselorService{
		Repo:    counselorRepo,
		Storage: storageService,
		Cache:   utils.GetCacheClient(),
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:          appointmentRepo,
		CounselorRepo: counselorRepo,
		UserRepo:      userRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo: appointmentRepo,
	}
	postService := &post.DefaultPostService{
		Repo:     postRepo,
		UserRepo: userRepo,
		Storage:  storageService,
	}
	webinarService := &webinar.DefaultWebinarService{
		Repo: webinarRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:    userRepo,
		AuthCache:   utils.GetAuthCacheClient(),
		Auth:        handlers.NewAuthHandler(userService),
		Counselor:   handlers.NewCounselorHandler(counselorService),
		Appointment: handlers.NewAppointmentHandler(appointmentService),
		Payment:     handlers.NewPaymentHandler(paymentService),
		Post:        handlers.NewPostHandler(postService),
		Webinar:     handlers.NewWebinarHandler(webinarService),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("MindCare API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
