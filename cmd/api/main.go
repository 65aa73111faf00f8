package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sportshots/internal/config"
	"sportshots/internal/database"
	"sportshots/internal/middleware"
	"sportshots/internal/modules/auth"
	"sportshots/internal/modules/banner"
	"sportshots/internal/modules/confirm"
	"sportshots/internal/modules/event"
	"sportshots/internal/modules/eventtype"
	"sportshots/internal/modules/faq"
	"sportshots/internal/modules/feed"
	"sportshots/internal/modules/newsletter"
	"sportshots/internal/modules/upload"
	"sportshots/internal/modules/user"
	"sportshots/internal/notify"
	jwtsvc "sportshots/internal/pkg/jwt"
	"sportshots/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	loginTokenRepo := repository.NewLoginTokenRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	var mailer notify.Mailer
	if cfg.SMTPAddr != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		log.Println("SMTP_ADDR is empty, emails go to the console")
		mailer = notify.NewConsoleMailer(true)
	}

	dispatcher := notify.NewDispatcher(mailer, subscriberRepo, userRepo, cfg.BaseURL)
	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(
		userRepo, loginTokenRepo, j, mailer,
		cfg.BaseURL, cfg.LoginPepper, cfg.MagicLinkTTL, cfg.MagicLinkResend,
	)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	eventService := event.NewService(eventRepo, dispatcher, hub)
	eventHandler := event.NewHandler(eventService)

	confirmService := confirm.NewService(eventRepo, userRepo)
	confirmHandler := confirm.NewHandler(confirmService)

	eventTypeService := eventtype.NewService(eventTypeRepo)
	eventTypeHandler := eventtype.NewHandler(eventTypeService)

	bannerService := banner.NewService(bannerRepo)
	bannerHandler := banner.NewHandler(bannerService)

	faqService := faq.NewService(faqRepo, faq.PassthroughTranslator{}, hub)
	faqHandler := faq.NewHandler(faqService)

	newsletterService := newsletter.NewService(subscriberRepo)
	newsletterHandler := newsletter.NewHandler(newsletterService)

	uploadService := upload.NewService(cfg.UploadDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		eventHandler.RegisterPublicRoutes(v1)
		confirmHandler.RegisterRoutes(v1)
		eventTypeHandler.RegisterPublicRoutes(v1)
		bannerHandler.RegisterPublicRoutes(v1)
		faqHandler.RegisterPublicRoutes(v1)
		newsletterHandler.RegisterPublicRoutes(v1)

		// any authenticated account
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}

		// back-office
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			eventHandler.RegisterAdminRoutes(admin)
			eventTypeHandler.RegisterAdminRoutes(admin)
			bannerHandler.RegisterAdminRoutes(admin)
			faqHandler.RegisterAdminRoutes(admin)
			newsletterHandler.RegisterAdminRoutes(admin)
			userHandler.RegisterAdminRoutes(admin)
			feedHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Println("Listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
