package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rockwaste/internal/config"
	"rockwaste/internal/database"
	"rockwaste/internal/middleware"
	"rockwaste/internal/modules/admin"
	"rockwaste/internal/modules/auth"
	"rockwaste/internal/modules/booking"
	"rockwaste/internal/modules/payment"
	"rockwaste/internal/modules/worker"
	"rockwaste/internal/notification"
	jwtsvc "rockwaste/internal/pkg/jwt"
	"rockwaste/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mailer notification.Mailer
	if cfg.SMTPConfigured() {
		mailer = notification.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		mailer = notification.NewConsoleMailer()
	}

	authService := auth.NewService(userRepo, workerRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, assignmentRepo, workerRepo, userRepo, mailer)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(userRepo, workerRepo, bookingRepo, assignmentRepo, paymentRepo, bookingService)
	adminHandler := admin.NewHandler(adminService)

	workerService := worker.NewService(assignmentRepo, bookingRepo, bookingService)
	workerHandler := worker.NewHandler(workerService)

	paymentService := payment.NewService(bookingRepo, paymentRepo, userRepo)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1.Group("/auth"))

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			customer := protected.Group("/")
			customer.Use(middleware.CustomerOnly())
			{
				bookingHandler.RegisterRoutes(customer)
				paymentHandler.RegisterCustomerRoutes(customer)
			}

			workers := protected.Group("/worker")
			workers.Use(middleware.WorkerOnly())
			{
				workerHandler.RegisterRoutes(workers)
			}

			admins := protected.Group("/admin")
			admins.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(admins)
				paymentHandler.RegisterAdminRoutes(admins)
			}
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
