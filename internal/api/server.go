package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tulipkids/foundation-api/docs"
	v1 "github.com/tulipkids/foundation-api/internal/api/handler/v1"
	"github.com/tulipkids/foundation-api/internal/api/middleware"
	"github.com/tulipkids/foundation-api/internal/config"
	"github.com/tulipkids/foundation-api/internal/mailer"
	"github.com/tulipkids/foundation-api/internal/payment"
	"github.com/tulipkids/foundation-api/internal/repository"
	"github.com/tulipkids/foundation-api/internal/repository/dao"
	"github.com/tulipkids/foundation-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	payments := payment.NewStripeClient(conf.Stripe)

	authHandler := s.initAuthHandler(db)
	registrationHandler := s.initRegistrationHandler(db, payments)
	donationHandler := s.initDonationHandler(db, payments)
	volunteerHandler := s.initVolunteerHandler(db)
	adminHandler := s.initAdminHandler(db, payments)
	s.MountHandlers(authHandler, registrationHandler, donationHandler, volunteerHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminDAO(db)
	repo := repository.NewAdminRepository(adminDAO)
	svc := service.NewAuthService(s.Config.Admin, repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initRegistrationHandler(db *gorm.DB, payments *payment.StripeClient) *v1.RegistrationHandler {
	registrationDAO := dao.NewRegistrationDAO(db)
	repo := repository.NewRegistrationRepository(registrationDAO)
	svc := service.NewRegistrationService(repo, payments)
	handler := v1.NewRegistrationHandler(svc)

	return handler
}

func (s *Server) initDonationHandler(db *gorm.DB, payments *payment.StripeClient) *v1.DonationHandler {
	donationDAO := dao.NewDonationDAO(db)
	repo := repository.NewDonationRepository(donationDAO)
	svc := service.NewDonationService(repo, payments)
	handler := v1.NewDonationHandler(svc)

	return handler
}

func (s *Server) initVolunteerHandler(db *gorm.DB) *v1.VolunteerHandler {
	volunteerDAO := dao.NewVolunteerDAO(db)
	repo := repository.NewVolunteerRepository(volunteerDAO)
	notifier := mailer.NewClient(s.Config.Mailer.RelayURL)
	svc := service.NewVolunteerService(repo, notifier)
	handler := v1.NewVolunteerHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB, payments *payment.StripeClient) *v1.AdminHandler {
	regSvc := service.NewRegistrationService(repository.NewRegistrationRepository(dao.NewRegistrationDAO(db)), payments)
	donSvc := service.NewDonationService(repository.NewDonationRepository(dao.NewDonationDAO(db)), payments)
	volSvc := service.NewVolunteerService(repository.NewVolunteerRepository(dao.NewVolunteerDAO(db)), nil)
	handler := v1.NewAdminHandler(regSvc, donSvc, volSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	registrationHandler *v1.RegistrationHandler,
	donationHandler *v1.DonationHandler,
	volunteerHandler *v1.VolunteerHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/registrations/quote", registrationHandler.HandleQuote)
		public.POST("/registrations", registrationHandler.HandleSubmit)
		public.POST("/donations", donationHandler.HandleDonate)
		public.POST("/volunteer-applications", volunteerHandler.HandleApply)
	}

	admin := s.Router.Group(basePath+"/admin", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/admins", authHandler.HandleCreateAdmin)
		admin.GET("/registrations", adminHandler.HandleGetRegistrations)
		admin.GET("/registrations/stats", adminHandler.HandleGetRegistrationStats)
		admin.GET("/registrations/export", adminHandler.HandleExportRegistrations)
		admin.PUT("/registrations/:registrationID/payment-status", adminHandler.HandleUpdatePaymentStatus)
		admin.GET("/donations", adminHandler.HandleGetDonations)
		admin.GET("/volunteer-applications", adminHandler.HandleGetApplications)
		admin.PUT("/volunteer-applications/:applicationID", adminHandler.HandleUpdateApplication)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Tulip Kids Foundation API"
	docs.SwaggerInfo.Description = "Registrations, donations and volunteer applications for the Tulip Kids Foundation."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
