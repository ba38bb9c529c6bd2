package app

import (
	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/config"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/auth"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/database"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/notifications"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/payments"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/repositories"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/storage"
	"github.com/unnati04102007/ResQNet/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *database.RedisClient

	UserRepo      domain.UserRepository
	ReportRepo    domain.ReportRepository
	DonationRepo  domain.DonationRepository
	ContactRepo   domain.ContactRepository
	VolunteerRepo domain.VolunteerRepository
	SessionRepo   domain.SessionRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Provider        domain.CheckoutProvider
	ImageStore      domain.ImageStore

	AuthSvc      domain.AuthService
	ReportSvc    domain.ReportService
	DonationSvc  domain.DonationService
	ContactSvc   domain.ContactService
	VolunteerSvc domain.VolunteerService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	store, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	c.ImageStore = store

	c.UserRepo = repositories.NewUserRepository(db)
	c.ReportRepo = repositories.NewReportRepository(db)
	c.DonationRepo = repositories.NewDonationRepository(db)
	c.ContactRepo = repositories.NewContactRepository(db)
	c.VolunteerRepo = repositories.NewVolunteerRepository(db)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient.Client, cfg.SessionTTL)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	c.Provider = payments.NewStripeService(cfg.StripeAPIKey, cfg.StripeSuccessURL, cfg.StripeCancelURL)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc)
	c.ReportSvc = services.NewReportService(c.ReportRepo, c.ImageStore, c.NotificationSvc, cfg.TwilioAlertNumber)
	c.DonationSvc = services.NewDonationService(c.DonationRepo, c.Provider)
	c.ContactSvc = services.NewContactService(c.ContactRepo)
	c.VolunteerSvc = services.NewVolunteerService(c.VolunteerRepo)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
