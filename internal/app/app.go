package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/internal/config"
	httpx "github.com/unnati04102007/ResQNet/internal/http"
	"github.com/unnati04102007/ResQNet/internal/http/handlers"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
	"github.com/unnati04102007/ResQNet/internal/infrastructure/auth"
	"github.com/unnati04102007/ResQNet/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(container.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	sessmw := middleware.NewSessionMW(container.SessionRepo, cfg.SessionCookieName, cfg.SessionTTL)
	jwtmw := middleware.NewAuthMW(container.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	ah := handlers.NewAuthHandlers(container.AuthSvc, sessmw)
	rh := handlers.NewReportHandlers(container.ReportSvc, sessmw)
	dh := handlers.NewDonationHandlers(container.DonationSvc, sessmw)
	ch := handlers.NewContactHandlers(container.ContactSvc, sessmw)
	vh := handlers.NewVolunteerHandlers(container.VolunteerSvc)
	ph := handlers.NewPolicyHandlers(services.NewPolicyService(cas.E))

	r := httpx.BuildRouter(ah, rh, dh, ch, vh, ph, sessmw, jwtmw, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
