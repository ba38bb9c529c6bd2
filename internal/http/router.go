package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/internal/http/handlers"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
)

// BuildRouter wires all routes. Every browser-facing route runs behind the
// session middleware; the admin API uses Bearer tokens plus Casbin.
func BuildRouter(
	ah *handlers.AuthHandlers,
	rh *handlers.ReportHandlers,
	dh *handlers.DonationHandlers,
	ch *handlers.ContactHandlers,
	vh *handlers.VolunteerHandlers,
	ph *handlers.PolicyHandlers,
	sessmw *middleware.SessionMW,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	web := r.Group("/").Use(sessmw.WithSession())
	web.POST("/register", ah.Register)
	web.POST("/login", ah.Login)
	web.GET("/logout", ah.Logout)
	web.GET("/set-language", ah.SetLanguage)

	web.GET("/contact", ch.Begin)
	web.POST("/contact", ch.Submit)

	web.POST("/create-checkout-session", dh.CreateCheckoutSession)
	web.GET("/success", dh.Success)
	web.GET("/cancel", dh.Cancel)

	reports := r.Group("/").Use(sessmw.WithSession(), sessmw.RequireUser())
	reports.POST("/report", rh.Submit)

	api := r.Group("/api")
	api.GET("/reports", rh.List)
	api.POST("/donate", dh.Donate)
	api.GET("/get-donations", dh.GetDonations)
	api.POST("/volunteers", vh.Register)
	api.GET("/volunteers", vh.List)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.PUT("/reports/:id/status", rh.UpdateStatus)
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
