package api

import (
	"database/sql"
	"log"
	"time"

	"laundry/internal/auth"
	intconfig "laundry/internal/config"
	h "laundry/internal/http/handlers"
	"laundry/internal/http/middleware"
	"laundry/internal/http/response"
	"laundry/internal/repositories"
	"laundry/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and the route groups. The rule
// table is built once here and shared read-only across requests.
func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			log.Printf("[HTTP] action=panic request_id=%s path=%s err=%v",
				middleware.GetRequestID(c), c.Request.URL.Path, recovered)
			response.Error(c, response.InternalServerError, response.InternalServerError.Label)
			c.Abort()
		}),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimit(50, 25),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	rules := auth.NewRuleTable(env.ManagerRole)
	if env.AuthDisabled {
		log.Println("warning: authentication disabled, all routes are open")
	} else {
		verifier := auth.HS256Verifier{Secret: []byte(env.JWTSecret)}
		extractor := auth.RoleExtractor{
			Claim:     env.RoleClaim,
			Shape:     env.RoleClaimShape,
			NestedKey: env.RoleClaimKey,
		}
		r.Use(middleware.Auth(verifier, extractor, rules))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, response.NotFound, "route not found")
	})

	system := h.SystemHandler{DB: db}
	r.GET("/", system.Dummy)
	r.GET("/home", system.Home)
	r.GET("/farewell", system.Farewell)
	r.GET("/healthz", system.Healthz)
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	condominiumRepo := repositories.CondominiumRepository{DB: db}
	machineRepo := repositories.MachineRepository{DB: db}

	machineHandler := h.MachineHandler{Service: services.MachineService{
		Machines:     machineRepo,
		Condominiums: condominiumRepo,
	}}
	condominiumHandler := h.CondominiumHandler{Service: services.CondominiumService{
		Condominiums: condominiumRepo,
	}}

	machines := r.Group("/machines")
	machines.POST("", machineHandler.Create)
	machines.PUT("", machineHandler.Update)
	machines.GET("", machineHandler.List)
	machines.GET("/:id", machineHandler.GetByID)
	machines.DELETE("/:id", machineHandler.Delete)

	condominiums := r.Group("/condominiums")
	condominiums.POST("", condominiumHandler.Create)
	condominiums.GET("", condominiumHandler.List)
	condominiums.GET("/:id", condominiumHandler.GetByID)

	return r
}
