package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	fbauth "firebase.google.com/go/v4/auth"

	httpapi "github.com/meteomotto/go-weather-backend/internal/api/http"
	apimw "github.com/meteomotto/go-weather-backend/internal/api/http/middleware"
	"github.com/meteomotto/go-weather-backend/internal/auth"
	authhttp "github.com/meteomotto/go-weather-backend/internal/auth/http"
	authmw "github.com/meteomotto/go-weather-backend/internal/auth/middleware"
	prefhttp "github.com/meteomotto/go-weather-backend/internal/preferences/http"
	prefservice "github.com/meteomotto/go-weather-backend/internal/preferences/service"
	weatherhttp "github.com/meteomotto/go-weather-backend/internal/weather/http"
	weatherservice "github.com/meteomotto/go-weather-backend/internal/weather/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Redis       *redis.Client
	AuthClient  *fbauth.Client
	Identity    *auth.IdentityClient
	Weather     *weatherservice.Service
	Preferences *prefservice.Service
}

// BuildRouter assembles the gin engine: health endpoints at the root,
// public lookup endpoints and credential endpoints under /api/v1, and
// the preference/logout endpoints behind the Firebase token middleware.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(apimw.RequestIDMiddleware())

	weatherHandler := weatherhttp.NewHandler(dep.Weather)
	weatherHandler.Register(api)

	authHandler := authhttp.NewHandler(dep.AuthClient, dep.Identity)
	authHandler.Register(api.Group("/auth"))

	protected := api.Group("")
	protected.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))

	authHandler.RegisterProtected(protected.Group("/auth"))

	prefHandler := prefhttp.NewHandler(dep.Preferences)
	prefHandler.Register(protected.Group("/preferences"))

	return r
}
