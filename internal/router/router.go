package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/config"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/handler"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/middleware"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/ml"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/secure"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/service"
)

// New arma el engine de Gin con todas las dependencias ya construidas en el
// composition root. Grafo: Handler ← Service ← Repository/Predictor/Decryptor.
func New(
	cfg *config.Config,
	decryptor *secure.Decryptor,
	usuarios *repository.UsuarioDirectory,
	empleados repository.EmpleadoRepository,
	predictor *ml.Predictor,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadena global de middleware (el orden importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	// A nivel engine para que el preflight OPTIONS de la API responda aun sin
	// una ruta OPTIONS registrada.
	r.Use(middleware.CORS())

	// Sesion por cookie: guarda el id del usuario autenticado y los flashes.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 8 * 60 * 60})
	r.Use(sessions.Sessions("segupersonal", store))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(decryptor, usuarios, cfg)
	empleadoSvc := service.NewEmpleadoService(empleados, predictor)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc, cfg.Empresa)

	// ── Rutas ────────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(empleados, predictor))

	r.GET("/login", authH.FormularioLogin)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)

	// Todo lo demas exige sesion; un anonimo vuelve a /login?next=...
	protegido := r.Group("/", middleware.RequireLogin())
	{
		protegido.GET("", empleadosH.Index)
		protegido.GET("/logout", authH.Logout)
		protegido.GET("/agregar", empleadosH.FormularioAgregar)
		protegido.POST("/agregar", empleadosH.Agregar)
		protegido.GET("/editar/:id", empleadosH.FormularioEditar)
		protegido.POST("/editar/:id", empleadosH.Editar)
		protegido.GET("/eliminar/:id", empleadosH.Eliminar)
	}

	// API JSON de lectura para integraciones (bearer token)
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", middleware.LoginRateLimiter(), authH.TokenLogin)

		empleadosAPI := api.Group("/empleados", middleware.JWTAuth(cfg.JWTSecret))
		{
			empleadosAPI.GET("", empleadosH.ListarAPI)
			empleadosAPI.GET("/:id", empleadosH.PorIDAPI)
		}
	}

	return r
}
