package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/apierror"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/config"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/dto"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/middleware"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// FormularioLogin atiende GET /login. Un usuario ya autenticado vuelve al
// listado.
func (h *AuthHandler) FormularioLogin(c *gin.Context) {
	if _, ok := middleware.UsuarioEnSesion(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": tomarFlashes(c),
		"Next":    c.Query("next"),
	})
}

// Login atiende POST /login: descifra la contraseña, verifica credenciales y
// establece la sesion. Tanto el usuario inexistente como la contraseña
// incorrecta producen el mismo mensaje.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	cifrada := c.PostForm("password_encrypted")

	u, err := h.svc.Login(username, cifrada)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesIlegibles) {
			flash(c, "danger", "Error al procesar contraseña.")
		} else {
			flash(c, "danger", "Usuario o contraseña incorrectos.")
		}
		destino := "/login"
		if next := c.PostForm("next"); next != "" {
			destino += "?next=" + url.QueryEscape(next)
		}
		c.Redirect(http.StatusFound, destino)
		return
	}

	s := sessions.Default(c)
	s.Set(middleware.SesionUsuarioKey, u.ID)
	_ = s.Save()
	flash(c, "success", "¡Inicio de sesión exitoso!")
	c.Redirect(http.StatusFound, destinoSeguro(c.PostForm("next")))
}

// Logout limpia la sesion y vuelve al login.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(middleware.SesionUsuarioKey)
	_ = s.Save()
	flash(c, "info", "Has cerrado sesión.")
	c.Redirect(http.StatusFound, "/login")
}

// TokenLogin atiende POST /api/v1/auth/login y emite el bearer token de la
// API de lectura. Misma verificacion de credenciales que el login web.
func (h *AuthHandler) TokenLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, err := h.svc.TokenLogin(req.Username, req.PasswordEncrypted)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesIlegibles) {
			c.JSON(http.StatusUnauthorized, apierror.New("No se pudo procesar la contraseña"))
			return
		}
		c.JSON(http.StatusUnauthorized, apierror.New("Usuario o contraseña incorrectos"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   h.cfg.JWTExpirationHours * 3600,
	})
}
