package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/apierror"
)

const (
	// SesionUsuarioKey es la clave de sesion donde vive el id del usuario
	// autenticado. Dos estados posibles: ausente (anonimo) o presente
	// (autenticado).
	SesionUsuarioKey = "usuario_id"
	ClaimsKey        = "claims"
)

// RequireLogin protege las rutas HTML: un request anonimo se redirige a
// /login conservando el destino original en ?next= para volver tras el
// login.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sesion := sessions.Default(c)
		if sesion.Get(SesionUsuarioKey) == nil {
			destino := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+destino)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UsuarioEnSesion devuelve el id del usuario autenticado, si hay sesion.
func UsuarioEnSesion(c *gin.Context) (int, bool) {
	id, ok := sessions.Default(c).Get(SesionUsuarioKey).(int)
	return id, ok
}

// JWTClaims son los claims del token bearer de la API JSON.
type JWTClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuth valida el token Bearer en cada ruta protegida de la API.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims recupera los claims tipados del contexto. Fuera de una ruta
// protegida por JWTAuth devuelve nil.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
