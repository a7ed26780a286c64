package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/apierror"
)

var validate = validator.New()

// bindAndValidate liga el cuerpo JSON y corre las tags de validacion.
// Devuelve false y escribe la respuesta de error si algo falla; el llamador
// debe retornar sin escribir otra respuesta.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// ── Mensajes flash ───────────────────────────────────────────────────────────
// Mensajes transitorios guardados en la sesion y mostrados una sola vez en la
// proxima pagina renderizada. Toda falla visible al usuario sale por aca,
// nunca como error crudo.

type Flash struct {
	Categoria string // success | danger | info
	Mensaje   string
}

func flash(c *gin.Context, categoria, mensaje string) {
	s := sessions.Default(c)
	s.AddFlash(categoria + "|" + mensaje)
	_ = s.Save()
}

// tomarFlashes drena los mensajes pendientes de la sesion.
func tomarFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	crudos := s.Flashes()
	if len(crudos) == 0 {
		return nil
	}
	_ = s.Save()

	flashes := make([]Flash, 0, len(crudos))
	for _, crudo := range crudos {
		texto, ok := crudo.(string)
		if !ok {
			continue
		}
		categoria, mensaje, found := strings.Cut(texto, "|")
		if !found {
			mensaje, categoria = texto, "info"
		}
		flashes = append(flashes, Flash{Categoria: categoria, Mensaje: mensaje})
	}
	return flashes
}

// destinoSeguro valida el parametro next de un login: solo rutas locales.
func destinoSeguro(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
