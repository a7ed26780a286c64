package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/apierror"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/dto"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/middleware"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/service"
)

type EmpleadosHandler struct {
	svc     service.EmpleadoService
	empresa string
}

func NewEmpleadosHandler(svc service.EmpleadoService, empresa string) *EmpleadosHandler {
	return &EmpleadosHandler{svc: svc, empresa: empresa}
}

// Index atiende GET / con el listado completo.
func (h *EmpleadosHandler) Index(c *gin.Context) {
	empleados, err := h.svc.Listar()
	if err != nil {
		log.Error().Err(err).Msg("listando empleados")
		flash(c, "danger", "Error al cargar empleados.")
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Empresa":   h.empresa,
		"Empleados": empleados,
		"Flashes":   tomarFlashes(c),
	})
}

// FormularioAgregar atiende GET /agregar.
func (h *EmpleadosHandler) FormularioAgregar(c *gin.Context) {
	c.HTML(http.StatusOK, "agregar.html", gin.H{"Flashes": tomarFlashes(c)})
}

// Agregar atiende POST /agregar: crea el registro con la etiqueta de calidad
// predicha y muestra el resultado como flash.
func (h *EmpleadosHandler) Agregar(c *gin.Context) {
	campos := camposDesdeForm(c)
	if campos.Nombre == "" {
		flash(c, "danger", "El nombre es obligatorio.")
		c.Redirect(http.StatusFound, "/agregar")
		return
	}

	_, calidad, err := h.svc.Agregar(campos)
	if err != nil {
		log.Error().Err(err).Msg("agregando empleado")
		flash(c, "danger", "Error al agregar.")
	} else {
		flash(c, "success", fmt.Sprintf("Empleado '%s' agregado. IA: %s", campos.Nombre, calidad))
	}
	c.Redirect(http.StatusFound, "/")
}

// FormularioEditar atiende GET /editar/:id. Un id desconocido no es un 404
// duro: vuelve al listado con un flash.
func (h *EmpleadosHandler) FormularioEditar(c *gin.Context) {
	id, ok := idDeRuta(c)
	if !ok {
		return
	}
	empleado, err := h.svc.PorID(id)
	if err != nil {
		flash(c, "danger", "Empleado no encontrado.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "editar.html", gin.H{
		"Empleado": empleado,
		"Flashes":  tomarFlashes(c),
	})
}

// Editar atiende POST /editar/:id: sobrescribe todos los campos mutables con
// lo enviado (clear-on-omit); la calidad del candidato queda intacta.
func (h *EmpleadosHandler) Editar(c *gin.Context) {
	id, ok := idDeRuta(c)
	if !ok {
		return
	}
	campos := camposDesdeForm(c)

	switch err := h.svc.Actualizar(id, campos); {
	case errors.Is(err, repository.ErrNoEncontrado):
		flash(c, "danger", "Empleado no encontrado.")
	case err != nil:
		log.Error().Err(err).Int("id", id).Msg("actualizando empleado")
		flash(c, "danger", "Error al actualizar.")
	default:
		flash(c, "success", fmt.Sprintf("Empleado '%s' actualizado.", campos.Nombre))
	}
	c.Redirect(http.StatusFound, "/")
}

// Eliminar atiende GET /eliminar/:id.
func (h *EmpleadosHandler) Eliminar(c *gin.Context) {
	id, ok := idDeRuta(c)
	if !ok {
		return
	}

	if err := h.svc.Eliminar(id); err != nil {
		if !errors.Is(err, repository.ErrNoEncontrado) {
			log.Error().Err(err).Int("id", id).Msg("eliminando empleado")
		}
		flash(c, "danger", fmt.Sprintf("Error al eliminar ID %d.", id))
	} else {
		flash(c, "success", fmt.Sprintf("Empleado ID %d eliminado.", id))
	}
	c.Redirect(http.StatusFound, "/")
}

// ── API JSON de lectura ──────────────────────────────────────────────────────

// ListarAPI atiende GET /api/v1/empleados.
func (h *EmpleadosHandler) ListarAPI(c *gin.Context) {
	if claims := middleware.GetClaims(c); claims != nil {
		log.Debug().Str("username", claims.Username).Msg("listado de empleados por API")
	}
	empleados, err := h.svc.Listar()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar empleados"))
		return
	}
	resp := make([]dto.EmpleadoResponse, len(empleados))
	for i, e := range empleados {
		resp[i] = aRespuesta(e)
	}
	c.JSON(http.StatusOK, resp)
}

// PorIDAPI atiende GET /api/v1/empleados/:id.
func (h *EmpleadosHandler) PorIDAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	empleado, err := h.svc.PorID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empleado no encontrado"))
		return
	}
	c.JSON(http.StatusOK, aRespuesta(*empleado))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// idDeRuta parsea el :id de una ruta HTML; si no es numerico vuelve al
// listado con flash y devuelve ok=false.
func idDeRuta(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		flash(c, "danger", "ID no válido.")
		c.Redirect(http.StatusFound, "/")
		return 0, false
	}
	return id, true
}

func camposDesdeForm(c *gin.Context) repository.CamposEmpleado {
	return repository.CamposEmpleado{
		Nombre:            c.PostForm("nombre"),
		Apellido:          c.PostForm("apellido"),
		Ubicacion:         c.PostForm("ubicacion"),
		Experiencia:       c.PostForm("experiencia"),
		Licencias:         c.PostForm("licencias"),
		Estado:            c.PostForm("estado"),
		Turno:             c.PostForm("turno"),
		FechaContratacion: c.PostForm("fecha_contratacion"),
	}
}

func aRespuesta(e model.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		ID:                e.ID,
		Nombre:            e.Nombre,
		Apellido:          e.Apellido,
		Ubicacion:         e.Ubicacion,
		Experiencia:       e.Experiencia,
		Licencias:         e.Licencias,
		Estado:            e.Estado,
		Turno:             e.Turno,
		FechaContratacion: e.FechaContratacion,
		CalidadCandidato:  e.CalidadCandidato,
	}
}
