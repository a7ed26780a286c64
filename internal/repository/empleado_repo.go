package repository

import (
	"errors"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

// ErrNoEncontrado: no existe empleado con ese id.
var ErrNoEncontrado = errors.New("repository: empleado no encontrado")

// CamposEmpleado transporta un envio del formulario de empleado. En una
// actualizacion TODOS los campos mutables se reemplazan en bloque: un campo
// vacio borra el valor guardado (clear-on-omit), nunca significa "dejar como
// estaba". CalidadCandidato no viaja aca porque es inmutable tras el alta.
type CamposEmpleado struct {
	Nombre            string
	Apellido          string
	Ubicacion         string
	Experiencia       string
	Licencias         string
	Estado            string
	Turno             string
	FechaContratacion string
}

// EmpleadoRepository es la coleccion canonica de empleados. Dos variantes
// comparten este contrato sin cambiar la semantica de los registros: el
// documento JSON (canonica) y la tabla MySQL.
//
//   - Crear asigna id = max(ids existentes, 0) + 1 y persiste.
//   - Actualizar reemplaza todos los campos mutables (clear-on-omit) y deja
//     CalidadCandidato intacta.
//   - Los errores de persistencia se devuelven al llamador; nunca se
//     reporta exito sobre una escritura fallida.
type EmpleadoRepository interface {
	Listar() ([]model.Empleado, error)
	PorID(id int) (*model.Empleado, error)
	Crear(campos CamposEmpleado, calidad string) (int, error)
	Actualizar(id int, campos CamposEmpleado) error
	Eliminar(id int) error
}

// opcional normaliza un valor de formulario: la cadena vacia pasa a ausente.
func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// aplicarCampos vuelca un envio de formulario sobre un registro, dejando ID y
// CalidadCandidato como estaban.
func aplicarCampos(e *model.Empleado, c CamposEmpleado) {
	e.Nombre = c.Nombre
	e.Apellido = opcional(c.Apellido)
	e.Ubicacion = opcional(c.Ubicacion)
	e.Experiencia = opcional(c.Experiencia)
	e.Licencias = opcional(c.Licencias)
	e.Estado = opcional(c.Estado)
	e.Turno = opcional(c.Turno)
	e.FechaContratacion = opcional(c.FechaContratacion)
}
