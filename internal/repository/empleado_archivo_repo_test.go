package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

const empresaPrueba = "VMC SEGUCLEAN S.A de C.V"

func nuevoRepoPrueba(t *testing.T) (*ArchivoEmpleadoRepository, string) {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "empleados.json")
	return NewArchivoEmpleadoRepository(ruta, empresaPrueba), ruta
}

func camposPrueba() CamposEmpleado {
	return CamposEmpleado{
		Nombre:            "Juan",
		Apellido:          "Perez",
		Ubicacion:         "Planta Norte",
		Experiencia:       "Experiencia Basica en seguridad",
		Licencias:         "Defensa personal",
		Estado:            "Activo",
		Turno:             "24x24",
		FechaContratacion: "2025-03-01",
	}
}

func TestCrearYObtener(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	id, err := repo.Crear(camposPrueba(), "Buena")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	e, err := repo.PorID(id)
	require.NoError(t, err)
	assert.Equal(t, "Juan", e.Nombre)
	require.NotNil(t, e.Experiencia)
	// El texto de experiencia se guarda tal cual, no la categoria.
	assert.Equal(t, "Experiencia Basica en seguridad", *e.Experiencia)
	assert.Equal(t, "Buena", e.CalidadCandidato)
}

func TestCrearNormalizaVaciosAAusente(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	id, err := repo.Crear(CamposEmpleado{Nombre: "Ana"}, "Indeterminado")
	require.NoError(t, err)

	e, err := repo.PorID(id)
	require.NoError(t, err)
	assert.Nil(t, e.Apellido)
	assert.Nil(t, e.Ubicacion)
	assert.Nil(t, e.Experiencia)
	assert.Nil(t, e.Licencias)
	assert.Nil(t, e.Estado)
	assert.Nil(t, e.Turno)
	assert.Nil(t, e.FechaContratacion)
}

func TestIDsSecuencialesNuncaReutilizados(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	for i, nombre := range []string{"A", "B", "C"} {
		id, err := repo.Crear(CamposEmpleado{Nombre: nombre}, "Indeterminado")
		require.NoError(t, err)
		assert.Equal(t, i+1, id)
	}

	require.NoError(t, repo.Eliminar(2))

	id, err := repo.Crear(CamposEmpleado{Nombre: "D"}, "Indeterminado")
	require.NoError(t, err)
	// max(1,3)+1: el hueco del 2 no se reutiliza.
	assert.Equal(t, 4, id)
}

func TestActualizarClearOnOmit(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	id, err := repo.Crear(camposPrueba(), "Buena")
	require.NoError(t, err)

	// Solo viaja el nombre: todos los demas campos mutables quedan ausentes.
	require.NoError(t, repo.Actualizar(id, CamposEmpleado{Nombre: "Juan Carlos"}))

	e, err := repo.PorID(id)
	require.NoError(t, err)
	assert.Equal(t, "Juan Carlos", e.Nombre)
	assert.Nil(t, e.Apellido)
	assert.Nil(t, e.Experiencia)
	assert.Nil(t, e.Turno)
	// La calidad no se recalcula ni se pierde en la actualizacion.
	assert.Equal(t, "Buena", e.CalidadCandidato)
}

func TestActualizarInexistente(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)
	assert.ErrorIs(t, repo.Actualizar(42, camposPrueba()), ErrNoEncontrado)
}

func TestEliminar(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	id, err := repo.Crear(camposPrueba(), "Buena")
	require.NoError(t, err)

	require.NoError(t, repo.Eliminar(id))
	_, err = repo.PorID(id)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestEliminarInexistenteNoMuta(t *testing.T) {
	repo, _ := nuevoRepoPrueba(t)

	_, err := repo.Crear(camposPrueba(), "Buena")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Eliminar(99), ErrNoEncontrado)

	lista, err := repo.Listar()
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestRoundTripDelDocumento(t *testing.T) {
	repo, ruta := nuevoRepoPrueba(t)

	_, err := repo.Crear(camposPrueba(), "Buena")
	require.NoError(t, err)
	_, err = repo.Crear(CamposEmpleado{Nombre: "Ana", Experiencia: "experta"}, "Regular")
	require.NoError(t, err)

	antes, err := repo.Listar()
	require.NoError(t, err)

	// Recargar el documento serializado produce la misma secuencia ordenada.
	recargado := NewArchivoEmpleadoRepository(ruta, empresaPrueba)
	despues, err := recargado.Listar()
	require.NoError(t, err)
	assert.Equal(t, antes, despues)

	// El documento persistido conserva la forma {empresa, empleados}.
	raw, err := os.ReadFile(ruta)
	require.NoError(t, err)
	var doc model.DocumentoEmpleados
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, empresaPrueba, doc.Empresa)
	assert.Len(t, doc.Empleados, 2)
}

func TestDocumentoCorruptoParteVacio(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "empleados.json")
	require.NoError(t, os.WriteFile(ruta, []byte("{esto no es json"), 0o644))

	repo := NewArchivoEmpleadoRepository(ruta, empresaPrueba)
	lista, err := repo.Listar()
	require.NoError(t, err)
	assert.Empty(t, lista)
}
