package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/ml"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
)

// repoStub registra la ultima llamada a Crear para inspeccionar la etiqueta
// que el servicio calculo.
type repoStub struct {
	crearCampos  repository.CamposEmpleado
	crearCalidad string
	crearErr     error
}

func (r *repoStub) Listar() ([]model.Empleado, error) { return nil, nil }

func (r *repoStub) PorID(id int) (*model.Empleado, error) { return nil, repository.ErrNoEncontrado }

func (r *repoStub) Crear(campos repository.CamposEmpleado, calidad string) (int, error) {
	r.crearCampos = campos
	r.crearCalidad = calidad
	if r.crearErr != nil {
		return 0, r.crearErr
	}
	return 1, nil
}

func (r *repoStub) Actualizar(id int, campos repository.CamposEmpleado) error { return nil }
func (r *repoStub) Eliminar(id int) error                                     { return nil }

// predictorPrueba clasifica "Buena" cuando la experiencia normalizada es
// Basica, "Mala" en cualquier otro caso.
func predictorPrueba() *ml.Predictor {
	bosque := &ml.Bosque{
		Clases: []string{"Buena", "Mala"},
		Arboles: []*ml.Nodo{
			{Columna: 0, Umbral: 0.5, Clase: -1,
				Izq: &ml.Nodo{Columna: -1, Clase: 1},
				Der: &ml.Nodo{Columna: -1, Clase: 0}},
		},
	}
	return ml.NewPredictor(bosque, []string{"experiencia_limpia_Basica", "licencias_Ninguna"})
}

func TestAgregarAdjuntaCalidad(t *testing.T) {
	repo := &repoStub{}
	svc := NewEmpleadoService(repo, predictorPrueba())

	id, calidad, err := svc.Agregar(repository.CamposEmpleado{
		Nombre:      "Juan",
		Experiencia: "experiencia basica en vigilancia",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, "Buena", calidad)
	// La etiqueta viaja al repositorio junto con los campos.
	assert.Equal(t, "Buena", repo.crearCalidad)
	assert.Equal(t, "Juan", repo.crearCampos.Nombre)
}

func TestAgregarSinModeloUsaCentinela(t *testing.T) {
	repo := &repoStub{}
	svc := NewEmpleadoService(repo, nil)

	_, calidad, err := svc.Agregar(repository.CamposEmpleado{Nombre: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, ml.Indeterminado, calidad)
	assert.Equal(t, ml.Indeterminado, repo.crearCalidad)
}

func TestAgregarPropagaErrorDelRepositorio(t *testing.T) {
	falla := errors.New("disco lleno")
	svc := NewEmpleadoService(&repoStub{crearErr: falla}, nil)

	_, _, err := svc.Agregar(repository.CamposEmpleado{Nombre: "Ana"})
	assert.ErrorIs(t, err, falla)
}
