package service

import (
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/ml"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
)

// EmpleadoService es la raiz de composicion del ciclo de vida de un registro:
// en el alta pide la etiqueta de calidad al predictor y recien despues delega
// en el repositorio. Actualizaciones y bajas pasan directo.
type EmpleadoService interface {
	Listar() ([]model.Empleado, error)
	PorID(id int) (*model.Empleado, error)
	Agregar(campos repository.CamposEmpleado) (int, string, error)
	Actualizar(id int, campos repository.CamposEmpleado) error
	Eliminar(id int) error
}

type empleadoService struct {
	repo      repository.EmpleadoRepository
	predictor *ml.Predictor
}

func NewEmpleadoService(repo repository.EmpleadoRepository, predictor *ml.Predictor) EmpleadoService {
	return &empleadoService{repo: repo, predictor: predictor}
}

func (s *empleadoService) Listar() ([]model.Empleado, error) {
	return s.repo.Listar()
}

func (s *empleadoService) PorID(id int) (*model.Empleado, error) {
	return s.repo.PorID(id)
}

// Agregar calcula la calidad del candidato sobre la experiencia y licencias
// enviadas y crea el registro. La etiqueta se asigna una unica vez aca; las
// actualizaciones posteriores no la recalculan.
func (s *empleadoService) Agregar(campos repository.CamposEmpleado) (int, string, error) {
	calidad := s.predictor.Predecir(campos.Experiencia, campos.Licencias)
	id, err := s.repo.Crear(campos, calidad)
	if err != nil {
		return 0, "", err
	}
	return id, calidad, nil
}

func (s *empleadoService) Actualizar(id int, campos repository.CamposEmpleado) error {
	return s.repo.Actualizar(id, campos)
}

func (s *empleadoService) Eliminar(id int) error {
	return s.repo.Eliminar(id)
}
