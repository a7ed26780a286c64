package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

// MySQLEmpleadoRepository es la variante relacional del repositorio: filas en
// una tabla empleados en lugar del documento JSON, con la misma semantica de
// registros (id = max+1, clear-on-omit, calidad inmutable tras el alta).
type MySQLEmpleadoRepository struct {
	db *gorm.DB
}

func NewMySQLEmpleadoRepository(db *gorm.DB) *MySQLEmpleadoRepository {
	return &MySQLEmpleadoRepository{db: db}
}

func (r *MySQLEmpleadoRepository) Listar() ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.Order("id").Find(&empleados).Error
	return empleados, err
}

func (r *MySQLEmpleadoRepository) PorID(id int) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MySQLEmpleadoRepository) Crear(campos CamposEmpleado, calidad string) (int, error) {
	var id int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var max int
		if err := tx.Raw("SELECT COALESCE(MAX(id), 0) FROM empleados").Scan(&max).Error; err != nil {
			return err
		}
		nuevo := model.Empleado{ID: max + 1, CalidadCandidato: calidad}
		aplicarCampos(&nuevo, campos)
		if err := tx.Create(&nuevo).Error; err != nil {
			return err
		}
		id = nuevo.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MySQLEmpleadoRepository) Actualizar(id int, campos CamposEmpleado) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var e model.Empleado
		if err := tx.First(&e, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoEncontrado
			}
			return err
		}
		// Save escribe todos los campos: los punteros nil borran columnas
		// (clear-on-omit); CalidadCandidato conserva lo leido.
		aplicarCampos(&e, campos)
		return tx.Save(&e).Error
	})
}

func (r *MySQLEmpleadoRepository) Eliminar(id int) error {
	res := r.db.Delete(&model.Empleado{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}
