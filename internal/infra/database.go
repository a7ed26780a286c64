package infra

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

// NewDatabase abre la conexion MySQL para la variante relacional del
// repositorio de empleados y crea la tabla si no existe. Solo se invoca
// cuando STORAGE_DRIVER=mysql; el modo por defecto no toca la base.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := db.AutoMigrate(&model.Empleado{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}
