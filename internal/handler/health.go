package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/ml"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
)

// Health reporta vida del proceso, acceso al repositorio y disponibilidad
// del modelo. El modelo ausente no degrada el estado: el predictor responde
// Indeterminado y el sistema sigue operando.
func Health(repo repository.EmpleadoRepository, predictor *ml.Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		if _, err := repo.Listar(); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"modelo": predictor.Disponible(),
		})
	}
}
