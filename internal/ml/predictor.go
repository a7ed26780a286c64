// Package ml predice la calidad de un candidato a partir de su experiencia y
// sus licencias, usando el clasificador pre-entrenado de reclutamiento.
//
// El modelo se exporta fuera de linea a un formato JSON portable (arboles +
// clases) junto con la lista ordenada de columnas one-hot con las que se
// entreno. Aca solo se carga y se evalua; el entrenamiento queda afuera.
package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Indeterminado es el centinela que se devuelve cuando la prediccion no se
// puede realizar, sea cual sea el motivo.
const Indeterminado = "Indeterminado"

// Clasificador es la vista minima del modelo que necesita el predictor.
type Clasificador interface {
	Clasificar(features []float64) (string, error)
}

// Predictor alinea las entradas codificadas one-hot con el esquema de
// columnas de entrenamiento y consulta al clasificador. Se carga una vez al
// arrancar y es inmutable: las llamadas concurrentes no necesitan lock.
//
// Un Predictor nil es valido y responde siempre Indeterminado; asi el resto
// del sistema no distingue entre "modelo ausente" y "modelo degradado".
type Predictor struct {
	modelo   Clasificador
	columnas []string
}

// NewPredictor arma un predictor sobre un clasificador ya cargado y su lista
// de columnas de entrenamiento.
func NewPredictor(modelo Clasificador, columnas []string) *Predictor {
	return &Predictor{modelo: modelo, columnas: columnas}
}

// CargarPredictor lee el artefacto del modelo y la lista de columnas desde
// disco. La ausencia de cualquiera de los dos no es fatal para el proceso:
// el llamador debe degradar a un predictor nil.
func CargarPredictor(rutaModelo, rutaColumnas string) (*Predictor, error) {
	bosque, err := CargarBosque(rutaModelo)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(rutaColumnas)
	if err != nil {
		return nil, fmt.Errorf("ml: no se pudieron leer las columnas %q: %w", rutaColumnas, err)
	}
	var columnas []string
	if err := json.Unmarshal(raw, &columnas); err != nil {
		return nil, fmt.Errorf("ml: columnas %q ilegibles: %w", rutaColumnas, err)
	}
	if len(columnas) == 0 {
		return nil, fmt.Errorf("ml: columnas %q vacias", rutaColumnas)
	}
	log.Info().Int("arboles", len(bosque.Arboles)).Int("columnas", len(columnas)).Msg("modelo de reclutamiento cargado")
	return &Predictor{modelo: bosque, columnas: columnas}, nil
}

// Disponible indica si hay un modelo cargado detras del predictor.
func (p *Predictor) Disponible() bool {
	return p != nil && p.modelo != nil && len(p.columnas) > 0
}

// Predecir devuelve la etiqueta de calidad para el texto de experiencia y la
// cadena de licencias tal como llegaron del formulario. Es una funcion pura
// de sus entradas mas el modelo inmutable; cualquier fallo interno se absorbe
// y sale como Indeterminado, nunca como error.
func (p *Predictor) Predecir(experiencia, licencias string) string {
	if !p.Disponible() {
		return Indeterminado
	}

	lic := licencias
	if lic == "" {
		lic = ExpNinguna
	}
	activas := map[string]bool{
		"experiencia_limpia_" + NormalizarExperiencia(experiencia): true,
		"licencias_" + lic: true,
	}

	// Reindexado contra el esquema de entrenamiento: las columnas que esta
	// muestra no activa quedan en 0 y las categorias que el modelo no
	// conoce se descartan.
	features := make([]float64, len(p.columnas))
	for i, col := range p.columnas {
		if activas[col] {
			features[i] = 1
		}
	}

	etiqueta, err := p.modelo.Clasificar(features)
	if err != nil {
		log.Warn().Err(err).Msg("prediccion de calidad fallida")
		return Indeterminado
	}
	return etiqueta
}
