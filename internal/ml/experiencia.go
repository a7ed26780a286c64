package ml

import "strings"

// Categorias normalizadas de experiencia. Los literales importan: los nombres
// de columna del modelo entrenado los incluyen tal cual
// (p. ej. "experiencia_limpia_Basica").
const (
	ExpSinExperiencia = "Sin Experiencia"
	ExpBasica         = "Basica"
	ExpIntermedia     = "Intermedia"
	ExpExperta        = "Experta"
	ExpNinguna        = "Ninguna"
)

// NormalizarExperiencia reduce el texto libre de experiencia a una de las
// cinco categorias fijas por busqueda de subcadena sin distinguir mayusculas,
// en este orden de precedencia. Todo lo que no coincide (incluida la cadena
// vacia) es "Ninguna".
func NormalizarExperiencia(texto string) string {
	t := strings.ToLower(texto)
	switch {
	case strings.Contains(t, "sin exper"):
		return ExpSinExperiencia
	case strings.Contains(t, "basic"):
		return ExpBasica
	case strings.Contains(t, "intermedia"):
		return ExpIntermedia
	case strings.Contains(t, "experta"):
		return ExpExperta
	default:
		return ExpNinguna
	}
}
