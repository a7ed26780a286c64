package dto

// EmpleadoResponse es la vista JSON de un registro para la API de lectura.
// Mantiene los nombres de campo del documento persistido.
type EmpleadoResponse struct {
	ID                int     `json:"id"`
	Nombre            string  `json:"nombre"`
	Apellido          *string `json:"apellido"`
	Ubicacion         *string `json:"ubicacion"`
	Experiencia       *string `json:"experiencia"`
	Licencias         *string `json:"licencias"`
	Estado            *string `json:"estado"`
	Turno             *string `json:"turno"`
	FechaContratacion *string `json:"fecha_contratacion"`
	CalidadCandidato  string  `json:"calidad_candidato"`
}
