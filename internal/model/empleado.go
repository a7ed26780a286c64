package model

// Empleado es un registro de personal dentro del documento de la empresa.
// Los campos opcionales son punteros: un valor vacio en el formulario se
// guarda como null, nunca como cadena vacia (semantica clear-on-omit del
// repositorio).
type Empleado struct {
	ID                int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Nombre            string  `json:"nombre" gorm:"not null"`
	Apellido          *string `json:"apellido"`
	Ubicacion         *string `json:"ubicacion"`
	// Experiencia guarda el texto original tal como se escribio, nunca la
	// categoria normalizada que consume el modelo.
	Experiencia       *string `json:"experiencia"`
	Licencias         *string `json:"licencias"`
	Estado            *string `json:"estado"`
	Turno             *string `json:"turno"`
	FechaContratacion *string `json:"fecha_contratacion"`
	// CalidadCandidato se asigna una sola vez al crear el registro y no se
	// recalcula en actualizaciones.
	CalidadCandidato string `json:"calidad_candidato"`
}

// TableName fija la tabla para la variante relacional del repositorio.
func (Empleado) TableName() string { return "empleados" }

// DocumentoEmpleados es el documento completo que se persiste: el nombre de
// la empresa y la secuencia ordenada de registros.
type DocumentoEmpleados struct {
	Empresa   string     `json:"empresa"`
	Empleados []Empleado `json:"empleados"`
}
