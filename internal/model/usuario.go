package model

// Usuario es una cuenta de acceso cargada una vez al arrancar el proceso.
// No hay alta ni edicion de cuentas en caliente: el directorio es de solo
// lectura durante toda la vida del servidor.
type Usuario struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// ArchivoUsuarios refleja la forma de usuarios.json.
type ArchivoUsuarios struct {
	Usuarios []Usuario `json:"usuarios"`
}
