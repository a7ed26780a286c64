package repository

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

// UsuarioDirectory es el directorio estatico de cuentas. Se carga una vez al
// arrancar y no cambia durante la vida del proceso, asi que las busquedas no
// necesitan lock.
type UsuarioDirectory struct {
	usuarios []model.Usuario
}

// NewUsuarioDirectory arma un directorio sobre una lista ya cargada.
func NewUsuarioDirectory(usuarios []model.Usuario) *UsuarioDirectory {
	return &UsuarioDirectory{usuarios: usuarios}
}

// CargarUsuarios lee usuarios.json desde ruta. Que el archivo falte o este
// corrupto no es fatal: queda un directorio vacio y todo login falla.
func CargarUsuarios(ruta string) *UsuarioDirectory {
	raw, err := os.ReadFile(ruta)
	if err != nil {
		log.Warn().Err(err).Str("ruta", ruta).Msg("archivo de usuarios no disponible; directorio vacio")
		return &UsuarioDirectory{}
	}
	var archivo model.ArchivoUsuarios
	if err := json.Unmarshal(raw, &archivo); err != nil {
		log.Warn().Err(err).Str("ruta", ruta).Msg("archivo de usuarios ilegible; directorio vacio")
		return &UsuarioDirectory{}
	}
	log.Info().Int("usuarios", len(archivo.Usuarios)).Msg("directorio de usuarios cargado")
	return &UsuarioDirectory{usuarios: archivo.Usuarios}
}

// Todos devuelve las cuentas en el orden del archivo.
func (d *UsuarioDirectory) Todos() []model.Usuario {
	return d.usuarios
}

// PorID busca una cuenta por identificador.
func (d *UsuarioDirectory) PorID(id int) (*model.Usuario, bool) {
	for i := range d.usuarios {
		if d.usuarios[i].ID == id {
			u := d.usuarios[i]
			return &u, true
		}
	}
	return nil, false
}

// PorUsername busca una cuenta por nombre de usuario.
func (d *UsuarioDirectory) PorUsername(username string) (*model.Usuario, bool) {
	for i := range d.usuarios {
		if d.usuarios[i].Username == username {
			u := d.usuarios[i]
			return &u, true
		}
	}
	return nil, false
}
