package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

func TestCargarUsuarios(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "usuarios.json")
	require.NoError(t, os.WriteFile(ruta, []byte(`{
	  "usuarios": [
	    {"id": 1, "username": "admin", "password_hash": "$2b$12$abc"},
	    {"id": 2, "username": "rrhh", "password_hash": "$2b$12$def"}
	  ]
	}`), 0o644))

	dir := CargarUsuarios(ruta)
	assert.Len(t, dir.Todos(), 2)

	u, ok := dir.PorUsername("admin")
	require.True(t, ok)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "$2b$12$abc", u.PasswordHash)

	u, ok = dir.PorID(2)
	require.True(t, ok)
	assert.Equal(t, "rrhh", u.Username)

	_, ok = dir.PorUsername("intruso")
	assert.False(t, ok)
	_, ok = dir.PorID(99)
	assert.False(t, ok)
}

func TestCargarUsuariosAusenteOCorrupto(t *testing.T) {
	dir := t.TempDir()

	// Archivo ausente: directorio vacio, nunca error.
	d := CargarUsuarios(filepath.Join(dir, "no_existe.json"))
	assert.Empty(t, d.Todos())

	corrupto := filepath.Join(dir, "usuarios.json")
	require.NoError(t, os.WriteFile(corrupto, []byte("{{{"), 0o644))
	d = CargarUsuarios(corrupto)
	assert.Empty(t, d.Todos())
}

func TestUsuarioDirectoryDevuelveCopias(t *testing.T) {
	d := NewUsuarioDirectory([]model.Usuario{{ID: 1, Username: "admin"}})

	u, ok := d.PorID(1)
	require.True(t, ok)
	u.Username = "mutado"

	otra, _ := d.PorID(1)
	assert.Equal(t, "admin", otra.Username)
}
