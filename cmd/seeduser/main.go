// cmd/seeduser crea o actualiza una cuenta en usuarios.json.
// Uso: go run ./cmd/seeduser -username admin -password 1234
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

func main() {
	archivo := flag.String("archivo", "Data/usuarios.json", "ruta de usuarios.json")
	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "1234", "contraseña en claro")
	flag.Parse()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	var doc model.ArchivoUsuarios
	if raw, err := os.ReadFile(*archivo); err == nil {
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Fatalf("usuarios.json ilegible: %v", err)
		}
	}

	actualizado := false
	for i := range doc.Usuarios {
		if doc.Usuarios[i].Username == *username {
			doc.Usuarios[i].PasswordHash = string(hash)
			actualizado = true
			break
		}
	}
	if !actualizado {
		id := 0
		for _, u := range doc.Usuarios {
			if u.ID > id {
				id = u.ID
			}
		}
		doc.Usuarios = append(doc.Usuarios, model.Usuario{
			ID:           id + 1,
			Username:     *username,
			PasswordHash: string(hash),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("serializando: %v", err)
	}
	if err := os.WriteFile(*archivo, data, 0o644); err != nil {
		log.Fatalf("escribiendo %s: %v", *archivo, err)
	}
	fmt.Printf("Usuario '%s' creado/actualizado en %s\n", *username, *archivo)
}
