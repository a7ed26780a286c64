// cmd/genkeys genera el par de claves RSA del login.
// La privada queda en el servidor; el contenido de public_key.pem se pega en
// la pagina de login para cifrar la contraseña en el navegador.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := flag.String("dir", "Data", "directorio donde escribir las claves")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("creando %s: %v", *dir, err)
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("generando clave RSA: %v", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		log.Fatalf("serializando clave privada: %v", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})
	privPath := filepath.Join(*dir, "private_key.pem")
	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		log.Fatalf("escribiendo %s: %v", privPath, err)
	}
	fmt.Printf("Clave privada guardada en %s\n", privPath)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		log.Fatalf("serializando clave publica: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	pubPath := filepath.Join(*dir, "public_key.pem")
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
		log.Fatalf("escribiendo %s: %v", pubPath, err)
	}
	fmt.Printf("Clave publica guardada en %s\n", pubPath)
	fmt.Println("Copie el contenido de public_key.pem en la pagina de login.")
}
