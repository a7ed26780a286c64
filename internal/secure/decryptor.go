// Package secure implementa el descifrado de la contraseña que el navegador
// manda cifrada con la clave publica RSA de la empresa.
package secure

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	// ErrDecode: el blob recibido no es base64 valido o el texto descifrado
	// no es UTF-8.
	ErrDecode = errors.New("secure: contraseña cifrada ilegible")
	// ErrDecrypt: clave equivocada, ciphertext alterado o padding que no
	// coincide. Nunca se propaga como fallo duro al cliente.
	ErrDecrypt = errors.New("secure: descifrado fallido")
)

// Decryptor envuelve la clave privada RSA del proceso. Se carga una sola vez
// al arrancar y es inmutable, asi que Decrypt es seguro para uso concurrente.
//
// El padding queda fijado en PKCS#1 v1.5: es el esquema con el que cifra la
// pagina de login y no es compatible en el cable con OAEP.
type Decryptor struct {
	key *rsa.PrivateKey
}

// NewDecryptor construye un Decryptor sobre una clave ya cargada.
func NewDecryptor(key *rsa.PrivateKey) *Decryptor {
	return &Decryptor{key: key}
}

// LoadPrivateKey lee la clave privada PEM desde ruta. Acepta PKCS#8 (lo que
// genera cmd/genkeys) y PKCS#1 para claves viejas. Si el archivo no existe
// el arranque debe abortar: el login no puede servirse sin descifrado.
func LoadPrivateKey(ruta string) (*Decryptor, error) {
	raw, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("secure: no se pudo leer la clave privada %q: %w", ruta, err)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("secure: %q no contiene un bloque PEM", ruta)
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("secure: la clave PEM no es RSA")
		}
		log.Info().Str("ruta", ruta).Msg("clave privada RSA cargada")
		return &Decryptor{key: rsaKey}, nil
	}

	rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("secure: clave privada invalida en %q: %w", ruta, err)
	}
	log.Info().Str("ruta", ruta).Msg("clave privada RSA cargada")
	return &Decryptor{key: rsaKey}, nil
}

// Decrypt descifra un blob base64 a texto plano. Cualquier entrada hostil o
// corrupta vuelve como ErrDecode/ErrDecrypt, jamas como panico.
func (d *Decryptor) Decrypt(cifradoB64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(cifradoB64)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}
	plano, err := rsa.DecryptPKCS1v15(nil, d.key, raw)
	if err != nil {
		log.Debug().Err(err).Msg("descifrado RSA fallido")
		return "", ErrDecrypt
	}
	if !utf8.Valid(plano) {
		return "", fmt.Errorf("%w: el resultado no es UTF-8", ErrDecode)
	}
	return string(plano), nil
}
