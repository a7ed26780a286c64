package service

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/config"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/secure"
)

// entornoAuth arma un AuthService real: clave RSA recien generada, una cuenta
// "admin" con hash bcrypt de "secreta123" y un cifrador para el lado cliente.
type entornoAuth struct {
	svc AuthService
	pub *rsa.PublicKey
	cfg *config.Config
}

func nuevoEntornoAuth(t *testing.T) *entornoAuth {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	usuarios := repository.NewUsuarioDirectory([]model.Usuario{
		{ID: 7, Username: "admin", PasswordHash: string(hash)},
	})
	cfg := &config.Config{JWTSecret: "clave-de-prueba", JWTExpirationHours: 1}

	return &entornoAuth{
		svc: NewAuthService(secure.NewDecryptor(key), usuarios, cfg),
		pub: &key.PublicKey,
		cfg: cfg,
	}
}

func (e *entornoAuth) cifrar(t *testing.T, password string) string {
	t.Helper()
	raw, err := rsa.EncryptPKCS1v15(rand.Reader, e.pub, []byte(password))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestLoginExitoso(t *testing.T) {
	e := nuevoEntornoAuth(t)

	u, err := e.svc.Login("admin", e.cifrar(t, "secreta123"))
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "admin", u.Username)
}

func TestLoginRechazaSinDistinguirCausa(t *testing.T) {
	e := nuevoEntornoAuth(t)

	// Contraseña incorrecta y usuario inexistente devuelven el mismo error.
	_, err := e.svc.Login("admin", e.cifrar(t, "otra"))
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	_, err = e.svc.Login("intruso", e.cifrar(t, "secreta123"))
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginPayloadIlegible(t *testing.T) {
	e := nuevoEntornoAuth(t)

	_, err := e.svc.Login("admin", "no es base64 !!!")
	assert.ErrorIs(t, err, ErrCredencialesIlegibles)

	// Cifrado con una clave ajena tampoco se puede abrir.
	ajena, errGen := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, errGen)
	raw, errEnc := rsa.EncryptPKCS1v15(rand.Reader, &ajena.PublicKey, []byte("secreta123"))
	require.NoError(t, errEnc)
	_, err = e.svc.Login("admin", base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, ErrCredencialesIlegibles)
}

func TestTokenLogin(t *testing.T) {
	e := nuevoEntornoAuth(t)

	firmado, err := e.svc.TokenLogin("admin", e.cifrar(t, "secreta123"))
	require.NoError(t, err)

	token, err := jwt.Parse(firmado, func(*jwt.Token) (interface{}, error) {
		return []byte(e.cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "admin", claims["username"])
}

func TestTokenLoginCredencialesInvalidas(t *testing.T) {
	e := nuevoEntornoAuth(t)

	_, err := e.svc.TokenLogin("admin", e.cifrar(t, "otra"))
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}
