package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/config"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/secure"
)

var (
	// ErrCredencialesIlegibles: la contraseña cifrada no se pudo descifrar.
	ErrCredencialesIlegibles = errors.New("no se pudo procesar la contraseña")
	// ErrCredencialesInvalidas cubre tanto usuario inexistente como
	// contraseña incorrecta: el mensaje identico evita enumerar usuarios.
	ErrCredencialesInvalidas = errors.New("credenciales invalidas")
)

// AuthService orquesta el login: descifra la contraseña enviada, busca la
// cuenta y verifica el hash. Login alimenta la sesion web; TokenLogin emite
// el bearer token de la API.
type AuthService interface {
	Login(username, passwordCifrada string) (*model.Usuario, error)
	TokenLogin(username, passwordCifrada string) (string, error)
}

type authService struct {
	decryptor *secure.Decryptor
	usuarios  *repository.UsuarioDirectory
	cfg       *config.Config
}

func NewAuthService(decryptor *secure.Decryptor, usuarios *repository.UsuarioDirectory, cfg *config.Config) AuthService {
	return &authService{decryptor: decryptor, usuarios: usuarios, cfg: cfg}
}

func (s *authService) Login(username, passwordCifrada string) (*model.Usuario, error) {
	password, err := s.decryptor.Decrypt(passwordCifrada)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("contraseña cifrada ilegible")
		return nil, ErrCredencialesIlegibles
	}

	u, ok := s.usuarios.PorUsername(username)
	if !ok {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	return u, nil
}

func (s *authService) TokenLogin(username, passwordCifrada string) (string, error) {
	u, err := s.Login(username, passwordCifrada)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"exp":      time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
