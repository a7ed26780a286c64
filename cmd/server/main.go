package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/config"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/infra"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/ml"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/repository"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/router"
	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/secure"
)

func main() {
	// Logger estructurado: legible en dev, JSON en prod
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}

	// Sin clave privada no hay login: el proceso no arranca en vez de servir
	// con el descifrado silenciosamente apagado.
	decryptor, err := secure.LoadPrivateKey(cfg.PrivateKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("el servidor no puede iniciar sin la clave privada RSA; ejecute cmd/genkeys")
	}

	// Usuarios y modelo degradan en vez de abortar: sin usuarios todo login
	// falla, sin modelo toda prediccion es Indeterminado.
	usuarios := repository.CargarUsuarios(cfg.UsuariosPath)

	predictor, err := ml.CargarPredictor(cfg.ModeloPath, cfg.ColumnasPath)
	if err != nil {
		log.Warn().Err(err).Msg("modelo de reclutamiento no disponible; las predicciones seran Indeterminado")
		predictor = nil
	}

	var empleados repository.EmpleadoRepository
	switch cfg.StorageDriver {
	case "mysql":
		db, err := infra.NewDatabase(cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a mysql")
		}
		empleados = repository.NewMySQLEmpleadoRepository(db)
	default:
		empleados = repository.NewArchivoEmpleadoRepository(cfg.EmpleadosPath, cfg.Empresa)
	}

	r := router.New(cfg, decryptor, usuarios, empleados, predictor)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Apagado prolijo con SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("gestion de personal escuchando en :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("error del servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando el servidor…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("apagado forzado")
	}
	log.Info().Msg("servidor detenido")
}
