package config

import (
	"github.com/spf13/viper"
)

// Config concentra toda la configuracion de runtime, leida de variables de
// entorno. Cada campo mapea 1:1 con una variable documentada.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Empresa dueña del documento de empleados.
	Empresa string `mapstructure:"EMPRESA"`

	// Rutas de artefactos cargados al arrancar.
	PrivateKeyPath string `mapstructure:"PRIVATE_KEY_PATH"` // fatal si falta
	UsuariosPath   string `mapstructure:"USUARIOS_PATH"`    // degradado si falta
	EmpleadosPath  string `mapstructure:"EMPLEADOS_PATH"`
	ModeloPath     string `mapstructure:"MODELO_PATH"`   // degradado si falta
	ColumnasPath   string `mapstructure:"COLUMNAS_PATH"` // degradado si falta

	// Vistas HTML.
	TemplatesGlob string `mapstructure:"TEMPLATES_GLOB"`

	// Sesion de la interfaz web.
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Almacenamiento: "json" (documento completo) o "mysql" (variante
	// relacional, misma semantica de registros).
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	MySQLDSN      string `mapstructure:"MYSQL_DSN"`

	// API JSON (tokens bearer).
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
}

// Load lee la configuracion desde variables de entorno y un .env opcional.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Valores por defecto para desarrollo
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("EMPRESA", "VMC SEGUCLEAN S.A de C.V")
	viper.SetDefault("PRIVATE_KEY_PATH", "Data/private_key.pem")
	viper.SetDefault("USUARIOS_PATH", "Data/usuarios.json")
	viper.SetDefault("EMPLEADOS_PATH", "Data/empleados.json")
	viper.SetDefault("MODELO_PATH", "Data/modelo_reclutador.json")
	viper.SetDefault("COLUMNAS_PATH", "Data/columnas_modelo.json")
	viper.SetDefault("TEMPLATES_GLOB", "web/templates/*.html")
	viper.SetDefault("SESSION_SECRET", "cambia_esto_por_algo_aleatorio_y_largo!")
	viper.SetDefault("STORAGE_DRIVER", "json")
	viper.SetDefault("MYSQL_DSN", "root:@tcp(localhost:3306)/empresa_db?charset=utf8mb4&parseTime=true")
	viper.SetDefault("JWT_SECRET", "secreto_de_desarrollo_no_usar_en_produccion")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)

	// .env opcional para desarrollo local; no falla si no existe
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
