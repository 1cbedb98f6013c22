package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	Sheets SheetsConfig
	Mongo  MongoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SheetsConfig acceso al almacenamiento tabular del ledger.
// Si SpreadsheetID está vacío la aplicación arranca con el cliente en memoria
// (modo desarrollo, sin credenciales).
type SheetsConfig struct {
	SpreadsheetID    string
	CredentialsFile  string // ruta al JSON de cuenta de servicio
	InventoryTab     string
	RegistrationsTab string
	MovementsTab     string
	ReturnsTab       string
	CorrectionsTab   string
}

// MongoConfig base documental de usuarios.
type MongoConfig struct {
	URI      string
	Database string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stock-ledger"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "stock-ledger"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:    getString(v, "SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile:  getString(v, "SHEETS_CREDENTIALS_FILE", "credentials.json"),
			InventoryTab:     getString(v, "SHEETS_INVENTORY_TAB", "Inventario"),
			RegistrationsTab: getString(v, "SHEETS_REGISTRATIONS_TAB", "Registros"),
			MovementsTab:     getString(v, "SHEETS_MOVEMENTS_TAB", "Movimientos"),
			ReturnsTab:       getString(v, "SHEETS_RETURNS_TAB", "Devoluciones"),
			CorrectionsTab:   getString(v, "SHEETS_CORRECTIONS_TAB", "Ajustes"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DATABASE", "stock_ledger"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
