package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DynamoDBConfig is local-friendly: DynamoDB Local ignores credentials but
// the SDK still requires some.
type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TablesConfig struct {
	Takeoffs              string `mapstructure:"takeoffs"`
	Cancellations         string `mapstructure:"cancellations"`
	FabricationRequests   string `mapstructure:"fabrication_requests"`
	WorkOrders            string `mapstructure:"work_orders"`
	EquipmentReservations string `mapstructure:"equipment_reservations"`
}

// CatalogConfig points at a branch catalog YAML. Empty means the built-in one.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// GatewayConfig is used by clients of the takeoff service.
type GatewayConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.yaml from ./configs or the working directory. The file is
// optional; environment variables override it.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFile reads an explicit config file, e.g. from a --config flag.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvVariables(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")

	v.SetDefault("tables.takeoffs", "takeoffs")
	v.SetDefault("tables.cancellations", "takeoff_cancellations")
	v.SetDefault("tables.fabrication_requests", "fabrication_requests")
	v.SetDefault("tables.work_orders", "work_orders")
	v.SetDefault("tables.equipment_reservations", "equipment_reservations")

	v.SetDefault("gateway.base_url", "http://localhost:8080/v1")
	v.SetDefault("gateway.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.mode", "SERVER_MODE")

	// DynamoDB
	_ = v.BindEnv("dynamodb.region", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	// Tables
	_ = v.BindEnv("tables.takeoffs", "TAKEOFFS_TABLE")
	_ = v.BindEnv("tables.cancellations", "CANCELLATIONS_TABLE")
	_ = v.BindEnv("tables.fabrication_requests", "FABRICATION_REQUESTS_TABLE")
	_ = v.BindEnv("tables.work_orders", "WORK_ORDERS_TABLE")
	_ = v.BindEnv("tables.equipment_reservations", "EQUIPMENT_RESERVATIONS_TABLE")

	_ = v.BindEnv("catalog.path", "CATALOG_PATH")

	_ = v.BindEnv("gateway.base_url", "TAKEOFF_API_URL")
	_ = v.BindEnv("gateway.timeout", "TAKEOFF_API_TIMEOUT")

	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}
