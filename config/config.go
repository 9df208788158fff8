package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Backend  BackendConfig
	Source   SourceConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	View     ViewConfig
	Theme    ThemeConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type BackendConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
	RetryMax       int
	DataPath       string // gjson path of the record array inside the response envelope, empty for a bare array
	Endpoints      EndpointsConfig
}

type EndpointsConfig struct {
	Products      string
	Inventory     string
	Notifications string
}

type SourceConfig struct {
	Driver string // rest, postgres
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	CacheTTLSeconds int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type ViewConfig struct {
	SearchDebounceMS int
}

type ThemeConfig struct {
	Mode string // light, dark
}

var defaults = map[string]interface{}{
	"APP_ENV":   "dev",
	"GRPC_PORT": ":8090",

	"LOGGER_LEVEL":              "debug",
	"LOGGER_ENCODING":           "console",
	"LOGGER_DISABLE_CALLER":     false,
	"LOGGER_DISABLE_STACKTRACE": true,

	"BACKEND_BASE_URL":           "http://localhost:8080/api/v1",
	"BACKEND_TOKEN":              "",
	"BACKEND_TIMEOUT_SECONDS":    10,
	"BACKEND_RETRY_MAX":          2,
	"BACKEND_DATA_PATH":          "data",
	"BACKEND_PATH_PRODUCTS":      "/products",
	"BACKEND_PATH_INVENTORY":     "/inventory",
	"BACKEND_PATH_NOTIFICATIONS": "/notifications",

	"SOURCE_DRIVER": "rest",

	"POSTGRES_HOST":               "localhost",
	"POSTGRES_PORT":               "5433",
	"POSTGRES_USER":               "omnipos",
	"POSTGRES_PASSWORD":           "omnipos",
	"POSTGRES_DB":                 "omnipos_product",
	"POSTGRES_SSLMODE":            "disable",
	"POSTGRES_MAX_OPEN_CONNS":     10,
	"POSTGRES_MAX_IDLE_CONNS":     5,
	"POSTGRES_CONN_MAX_LIFETIME":  300,
	"POSTGRES_CONN_MAX_IDLE_TIME": 60,

	"REDIS_ADDR":              "localhost:6379",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
	"REDIS_CACHE_TTL_SECONDS": 300,

	"KAFKA_BROKERS":          "localhost:9092",
	"KAFKA_TOPIC_EVENTS":     "inventory.events",
	"KAFKA_GROUP_RETAILVIEW": "retail-view",

	"SEARCH_DEBOUNCE_MS": 300,

	"THEME_MODE": "light",
}

// LoadEnv reads .env (when present), an optional CONFIG_FILE and the process
// environment, in increasing order of precedence.
func LoadEnv() *Config {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) *Config {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		// A missing or broken file leaves defaults and env in place.
		_ = v.ReadInConfig()
	}

	return &Config{
		Server: ServerConfig{
			AppEnv:   v.GetString("APP_ENV"),
			GRPCPort: v.GetString("GRPC_PORT"),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("LOGGER_LEVEL"),
			Encoding:          v.GetString("LOGGER_ENCODING"),
			DisableCaller:     v.GetBool("LOGGER_DISABLE_CALLER"),
			DisableStacktrace: v.GetBool("LOGGER_DISABLE_STACKTRACE"),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
			Token:          v.GetString("BACKEND_TOKEN"),
			TimeoutSeconds: v.GetInt("BACKEND_TIMEOUT_SECONDS"),
			RetryMax:       v.GetInt("BACKEND_RETRY_MAX"),
			DataPath:       v.GetString("BACKEND_DATA_PATH"),
			Endpoints: EndpointsConfig{
				Products:      v.GetString("BACKEND_PATH_PRODUCTS"),
				Inventory:     v.GetString("BACKEND_PATH_INVENTORY"),
				Notifications: v.GetString("BACKEND_PATH_NOTIFICATIONS"),
			},
		},
		Source: SourceConfig{
			Driver: strings.ToLower(v.GetString("SOURCE_DRIVER")),
		},
		Postgres: PostgresConfig{
			Host:            v.GetString("POSTGRES_HOST"),
			Port:            v.GetString("POSTGRES_PORT"),
			User:            v.GetString("POSTGRES_USER"),
			Password:        v.GetString("POSTGRES_PASSWORD"),
			DBName:          v.GetString("POSTGRES_DB"),
			SSLMode:         v.GetString("POSTGRES_SSLMODE"),
			MaxOpenConns:    v.GetInt("POSTGRES_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("POSTGRES_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetInt("POSTGRES_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetInt("POSTGRES_CONN_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			Addr:            v.GetString("REDIS_ADDR"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			CacheTTLSeconds: v.GetInt("REDIS_CACHE_TTL_SECONDS"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC_EVENTS"),
			GroupID: v.GetString("KAFKA_GROUP_RETAILVIEW"),
		},
		View: ViewConfig{
			SearchDebounceMS: v.GetInt("SEARCH_DEBOUNCE_MS"),
		},
		Theme: ThemeConfig{
			Mode: strings.ToLower(v.GetString("THEME_MODE")),
		},
	}
}

// splitList parses comma separated env values such as KAFKA_BROKERS.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
