// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса витрины.
//
// Пустая StorageConnectionString переключает каталог в локальный режим:
// записи живут в json-файле каталога LocalStore.Dir, а сессия администратора —
// в соседнем файле вместо redis.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	LocalStore              `yaml:"local_store"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	AdminSession            `yaml:"admin_session"`
	Checkout                `yaml:"checkout"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// LocalStore структура для настройки локального файлового хранилища.
type LocalStore struct {
	Dir string `yaml:"dir" env-default:"./data"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает, что redis не используется (ни кеш, ни сессия).
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// JWTToken структура для работы с jwt-токеном администратора.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env-default:"examreview-dev-secret"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// AdminSession структура для настройки сессии администратора.
// TTL применяется только в удалённом режиме; ноль отключает истечение.
type AdminSession struct {
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"24h"`
}

// Checkout хранит статичные реквизиты оплаты, отдаваемые страницей чекаута:
// получатель GCash, картинка QR-кода и адрес внешней формы подтверждения.
type Checkout struct {
	GCashName    string `yaml:"gcash_name" env-default:"ExamReview PH"`
	GCashNumber  string `yaml:"gcash_number" env-default:"0917-000-0000"`
	QRImageURL   string `yaml:"qr_image_url" env-default:"/gcash-qr.png"`
	ProofFormURL string `yaml:"proof_form_url"`
}

// MustLoad функция для загрузки конфига из файла, указанного в CONFIG_PATH.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// RemoteMode сообщает, настроено ли удалённое хранилище каталога.
func (c *Config) RemoteMode() bool {
	return c.StorageConnectionString != ""
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"LocalStore:\n"+
			"  Dir: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"AdminSession:\n"+
			"  TTL: %s\n",
		c.Env,
		c.StorageConnectionString,
		c.Dir,
		c.AddressRedis,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.SessionTTL,
	)
}
