package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		BodyLimit    int    `default:"52428800" env:"APP_BODY_LIMIT"`
		FontDir      string `default:"static/font/" env:"APP_FONT_DIR"`
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
		LogLevel     string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-records" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"secret" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-records" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		StorageURL      string `default:"/storage" env:"S3_STORAGE_URL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS"`
		Topic   string   `default:"hr-records.events" env:"KAFKA_TOPIC"`
	}
	Features struct {
		LinesEnabled *bool `default:"true" env:"FEATURE_LINES_ENABLED"`
	}
	Workers struct {
		TravelOrderCompleteEnabled *bool `default:"true" env:"WORKER_TRAVEL_ORDER_COMPLETE_ENABLED"`
		TravelOrderCompleteMin     int   `default:"60" env:"WORKER_TRAVEL_ORDER_COMPLETE_MIN"`
	}
	Seed struct {
		DemoData      *bool  `default:"false" env:"SEED_DEMO_DATA"`
		AdminEmail    string `default:"" env:"ADMIN_EMAIL"`
		AdminPassword string `default:"" env:"ADMIN_PASSWORD"`
		DemoPassword  string `default:"demo1234" env:"SEED_DEMO_PASSWORD"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
