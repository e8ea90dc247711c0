package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL    string
	DatabaseDbPath string
	ValkeyAddress  string

	BlobBucket        string
	BlobRegion        string
	BlobEndpoint      string
	BlobAccessKey     string
	BlobSecretKey     string
	BlobPublicBaseURL string

	ResendAPIKey string
	EmailFrom    string
	EmailTo      string

	AdminUsername     string
	AdminPasswordHash string
	AdminUsers        string
	DriverUsers       string
	AdminResetSecret  string
}

func InitConfig() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_DB_PATH", "data/hiring.db")

	config := Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),

		DatabaseURL:    viper.GetString("DATABASE_URL"),
		DatabaseDbPath: viper.GetString("DATABASE_DB_PATH"),
		ValkeyAddress:  viper.GetString("VALKEY_ADDRESS"),

		BlobBucket:        viper.GetString("BLOB_BUCKET"),
		BlobRegion:        viper.GetString("BLOB_REGION"),
		BlobEndpoint:      viper.GetString("BLOB_ENDPOINT"),
		BlobAccessKey:     viper.GetString("BLOB_ACCESS_KEY"),
		BlobSecretKey:     viper.GetString("BLOB_SECRET_KEY"),
		BlobPublicBaseURL: viper.GetString("BLOB_PUBLIC_BASE_URL"),

		ResendAPIKey: viper.GetString("RESEND_API_KEY"),
		EmailFrom:    viper.GetString("EMAIL_FROM"),
		EmailTo:      viper.GetString("EMAIL_TO"),

		AdminUsername:     viper.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		AdminUsers:        viper.GetString("ADMIN_USERS"),
		DriverUsers:       viper.GetString("DRIVER_USERS"),
		AdminResetSecret:  viper.GetString("ADMIN_RESET_SECRET"),
	}

	return config, nil
}
