package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		SecretKey        string
		DefaultFromEmail mail.Address
		FrontendBaseURL  string

		SendgridAPIKey string
		RollbarToken   string

		// SeedRandSeed drives fixture generation; a given seed always
		// produces the same dataset.
		SeedRandSeed int64

		Server       serverConfig
		Subscription subscriptionConfig
	}

	serverConfig struct {
		Host                      string
		Port                      string
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	subscriptionConfig struct {
		BaseURL string
		Timeout time.Duration
	}
)

func (c serverConfig) Addr() string { return c.Host + ":" + c.Port }

const devSecretKey = "f0r-d3v-only&K33p-1t-s3cr3t!K33p-1t-s4f3!"

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Hostela")
	v.SetDefault("secretKey", devSecretKey)
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("frontendBaseURL", "http://localhost:5173")
	v.SetDefault("seedRandSeed", int64(1))
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("jwtExpirationDelta", 4*time.Hour)
	v.SetDefault("jwtRefreshExpirationDelta", 7*24*time.Hour)
	v.SetDefault("subscriptionBaseURL", "https://hostel-app-backend-b8ct.onrender.com/api")
	v.SetDefault("subscriptionTimeout", 10*time.Second)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "QA", "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		Env:              env,
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		SecretKey:        v.GetString("secretKey"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		SendgridAPIKey:   v.GetString("sendgridAPIKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		SeedRandSeed:     v.GetInt64("seedRandSeed"),
		Server: serverConfig{
			Host:                      v.GetString("serverHost"),
			Port:                      v.GetString("serverPort"),
			JWTExpirationDelta:        v.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: v.GetDuration("jwtRefreshExpirationDelta"),
		},
		Subscription: subscriptionConfig{
			BaseURL: v.GetString("subscriptionBaseURL"),
			Timeout: v.GetDuration("subscriptionTimeout"),
		},
	}

	if !Conf.Debug {
		if Conf.SecretKey == devSecretKey || len(Conf.SecretKey) < 32 {
			log.Fatal("SECRET_KEY must be set to at least 32 characters outside DEV")
		}
	}
}
