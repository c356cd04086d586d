package config

import (
	"log"
	"os"
)

type Config struct {
	AppPort   string
	DataFile  string
	RedisAddr string
	WebRoot   string
}

func Load() *Config {
	cfg := &Config{
		AppPort:   getEnv("APP_PORT", "3000"),
		DataFile:  getEnv("DATA_FILE", "data/news.json"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		WebRoot:   getEnv("WEB_ROOT", ""),
	}

	log.Printf("config loaded: port=%s data=%s", cfg.AppPort, cfg.DataFile)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
