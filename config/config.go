package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var Addr string
var Port string
var DBPath string
var MediaRoot string

func init() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}
	Addr = os.Getenv("SERVER_ADDR")
	Port = fmt.Sprintf(":%s", envOr("SERVER_PORT", "8080"))
	DBPath = envOr("DB_PATH", "data/badger")
	MediaRoot = envOr("MEDIA_ROOT", "media")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
