package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	AppName       string `json:"appname"`
	AppEnv        string `json:"appenv"`
	AppPort       uint16 `json:"appport"`
	GinMode       string `json:"ginmode"`
	APIKey        string `json:"apikey"`
	DBHost        string `json:"dbhost"`
	DBPort        uint16 `json:"dbport"`
	DBName        string `json:"dbname"`
	DBUSER        string `json:"dbuser"`
	DBPass        string `json:"dbpass"`
	RateLimit     int    `json:"ratelimit"`
	RateWindowSec int    `json:"ratewindowsec"`
	RedisAddr     string `json:"redisaddr"`
	RedisPass     string `json:"redispass"`
	RedisDB       int    `json:"redisdb"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// Load environment variables from .env file. A missing file is acceptable
		// when variables are already set in the environment (tests, containers).
		if err := godotenv.Load(); err != nil && os.Getenv("APPENV") == "" {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
		rateLimit, _ := strconv.Atoi(os.Getenv("RATELIMIT"))
		rateWindow, _ := strconv.Atoi(os.Getenv("RATEWINDOW"))
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:       os.Getenv("APPNAME"),
			AppEnv:        os.Getenv("APPENV"),
			AppPort:       uint16(appPort),
			GinMode:       os.Getenv("GINMODE"),
			APIKey:        os.Getenv("APIKEY"),
			DBHost:        os.Getenv("DBHOST"),
			DBPort:        uint16(dbPort),
			DBName:        os.Getenv("DBNAME"),
			DBUSER:        os.Getenv("DBUSER"),
			DBPass:        os.Getenv("DBPASS"),
			RateLimit:     rateLimit,
			RateWindowSec: rateWindow,
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPass:     os.Getenv("REDIS_PASS"),
			RedisDB:       redisDB,
		}
	})
	return config
}

// RateWindow returns the configured rate limit window as a time.Duration.
func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateWindowSec) * time.Second
}
