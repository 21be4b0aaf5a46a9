package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"taskwarrior_web/internal/taskwarrior"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Export command
	TaskBin       string
	ExportTimeout time.Duration

	LogLevel string
	LogJSON  bool

	CORSAllowOrigins []string

	// Rate limiting (Redis optional; without it the limiter is in-memory)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	APIRateLimit  int
	APIRateWindow time.Duration
}

// Load reads .env (if present) and the environment
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	taskBin := os.Getenv("TASK_BIN")
	if taskBin == "" {
		taskBin = taskwarrior.DefaultBin
	}

	exportTimeout := taskwarrior.DefaultTimeout
	if n := positiveInt("TASK_EXPORT_TIMEOUT_SECONDS"); n > 0 {
		exportTimeout = time.Duration(n) * time.Second
	}

	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	origins := []string{"*"}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			redisDB = n
		}
	}

	apiRateLimit := 60
	if n := positiveInt("API_RATE_LIMIT"); n > 0 {
		apiRateLimit = n
	}

	apiRateWindow := time.Minute
	if n := positiveInt("API_RATE_WINDOW_SECONDS"); n > 0 {
		apiRateWindow = time.Duration(n) * time.Second
	}

	return &Config{
		AppPort:          port,
		TaskBin:          taskBin,
		ExportTimeout:    exportTimeout,
		LogLevel:         logLevel,
		LogJSON:          strings.EqualFold(os.Getenv("LOG_FORMAT"), "json"),
		CORSAllowOrigins: origins,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          redisDB,
		APIRateLimit:     apiRateLimit,
		APIRateWindow:    apiRateWindow,
	}
}

// positiveInt returns the env value as int, or 0 when unset or invalid
func positiveInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
