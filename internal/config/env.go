package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr       string
	GinMode       string
	StorageDriver string // "memory" or "mysql"
	MySQLDSN      string
	JWTSecret     string
	ConfirmDelay  time.Duration // pending -> confirmed auto-approval delay
	AuthLatency   time.Duration // simulated network latency on login/signup
	CORSOrigins   []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.TrimSpace(os.Getenv("STORAGE_DRIVER"))
	if driver == "" {
		driver = "memory"
	}

	dsn := strings.TrimSpace(os.Getenv("MYSQL_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/travel_app?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		StorageDriver: driver,
		MySQLDSN:      dsn,
		JWTSecret:     secret,
		ConfirmDelay:  durationEnv("CONFIRM_DELAY_SECONDS", time.Second, 60*time.Second),
		AuthLatency:   durationEnv("AUTH_LATENCY_MS", time.Millisecond, time.Second),
		CORSOrigins:   origins,
	}
}

func durationEnv(key string, unit, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * unit
}
