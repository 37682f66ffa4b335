package main

import "time"

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	HealthPort           int           `env:"HEALTH_PORT,default=8081"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=5000"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=30s"`
	HistoryLimit         int           `env:"HISTORY_LIMIT,default=50"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	EnableModeration     bool          `env:"ENABLE_MODERATION,default=false"`
	CensoredCharacter    string        `env:"CENSORED_CHARACTER,default=*"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=1m"`
}
