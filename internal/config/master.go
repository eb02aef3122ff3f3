package config

import "os"

type AppConfig struct {
	DebugMode      bool
	ServerConfig   *ServerConfig
	BackendConfig  *BackendConfig
	RedisConfig    *RedisConfig
	SQLJudgeConfig *SQLJudgeConfig
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ServerConfig:   NewServerConfig(),
		BackendConfig:  NewBackendConfig(),
		RedisConfig:    NewRedisConfig(),
		SQLJudgeConfig: NewSQLJudgeConfig(),
		JwtConfig:      NewJwtConfig(),
	}
}
