package config

type ServerConfig struct {
	Port        int
	ServiceName string
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:        getEnvInt("SERVER_PORT", 8082),
		ServiceName: getEnv("SERVICE_NAME", "capsuleValidator"),
	}
}
