package config

type JwtConfig struct {
	Secret string
	Issuer string
}

func NewJwtConfig() *JwtConfig {
	return &JwtConfig{
		Secret: getEnv("BACKEND_TOKEN_SECRET", ""),
		Issuer: getEnv("BACKEND_TOKEN_ISSUER", "capsule-validator"),
	}
}
