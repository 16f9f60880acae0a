package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=waste_management port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8000"),
	}

	// 운영 환경 안전 장치
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment 변수가 설정되지 않았습니다. 운영 환경에서는 필수입니다.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET은 최소 32자 이상이어야 합니다.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=waste_management port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN 기본값을 사용 중입니다. 운영 환경에서는 반드시 별도 Postgres 접속 정보를 설정하세요.")
	}
	if cfg.CORSOrigins == "http://localhost:8000" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS 기본값을 사용 중입니다. 운영 환경에서는 실제 도메인을 설정하세요.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
