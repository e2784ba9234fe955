package app

import (
	"strings"
	"time"

	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
	"github.com/atelierhaus/atelier-backend/internal/utils"
)

type Config struct {
	ServiceName     string
	Environment     string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	ProjectCodePrefix string

	UploadDir string
	BaseURL   string

	AllowedOrigins []string

	LeadRateLimit  int
	LeadRateWindow time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	var origins []string
	for _, o := range strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "", log), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		ServiceName:       utils.GetEnv("SERVICE_NAME", "atelier-backend", log),
		Environment:       utils.GetEnv("ENVIRONMENT", "development", log),
		JWTSecretKey:      jwtSecretKey,
		AccessTokenTTL:    time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:   time.Duration(refreshTokenTTLSeconds) * time.Second,
		ProjectCodePrefix: utils.GetEnv("PROJECT_CODE_PREFIX", "PRJ", log),
		UploadDir:         utils.GetEnv("UPLOAD_DIR", "./uploads", log),
		BaseURL:           utils.GetEnv("BASE_URL", "", log),
		AllowedOrigins:    origins,
		LeadRateLimit:     utils.GetEnvAsInt("LEAD_RATE_LIMIT", 5, log),
		LeadRateWindow:    time.Duration(utils.GetEnvAsInt("LEAD_RATE_WINDOW", 3600, log)) * time.Second,
	}
}
