package deps

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/jobpulse/pulse/internal/catalog"
	"github.com/jobpulse/pulse/internal/logger"
)

type Deps struct {
	Logger      logger.Logger
	StartTime   time.Time
	Version     string
	Commit      string
	BuildDate   string
	GoVersion   string
	TimeNow     func() time.Time     // injectable clock; digest days and history timestamps come from here
	RedisClient *redis.Client        // Redis client connection
	Catalog     *catalog.Catalog     // In-memory job catalog
	Validate    *validator.Validate  // Shared request payload validator
	CORSOrigin  string               // Access-Control-Allow-Origin value
}
