package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/healthplate/backend/config"
	"github.com/healthplate/backend/pkg/helpers"
)

// App-level container sharing components constructed in main with the
// router's module auto-wiring. Everything here is read-only after startup.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client
	gcsClient   *storage.Client
	tokens      *helpers.TokenManager
)

func SetConfig(c *config.Config) { cfg = c }

func GetConfig() *config.Config { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }

func GetLogger() *logrus.Logger { return logger }

func SetMongo(db *mongo.Database) { mongoDB = db }

func GetMongo() *mongo.Database { return mongoDB }

func SetRedis(r *redis.Client) { redisClient = r }

func GetRedis() *redis.Client { return redisClient }

func SetGCS(s *storage.Client) { gcsClient = s }

func GetGCS() *storage.Client { return gcsClient }

func SetTokens(m *helpers.TokenManager) { tokens = m }

func GetTokens() *helpers.TokenManager { return tokens }
