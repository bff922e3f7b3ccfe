package config

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

var ctx = context.Background()

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTSettings struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type MediaConfig struct {
	Root string `yaml:"root"`
}

type ModerationConfig struct {
	// RequireAdmin gates the moderation endpoints on the admin predicate.
	// false matches the historical behavior: any logged-in user may moderate.
	RequireAdmin bool `yaml:"require_admin"`
}

type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTSettings      `yaml:"jwt"`
	Media      MediaConfig      `yaml:"media"`
	Moderation ModerationConfig `yaml:"moderation"`
	AI         AIConfig         `yaml:"ai"`
}

var GlobalConfig *Config
var RedisClient *redis.Client

func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{DSN: "host=localhost port=5432 user=postgres password=postgres dbname=knowledgebase sslmode=disable"},
		JWT:      JWTSettings{Secret: "change-this-in-production", ExpireHours: 24},
		Media:    MediaConfig{Root: "media"},
		AI:       AIConfig{Model: "gemini-1.5-flash"},
	}
}

func InitConfig(path string) {
	GlobalConfig = defaults()
	data, err := os.ReadFile(filepath.Join(path, "config.yaml"))
	if err != nil {
		log.Println("No config.yaml found, using defaults")
	} else if err := yaml.Unmarshal(data, GlobalConfig); err != nil {
		log.Fatalf("Parse config failed: %v", err)
	}
	applyEnvOverrides()
}

// InitRedis connects the optional Redis client. Rate limiting and the token
// blacklist stay disabled when no address is configured or the ping fails.
func InitRedis() {
	if GlobalConfig.Redis.Addr == "" {
		log.Println("Redis not configured, rate limiting and token blacklist disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     GlobalConfig.Redis.Addr,
		Password: GlobalConfig.Redis.Password,
		DB:       GlobalConfig.Redis.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Redis connect failed, continuing without it: %v", err)
		return
	}
	RedisClient = client
}

func applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		GlobalConfig.Server.Port = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		GlobalConfig.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		GlobalConfig.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		GlobalConfig.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		GlobalConfig.JWT.Secret = v
	}
	if v := os.Getenv("MEDIA_ROOT"); v != "" {
		GlobalConfig.Media.Root = v
	}
	if v := os.Getenv("MODERATION_REQUIRE_ADMIN"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			GlobalConfig.Moderation.RequireAdmin = parsed
		}
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		GlobalConfig.AI.APIKey = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		GlobalConfig.AI.Model = v
	}
}
