package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresConnStr         string
	MongoURI                string
	MongoDatabase           string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	RelationCacheTTL        time.Duration
	JWTSecret               string
	JWTTTL                  time.Duration
	MetricsPort             string
	LogLevel                string
	LogFile                 string
}

// Load reads .env (if present), an optional config/config.yaml, and the
// process environment, in increasing order of precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Ignoring unreadable config file: %v", err)
		}
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("FIREBASE_CREDENTIALS_PATH", "")
	v.SetDefault("POSTGRES_CONN_STR", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "socialmedia")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RELATION_CACHE_TTL_MINUTES", 10)
	v.SetDefault("JWT_SECRET", "supersecretjwtkey")
	v.SetDefault("JWT_TTL_HOURS", 72)
	v.SetDefault("METRICS_PORT", "9090")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:                    v.GetString("PORT"),
		Env:                     v.GetString("ENV"),
		FirebaseCredentialsPath: v.GetString("FIREBASE_CREDENTIALS_PATH"),
		PostgresConnStr:         v.GetString("POSTGRES_CONN_STR"),
		MongoURI:                v.GetString("MONGO_URI"),
		MongoDatabase:           v.GetString("MONGO_DATABASE"),
		RedisAddr:               v.GetString("REDIS_ADDR"),
		RedisPassword:           v.GetString("REDIS_PASSWORD"),
		RedisDB:                 v.GetInt("REDIS_DB"),
		RelationCacheTTL:        time.Duration(v.GetInt("RELATION_CACHE_TTL_MINUTES")) * time.Minute,
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTTTL:                  time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
		MetricsPort:             v.GetString("METRICS_PORT"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		LogFile:                 v.GetString("LOG_FILE"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
