package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 服务配置（环境变量优先，HERB_ 前缀）
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Demo     DemoConfig     `mapstructure:"demo"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Trace    TraceConfig    `mapstructure:"trace"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	// Mode: demo（键值存储模拟后端）或 real（关系型数据库）
	Mode     string `mapstructure:"mode"`
	LogLevel string `mapstructure:"log_level"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
	// RateLimit 每秒请求数上限，0 表示不限流
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

type DatabaseConfig struct {
	// Driver: sqlite 或 postgres
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DemoConfig struct {
	// Backend: memory、file 或 redis
	Backend string `mapstructure:"backend"`
	// Dir file 后端的数据目录
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	// TokenTTLHours 令牌有效期（小时）
	TokenTTLHours int `mapstructure:"token_ttl_hours"`
}

type TraceConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

func (c *Config) IsDemoMode() bool { return c.App.Mode != "real" }

// Load 读取配置：默认值 < 配置文件(可选) < 环境变量
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "herb-market")
	v.SetDefault("app.mode", "demo")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.rate_burst", 100)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "herb_market.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("demo.backend", "memory")
	v.SetDefault("demo.dir", "./demo_data")
	v.SetDefault("auth.jwt_secret", "herb-market-dev-secret")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.otlp_endpoint", "localhost:4318")
	v.SetDefault("sentry.dsn", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("HERB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 配置文件可选，找不到时仅用默认值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
