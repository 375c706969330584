package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	// DummyAPIKey is what deployments put in the key variable to force mock mode.
	DummyAPIKey = "dummy-key"
)

// placeholders documented in .env.example for each provider
var apiKeyPlaceholders = map[string]string{
	ProviderOpenAI: "your_openai_key_here",
	ProviderGemini: "your_gemini_key_here",
}

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	CORSOrigin  string `mapstructure:"CORS_ORIGIN"`
	LogDir      string `mapstructure:"LOG_DIR"`

	// 数据库配置
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// LLM配置
	LLMProvider       string `mapstructure:"LLM_PROVIDER"`
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string `mapstructure:"OPENAI_API_ENDPOINT"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`
	LLMTimeoutSeconds int    `mapstructure:"LLM_TIMEOUT_SECONDS"`
	MockReplyDelayMS  int    `mapstructure:"MOCK_REPLY_DELAY_MS"`

	// JWT配置
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

var defaults = map[string]interface{}{
	"ENVIRONMENT":         "development",
	"SERVER_PORT":         "5000",
	"CORS_ORIGIN":         "http://localhost:5173",
	"LOG_DIR":             "logs",
	"DB_HOST":             "127.0.0.1",
	"DB_PORT":             "3306",
	"DB_USER":             "root",
	"DB_PASSWORD":         "",
	"DB_NAME":             "mindease",
	"REDIS_HOST":          "127.0.0.1",
	"REDIS_PORT":          "6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"LLM_PROVIDER":        ProviderOpenAI,
	"OPENAI_API_KEY":      "",
	"OPENAI_API_ENDPOINT": "",
	"OPENAI_MODEL":        "gpt-3.5-turbo",
	"GEMINI_API_KEY":      "",
	"GEMINI_MODEL":        "gemini-1.5-flash",
	"LLM_TIMEOUT_SECONDS": 10,
	"MOCK_REPLY_DELAY_MS": 1000,
	"JWT_SECRET":          "",
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// defaults make every key known to viper, otherwise AutomaticEnv
	// values never reach Unmarshal
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}
	config.LLMProvider = strings.ToLower(strings.TrimSpace(config.LLMProvider))
	if config.LLMProvider != ProviderGemini {
		config.LLMProvider = ProviderOpenAI
	}
	return
}

// ActiveAPIKey returns the key of the provider selected by LLM_PROVIDER.
func (c *Config) ActiveAPIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// LiveModeEnabled reports whether the selected provider has a usable key.
func (c *Config) LiveModeEnabled() bool {
	return IsConfiguredKey(c.LLMProvider, c.ActiveAPIKey())
}

// IsConfiguredKey treats an absent key, the documented placeholder and
// "dummy-key" as not configured.
func IsConfiguredKey(provider, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || key == DummyAPIKey {
		return false
	}
	if placeholder, ok := apiKeyPlaceholders[provider]; ok && key == placeholder {
		return false
	}
	return true
}

func (c *Config) LLMTimeout() time.Duration {
	if c.LLMTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

func (c *Config) MockReplyDelay() time.Duration {
	if c.MockReplyDelayMS < 0 {
		return 0
	}
	return time.Duration(c.MockReplyDelayMS) * time.Millisecond
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
