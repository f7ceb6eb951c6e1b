package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Lmstfy LmstfyConfig `mapstructure:"lmstfy"`
	LLM    LLMConfig    `mapstructure:"llm"`
	KB     KBConfig     `mapstructure:"kb"`
	Export ExportConfig `mapstructure:"export"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LmstfyConfig struct {
	Host          string `mapstructure:"host"`
	Namespace     string `mapstructure:"namespace"`
	Queue         string `mapstructure:"queue"`
	CallbackQueue string `mapstructure:"callback_queue"`
	Token         string `mapstructure:"token"`
}

// LLMConfig 画布 AI 配置
// provider 为空表示未配置，画布接口退化为占位内容
type LLMConfig struct {
	Provider string `mapstructure:"provider"` // openai / gemini
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
}

// KBConfig 知识库（向量检索）配置
// addr 为空表示未配置，检索接口返回未配置错误
type KBConfig struct {
	Addr           string `mapstructure:"addr"` // qdrant gRPC 地址
	Collection     string `mapstructure:"collection"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"` // embedding 用
}

// ExportConfig 幻灯片导出配置
type ExportConfig struct {
	Format string `mapstructure:"format"` // 渲染产物格式，默认 json
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：如果 server.port 为空，使用默认值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = "json"
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
// LLM 与 KB 属于可选能力，不在此强制
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy host is required")
	}
	if c.Lmstfy.Token == "" {
		return fmt.Errorf("lmstfy token is required")
	}
	return nil
}

// GetServerPort 获取服务端口（兼容旧代码）
func (c *Config) GetServerPort() string {
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "8080"
}
