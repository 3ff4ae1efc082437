package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Google   *Google   `json:"google" yaml:"google"`
	Cors     *Cors     `json:"cors" yaml:"cors"`
	Share    *Share    `json:"share" yaml:"share"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// Load 读取 yaml 配置，环境变量（含 .env）覆盖敏感项
func Load(filename string) (*Config, error) {
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}

	conf.applyDefaults()
	conf.applyEnv()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 3000
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpireHours == 0 {
		c.Jwt.ExpireHours = 24
	}
	if c.Google == nil {
		c.Google = &Google{}
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if c.Share == nil {
		c.Share = &Share{}
	}
	if c.Share.CacheTTLSeconds == 0 {
		c.Share.CacheTTLSeconds = 300
	}
}

func (c *Config) applyEnv() {
	if v := getenv("DATABASE_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.Google.ClientID = v
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		c.Redis.Address = v
	}
	if v := getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// IsProduction 生产环境使用 Secure + SameSite=None 的 cookie
func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}
