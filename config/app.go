package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// NodeID snowflake 节点号，多实例部署时各不相同
	NodeID int64 `json:"node_id" yaml:"node_id"`
}

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpireHours int    `json:"expire_hours" yaml:"expire_hours"`
}

type Google struct {
	ClientID string `json:"client_id" yaml:"client_id"`
}

type Cors struct {
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// Share 分享链接解析缓存
type Share struct {
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}
