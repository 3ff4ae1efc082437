package config

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Database struct {
	Driver      string `json:"driver" yaml:"driver"`
	Dsn         string `json:"dsn" yaml:"dsn"`
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
	MaxOpen     int    `json:"max_open" yaml:"max_open"`
	MaxIdle     int    `json:"max_idle" yaml:"max_idle"`
}
