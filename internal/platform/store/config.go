package store

import "time"

// Config selects and configures the backends Open connects
type Config struct {
	AppName string // postgres application_name

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot pings; zero means 6 attempts of 5s each
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled  bool
	URL      string
	Role     string // dashboard, seed
	Tag      string
	MaxConns int
}
