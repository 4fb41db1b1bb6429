package settings

type Config struct {
	Logger   Logger   `mapstructure:"logger"`
	Redis    Redis    `mapstructure:"redis"`
	MongoDB  MongoDB  `mapstructure:"mongodb"`
	Document Document `mapstructure:"document"`
	Image    Image    `mapstructure:"image"`
	Async    Async    `mapstructure:"async"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Redis is the configuration for Redis
type Redis struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Password        string `mapstructure:"password"`
	Database        int    `mapstructure:"database" validate:"gte=0"`
	PoolSize        int    `mapstructure:"pool_size" validate:"gte=0"`
	MinIdleConns    int    `mapstructure:"min_idle_conns" validate:"gte=0"`
	PoolTimeout     int    `mapstructure:"pool_timeout" validate:"gte=0"`  // Seconds
	DialTimeout     int    `mapstructure:"dial_timeout" validate:"gte=0"`  // Seconds
	ReadTimeout     int    `mapstructure:"read_timeout" validate:"gte=0"`  // Seconds
	WriteTimeout    int    `mapstructure:"write_timeout" validate:"gte=0"` // Seconds
	MaxRetries      int    `mapstructure:"max_retries"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff" validate:"gte=0"` // Milliseconds
	MinRetryBackoff int    `mapstructure:"min_retry_backoff" validate:"gte=0"` // Milliseconds
}

// MongoDB is the configuration for MongoDB
type MongoDB struct {
	Host            string `mapstructure:"host"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxPoolSize     uint64 `mapstructure:"max_pool_size"`
	MinPoolSize     uint64 `mapstructure:"min_pool_size"`
	MaxConnIdleTime uint64 `mapstructure:"max_conn_idle_time"` // Seconds
	Port            int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Timeout         int    `mapstructure:"timeout" validate:"gte=0"` // Seconds
}

// Document is the configuration for document storage
type Document struct {
	// Backend selects the store: "local", "memory", "redis" or "mongodb".
	Backend    string `mapstructure:"backend" validate:"omitempty,oneof=local memory redis mongodb"`
	BasePath   string `mapstructure:"base_path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	TTL        int    `mapstructure:"ttl" validate:"gte=0"` // Seconds, 0 keeps forever
	Collection string `mapstructure:"collection"`
}

// Image is the configuration for the image fetcher
type Image struct {
	Quality      float64 `mapstructure:"quality" validate:"gte=0,lte=1"` // 0.0 - 1.0
	MaxDimension int     `mapstructure:"max_dimension" validate:"gte=0"`
	Timeout      int     `mapstructure:"timeout" validate:"gte=0"` // Seconds
}

// Async is the configuration for batch execution
type Async struct {
	// Limit caps in-flight units of work. 0 means unbounded.
	Limit int `mapstructure:"limit" validate:"gte=0"`
}
