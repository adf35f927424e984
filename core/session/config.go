package session

// Config holds configuration for the session store.
type Config struct {
	// Addr is the Redis address (host:port).
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// Prefix is prepended to every session key.
	Prefix string `mapstructure:"prefix" default:"redelex:session:"`
	// TTLMinutes is how long a session lives without being refreshed.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"480"`
}
