// Package config provides configuration types and file loading for the
// car delivery server.
package config

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`
	Admin   AdminConfig   `json:"admin" yaml:"admin"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// ServerConfig holds the listener and worker pool settings.
type ServerConfig struct {
	// Host is the bind address for both listeners.
	Host string `json:"host" yaml:"host"`
	// Port serves client traffic.
	Port int `json:"port" yaml:"port"`
	// AdminPort serves admin traffic. Zero disables the admin listener
	// and routes admin paths through the client port.
	AdminPort int `json:"adminPort" yaml:"adminPort"`
	// ClientWorkers is the client pool size.
	ClientWorkers int `json:"clientWorkers" yaml:"clientWorkers"`
	// AdminWorkers is the admin pool size.
	AdminWorkers int `json:"adminWorkers" yaml:"adminWorkers"`
}

// StorageConfig locates the entity data files.
type StorageConfig struct {
	// DataDir holds cars.json, cities.json and documents.json.
	DataDir string `json:"dataDir" yaml:"dataDir"`
}

// PricingConfig holds the exchange rates and the fixed year used for
// vehicle age calculation. The duty and fee tables themselves are
// regulatory constants and live in pkg/pricing.
type PricingConfig struct {
	USDToRUB float64 `json:"usdToRub" yaml:"usdToRub"`
	EURToRUB float64 `json:"eurToRub" yaml:"eurToRub"`
	// CurrentYear is fixed rather than wall-clock derived so estimates
	// stay reproducible.
	CurrentYear int `json:"currentYear" yaml:"currentYear"`
}

// AdminConfig holds the admin credential pair and token signing key.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// TokenSecret signs the session token returned by login. A random
	// per-process secret is generated when empty.
	TokenSecret string `json:"tokenSecret,omitempty" yaml:"tokenSecret,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the configuration used when no file or flags are
// given. Ports and pool sizes mirror the classic deployment: clients
// on 8080 with six workers, admin on 8081 with two.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:          "0.0.0.0",
			Port:          8080,
			AdminPort:     8081,
			ClientWorkers: 6,
			AdminWorkers:  2,
		},
		Storage: StorageConfig{DataDir: "data"},
		Pricing: PricingConfig{
			USDToRUB:    90.0,
			EURToRUB:    100.0,
			CurrentYear: 2025,
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "123",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// normalize fills zero values with defaults after a partial file load.
func (c *Config) normalize() {
	def := Default()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.ClientWorkers <= 0 {
		c.Server.ClientWorkers = def.Server.ClientWorkers
	}
	if c.Server.AdminWorkers <= 0 {
		c.Server.AdminWorkers = def.Server.AdminWorkers
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = def.Storage.DataDir
	}
	if c.Pricing.USDToRUB == 0 {
		c.Pricing.USDToRUB = def.Pricing.USDToRUB
	}
	if c.Pricing.EURToRUB == 0 {
		c.Pricing.EURToRUB = def.Pricing.EURToRUB
	}
	if c.Pricing.CurrentYear == 0 {
		c.Pricing.CurrentYear = def.Pricing.CurrentYear
	}
	if c.Admin.Username == "" {
		c.Admin.Username = def.Admin.Username
	}
	if c.Admin.Password == "" {
		c.Admin.Password = def.Admin.Password
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}
