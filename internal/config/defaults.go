package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Server: ServerConfig{
				Port: 8081,
				Host: "0.0.0.0",
			},
			AllowedOrigins: []string{"*"},
		},
		Widgets: WidgetsConfig{
			Server: ServerConfig{
				Port: 8000,
				Host: "0.0.0.0",
			},
			AllowedOrigins: []string{"https://pro.openbb.co"},
		},
		Market: MarketConfig{
			Provider: "yahoo",
			Timeout:  "30s",
		},
		Simulation: SimulationConfig{
			NumSimulations: 1000,
			NumDays:        252,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
