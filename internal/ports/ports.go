package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	WeatherBackend  WeatherBackend
	PreferenceStore PreferenceStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
