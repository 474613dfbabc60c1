package constants

const (
	AppName      = "portfolio"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "PORTFOLIO"

	// Contact messages are written to this collection.
	MessageCollection = "message"
)
