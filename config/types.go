package config

// AppConfig is the application configuration.
type AppConfig struct {
	Decoder DecoderConfig `yaml:"decoder"`
	Output  OutputConfig  `yaml:"output"`
}

// DecoderConfig tunes the response decoder.
type DecoderConfig struct {
	// PlaceholderName replaces location names the document does not
	// resolve. Empty keeps the decoder default.
	PlaceholderName string `yaml:"placeholderName"`
	// Modes extends the built-in vendor mode table, so a new provider
	// submode is a config change rather than a code change.
	Modes []ModeMapping `yaml:"modes"`
}

// ModeMapping adds or replaces one vendor mode table entry. An empty
// submode makes the entry the fallback for its primary mode.
type ModeMapping struct {
	PtMode     string `yaml:"ptMode" validate:"required"`
	Submode    string `yaml:"submode"`
	Normalized string `yaml:"normalized" validate:"required"`
}

// OutputConfig controls CLI serialization.
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json pretty"`
}
