package app

// Config is the resolved runtime configuration shared by the CLI and the
// daemon. Precedence is defaults < config file < environment < explicit
// flags; resolution happens in the commands, this struct only carries the
// outcome.
type Config struct {
	// ListenAddr is the daemon bind address.
	ListenAddr string

	UserAgent string

	Vision VisionConfig
}

// VisionConfig points OCR at an OpenAI-compatible vision endpoint. All
// fields empty means OCR is disabled.
type VisionConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}
