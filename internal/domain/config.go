package domain

// Config represents the options the demo commands run with.
type Config struct {
	Namespace string
	Format    string
	Log       LogConfig
}

// LogConfig controls where structured logs are written.
type LogConfig struct {
	Debug bool
	File  string
}

// Namespaces that may supply the greeting constant.
const (
	NamespaceFirst  = "first"
	NamespaceSecond = "second"
)

// Output formats for the demo transcript.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// DefaultConfig provides the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Namespace: NamespaceFirst,
		Format:    FormatPretty,
	}
}
