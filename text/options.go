package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	name string
}

// WithName overrides the family name read from the font's name table.
// Use it to register a font under the name style attributes refer to.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
