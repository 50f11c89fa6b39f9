package domain

// Configuration holds presentation and logging settings for the calculator.
// The VAT rate and upper limit are constants in package calculation.
type Configuration struct {
	Title   string        `yaml:"title" json:"title"`
	Theme   Theme         `yaml:"theme" json:"theme"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// Theme is the keypad colour scheme, as hex colours
type Theme struct {
	Background      string `yaml:"background" json:"background"`
	Foreground      string `yaml:"foreground" json:"foreground"`
	Accent          string `yaml:"accent" json:"accent"`
	EntryBackground string `yaml:"entry_background" json:"entry_background"`
	Button          string `yaml:"button" json:"button"`
}

// LoggingConfig controls the zap logger built by the CLI
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	// File receives logs while the keypad owns the terminal; empty discards them
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// OutputConfig selects the default formatter for batch conversions
type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
}
