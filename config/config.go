package config

//go:generate go run ../tools/schema-generator

// ExportConfig defines the defaults of the export command.
type ExportConfig struct {
	// Format is the export file format.
	// "html" (default): a standalone page with a monospace body.
	// "txt": the plain aligned transcript.
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=html txt"`

	// IncludeTimestamps prefixes each turn with its {HH:MM:SS} start time.
	// Ignored for transcripts imported without timing.
	IncludeTimestamps *bool `yaml:"include_timestamps,omitempty"`
}

// ImportConfig defines how source transcripts are read.
type ImportConfig struct {
	// JSONMode controls token/timestamp JSON files.
	// "one_block" (default): all tokens in one untimed block.
	// "tokens": one block per token.
	// "auto_segment": blocks split at pauses.
	JSONMode string `yaml:"json_mode,omitempty" validate:"omitempty,oneof=one_block tokens auto_segment"`

	// GapFactor is the multiple of the mean token gap treated as a pause
	// by auto_segment. 0 (default) means 2.5.
	GapFactor float64 `yaml:"gap_factor,omitempty" validate:"gte=0"`
}

// Config is the top-level configuration structure for capsgat.
type Config struct {
	// Speakers names the speakers of newly imported transcripts.
	Speakers []string `yaml:"speakers,omitempty" validate:"omitempty,min=2,max=8,dive,required"`

	// ContextBlocks is how many blocks around the cursor 'show' prints on
	// each side. 0 (default) means 5.
	ContextBlocks int `yaml:"context_blocks,omitempty" validate:"gte=0,lte=100"`

	Export ExportConfig `yaml:"export,omitempty"`
	Import ImportConfig `yaml:"import,omitempty"`
}
