package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/document"
	"github.com/zyoshoka/typst/outline"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PageSpanConfig struct {
		FromPage  int    `yaml:"from_page" validate:"min=1"`
		Numbering string `yaml:"numbering" validate:"required"`
	}

	DocumentConfig struct {
		Language         string           `yaml:"language"`
		HeadingNumbering string           `yaml:"heading_numbering"`
		FigureNumbering  string           `yaml:"figure_numbering"`
		PageNumbering    []PageSpanConfig `yaml:"page_numbering" validate:"dive"`
	}

	IndentConfig struct {
		Mode   string  `yaml:"mode" validate:"oneof=none auto fixed true false"`
		Amount float64 `yaml:"amount" validate:"gte=0"`
	}

	OutlineConfig struct {
		Title      string        `yaml:"title"`
		NoTitle    bool          `yaml:"no_title"`
		Target     OutlineTarget `yaml:"target"`
		FigureKind string        `yaml:"figure_kind" validate:"required_if=Target 1"`
		Depth      int           `yaml:"depth" validate:"min=0"`
		Indent     IndentConfig  `yaml:"indent"`
		Fill       string        `yaml:"fill"`
		NoFill     bool          `yaml:"no_fill"`
		Width      int           `yaml:"width" validate:"min=0"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Outline   OutlineConfig  `yaml:"outline"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	TitleFieldName TemplateFieldName = "title"
	FillFieldName  TemplateFieldName = "fill"
)

// User-provided text must reach the output verbatim, it is never template
// material.
var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(TitleFieldName)),
	gencfg.WithDoNotExpandField(string(FillFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Prepare converts the document section to elaboration options.
func (conf *DocumentConfig) Prepare() (document.LoadOptions, document.CompileOptions) {
	load := document.LoadOptions{
		HeadingNumbering: conf.HeadingNumbering,
		FigureNumbering:  conf.FigureNumbering,
	}
	compile := document.CompileOptions{Lang: conf.Language}
	for _, span := range conf.PageNumbering {
		compile.PageNumbering = append(compile.PageNumbering, document.PageNumberingSpan{
			FromPage: span.FromPage,
			Pattern:  span.Numbering,
		})
	}
	return load, compile
}

// Prepare converts the configured indentation mode to a build strategy. The
// boolean spellings are the deprecated aliases, kept for old configurations.
func (conf *IndentConfig) Prepare() outline.Indent {
	switch conf.Mode {
	case "auto":
		return outline.AutoIndent()
	case "fixed":
		return outline.FixedIndent(conf.Amount)
	case "true":
		return outline.BoolIndent(true)
	case "false":
		return outline.BoolIndent(false)
	default:
		return outline.NoIndent()
	}
}

// Prepare converts the outline section to build options.
func (conf *OutlineConfig) Prepare(lang string) outline.Options {
	opts := outline.Options{
		Depth:  conf.Depth,
		Indent: conf.Indent.Prepare(),
		NoFill: conf.NoFill,
		Lang:   lang,
	}
	switch {
	case conf.NoTitle:
		opts.Title = outline.NoTitle()
	case len(conf.Title) > 0:
		opts.Title = outline.CustomTitle(&content.Text{Text: conf.Title})
	}
	if conf.Target == OutlineTargetFigures {
		opts.Target = content.Figures(conf.FigureKind)
	}
	if len(conf.Fill) > 0 && conf.Fill != "." {
		opts.Fill = &content.Repeat{Body: &content.Text{Text: conf.Fill}}
	}
	return opts
}
