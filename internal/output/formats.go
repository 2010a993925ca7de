package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/89332874/ycsb-runner/config"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat converts a --format flag value to an OutputFormat. An empty
// value selects FormatText.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, must be one of: text, json, yaml", s)
	}
}

// FormatProvider renders a loaded runner config
type FormatProvider interface {
	Format(cfg *config.RunnerConfig) (string, error)
}

// Document is the exported shape of a runner config
type Document struct {
	Source    string        `json:"source" yaml:"source"`
	Databases []DatabaseDoc `json:"databases" yaml:"databases"`
	Warnings  []string      `json:"warnings" yaml:"warnings"`
}

// DatabaseDoc is one exported database system
type DatabaseDoc struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Label       string `json:"label" yaml:"label"`
	Table       string `json:"table" yaml:"table"`
	Trials      int    `json:"trials" yaml:"trials"`
	MinMPL      int    `json:"min_mpl" yaml:"min_mpl"`
	MaxMPL      int    `json:"max_mpl" yaml:"max_mpl"`
	IncMPL      int    `json:"inc_mpl" yaml:"inc_mpl"`
	Output      string `json:"output" yaml:"output"`
	Workload    string `json:"workload" yaml:"workload"`
	OutputPlots bool   `json:"output_plots" yaml:"output_plots"`
	MPLs        []int  `json:"mpls" yaml:"mpls,flow"`
}

// NewDocument converts cfg to its exported shape. Slices are never nil so
// JSON output always carries arrays.
func NewDocument(cfg *config.RunnerConfig) Document {
	doc := Document{
		Source:    cfg.Path,
		Databases: make([]DatabaseDoc, 0, len(cfg.DBs)),
		Warnings:  make([]string, 0, len(cfg.Warnings)),
	}
	for _, db := range cfg.DBs {
		mpls := db.MPLs()
		if mpls == nil {
			mpls = []int{}
		}
		doc.Databases = append(doc.Databases, DatabaseDoc{
			ID:          db.ID(),
			Name:        db.Name,
			Type:        db.Type(),
			Label:       db.Label,
			Table:       db.TableName,
			Trials:      db.Options.Trials,
			MinMPL:      db.Options.MinMPL,
			MaxMPL:      db.Options.MaxMPL,
			IncMPL:      db.Options.IncMPL,
			Output:      db.Options.Output,
			Workload:    db.Options.Workload,
			OutputPlots: db.Options.OutputPlots,
			MPLs:        mpls,
		})
	}
	for _, w := range cfg.Warnings {
		doc.Warnings = append(doc.Warnings, w.Error())
	}
	return doc
}

// JSONFormatter renders the document as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format renders cfg as JSON and checks the result against DocumentSchema.
func (f *JSONFormatter) Format(cfg *config.RunnerConfig) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(NewDocument(cfg), "", "  ")
	} else {
		data, err = json.Marshal(NewDocument(cfg))
	}
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}

	if err := ValidateDocument(string(data)); err != nil {
		return "", err
	}
	return string(data), nil
}

// YAMLFormatter renders the document as YAML
type YAMLFormatter struct{}

// Format renders cfg as YAML.
func (f *YAMLFormatter) Format(cfg *config.RunnerConfig) (string, error) {
	data, err := yaml.Marshal(NewDocument(cfg))
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}

// GetFormatter returns the formatter for format
func GetFormatter(format OutputFormat, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return NewTextFormatter(noColor)
	}
}

// Render formats cfg with the formatter for format.
func Render(cfg *config.RunnerConfig, format OutputFormat, noColor bool) (string, error) {
	return GetFormatter(format, noColor).Format(cfg)
}
