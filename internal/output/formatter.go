package output

import (
	"fmt"
	"strings"

	"github.com/89332874/ycsb-runner/config"
)

// TextFormatter renders a runner config for humans
type TextFormatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(noColor bool) *TextFormatter {
	return &TextFormatter{
		NoColor: noColor,
		scheme:  newColorScheme(noColor),
	}
}

// Format renders one block per database system followed by the warnings.
func (f *TextFormatter) Format(cfg *config.RunnerConfig) (string, error) {
	var buf strings.Builder
	s := f.scheme

	buf.WriteString(fmt.Sprintf("Runner config: %s (%d databases)\n", cfg.Path, len(cfg.DBs)))

	for _, db := range cfg.DBs {
		o := db.Options
		id := s.ID.Sprint(db.Name)
		if db.Label != "" {
			id += s.Label.Sprintf("(%s)", db.Label)
		}
		buf.WriteString(fmt.Sprintf("▶ %s %s\n", id, s.Muted.Sprintf("[%s, table %s]", db.Type(), db.TableName)))
		f.field(&buf, "trials", fmt.Sprint(o.Trials))
		f.field(&buf, "mpl", formatSweep(o))
		f.field(&buf, "output", o.Output)
		f.field(&buf, "workload", o.Workload)
		f.field(&buf, "plots", formatBool(o.OutputPlots))
	}

	for _, w := range cfg.Warnings {
		buf.WriteString(fmt.Sprintf("%s %s\n", WarningIcon(f.NoColor), s.Warning.Sprint(w.Error())))
	}

	return buf.String(), nil
}

func (f *TextFormatter) field(buf *strings.Builder, key, value string) {
	buf.WriteString(fmt.Sprintf("    %s %s\n", f.scheme.Key.Sprintf("%-9s", key+":"), f.scheme.Value.Sprint(value)))
}

// formatSweep describes the MPL sweep, e.g. "1..16 step 4 (4 levels)".
func formatSweep(o config.Options) string {
	levels := len(o.MPLs())
	if levels == 0 {
		return fmt.Sprintf("%d..%d step %d (empty)", o.MinMPL, o.MaxMPL, o.IncMPL)
	}
	return fmt.Sprintf("%d..%d step %d (%d levels)", o.MinMPL, o.MaxMPL, o.IncMPL, levels)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
