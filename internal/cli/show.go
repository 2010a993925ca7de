package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/89332874/ycsb-runner/internal/output"
	"github.com/89332874/ycsb-runner/pkg/jsonpath"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the database systems declared in a runner config",
		Long: `Load a runner configuration file and print every database system it
declares with its resolved options and MPL sweep.

  ycsb-runner show -c runner.ini
  ycsb-runner show -c runner.ini --format json
  ycsb-runner show -c runner.ini --query '$.databases[*].id'`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	showCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	showCmd.Flags().StringP("query", "q", "", "Print a single value selected by a JSONPath expression")

	return showCmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	query, _ := cmd.Flags().GetString("query")

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	cfg, err := rc.load()
	if err != nil {
		return err
	}

	if query != "" {
		doc, err := (&output.JSONFormatter{}).Format(cfg)
		if err != nil {
			return err
		}
		value, err := jsonpath.Extract(doc, query)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	noColor := rc.noColor || !output.IsTerminal(cmd.OutOrStdout())
	rendered, err := output.Render(cfg, format, noColor)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	if format == output.FormatJSON {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
