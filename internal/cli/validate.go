package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/89332874/ycsb-runner/config"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a runner config describes runnable benchmarks",
		Long: `Load a runner configuration file and check every declared database
system: positive trial counts, a non-empty MPL sweep, an output format, a
workload path and distinct labels for repeated database types.

With --strict, warnings such as unsupported database names also fail.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")

	return validateCmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}
	cfg, err := rc.load()
	if err != nil {
		return err
	}

	errs := config.ValidateConfig(cfg)
	for _, verr := range errs {
		rc.diag.Error(verr)
	}

	problems := len(errs)
	if strict {
		problems += len(cfg.Warnings)
	}
	if problems > 0 {
		return fmt.Errorf("%s: %d problems found", rc.path, problems)
	}

	rc.diag.Success(fmt.Sprintf("%s is valid: %d databases", rc.path, len(cfg.DBs)))
	return nil
}
