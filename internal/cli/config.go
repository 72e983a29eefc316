package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/configloader"
)

type configFlags struct {
	sources bool
	env     bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in effect",
		Long: `Print the configuration that results from merging system, user and
project config files, environment variables and flags, in YAML.`,
		Example: `  mdlive config
  mdlive config --sources
  mdlive config --env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.sources, "sources", false, "list the files that were loaded")
	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	out := cmd.OutOrStdout()

	if flags.env {
		return writeEnvVars(out)
	}

	st, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}

	if flags.sources {
		if len(st.result.LoadedFrom) == 0 {
			_, err := fmt.Fprintln(out, "no config files loaded; using defaults")
			return err
		}
		for _, path := range st.result.LoadedFrom {
			if _, err := fmt.Fprintln(out, path); err != nil {
				return err
			}
		}
		return nil
	}

	body, err := st.cfg.ToYAML()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(body)
	return err
}

func writeEnvVars(out io.Writer) error {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%-*s  %s\n", width, name, vars[name]); err != nil {
			return err
		}
	}
	return nil
}
