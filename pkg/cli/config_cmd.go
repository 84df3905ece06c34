package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dxcli/dx/pkg/cli/internal/output"
	"github.com/dxcli/dx/pkg/cliconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect dx configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the merged configuration and where each value came from",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), map[string]any{
				"config":  cfg,
				"sources": cfg.Sources,
			})
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))

		fmt.Fprintln(cmd.OutOrStdout())
		tw := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "KEY\tSOURCE")
		for _, key := range sortedKeys(cfg.Sources) {
			fmt.Fprintf(tw, "%s\t%s\n", key, cfg.Sources[key])
		}
		return tw.Flush()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		local, err := cliconfig.FindLocalConfig()
		if err != nil {
			return err
		}
		global, err := cliconfig.FindGlobalConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), map[string]string{
				"local":  local,
				"global": global,
			})
		}

		printPath := func(label, path string) {
			if path == "" {
				path = "(not found)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, path)
		}
		printPath("local", local)
		printPath("global", global)
		return nil
	},
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configPathCmd)
}
