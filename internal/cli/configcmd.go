package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/ward/internal/config"
	"github.com/spf13/cobra"
)

var flagConfigPaths []string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration file and defaults ward resolved",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		res, err := config.Apply(config.ApplyOptions{
			SearchPaths: flagConfigPaths,
		})
		if err != nil {
			exitCode = ExitConfigError
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "project root: %s\n", res.ProjectRoot)
		if res.ConfigPath == "" {
			fmt.Fprintln(out, "config file:  (none found)")
			return nil
		}
		fmt.Fprintf(out, "config file:  %s\n", res.ConfigPath)

		keys := make([]string, 0, len(res.Defaults))
		for k := range res.Defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s = %s\n", k, formatValue(res.Defaults[k]))
		}
		return nil
	},
}

func init() {
	configCmd.Flags().StringSliceVar(&flagConfigPaths, "path", nil, "Search paths used to locate the project root")
}

func formatValue(v any) string {
	if list, ok := v.([]string); ok {
		return "[" + strings.Join(list, ", ") + "]"
	}
	return fmt.Sprint(v)
}
