package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
)

var cfgPath string

func newRootCmd(defaultConfigPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "explorer-analytics",
		Short:        "Read only analytics over the explorer ledger database",
		SilenceUsage: true,
	}

	cmd.AddCommand(StartServerCmd())
	cmd.AddCommand(PrintStatsCmd())
	cmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	return cmd
}

// Setup builds the command tree and executes the selected command with ctx
func Setup(ctx context.Context) error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := filepath.Join(homePath, defaultConfigFileName)
	return newRootCmd(defaultConfigPath).ExecuteContext(ctx)
}

func GetConfigPath() string {
	return cfgPath
}
