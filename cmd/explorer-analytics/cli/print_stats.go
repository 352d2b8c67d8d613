package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledgerscope/explorer-analytics/internal/api"
	"github.com/ledgerscope/explorer-analytics/internal/config"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/services"
	"github.com/ledgerscope/explorer-analytics/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// PrintStatsCmd runs every aggregation once and prints the response envelopes
// Usage: ./explorer-analytics print-stats --config config.yml [--start-time 1700000000] [--end-time 1700086400]
func PrintStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print-stats",
		Short: "Prints statistics, distribution and address count as json",
		Args:  cobra.ExactArgs(0),
		Run:   printStats,
	}

	cmd.Flags().Int64("start-time", 0, "Exclusive lower bound for the address count, epoch seconds")
	cmd.Flags().Int64("end-time", 0, "Exclusive upper bound for the address count, epoch seconds")

	return cmd
}

func printStats(cmd *cobra.Command, args []string) {
	if err := printStatsE(cmd); err != nil {
		log.Err(err).Msg("Failed to print stats")
		os.Exit(1)
	}
}

func printStatsE(cmd *cobra.Command) error {
	ctx := log.Logger.WithContext(cmd.Context())

	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	service := services.NewService(cfg, database)

	envelopes := make(map[string]api.Envelope, 3)

	stats, svcErr := service.GetStatistics(ctx)
	envelopes["statistics"] = envelope(stats, svcErr)

	dist, svcErr := service.GetDistribution(ctx)
	envelopes["distribution"] = envelope(dist, svcErr)

	count, svcErr := service.GetAddressCount(ctx, window)
	envelopes["address_count"] = envelope(count, svcErr)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(envelopes)
}

func envelope(data any, err *types.Error) api.Envelope {
	if err != nil {
		return api.NewResponse().Error(err).Envelope()
	}
	return api.NewResponse().Data(data).Envelope()
}

func windowFromFlags(cmd *cobra.Command) (types.TimeWindow, error) {
	var window types.TimeWindow
	for name, bound := range map[string]**int64{"start-time": &window.Start, "end-time": &window.End} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt64(name)
		if err != nil {
			return types.TimeWindow{}, fmt.Errorf("failed to parse %s flag: %w", name, err)
		}
		*bound = &v
	}
	return window, nil
}
