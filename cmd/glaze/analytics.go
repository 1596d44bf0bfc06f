package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glaze-finance/backend/internal/application/usecase/analytics"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

func analyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "analytics {breakdown|series|stats|transactions|insight}",
		Short:     "Compute spending analytics over a transactions file",
		Example:   `  glaze analytics stats --period month --file transactions.json --now 2026-03-15T10:00:00Z`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"breakdown", "series", "stats", "transactions", "insight"},
		RunE:      runAnalytics,
	}

	cmd.Flags().StringP("period", "p", "week", "week, month or year")
	cmd.Flags().StringP("file", "f", "", "JSON array of transactions (required)")
	cmd.Flags().String("now", "", "reference time in RFC3339 (default: current time)")
	cmd.Flags().String("tz", "", "IANA time zone for period windows, e.g. Asia/Jakarta (default: zone of --now)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	period, _ := cmd.Flags().GetString("period")
	file, _ := cmd.Flags().GetString("file")
	now, _ := cmd.Flags().GetString("now")
	tz, _ := cmd.Flags().GetString("tz")

	nowFn, err := clock(now)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if _, err := a.loadTransactions(cmd.Context(), file); err != nil {
		return err
	}

	ctx := cmd.Context()
	input := analytics.PeriodInput{UserID: localUserID, Period: period, TimeZone: tz}

	var result any
	switch args[0] {
	case "breakdown":
		result, err = analytics.NewGetCategoryBreakdownUseCase(a.transactionRepo, nowFn).Execute(ctx, input)
	case "series":
		result, err = analytics.NewGetTimeSeriesUseCase(a.transactionRepo, nowFn).Execute(ctx, input)
	case "stats":
		result, err = analytics.NewGetSpendingStatsUseCase(a.transactionRepo, nowFn).Execute(ctx, input)
	case "transactions":
		out, execErr := analytics.NewGetPeriodTransactionsUseCase(a.transactionRepo, nowFn).Execute(ctx, input)
		if execErr == nil {
			result = dto.ToPeriodTransactionsResponse(out)
		}
		err = execErr
	case "insight":
		result, err = analytics.NewGetSpendingInsightUseCase(a.transactionRepo, nowFn).Execute(ctx, localUserID, tz)
	default:
		return fmt.Errorf("unknown analytics view %q", args[0])
	}
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}
