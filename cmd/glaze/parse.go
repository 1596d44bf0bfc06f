package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Turn a sentence into a transaction candidate",
		Example: `  glaze parse "ngopi 25rb pake gopay"
  glaze parse gaji 7 juta`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	extraction := assistant.NewExtractionService(a.model, a.gateway(nil))
	uc := assistant.NewParseTransactionUseCase(extraction, a.walletRepo)

	out, err := uc.Execute(cmd.Context(), assistant.ParseTransactionInput{
		UserID: localUserID,
		Text:   strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), dto.ToCandidateResponse(out.Candidate))
}
