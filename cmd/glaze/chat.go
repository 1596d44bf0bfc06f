package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the finance assistant a question",
		Example: `  glaze chat "boros gak aku minggu ini?" --file transactions.json
  glaze chat "tips hemat dong" --context "Total pengeluaran: Rp 2.000.000"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runChat,
	}

	cmd.Flags().String("context", "", "financial context sent with the message (built from --file when empty)")
	cmd.Flags().StringP("file", "f", "", "JSON array of transactions to ground the reply")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		if _, err := a.loadTransactions(cmd.Context(), file); err != nil {
			return err
		}
	}

	input := assistant.ChatInput{
		UserID:  localUserID,
		Message: strings.Join(args, " "),
	}
	if cmd.Flags().Changed("context") {
		financialContext, _ := cmd.Flags().GetString("context")
		input.Context = &financialContext
	}

	chat := assistant.NewChatService(a.model, a.gateway(nil))
	out, err := assistant.NewChatUseCase(chat, a.transactionRepo).Execute(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), dto.ChatResponse{Reply: out.Reply})
}
