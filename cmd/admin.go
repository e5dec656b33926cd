package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/locey/BurnWin/events"
	"github.com/locey/BurnWin/service/svc"
	service "github.com/locey/BurnWin/service/v1"
)

func eligibilityCmd() *cobra.Command {
	var campaignID string
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Print the merkle root and proofs of eligible wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			serverCtx, err := svc.NewServiceContext(cmd.Context(), c)
			if err != nil {
				return err
			}
			defer serverCtx.Close()

			res, err := service.BuildEligibility(cmd.Context(), serverCtx, campaignID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Administrative ledger corrections",
	}

	var campaignID, address string
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Remove every completion of a wallet in a campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			serverCtx, err := svc.NewServiceContext(cmd.Context(), c)
			if err != nil {
				return err
			}
			defer serverCtx.Close()

			if err := service.ResetProgress(cmd.Context(), serverCtx, campaignID, address); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ledger reset for %s in %s\n", address, campaignID)
			return nil
		},
	}
	reset.Flags().StringVar(&campaignID, "campaign", "", "campaign id")
	reset.Flags().StringVar(&address, "address", "", "wallet address")
	_ = reset.MarkFlagRequired("campaign")
	_ = reset.MarkFlagRequired("address")
	cmd.AddCommand(reset)
	return cmd
}

func watchCmd() *cobra.Command {
	var campaignID string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream task completion events from NATS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return events.Monitor(cmd.Context(), c.NATS.NATSConfig, campaignID, func(ev events.CompletionEvent) {
				fmt.Fprintf(out, "%s %s %s/%s %d%% complete=%t\n",
					ev.CompletedAt.Format("2006-01-02T15:04:05Z07:00"), ev.Wallet, ev.CampaignID, ev.TaskID,
					ev.CompletionPercentage, ev.AllRequiredComplete)
			})
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id, empty for all")
	return cmd
}
