package cmd

import (
	"bufio"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/locey/BurnWin/catalog"
	"github.com/locey/BurnWin/client"
	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/widget"
)

// verifyCmd drives one task widget against a running backend from the terminal.
func verifyCmd() *cobra.Command {
	var (
		campaignID string
		taskID     string
		identity   verification.UserIdentity
		backend    string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Open a task target and verify it against the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Load(c.Catalog.Path)
			if err != nil {
				return err
			}
			task, ok := cat.Task(campaignID, taskID)
			if !ok {
				return errors.Errorf("task %s/%s not found", campaignID, taskID)
			}
			if backend == "" {
				backend = c.Backend.BaseURL
			}

			out := cmd.OutOrStdout()
			vc := client.NewVerifyClient(backend, nil)
			w := widget.New(task, identity, vc)
			w.OnTransition(func(_, to widget.State) {
				fmt.Fprintf(out, "[%s] %s\n", to.Status, to.LastMessage)
			})

			target, err := w.OpenTarget()
			if err != nil {
				return err
			}
			if _, err := vc.Open(cmd.Context(), campaignID, taskID, identity.Address); err != nil {
				return err
			}
			if target != "" {
				fmt.Fprintf(out, "Open %s, complete the action, then press Enter\n", target)
			} else {
				fmt.Fprintln(out, "Press Enter to verify")
			}
			if _, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n'); err != nil {
				return err
			}

			// the backend enforces the dwell time too
			if wait := c.Verification.MinDwell - time.Since(*w.State().OpenedAt); wait > 0 {
				time.Sleep(wait)
			}
			res, err := w.Verify(cmd.Context())
			if err != nil {
				return err
			}
			if !res.Success {
				return errors.New("verification failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id")
	cmd.Flags().StringVar(&taskID, "task", "", "task id")
	cmd.Flags().StringVar(&identity.Address, "address", "", "wallet address")
	cmd.Flags().StringVar(&identity.TwitterUsername, "twitter", "", "twitter username")
	cmd.Flags().StringVar(&identity.DiscordUserID, "discord", "", "discord user id")
	cmd.Flags().StringVar(&identity.TelegramUserID, "telegram", "", "telegram user id")
	cmd.Flags().StringVar(&identity.Email, "email", "", "email address")
	cmd.Flags().StringVar(&backend, "backend", "", "backend base url, defaults to backend.base_url")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
