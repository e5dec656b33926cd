package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/config"
)

const defaultConfigPath = "./config/config.toml"

var configPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "burnwin",
		Short:         "Off-chain task verification for burn-to-win campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "conf", "c", defaultConfigPath, "conf file path")

	cmd.AddCommand(serveCmd(), verifyCmd(), eligibilityCmd(), ledgerCmd(), watchCmd())
	return cmd
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd().ExecuteContext(ctx)
}

// loadConfig 读取配置并初始化日志
func loadConfig() (*config.Config, error) {
	c, err := config.UnmarshalConfig(configPath)
	if err != nil {
		return nil, err
	}
	if _, err := xzap.SetUp(c.Log); err != nil {
		return nil, err
	}
	return c, nil
}
