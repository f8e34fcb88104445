package main

import (
	"fmt"

	"meiduo_user_server/internal/config"
	"meiduo_user_server/internal/infrastructure/logger"
	"meiduo_user_server/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configPath --config 指定的配置文件，为空时按默认路径查找
var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meiduo_user_server",
		Short: "美多商城用户注册服务",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			config.SetConfig(conf)

			if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			model.PasswordCost = conf.BcryptCost
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径（默认查找 configs/config_local.toml、configs/config.toml）")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSmsCodeCmd())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.GetConfig(), nil
}
