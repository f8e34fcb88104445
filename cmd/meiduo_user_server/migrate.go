package main

import (
	"fmt"

	"meiduo_user_server/internal/config"
	dao "meiduo_user_server/internal/dao/mysql"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "迁移用户表结构",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.GetConfig()
			db, err := dao.Open(conf.MysqlConfig)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("get sql.DB: %w", err)
			}
			defer sqlDB.Close()

			if err := dao.Migrate(db); err != nil {
				return err
			}
			zap.L().Info("表结构迁移完成", zap.String("database", conf.MysqlConfig.DatabaseName))
			return nil
		},
	}
}
