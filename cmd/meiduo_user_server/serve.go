package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meiduo_user_server/internal/config"
	dao "meiduo_user_server/internal/dao/mysql"
	"meiduo_user_server/internal/dao/mysql/repository"
	myredis "meiduo_user_server/internal/dao/redis"
	"meiduo_user_server/internal/handler"
	"meiduo_user_server/internal/https_server"
	"meiduo_user_server/internal/infrastructure/mq"
	"meiduo_user_server/internal/service"
	"meiduo_user_server/internal/service/user"
	"meiduo_user_server/pkg/constants"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.GetConfig(), autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "启动前自动迁移表结构")
	return cmd
}

func serve(ctx context.Context, conf *config.Config, autoMigrate bool) error {
	// 1. 初始化数据库
	db, err := dao.Open(conf.MysqlConfig)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()
	if autoMigrate {
		if err := dao.Migrate(db); err != nil {
			return err
		}
	}
	zap.L().Info("数据库初始化成功")

	// 2. 初始化 Redis
	pingCtx, cancel := context.WithTimeout(ctx, constants.REDIS_PING_TIMEOUT*time.Second)
	rdb, err := myredis.NewClient(pingCtx, conf.RedisConfig)
	cancel()
	if err != nil {
		return err
	}
	defer rdb.Close()
	zap.L().Info("Redis 初始化成功", zap.Int("db", conf.VerifyDb))

	// 3. 注册事件投递
	publisher := mq.NewPublisher(conf.KafkaConfig)
	defer func() {
		if err := publisher.Close(); err != nil {
			zap.L().Warn("close publisher", zap.Error(err))
		}
	}()

	// 4. 组装 Service、Handler (依赖注入)
	codes := myredis.NewSmsCodeStore(myredis.NewRedisCache(rdb))
	validator, err := user.NewRegistrationValidator(codes, conf.StrictMobile)
	if err != nil {
		return err
	}
	services := service.NewServices(repository.NewRepositories(db), validator, publisher)
	engine := https_server.Init(handler.NewHandlers(services), conf)

	// 5. 启动服务
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server running fault: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.SHUTDOWN_TIMEOUT*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zap.L().Info("服务器已关闭")
	return nil
}
