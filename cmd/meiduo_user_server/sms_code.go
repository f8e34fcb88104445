package main

import (
	"context"
	"fmt"
	"time"

	"meiduo_user_server/internal/config"
	myredis "meiduo_user_server/internal/dao/redis"
	"meiduo_user_server/pkg/constants"
	"meiduo_user_server/pkg/util/random"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSmsCodeCmd 本地调试用：不发短信，直接把验证码写入缓存
func newSmsCodeCmd() *cobra.Command {
	var (
		code string
		ttl  int
	)

	cmd := &cobra.Command{
		Use:   "sms-code <mobile>",
		Short: "为手机号写入短信验证码（仅供本地调试）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mobile := args[0]
			if code == "" {
				code = random.GetSmsCode(constants.SMS_CODE_LENGTH)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.REDIS_PING_TIMEOUT*time.Second)
			defer cancel()

			rdb, err := myredis.NewClient(ctx, config.GetConfig().RedisConfig)
			if err != nil {
				return err
			}
			defer rdb.Close()

			store := myredis.NewSmsCodeStore(myredis.NewRedisCache(rdb))
			if err := store.Issue(ctx, mobile, code, time.Duration(ttl)*time.Second); err != nil {
				return err
			}
			// 只记录手机号，验证码只输出到终端
			zap.L().Info("sms code issued", zap.String("mobile", mobile), zap.Int("ttl", ttl))
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "指定验证码，默认随机生成")
	cmd.Flags().IntVar(&ttl, "ttl", constants.SMS_CODE_EXPIRES, "有效期（秒）")
	return cmd
}
