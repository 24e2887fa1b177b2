// Package log 的依赖注入装配
package log

import (
	logconfig "github.com/weisyn/contract-abi/internal/config/log"
	logintf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// Module 返回日志模块
func Module() fx.Option {
	return fx.Module("log",
		fx.Provide(ProvideLogger),
	)
}

// ProvideLogger 提供日志记录器
//
// 配置缺省时（*logconfig.Config 未注入）使用默认配置。
func ProvideLogger(config *logconfig.Config) (logintf.Logger, error) {
	if config == nil {
		config = logconfig.New(nil)
	}
	return New(config)
}
