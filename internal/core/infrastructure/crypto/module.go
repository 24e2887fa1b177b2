// Package crypto 提供加密相关功能的依赖注入装配
package crypto

import (
	"github.com/weisyn/contract-abi/internal/core/infrastructure/crypto/hash"
	"github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/crypto"
	"go.uber.org/fx"
)

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	HashManager crypto.HashManager
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices() (CryptoOutput, error) {
	return CryptoOutput{
		HashManager: hash.NewHashService(),
	}, nil
}
