// Package abi 的依赖注入装配
package abi

import (
	cryptointf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/crypto"
	"go.uber.org/fx"
)

// ABIParams 定义ABI模块的依赖参数
type ABIParams struct {
	fx.In

	HashManager cryptointf.HashManager // 摘要服务（选择器派生）
}

// ABIOutput 定义ABI模块的输出结构
type ABIOutput struct {
	fx.Out

	Registry *Registry
	Codec    *Codec
}

// Module 返回ABI模块
func Module() fx.Option {
	return fx.Module("abi",
		fx.Provide(ProvideABIServices),
	)
}

// ProvideABIServices 提供ABI编解码服务
func ProvideABIServices(params ABIParams) (ABIOutput, error) {
	registry := NewRegistry()
	return ABIOutput{
		Registry: registry,
		Codec:    NewCodecWithRegistry(params.HashManager, registry),
	}, nil
}
