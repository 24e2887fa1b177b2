package abi

import (
	cryptointf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/contract-abi/pkg/types"
)

// Codec 聚合类型注册表与摘要服务的ABI编解码入口
//
// 注册表在构造时装配完成、此后只读，摘要服务是纯函数，
// 因此Codec可在任意数量的goroutine间共享。
type Codec struct {
	hasher   cryptointf.HashManager
	registry *Registry
}

// NewCodec 创建使用标准类型注册表的Codec
func NewCodec(hasher cryptointf.HashManager) *Codec {
	return NewCodecWithRegistry(hasher, NewRegistry())
}

// NewCodecWithRegistry 创建使用定制注册表的Codec
func NewCodecWithRegistry(hasher cryptointf.HashManager, registry *Registry) *Codec {
	return &Codec{hasher: hasher, registry: registry}
}

// Registry 返回类型注册表
func (c *Codec) Registry() *Registry {
	return c.registry
}

// ParseParameters 从逗号分隔的规范类型名解析参数列表
func (c *Codec) ParseParameters(canonical string) (ParameterList, error) {
	return ParseParameters(c.registry, canonical)
}

// ParseMethod 从ABI签名文本解析方法对象
func (c *Codec) ParseMethod(signature string) (*ContractMethod, error) {
	return ParseContractMethod(c.hasher, c.registry, signature)
}

// NewMethod 按配置创建方法对象
func (c *Codec) NewMethod(config MethodConfig) (*ContractMethod, error) {
	return NewContractMethod(c.hasher, config)
}

// MethodID 从方法名与输入参数列表派生选择器
func (c *Codec) MethodID(name string, inputs ParameterList) types.MethodID {
	return DeriveMethodID(c.hasher, name, inputs)
}
