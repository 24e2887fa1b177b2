// Package crypto 提供合约ABI核心的哈希服务接口定义
//
// 🔐 **摘要服务 (Digest Service)**
//
// 本文件定义了方法选择器派生所依赖的摘要接口，专注于：
// - Keccak256：规范签名到方法选择器的标准摘要算法
// - SHA256：通用摘要，供缓存键等内部用途
//
// 🎯 **设计原则**
// - 注入式：具体算法通过接口注入，便于替换和测试
// - 纯函数：摘要计算无状态、无副作用，可并发调用
//
// 🔗 **组件关系**
// - HashManager：被 internal/core/abi 的 Codec 用于选择器派生
package crypto

// HashManager 定义哈希计算相关接口
type HashManager interface {
	// SHA256 计算SHA-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：32字节哈希值
	SHA256(data []byte) []byte

	// Keccak256 计算Keccak-256哈希
	// 参数：
	//   - data: 输入数据
	// 返回：32字节哈希值
	Keccak256(data []byte) []byte
}
