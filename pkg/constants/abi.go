// Package constants provides ABI wire-format constant definitions.
package constants

// WordSize ABI编码的原子槽位大小（字节）
// 每个静态标量值恰好占用一个完整的32字节字，与逻辑类型的位宽无关
const WordSize = 32

// SelectorSize 方法选择器的字节长度
// 选择器取自规范签名摘要的前4个字节
const SelectorSize = 4

// HexPrefix 十六进制字符串的统一前缀
const HexPrefix = "0x"
