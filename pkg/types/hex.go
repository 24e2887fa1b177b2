// Package types provides value object definitions for the contract ABI core.
//
// 📦 **ABI 值对象 (ABI Value Objects)**
//
// 本包定义了合约ABI编码的基础值对象，专注于：
// - HexData：不可变字节序列，支持十六进制字符串往返转换
// - Hex32：固定32字节的编码字，ABI编码的原子单位
// - MethodID：4字节方法选择器，由规范签名摘要派生
//
// 🎯 **设计原则**
// - 不可变性：所有值对象构造后不可修改，可安全并发共享
// - 严格校验：构造时完成全部格式校验，不产生部分有效的值
// - 内容相等：相等性和哈希均基于字节内容
package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/weisyn/contract-abi/pkg/constants"
)

var (
	// ErrHexFormat 十六进制字符串格式无效
	ErrHexFormat = errors.New("十六进制字符串格式无效")
	// ErrSizeMismatch 字节长度不符合预期
	ErrSizeMismatch = errors.New("字节长度不匹配")
)

// HexData 不可变的字节序列
//
// 内部字节在构造时复制，之后不再改变；所有读取方法返回副本或派生值，
// 因此 HexData 可以在任意数量的 goroutine 间共享而无需加锁。
type HexData struct {
	value []byte
}

// NewHexData 从字节切片创建HexData
//
// 输入切片会被复制，调用方之后对切片的修改不影响已创建的值。
func NewHexData(value []byte) HexData {
	cp := make([]byte, len(value))
	copy(cp, value)
	return HexData{value: cp}
}

// HexDataFromString 从十六进制字符串解析HexData
//
// 要求：必须以 0x 前缀开头，其后为偶数个十六进制字符。
// 不满足要求时返回 ErrHexFormat，不产生截断或补齐后的值。
func HexDataFromString(value string) (HexData, error) {
	if !strings.HasPrefix(value, constants.HexPrefix) {
		return HexData{}, fmt.Errorf("%w: 缺少 %s 前缀: %q", ErrHexFormat, constants.HexPrefix, value)
	}

	digits := value[len(constants.HexPrefix):]
	if len(digits)%2 != 0 {
		return HexData{}, fmt.Errorf("%w: 十六进制字符数为奇数: %d", ErrHexFormat, len(digits))
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return HexData{}, fmt.Errorf("%w: %v", ErrHexFormat, err)
	}

	return HexData{value: raw}, nil
}

// Bytes 返回字节内容的副本
func (d HexData) Bytes() []byte {
	cp := make([]byte, len(d.value))
	copy(cp, d.value)
	return cp
}

// Size 返回字节长度
func (d HexData) Size() int {
	return len(d.value)
}

// IsEmpty 检查是否为空序列
func (d HexData) IsEmpty() bool {
	return len(d.value) == 0
}

// Hex 返回十六进制字符串表示
//
// 格式固定：0x 前缀 + 小写十六进制，字符数恰好为字节长度的两倍。
func (d HexData) Hex() string {
	return constants.HexPrefix + hex.EncodeToString(d.value)
}

// String 实现fmt.Stringer接口
func (d HexData) String() string {
	return d.Hex()
}

// Concat 连接当前值与若干其他值，返回新的HexData
//
// 编码是无副作用的：参与连接的所有输入保持不变。
func (d HexData) Concat(others ...HexData) HexData {
	total := len(d.value)
	for _, o := range others {
		total += len(o.value)
	}

	joined := make([]byte, 0, total)
	joined = append(joined, d.value...)
	for _, o := range others {
		joined = append(joined, o.value...)
	}

	return HexData{value: joined}
}

// Equal 按字节内容比较两个HexData
func (d HexData) Equal(other HexData) bool {
	return bytes.Equal(d.value, other.value)
}

// MarshalJSON 实现JSON序列化（十六进制字符串形式）
func (d HexData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Hex())
}

// UnmarshalJSON 实现JSON反序列化
func (d *HexData) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := HexDataFromString(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
