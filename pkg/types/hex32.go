package types

import (
	"fmt"

	"github.com/weisyn/contract-abi/pkg/constants"
)

// Hex32 固定32字节的编码字
//
// ABI编码的原子单位：每个静态标量值占用恰好一个Hex32槽位。
// 构造时严格校验长度，过短或过长的输入直接失败，不做截断或补齐。
type Hex32 struct {
	value [constants.WordSize]byte
}

// Hex32From 从HexData创建Hex32
//
// 输入长度不是32字节时返回 ErrSizeMismatch。
func Hex32From(data HexData) (Hex32, error) {
	return Hex32FromBytes(data.value)
}

// Hex32FromBytes 从字节切片创建Hex32
func Hex32FromBytes(value []byte) (Hex32, error) {
	if len(value) != constants.WordSize {
		return Hex32{}, fmt.Errorf("%w: 期望 %d 字节, 实际 %d 字节",
			ErrSizeMismatch, constants.WordSize, len(value))
	}

	var h Hex32
	copy(h.value[:], value)
	return h, nil
}

// Hex32FromString 从十六进制字符串创建Hex32
//
// 要求 0x 前缀后恰好64个十六进制字符。
func Hex32FromString(value string) (Hex32, error) {
	data, err := HexDataFromString(value)
	if err != nil {
		return Hex32{}, err
	}
	return Hex32From(data)
}

// Bytes 返回字节内容的副本
func (h Hex32) Bytes() []byte {
	cp := make([]byte, constants.WordSize)
	copy(cp, h.value[:])
	return cp
}

// Data 返回等价的HexData
func (h Hex32) Data() HexData {
	return NewHexData(h.value[:])
}

// Hex 返回十六进制字符串表示（0x + 64个小写字符）
func (h Hex32) Hex() string {
	return h.Data().Hex()
}

// String 实现fmt.Stringer接口
func (h Hex32) String() string {
	return h.Hex()
}

// Equal 按字节内容比较两个Hex32
func (h Hex32) Equal(other Hex32) bool {
	return h.value == other.value
}
