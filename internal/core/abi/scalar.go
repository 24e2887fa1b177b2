package abi

import (
	"fmt"

	"github.com/weisyn/contract-abi/pkg/constants"
	"github.com/weisyn/contract-abi/pkg/types"
)

var (
	_ Type = (*BoolType)(nil)
	_ Type = (*AddressType)(nil)
)

// AddressSize 地址的字节长度
const AddressSize = 20

// BoolType 布尔类型
//
// 编码为一个32字节字：true → …0001，false → …0000。
// 解码只接受这两个字，其余任何字节模式都是范围错误。
type BoolType struct{}

// NewBoolType 创建布尔类型
func NewBoolType() *BoolType {
	return &BoolType{}
}

// CanonicalName 返回规范名称 bool
func (t *BoolType) CanonicalName() string {
	return "bool"
}

// IsStatic 布尔类型的编码尺寸固定
func (t *BoolType) IsStatic() bool {
	return true
}

// Words 布尔类型恰好占用一个32字节字
func (t *BoolType) Words() int {
	return 1
}

// Encode 将Go布尔值编码为一个32字节字
func (t *BoolType) Encode(value interface{}) ([]types.Hex32, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T（期望 bool）", ErrBadValue, value)
	}

	raw := make([]byte, constants.WordSize)
	if b {
		raw[constants.WordSize-1] = 1
	}

	word, err := types.Hex32FromBytes(raw)
	if err != nil {
		return nil, err
	}
	return []types.Hex32{word}, nil
}

// Decode 将一个32字节字解码回布尔值
func (t *BoolType) Decode(words []types.Hex32) (interface{}, error) {
	if len(words) != 1 {
		return nil, fmt.Errorf("%w: bool 需要1个字, 实际 %d 个", ErrTruncated, len(words))
	}

	raw := words[0].Bytes()
	for i := 0; i < constants.WordSize-1; i++ {
		if raw[i] != 0 {
			return nil, fmt.Errorf("%w: %s 不是合法的 bool 编码", ErrOutOfRange, words[0].Hex())
		}
	}

	switch raw[constants.WordSize-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return nil, fmt.Errorf("%w: %s 不是合法的 bool 编码", ErrOutOfRange, words[0].Hex())
	}
}

// ParseBoolType 解析布尔类型的规范名称
func ParseBoolType(name string) (Type, bool, error) {
	if name != "bool" {
		return nil, false, nil
	}
	return NewBoolType(), true, nil
}

// AddressType 地址类型
//
// 20字节的账户地址，右对齐填入一个32字节字；解码时要求高12字节全零。
type AddressType struct{}

// NewAddressType 创建地址类型
func NewAddressType() *AddressType {
	return &AddressType{}
}

// CanonicalName 返回规范名称 address
func (t *AddressType) CanonicalName() string {
	return "address"
}

// IsStatic 地址类型的编码尺寸固定
func (t *AddressType) IsStatic() bool {
	return true
}

// Words 地址类型恰好占用一个32字节字
func (t *AddressType) Words() int {
	return 1
}

// Encode 将20字节地址编码为一个32字节字
//
// 接受 types.HexData、[]byte 和 [20]byte 写法；长度不是20字节时
// 返回 ErrBadValue。
func (t *AddressType) Encode(value interface{}) ([]types.Hex32, error) {
	var addr []byte
	switch v := value.(type) {
	case types.HexData:
		addr = v.Bytes()
	case []byte:
		addr = v
	case [AddressSize]byte:
		addr = v[:]
	default:
		return nil, fmt.Errorf("%w: %T（期望 types.HexData / []byte / [20]byte）", ErrBadValue, value)
	}

	if len(addr) != AddressSize {
		return nil, fmt.Errorf("%w: 地址长度 %d, 期望 %d", ErrBadValue, len(addr), AddressSize)
	}

	raw := make([]byte, constants.WordSize)
	copy(raw[constants.WordSize-AddressSize:], addr)

	word, err := types.Hex32FromBytes(raw)
	if err != nil {
		return nil, err
	}
	return []types.Hex32{word}, nil
}

// Decode 将一个32字节字解码回20字节地址（types.HexData）
func (t *AddressType) Decode(words []types.Hex32) (interface{}, error) {
	if len(words) != 1 {
		return nil, fmt.Errorf("%w: address 需要1个字, 实际 %d 个", ErrTruncated, len(words))
	}

	raw := words[0].Bytes()
	for i := 0; i < constants.WordSize-AddressSize; i++ {
		if raw[i] != 0 {
			return nil, fmt.Errorf("%w: %s 的高 %d 字节不为零, 不是合法的 address 编码",
				ErrOutOfRange, words[0].Hex(), constants.WordSize-AddressSize)
		}
	}

	return types.NewHexData(raw[constants.WordSize-AddressSize:]), nil
}

// ParseAddressType 解析地址类型的规范名称
func ParseAddressType(name string) (Type, bool, error) {
	if name != "address" {
		return nil, false, nil
	}
	return NewAddressType(), true, nil
}
