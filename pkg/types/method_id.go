package types

import (
	"fmt"

	"github.com/weisyn/contract-abi/pkg/constants"
)

// MethodID 4字节方法选择器
//
// 由方法规范签名的密码学摘要取前4字节得到，在方法的生命周期内不可变。
// 选择器只是查找用的判别值：它被前置在编码参数之前构成调用数据，
// 自身不参与解码。
type MethodID struct {
	value [constants.SelectorSize]byte
}

// MethodIDFromBytes 从字节切片创建MethodID
//
// 输入长度不是4字节时返回 ErrSizeMismatch。
func MethodIDFromBytes(value []byte) (MethodID, error) {
	if len(value) != constants.SelectorSize {
		return MethodID{}, fmt.Errorf("%w: 期望 %d 字节, 实际 %d 字节",
			ErrSizeMismatch, constants.SelectorSize, len(value))
	}

	var id MethodID
	copy(id.value[:], value)
	return id, nil
}

// MethodIDFromString 从十六进制字符串创建MethodID（0x + 8个字符）
func MethodIDFromString(value string) (MethodID, error) {
	data, err := HexDataFromString(value)
	if err != nil {
		return MethodID{}, err
	}
	return MethodIDFromBytes(data.value)
}

// Bytes 返回字节内容的副本
func (m MethodID) Bytes() []byte {
	cp := make([]byte, constants.SelectorSize)
	copy(cp, m.value[:])
	return cp
}

// Hex 返回十六进制字符串表示（0x + 8个小写字符）
func (m MethodID) Hex() string {
	return NewHexData(m.value[:]).Hex()
}

// String 实现fmt.Stringer接口
func (m MethodID) String() string {
	return m.Hex()
}

// Call 将选择器前置在编码参数之前，构成完整的调用数据
//
// 返回格式：selector(4字节) || encoded-arguments(32字节字的整数倍)
func (m MethodID) Call(args HexData) HexData {
	return NewHexData(m.value[:]).Concat(args)
}

// Equal 按字节内容比较两个MethodID
func (m MethodID) Equal(other MethodID) bool {
	return m.value == other.value
}

// MarshalJSON 实现JSON序列化（十六进制字符串形式）
func (m MethodID) MarshalJSON() ([]byte, error) {
	return NewHexData(m.value[:]).MarshalJSON()
}

// UnmarshalJSON 实现JSON反序列化
func (m *MethodID) UnmarshalJSON(data []byte) error {
	var d HexData
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	parsed, err := MethodIDFromBytes(d.value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
