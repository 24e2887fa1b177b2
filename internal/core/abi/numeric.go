package abi

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/weisyn/contract-abi/pkg/constants"
	"github.com/weisyn/contract-abi/pkg/types"
)

// 确保数值类型实现了Type接口
var _ Type = (*NumericType)(nil)

// MaxNumericBits 数值类型支持的最大位宽
const MaxNumericBits = 256

// 2^256，二补码折算的模
var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// NumericType 按位宽参数化的整数类型族（uintN / intN）
//
// 编码采用大端序二补码，右对齐填入一个完整的32字节字：
// 无论逻辑位宽多窄，每个标量值都占满一个槽位。
//
// 取值范围（族别约定）：
//   - 无符号：[0, 2^bits)，上界为开区间
//   - 有符号：[-2^(bits-1), 2^(bits-1)-1]，上界为闭区间
type NumericType struct {
	bits   int
	signed bool
	min    *big.Int // 含下界
	max    *big.Int // 无符号为开上界，有符号为闭上界
}

// NewNumericType 创建数值类型
//
// 位宽必须是8的正整数倍且不超过256，否则在构造时返回 ErrInvalidWidth
// （而不是推迟到编码时才失败）。
func NewNumericType(bits int, signed bool) (*NumericType, error) {
	if bits <= 0 || bits > MaxNumericBits || bits%8 != 0 {
		return nil, fmt.Errorf("%w: %d（必须是8的正整数倍且不超过%d）",
			ErrInvalidWidth, bits, MaxNumericBits)
	}

	t := &NumericType{bits: bits, signed: signed}
	if signed {
		// [-2^(bits-1), 2^(bits-1)-1]
		half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		t.min = new(big.Int).Neg(half)
		t.max = new(big.Int).Sub(half, big.NewInt(1))
	} else {
		// [0, 2^bits)
		t.min = big.NewInt(0)
		t.max = new(big.Int).Lsh(big.NewInt(1), uint(bits))
	}
	return t, nil
}

// NewUintType 创建无符号整数类型（uintN）
func NewUintType(bits int) (*NumericType, error) {
	return NewNumericType(bits, false)
}

// NewIntType 创建有符号整数类型（intN）
func NewIntType(bits int) (*NumericType, error) {
	return NewNumericType(bits, true)
}

// NewUint256 创建默认的256位无符号整数类型
func NewUint256() *NumericType {
	t, _ := NewUintType(MaxNumericBits)
	return t
}

// NewInt256 创建256位有符号整数类型
func NewInt256() *NumericType {
	t, _ := NewIntType(MaxNumericBits)
	return t
}

// Bits 返回位宽
func (t *NumericType) Bits() int {
	return t.bits
}

// IsSigned 报告是否为有符号类型
func (t *NumericType) IsSigned() bool {
	return t.signed
}

// MinValue 返回含下界（副本）
func (t *NumericType) MinValue() *big.Int {
	return new(big.Int).Set(t.min)
}

// MaxValue 返回上界（副本）
//
// 注意族别约定：无符号类型的上界是开区间（2^bits），
// 有符号类型的上界是闭区间（2^(bits-1)-1）。
func (t *NumericType) MaxValue() *big.Int {
	return new(big.Int).Set(t.max)
}

// IsValueValid 检查数值是否落在类型的取值范围内
func (t *NumericType) IsValueValid(value *big.Int) bool {
	if value.Cmp(t.min) < 0 {
		return false
	}
	if t.signed {
		return value.Cmp(t.max) <= 0
	}
	return value.Cmp(t.max) < 0
}

// CanonicalName 返回规范名称（uintN / intN，始终携带显式位宽）
func (t *NumericType) CanonicalName() string {
	if t.signed {
		return fmt.Sprintf("int%d", t.bits)
	}
	return fmt.Sprintf("uint%d", t.bits)
}

// IsStatic 数值类型的编码尺寸固定
func (t *NumericType) IsStatic() bool {
	return true
}

// Words 数值类型恰好占用一个32字节字
func (t *NumericType) Words() int {
	return 1
}

// Encode 将整数值编码为一个32字节字
//
// 接受 *big.Int 以及 int/int64/uint64 便捷写法；范围校验先于任何
// 字节产生。负值按256位二补码符号扩展，非负值零扩展。
func (t *NumericType) Encode(value interface{}) ([]types.Hex32, error) {
	v, err := toBigInt(value)
	if err != nil {
		return nil, err
	}

	if !t.IsValueValid(v) {
		return nil, fmt.Errorf("%w: %s 不在 %s 的取值范围 [%s, %s%s 内",
			ErrOutOfRange, v, t.CanonicalName(), t.min, t.max, rangeBracket(t.signed))
	}

	word, err := types.Hex32FromBytes(packTwosComplement(v))
	if err != nil {
		return nil, err
	}
	return []types.Hex32{word}, nil
}

// Decode 将一个32字节字解码回整数值
//
// 先按256位二补码还原整数（有符号类型的符号位是整字的最高位），
// 再复验类型自身的取值范围。
func (t *NumericType) Decode(words []types.Hex32) (interface{}, error) {
	if len(words) != 1 {
		return nil, fmt.Errorf("%w: %s 需要1个字, 实际 %d 个",
			ErrTruncated, t.CanonicalName(), len(words))
	}

	raw := words[0].Bytes()
	v := new(big.Int).SetBytes(raw)
	if t.signed && raw[0]&0x80 != 0 {
		v.Sub(v, twoPow256)
	}

	if !t.IsValueValid(v) {
		return nil, fmt.Errorf("%w: 解码值 %s 不在 %s 的取值范围内",
			ErrOutOfRange, v, t.CanonicalName())
	}
	return v, nil
}

// packTwosComplement 将整数序列化为32字节大端序二补码
func packTwosComplement(v *big.Int) []byte {
	buf := make([]byte, constants.WordSize)
	if v.Sign() >= 0 {
		v.FillBytes(buf)
	} else {
		// 负值折算到 [0, 2^256) 再序列化，效果即符号扩展
		new(big.Int).Add(twoPow256, v).FillBytes(buf)
	}
	return buf
}

// toBigInt 归一化受支持的整数值写法
func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrBadValue)
		}
		return v, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fmt.Errorf("%w: %T（期望 *big.Int / int / int64 / uint64）", ErrBadValue, value)
	}
}

// isCanonicalNumber 检查字符串是否为无前导零的十进制数字
func isCanonicalNumber(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// rangeBracket 诊断信息中的区间右括号
func rangeBracket(signed bool) string {
	if signed {
		return "]"
	}
	return ")"
}

// ParseNumericType 解析数值类型的规范名称
//
// 识别 uint / int（隐含256位）及 uintN / intN。返回值遵循 TypeParser
// 约定：前缀不匹配返回 (nil, false, nil)；前缀匹配但位宽非法
// （uint257、uint0、非数字后缀）返回 (nil, true, err)。
func ParseNumericType(name string) (Type, bool, error) {
	var signed bool
	var suffix string

	switch {
	case strings.HasPrefix(name, "uint"):
		signed = false
		suffix = name[len("uint"):]
	case strings.HasPrefix(name, "int"):
		signed = true
		suffix = name[len("int"):]
	default:
		return nil, false, nil
	}

	bits := MaxNumericBits
	if suffix != "" {
		// 只接受无前导零的十进制数字，排除 Atoi 放行的 "+8"、"08" 等写法
		if !isCanonicalNumber(suffix) {
			return nil, true, fmt.Errorf("%w: %q 的位宽后缀 %q 不是规范数字",
				ErrInvalidWidth, name, suffix)
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return nil, true, fmt.Errorf("%w: %q 的位宽后缀 %q 无法解析",
				ErrInvalidWidth, name, suffix)
		}
		bits = n
	}

	t, err := NewNumericType(bits, signed)
	if err != nil {
		return nil, true, err
	}
	return t, true, nil
}
