package abi

import (
	"fmt"
	"strings"

	"github.com/weisyn/contract-abi/pkg/constants"
	"github.com/weisyn/contract-abi/pkg/types"
)

// ParameterList 方法的有序参数类型列表（输入或输出）
//
// 构造后不可变；空列表是合法值（无参方法）。
type ParameterList struct {
	list []Type
}

// NewParameterList 从若干Type创建参数列表
func NewParameterList(list ...Type) ParameterList {
	cp := make([]Type, len(list))
	copy(cp, list)
	return ParameterList{list: cp}
}

// ParseParameters 从规范的逗号分隔类型名解析参数列表
//
// 语法约定：单个逗号分隔、不允许空格；空字符串解析为空列表。
// 无法解析的名称返回 ErrUnknownType（或对应解析器的错误），
// 并携带失败元素的序号以便诊断。
func ParseParameters(registry *Registry, canonical string) (ParameterList, error) {
	if canonical == "" {
		return ParameterList{}, nil
	}

	names := strings.Split(canonical, ",")
	list := make([]Type, 0, len(names))
	for i, name := range names {
		t, err := registry.Resolve(name)
		if err != nil {
			return ParameterList{}, fmt.Errorf("第 %d 个参数类型 %q 解析失败: %w", i, name, err)
		}
		list = append(list, t)
	}
	return ParameterList{list: list}, nil
}

// Len 返回参数个数
func (p ParameterList) Len() int {
	return len(p.list)
}

// IsEmpty 检查参数列表是否为空
func (p ParameterList) IsEmpty() bool {
	return len(p.list) == 0
}

// Types 返回类型序列的副本
func (p ParameterList) Types() []Type {
	cp := make([]Type, len(p.list))
	copy(cp, p.list)
	return cp
}

// Words 返回整个列表编码占用的32字节字数量
func (p ParameterList) Words() int {
	total := 0
	for _, t := range p.list {
		total += t.Words()
	}
	return total
}

// Canonical 返回逗号连接的规范类型名（空列表为空字符串）
func (p ParameterList) Canonical() string {
	names := make([]string, len(p.list))
	for i, t := range p.list {
		names[i] = t.CanonicalName()
	}
	return strings.Join(names, ",")
}

// Encode 将参数值按声明顺序批量编码
//
// 值与类型按位置配对；个数不一致时返回 ErrArityMismatch，
// 不产生任何字节。各值的编码字按声明顺序首尾拼接
// （范围内全部是静态类型，没有偏移/尾部段）。
func (p ParameterList) Encode(values []interface{}) (types.HexData, error) {
	if len(values) != len(p.list) {
		return types.HexData{}, fmt.Errorf("%w: 期望 %d 个参数, 实际 %d 个",
			ErrArityMismatch, len(p.list), len(values))
	}

	encoded := types.HexData{}
	for i, t := range p.list {
		words, err := t.Encode(values[i])
		if err != nil {
			return types.HexData{}, fmt.Errorf("第 %d 个参数（%s）编码失败: %w",
				i, t.CanonicalName(), err)
		}
		for _, w := range words {
			encoded = encoded.Concat(w.Data())
		}
	}
	return encoded, nil
}

// Decode 将编码数据按声明顺序批量解码
//
// 依次为每个类型消费固定数量的32字节字；数据不足返回 ErrTruncated，
// 消费完毕后仍有剩余字节返回 ErrTrailingData。
func (p ParameterList) Decode(data types.HexData) ([]interface{}, error) {
	expected := p.Words() * constants.WordSize
	if data.Size() < expected {
		return nil, fmt.Errorf("%w: 期望 %d 字节, 实际 %d 字节",
			ErrTruncated, expected, data.Size())
	}
	if data.Size() > expected {
		return nil, fmt.Errorf("%w: 期望 %d 字节, 实际 %d 字节",
			ErrTrailingData, expected, data.Size())
	}

	raw := data.Bytes()
	values := make([]interface{}, 0, len(p.list))
	offset := 0
	for i, t := range p.list {
		words := make([]types.Hex32, 0, t.Words())
		for w := 0; w < t.Words(); w++ {
			word, err := types.Hex32FromBytes(raw[offset : offset+constants.WordSize])
			if err != nil {
				return nil, err
			}
			words = append(words, word)
			offset += constants.WordSize
		}

		value, err := t.Decode(words)
		if err != nil {
			return nil, fmt.Errorf("第 %d 个参数（%s）解码失败: %w",
				i, t.CanonicalName(), err)
		}
		values = append(values, value)
	}
	return values, nil
}
