package abi

import (
	"fmt"
)

// Registry 类型名到Type的解析注册表
//
// 内部是一条有序的解析器链：Resolve 依次询问每个解析器，
// 第一个认领该名称的解析器决定结果。
//
// 并发约定：注册表在进程启动阶段装配完成，之后只读；
// 只读访问无需加锁。Register 不是并发安全的，
// 动态注册不在本核心的职责范围内。
type Registry struct {
	parsers []TypeParser
}

// NewRegistry 创建预装标准解析器的注册表（数值、bool、address）
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(ParseNumericType)
	r.Register(ParseBoolType)
	r.Register(ParseAddressType)
	return r
}

// NewEmptyRegistry 创建空注册表（供测试或定制类型集使用）
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register 向解析器链末尾追加一个解析器
//
// 仅限启动阶段调用，编码/解码流量开始后不得再修改。
func (r *Registry) Register(parser TypeParser) {
	r.parsers = append(r.parsers, parser)
}

// Resolve 将规范类型名解析为Type
//
// 没有解析器认领名称时返回 ErrUnknownType；解析器认领但实例非法时
// （如 uint257）返回该解析器的错误。
func (r *Registry) Resolve(name string) (Type, error) {
	for _, parser := range r.parsers {
		t, claimed, err := parser(name)
		if !claimed {
			continue
		}
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
