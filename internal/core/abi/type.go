package abi

import (
	"github.com/weisyn/contract-abi/pkg/types"
)

// Type 定义单个ABI类型的编解码能力
//
// 每个具体类型在构造时完成参数化（位宽、符号性等），之后不可变，
// 可跨任意多次编解码调用并发复用。
//
// 新的类型族（动态数组、字符串、元组等）通过实现本接口并向注册表
// 挂接解析器来扩展，而不是修改既有实现。
type Type interface {
	// CanonicalName 返回类型的规范名称（如 uint256、int8、bool）
	//
	// 规范名称不含同义写法：裸 uint 在解析时被接受，
	// 但规范名称始终携带显式位宽。
	CanonicalName() string

	// IsStatic 报告类型的编码尺寸是否固定
	//
	// 本核心范围内的全部类型都是静态的；动态类型（bytes、string、T[]）
	// 是预留的扩展点。
	IsStatic() bool

	// Words 返回编码占用的32字节字数量（仅对静态类型有意义）
	Words() int

	// Encode 将语言层的值编码为若干个32字节字
	//
	// 取值范围校验发生在产生任何字节之前；越界值返回 ErrOutOfRange，
	// 不受支持的Go类型返回 ErrBadValue。
	Encode(value interface{}) ([]types.Hex32, error)

	// Decode 将32字节字序列解码回语言层的值
	//
	// 解码出的值会复验类型自身的取值范围，越界同样返回 ErrOutOfRange；
	// 这是对上游畸形或恶意数据的防御，而不仅是本地编码错误的检查。
	Decode(words []types.Hex32) (interface{}, error)
}

// TypeParser 尝试把一个规范类型名解析为具体Type
//
// 返回值约定（区分"不是我的类型"与"是我的类型但写错了"）：
//   - (type, true, nil)：名称属于本类型族且合法
//   - (nil, false, nil)：名称与本类型族的前缀完全不匹配
//   - (nil, true, err)：前缀匹配但实例非法（如 uint257、uintx）
type TypeParser func(name string) (Type, bool, error)
