// Package abi implements the contract Application Binary Interface:
// canonical 32-byte-word encoding of typed values and the parsing and
// composition of contract method signatures.
package abi

import "errors"

// ============================================================================
// ABI 错误定义
// ============================================================================
//
// 错误分类：
//   - 格式错误：签名文本不合语法、字长不符
//   - 范围错误：数值超出类型声明的取值范围（编码或解码时）
//   - 数量/结构错误：参数个数不匹配、编码数据被截断、类型名无法解析
//   - 构造错误：非法位宽、缺少方法名
//
// 所有错误都在触发操作内立即检出并返回调用方；本包不做重试、不做日志、
// 不做静默截断或补齐。

var (
	// ErrOutOfRange 数值超出类型声明的取值范围
	// 编码前校验与解码后复验均可能返回此错误
	ErrOutOfRange = errors.New("数值超出类型取值范围")

	// ErrInvalidWidth 数值类型位宽非法
	// 合法位宽为8的正整数倍且不超过256；构造时即检出
	ErrInvalidWidth = errors.New("无效的位宽")

	// ErrUnknownType 类型名无法被注册表解析
	ErrUnknownType = errors.New("未知的参数类型")

	// ErrArityMismatch 参数值个数与类型列表长度不一致
	ErrArityMismatch = errors.New("参数数量不匹配")

	// ErrTruncated 解码输入不足以覆盖类型列表的全部槽位
	ErrTruncated = errors.New("编码数据不完整")

	// ErrTrailingData 解码输入在消费完全部槽位后仍有剩余字节
	ErrTrailingData = errors.New("编码数据存在多余字节")

	// ErrSignature 方法签名文本不符合 name(inputs)[:(outputs)] 语法
	ErrSignature = errors.New("方法签名格式错误")

	// ErrMissingName 构造方法对象时未提供名称
	ErrMissingName = errors.New("缺少方法名称")

	// ErrBadValue 参数值的Go类型不受目标ABI类型支持
	ErrBadValue = errors.New("参数值类型不受支持")
)
