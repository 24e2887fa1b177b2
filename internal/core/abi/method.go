package abi

import (
	"fmt"

	"github.com/weisyn/contract-abi/pkg/constants"
	cryptointf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/contract-abi/pkg/types"
)

// ContractMethod 合约方法（名称 + 常量标记 + 输入/输出参数列表）
//
// 通过校验式构造（MethodConfig）或签名文本解析创建，之后全部字段不可变；
// 方法选择器在构造时从规范输入签名派生一次，终生不变。
//
// 相等性约定（刻意保留的设计）：两个方法相等当且仅当选择器相等。
// 选择器是 名称+规范输入类型名 的纯函数，因此常量标记和输出类型
// 不参与相等性判断，详见 Equal。
type ContractMethod struct {
	id       types.MethodID
	name     string
	constant bool
	inputs   ParameterList
	outputs  ParameterList
}

// MethodConfig 方法构造配置
//
// Name 为必填项；其余字段零值即合理默认
// （非常量、无输入、无输出）。
type MethodConfig struct {
	// Name 方法名称，必须匹配 [_a-zA-Z]\w*
	Name string
	// Constant 标记方法是否不改变合约状态
	Constant bool
	// Inputs 输入参数类型列表
	Inputs ParameterList
	// Outputs 输出参数类型列表
	Outputs ParameterList
}

// DeriveMethodID 从方法名与规范输入类型名派生选择器
//
// 算法：name + "(" + 逗号连接的规范输入类型名（无空格） + ")" 的UTF-8
// 字节串经注入的摘要函数求摘要，取前4字节。
func DeriveMethodID(hasher cryptointf.HashManager, name string, inputs ParameterList) types.MethodID {
	signature := name + "(" + inputs.Canonical() + ")"
	digest := hasher.Keccak256([]byte(signature))

	id, _ := types.MethodIDFromBytes(digest[:constants.SelectorSize])
	return id
}

// NewContractMethod 按配置创建方法对象
//
// 名称缺失返回 ErrMissingName，名称不合语法返回 ErrSignature。
func NewContractMethod(hasher cryptointf.HashManager, config MethodConfig) (*ContractMethod, error) {
	if config.Name == "" {
		return nil, ErrMissingName
	}
	if !isValidMethodName(config.Name) {
		return nil, fmt.Errorf("%w: 方法名 %q 不匹配 [_a-zA-Z]\\w*", ErrSignature, config.Name)
	}

	return &ContractMethod{
		id:       DeriveMethodID(hasher, config.Name, config.Inputs),
		name:     config.Name,
		constant: config.Constant,
		inputs:   config.Inputs,
		outputs:  config.Outputs,
	}, nil
}

// ParseContractMethod 从ABI签名文本解析方法对象
//
// 语法：name(inputTypes)[:(outputTypes)]，输出子句可选。
// 不合语法返回 ErrSignature；语法正确但引用了未知类型时
// 传播注册表的解析错误。
func ParseContractMethod(hasher cryptointf.HashManager, registry *Registry, signature string) (*ContractMethod, error) {
	name, inputsText, outputsText, err := splitSignature(signature)
	if err != nil {
		return nil, err
	}

	inputs, err := ParseParameters(registry, inputsText)
	if err != nil {
		return nil, fmt.Errorf("签名 %q 的输入类型解析失败: %w", signature, err)
	}

	outputs, err := ParseParameters(registry, outputsText)
	if err != nil {
		return nil, fmt.Errorf("签名 %q 的输出类型解析失败: %w", signature, err)
	}

	return NewContractMethod(hasher, MethodConfig{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
	})
}

// ID 返回方法选择器
func (m *ContractMethod) ID() types.MethodID {
	return m.id
}

// Name 返回方法名称
func (m *ContractMethod) Name() string {
	return m.name
}

// IsConstant 报告方法是否不改变合约状态
func (m *ContractMethod) IsConstant() bool {
	return m.constant
}

// Inputs 返回输入参数类型列表
func (m *ContractMethod) Inputs() ParameterList {
	return m.inputs
}

// Outputs 返回输出参数类型列表
func (m *ContractMethod) Outputs() ParameterList {
	return m.outputs
}

// EncodeCall 编码一次方法调用
//
// 输入参数按声明顺序编码后前置选择器，结果即可直接提交给传输层的
// 调用数据：selector(4字节) || encoded-arguments。
func (m *ContractMethod) EncodeCall(values ...interface{}) (types.HexData, error) {
	encoded, err := m.inputs.Encode(values)
	if err != nil {
		return types.HexData{}, fmt.Errorf("方法 %s 的调用编码失败: %w", m.ABISignature(), err)
	}
	return m.id.Call(encoded), nil
}

// DecodeResponse 解码方法的返回数据
func (m *ContractMethod) DecodeResponse(data types.HexData) ([]interface{}, error) {
	values, err := m.outputs.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("方法 %s 的返回数据解码失败: %w", m.ABISignature(), err)
	}
	return values, nil
}

// ABISignature 渲染ABI签名文本
//
// 始终渲染 name(inputs)；仅当输出列表非空时追加 :(outputs)。
func (m *ContractMethod) ABISignature() string {
	signature := fmt.Sprintf("%s(%s)", m.name, m.inputs.Canonical())
	if !m.outputs.IsEmpty() {
		signature += fmt.Sprintf(":(%s)", m.outputs.Canonical())
	}
	return signature
}

// String 实现fmt.Stringer接口
func (m *ContractMethod) String() string {
	return m.ABISignature()
}

// Equal 按选择器比较两个方法
//
// 选择器是 名称+规范输入类型名 的纯函数，所以这等价于按名称与输入
// 类型比较；常量标记与输出类型不参与比较。名称和输入相同而输出不同
// 的两个声明会被视为同一个方法——这是沿用的既有约定，调用方若需要
// 完整的结构相等需自行比较 Outputs 与 IsConstant。
func (m *ContractMethod) Equal(other *ContractMethod) bool {
	if other == nil {
		return false
	}
	return m.id.Equal(other.id)
}

// isValidMethodName 检查方法名是否匹配 [_a-zA-Z]\w*
func isValidMethodName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// splitSignature 手写的签名文本识别器
//
// 语法（与ABI签名约定逐字符对齐，刻意不用正则表达式实现）：
//
//	signature = name "(" typeList ")" [ ":(" typeList ")" ]
//	name      = [_a-zA-Z][_a-zA-Z0-9]*
//	typeList  = 不含 '(' ')' ':' 及空白字符的任意文本（逗号分隔语义由
//	            ParseParameters 负责）
//
// 任何偏离（缺括号、空白、重复冒号、尾部多余字符）都返回 ErrSignature。
func splitSignature(signature string) (name, inputs, outputs string, err error) {
	pos := 0

	// 方法名
	for pos < len(signature) && signature[pos] != '(' {
		pos++
	}
	name = signature[:pos]
	if !isValidMethodName(name) {
		return "", "", "", fmt.Errorf("%w: %q 缺少合法的方法名", ErrSignature, signature)
	}

	// 输入类型列表
	inputs, pos, err = scanTypeList(signature, pos)
	if err != nil {
		return "", "", "", err
	}

	// 可选的输出子句
	if pos == len(signature) {
		return name, inputs, "", nil
	}
	if signature[pos] != ':' {
		return "", "", "", fmt.Errorf("%w: %q 第 %d 个字符处存在多余内容", ErrSignature, signature, pos)
	}

	outputs, pos, err = scanTypeList(signature, pos+1)
	if err != nil {
		return "", "", "", err
	}
	if pos != len(signature) {
		return "", "", "", fmt.Errorf("%w: %q 第 %d 个字符处存在多余内容", ErrSignature, signature, pos)
	}
	return name, inputs, outputs, nil
}

// scanTypeList 从 pos 处的 '(' 扫描到配对的 ')'，返回括号内文本
func scanTypeList(signature string, pos int) (string, int, error) {
	if pos >= len(signature) || signature[pos] != '(' {
		return "", 0, fmt.Errorf("%w: %q 第 %d 个字符处期望 '('", ErrSignature, signature, pos)
	}

	start := pos + 1
	for i := start; i < len(signature); i++ {
		switch c := signature[i]; {
		case c == ')':
			return signature[start:i], i + 1, nil
		case c == '(' || c == ':':
			return "", 0, fmt.Errorf("%w: %q 的类型列表中不允许出现 %q", ErrSignature, signature, string(c))
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return "", 0, fmt.Errorf("%w: %q 的类型列表中不允许出现空白字符", ErrSignature, signature)
		}
	}
	return "", 0, fmt.Errorf("%w: %q 的类型列表缺少闭合的 ')'", ErrSignature, signature)
}
