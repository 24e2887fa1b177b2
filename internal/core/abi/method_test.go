package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContractMethod(t *testing.T) {
	codec := newTestCodec()

	method, err := codec.ParseMethod("transfer(address,uint256)")
	require.NoError(t, err)

	assert.Equal(t, "transfer", method.Name())
	assert.Equal(t, 2, method.Inputs().Len())
	assert.True(t, method.Outputs().IsEmpty())
	assert.False(t, method.IsConstant())
	// 知名选择器：transfer(address,uint256) → 0xa9059cbb
	assert.Equal(t, "0xa9059cbb", method.ID().Hex())
}

func TestParseContractMethodWithOutputs(t *testing.T) {
	codec := newTestCodec()

	method, err := codec.ParseMethod("balanceOf(address):(uint256)")
	require.NoError(t, err)

	assert.Equal(t, "balanceOf", method.Name())
	assert.Equal(t, 1, method.Inputs().Len())
	assert.Equal(t, 1, method.Outputs().Len())
	assert.Equal(t, "balanceOf(address):(uint256)", method.ABISignature())

	// 选择器只依赖名称与输入类型，输出子句不参与派生
	bare, err := codec.ParseMethod("balanceOf(address)")
	require.NoError(t, err)
	assert.True(t, method.ID().Equal(bare.ID()))
}

func TestParseContractMethodGrammarErrors(t *testing.T) {
	codec := newTestCodec()

	testCases := []struct {
		name      string
		signature string
	}{
		{"空格代替逗号", "transfer(address uint256)"},
		{"重复冒号", "foo()::()"},
		{"缺少括号", "foo"},
		{"缺少闭括号", "foo(uint256"},
		{"输出缺少括号", "foo():uint256"},
		{"尾部多余内容", "foo()bar"},
		{"输出后多余内容", "foo():(uint256)x"},
		{"非法方法名", "9foo()"},
		{"空方法名", "(uint256)"},
		{"嵌套括号", "foo((uint256))"},
		{"类型列表中的冒号", "foo(uint256:bool)"},
		{"空白字符", "foo( )"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.ParseMethod(tc.signature)
			require.Errorf(t, err, "%q 应解析失败", tc.signature)
			assert.ErrorIs(t, err, ErrSignature)
		})
	}
}

func TestParseContractMethodUnknownType(t *testing.T) {
	codec := newTestCodec()

	// 语法正确但类型未知：错误类别是未知类型而非签名格式
	_, err := codec.ParseMethod("foo(string)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.NotErrorIs(t, err, ErrSignature)

	_, err = codec.ParseMethod("foo():(string)")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestNewContractMethodValidation(t *testing.T) {
	codec := newTestCodec()

	_, err := codec.NewMethod(MethodConfig{})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = codec.NewMethod(MethodConfig{Name: "9bad"})
	assert.ErrorIs(t, err, ErrSignature)

	method, err := codec.NewMethod(MethodConfig{Name: "_ok"})
	require.NoError(t, err)
	assert.Equal(t, "_ok()", method.ABISignature())
}

func TestMethodSelectorDeterminism(t *testing.T) {
	codec := newTestCodec()
	params, err := codec.ParseParameters("uint32,bool")
	require.NoError(t, err)

	first := codec.MethodID("baz", params)
	second := codec.MethodID("baz", params)
	assert.True(t, first.Equal(second), "相同输入必须产生相同选择器")

	other := codec.MethodID("bar", params)
	assert.False(t, first.Equal(other), "不同名称应产生不同选择器")

	noParams := codec.MethodID("baz", NewParameterList())
	assert.False(t, first.Equal(noParams), "不同输入类型应产生不同选择器")
}

func TestEncodeCallBazFixture(t *testing.T) {
	// 规范回归基准：baz(uint32,bool) 以 (69, true) 调用
	codec := newTestCodec()

	method, err := codec.ParseMethod("baz(uint32,bool)")
	require.NoError(t, err)
	require.Equal(t, "0xcdcd77c0", method.ID().Hex())

	callData, err := method.EncodeCall(big.NewInt(69), true)
	require.NoError(t, err)

	expected := "0xcdcd77c0" +
		"0000000000000000000000000000000000000000000000000000000000000045" +
		"0000000000000000000000000000000000000000000000000000000000000001"
	assert.Equal(t, expected, callData.Hex())
	assert.Equal(t, 4+64, callData.Size())
}

func TestEncodeCallPropagatesErrors(t *testing.T) {
	codec := newTestCodec()
	method, err := codec.ParseMethod("baz(uint32,bool)")
	require.NoError(t, err)

	_, err = method.EncodeCall(big.NewInt(69))
	assert.ErrorIs(t, err, ErrArityMismatch)

	_, err = method.EncodeCall(big.NewInt(-1), true)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDecodeResponse(t *testing.T) {
	codec := newTestCodec()
	method, err := codec.ParseMethod("getPair():(uint256,bool)")
	require.NoError(t, err)

	encoded, err := method.Outputs().Encode([]interface{}{big.NewInt(42), true})
	require.NoError(t, err)

	values, err := method.DecodeResponse(encoded)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Zero(t, big.NewInt(42).Cmp(values[0].(*big.Int)))
	assert.Equal(t, true, values[1])
}

func TestABISignatureRendering(t *testing.T) {
	codec := newTestCodec()

	testCases := []string{
		"foo()",
		"baz(uint32,bool)",
		"transfer(address,uint256)",
		"balanceOf(address):(uint256)",
		"swap(uint256,uint256):(uint256,bool)",
	}

	// 签名文本经 解析→渲染 往返保持不变
	for _, signature := range testCases {
		t.Run(signature, func(t *testing.T) {
			method, err := codec.ParseMethod(signature)
			require.NoError(t, err)
			assert.Equal(t, signature, method.ABISignature())
			assert.Equal(t, signature, method.String())
		})
	}
}

func TestContractMethodEqualityBySelector(t *testing.T) {
	// 刻意保留的约定：相等性只看选择器。名称与输入相同而输出类型、
	// 常量标记不同的两个声明是同一个方法。
	codec := newTestCodec()
	inputs, err := codec.ParseParameters("uint256")
	require.NoError(t, err)
	outputs, err := codec.ParseParameters("bool")
	require.NoError(t, err)

	plain, err := codec.NewMethod(MethodConfig{Name: "set", Inputs: inputs})
	require.NoError(t, err)

	richer, err := codec.NewMethod(MethodConfig{
		Name:     "set",
		Constant: true,
		Inputs:   inputs,
		Outputs:  outputs,
	})
	require.NoError(t, err)

	assert.True(t, plain.Equal(richer), "常量标记与输出类型不参与相等性")
	assert.True(t, plain.ID().Equal(richer.ID()))

	// 名称或输入不同则不相等
	renamed, err := codec.NewMethod(MethodConfig{Name: "put", Inputs: inputs})
	require.NoError(t, err)
	assert.False(t, plain.Equal(renamed))

	reTyped, err := codec.NewMethod(MethodConfig{Name: "set"})
	require.NoError(t, err)
	assert.False(t, plain.Equal(reTyped))

	assert.False(t, plain.Equal(nil))
}

func TestMethodConfigConstant(t *testing.T) {
	codec := newTestCodec()

	method, err := codec.NewMethod(MethodConfig{Name: "totalSupply", Constant: true})
	require.NoError(t, err)
	assert.True(t, method.IsConstant())
}
