package abi

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHasher 可替换的摘要实现，验证摘要函数确实是注入点
type fakeHasher struct {
	lastInput []byte
}

func (f *fakeHasher) SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (f *fakeHasher) Keccak256(data []byte) []byte {
	f.lastInput = append([]byte(nil), data...)
	// 确定性的假摘要：固定前缀 + 输入长度
	out := make([]byte, 32)
	out[0], out[1], out[2], out[3] = 0xde, 0xad, 0xbe, byte(len(data))
	return out
}

func TestCodecUsesInjectedDigest(t *testing.T) {
	hasher := &fakeHasher{}
	codec := NewCodec(hasher)

	method, err := codec.ParseMethod("baz(uint32,bool)")
	require.NoError(t, err)

	// 摘要输入是规范签名文本的UTF-8字节
	assert.Equal(t, "baz(uint32,bool)", string(hasher.lastInput))

	// 选择器取摘要前4字节
	expected := []byte{0xde, 0xad, 0xbe, byte(len("baz(uint32,bool)"))}
	assert.Equal(t, expected, method.ID().Bytes())
}

func TestCodecCustomRegistry(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register(ParseBoolType)
	codec := NewCodecWithRegistry(&fakeHasher{}, reg)

	assert.Same(t, reg, codec.Registry())

	_, err := codec.ParseMethod("flip(bool)")
	assert.NoError(t, err)

	// 定制注册表中没有数值类型
	_, err = codec.ParseMethod("set(uint256)")
	assert.ErrorIs(t, err, ErrUnknownType)
}
