package abi

import (
	"testing"

	"github.com/weisyn/contract-abi/internal/core/infrastructure/crypto/hash"
	"github.com/weisyn/contract-abi/pkg/types"
)

// mustHex32 从字节切片构造Hex32，失败直接终止测试
func mustHex32(t *testing.T, raw []byte) types.Hex32 {
	t.Helper()
	word, err := types.Hex32FromBytes(raw)
	if err != nil {
		t.Fatalf("构造Hex32失败: %v", err)
	}
	return word
}

// wordsOf 把若干Hex32包装为字序列
func wordsOf(words ...types.Hex32) []types.Hex32 {
	return words
}

// newTestCodec 创建使用真实Keccak摘要的Codec
func newTestCodec() *Codec {
	return NewCodec(hash.NewHashService())
}
