package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexDataFromString(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
		size    int
	}{
		{"空序列", "0x", false, 0},
		{"单字节", "0xff", false, 1},
		{"多字节", "0x0123456789abcdef", false, 8},
		{"大写输入", "0xABCDEF", false, 3},
		{"缺少前缀", "ff00", true, 0},
		{"奇数位数", "0xfff", true, 0},
		{"非法字符", "0xgg", true, 0},
		{"空字符串", "", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := HexDataFromString(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("HexDataFromString(%q) 期望失败, 实际成功", tc.input)
				}
				if !errors.Is(err, ErrHexFormat) {
					t.Errorf("错误类别不是 ErrHexFormat: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("HexDataFromString(%q) 失败: %v", tc.input, err)
			}
			if data.Size() != tc.size {
				t.Errorf("Size() = %d, 期望 %d", data.Size(), tc.size)
			}
		})
	}
}

func TestHexDataHexRoundTrip(t *testing.T) {
	// 表示固定为 0x + 小写 + 2×长度个字符
	data, err := HexDataFromString("0xABCDEF")
	if err != nil {
		t.Fatal(err)
	}
	if data.Hex() != "0xabcdef" {
		t.Errorf("Hex() = %q, 期望小写 %q", data.Hex(), "0xabcdef")
	}

	back, err := HexDataFromString(data.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(data) {
		t.Error("十六进制字符串往返后值不相等")
	}
}

func TestHexDataImmutability(t *testing.T) {
	src := []byte{0x01, 0x02}
	data := NewHexData(src)

	// 修改来源切片不影响已构造的值
	src[0] = 0xff
	if data.Hex() != "0x0102" {
		t.Errorf("来源切片修改污染了HexData: %s", data.Hex())
	}

	// 修改读取结果不影响内部状态
	out := data.Bytes()
	out[0] = 0xff
	if data.Hex() != "0x0102" {
		t.Errorf("Bytes()返回值修改污染了HexData: %s", data.Hex())
	}
}

func TestHexDataConcat(t *testing.T) {
	a := NewHexData([]byte{0x01})
	b := NewHexData([]byte{0x02, 0x03})
	c := NewHexData([]byte{0x04})

	joined := a.Concat(b, c)
	if joined.Hex() != "0x01020304" {
		t.Errorf("Concat结果 = %s, 期望 0x01020304", joined.Hex())
	}

	// 连接是无副作用的
	if a.Size() != 1 || b.Size() != 2 {
		t.Error("Concat修改了输入值")
	}
}

func TestHexDataJSON(t *testing.T) {
	data := NewHexData([]byte{0xde, 0xad})
	raw, err := data.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"0xdead"` {
		t.Errorf("MarshalJSON = %s, 期望 \"0xdead\"", raw)
	}

	var back HexData
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(data) {
		t.Error("JSON往返后值不相等")
	}
}

func TestHex32SizeGate(t *testing.T) {
	valid := make([]byte, 32)
	valid[31] = 0x45

	word, err := Hex32FromBytes(valid)
	if err != nil {
		t.Fatalf("32字节输入构造失败: %v", err)
	}
	if !bytes.Equal(word.Bytes(), valid) {
		t.Error("Hex32内容与输入不一致")
	}

	for _, size := range []int{0, 1, 31, 33, 64} {
		if _, err := Hex32FromBytes(make([]byte, size)); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("%d 字节输入期望 ErrSizeMismatch, 实际 %v", size, err)
		}
	}

	// 经由HexData的构造同样把关
	if _, err := Hex32From(NewHexData([]byte{0x01})); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("短HexData期望 ErrSizeMismatch, 实际 %v", err)
	}
}

func TestHex32Hex(t *testing.T) {
	word, err := Hex32FromString("0x0000000000000000000000000000000000000000000000000000000000000045")
	if err != nil {
		t.Fatal(err)
	}
	if len(word.Hex()) != 2+64 {
		t.Errorf("Hex()长度 = %d, 期望 66", len(word.Hex()))
	}
	if word.Data().Size() != 32 {
		t.Errorf("Data().Size() = %d, 期望 32", word.Data().Size())
	}
}
