// wes-abi-codec 合约ABI编解码命令行工具
//
// 在不经过节点的情况下完成：方法选择器派生、调用数据编码、
// 返回数据解码。编码结果可直接填入RPC调用的参数字段。
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	logconfig "github.com/weisyn/contract-abi/internal/config/log"
	"github.com/weisyn/contract-abi/internal/core/abi"
	"github.com/weisyn/contract-abi/internal/core/infrastructure/crypto"
	"github.com/weisyn/contract-abi/internal/core/infrastructure/log"
	logintf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/contract-abi/pkg/types"
	"go.uber.org/fx"
)

var (
	codec  *abi.Codec
	logger logintf.Logger

	flagVerbose bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "wes-abi-codec",
	Short: "合约ABI编解码工具",
	Long: `WES 合约ABI编解码工具

基于方法签名完成选择器派生、调用数据编码与返回数据解码:
  wes-abi-codec selector "transfer(address,uint256)"
  wes-abi-codec encode-call "baz(uint32,bool)" 69 true
  wes-abi-codec decode "get():(uint256)" 0x00...2a

签名语法: name(inputTypes)[:(outputTypes)]，类型间以单个逗号分隔、不含空格。`,
}

// selectorCmd 派生方法选择器
var selectorCmd = &cobra.Command{
	Use:   "selector <signature>",
	Short: "派生方法选择器",
	Long:  "从方法签名派生4字节选择器（规范签名Keccak-256摘要的前4字节）",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := codec.ParseMethod(args[0])
		if err != nil {
			return fmt.Errorf("签名解析失败: %w", err)
		}

		if flagVerbose {
			logger.Infof("规范签名: %s", method.ABISignature())
		}
		fmt.Println(method.ID().Hex())
		return nil
	},
}

// encodeCallCmd 编码调用数据
var encodeCallCmd = &cobra.Command{
	Use:   "encode-call <signature> [args...]",
	Short: "编码调用数据",
	Long:  "按方法签名编码参数, 输出 选择器||编码参数 形式的完整调用数据",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := codec.ParseMethod(args[0])
		if err != nil {
			return fmt.Errorf("签名解析失败: %w", err)
		}

		values, err := parseArguments(method.Inputs(), args[1:])
		if err != nil {
			return err
		}

		callData, err := method.EncodeCall(values...)
		if err != nil {
			return fmt.Errorf("调用编码失败: %w", err)
		}

		if flagVerbose {
			logger.Infof("方法: %s, 选择器: %s, 参数字节: %d",
				method.ABISignature(), method.ID().Hex(), callData.Size()-4)
		}
		fmt.Println(callData.Hex())
		return nil
	},
}

// decodeCmd 解码返回数据
var decodeCmd = &cobra.Command{
	Use:   "decode <signature> <hex-data>",
	Short: "解码返回数据",
	Long:  "按方法签名的输出类型列表解码返回数据",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := codec.ParseMethod(args[0])
		if err != nil {
			return fmt.Errorf("签名解析失败: %w", err)
		}

		data, err := types.HexDataFromString(args[1])
		if err != nil {
			return fmt.Errorf("返回数据解析失败: %w", err)
		}

		values, err := method.DecodeResponse(data)
		if err != nil {
			return fmt.Errorf("返回数据解码失败: %w", err)
		}

		for i, v := range values {
			fmt.Printf("%d: %v\n", i, formatValue(v))
		}
		return nil
	},
}

// parseArguments 把命令行文本参数转换为各类型期望的值
func parseArguments(params abi.ParameterList, raw []string) ([]interface{}, error) {
	list := params.Types()
	if len(raw) != len(list) {
		return nil, fmt.Errorf("参数数量不匹配: 签名声明 %d 个, 命令行提供 %d 个", len(list), len(raw))
	}

	values := make([]interface{}, len(raw))
	for i, t := range list {
		v, err := parseArgument(t, raw[i])
		if err != nil {
			return nil, fmt.Errorf("第 %d 个参数 %q 解析失败: %w", i, raw[i], err)
		}
		values[i] = v
	}
	return values, nil
}

// parseArgument 按目标类型解析单个文本参数
func parseArgument(t abi.Type, raw string) (interface{}, error) {
	switch t.(type) {
	case *abi.NumericType:
		// 接受十进制与0x十六进制写法
		v, ok := new(big.Int).SetString(strings.TrimPrefix(raw, "0x"), base(raw))
		if !ok {
			return nil, fmt.Errorf("不是合法的整数: %q", raw)
		}
		return v, nil
	case *abi.BoolType:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, fmt.Errorf("不是合法的布尔值: %q（期望 true/false）", raw)
		}
	case *abi.AddressType:
		data, err := types.HexDataFromString(raw)
		if err != nil {
			return nil, err
		}
		return data, nil
	default:
		return nil, fmt.Errorf("类型 %s 暂无命令行参数解析", t.CanonicalName())
	}
}

// base 根据前缀选择整数进制
func base(raw string) int {
	if strings.HasPrefix(raw, "0x") {
		return 16
	}
	return 10
}

// formatValue 渲染解码结果
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case *big.Int:
		return value.String()
	case types.HexData:
		return value.Hex()
	default:
		return fmt.Sprintf("%v", value)
	}
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(logconfig.New(nil)),
		log.Module(),
		crypto.Module(),
		abi.Module(),
		fx.Populate(&codec, &logger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "输出详细诊断信息")
	rootCmd.AddCommand(selectorCmd, encodeCallCmd, decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
