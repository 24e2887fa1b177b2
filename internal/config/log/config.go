// Package log 提供日志配置
package log

import (
	"go.uber.org/zap/zapcore"
)

// LogOptions 日志配置选项
// 专注于基础设施核心功能的简化配置
type LogOptions struct {
	// === 基础配置 ===
	Level     string `json:"level"`      // 日志级别 (debug, info, warn, error, fatal)
	ToConsole bool   `json:"to_console"` // 是否输出到控制台
	FilePath  string `json:"file_path"`  // 日志文件路径（为空则不写文件）

	// === 基础轮转配置 ===
	MaxSize    int  `json:"max_size"`    // 单个日志文件最大大小(MB)
	MaxBackups int  `json:"max_backups"` // 最大备份文件数
	MaxAge     int  `json:"max_age"`     // 日志文件最大保留天数
	Compress   bool `json:"compress"`    // 是否压缩历史日志文件

	// === 调试配置 ===
	EnableCaller bool `json:"enable_caller"` // 是否启用调用者信息
}

// Config 日志配置实现
type Config struct {
	options *LogOptions
}

// New 创建日志配置实现
//
// userOptions 为 nil 时使用默认配置，否则用用户配置覆盖默认值。
func New(userOptions *LogOptions) *Config {
	options := createDefaultLogOptions()
	if userOptions != nil {
		applyUserLogOptions(options, userOptions)
	}
	return &Config{options: options}
}

// GetOptions 返回日志配置选项
func (c *Config) GetOptions() *LogOptions {
	return c.options
}

// ZapLevel 将配置的级别字符串映射为zapcore.Level
func (c *Config) ZapLevel() zapcore.Level {
	switch c.options.Level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// createDefaultLogOptions 创建默认日志配置
func createDefaultLogOptions() *LogOptions {
	return &LogOptions{
		Level:        "info",
		ToConsole:    true,
		FilePath:     "",
		MaxSize:      100,
		MaxBackups:   5,
		MaxAge:       30,
		Compress:     true,
		EnableCaller: false,
	}
}

// applyUserLogOptions 用用户配置覆盖默认配置
func applyUserLogOptions(defaults, user *LogOptions) {
	if user.Level != "" {
		defaults.Level = user.Level
	}
	defaults.ToConsole = user.ToConsole
	if user.FilePath != "" {
		defaults.FilePath = user.FilePath
	}
	if user.MaxSize > 0 {
		defaults.MaxSize = user.MaxSize
	}
	if user.MaxBackups > 0 {
		defaults.MaxBackups = user.MaxBackups
	}
	if user.MaxAge > 0 {
		defaults.MaxAge = user.MaxAge
	}
	defaults.Compress = user.Compress
	defaults.EnableCaller = user.EnableCaller
}
