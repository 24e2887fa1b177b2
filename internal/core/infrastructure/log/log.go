// Package log 提供基于zap的日志记录器实现
// 支持不同级别的日志记录、结构化日志和日志轮转
package log

import (
	"os"

	logconfig "github.com/weisyn/contract-abi/internal/config/log"
	logintf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 确保Logger实现了logintf.Logger接口
var _ logintf.Logger = (*Logger)(nil)

// Logger 日志记录器，实现了logintf.Logger接口
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
}

// New 根据配置创建日志记录器
func New(config *logconfig.Config) (*Logger, error) {
	options := config.GetOptions()
	level := config.ZapLevel()

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	var cores []zapcore.Core

	if options.ToConsole {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level))
	}

	if options.FilePath != "" {
		// 文件输出经lumberjack做大小/份数/天数三维轮转
		fileWriter := &lumberjack.Logger{
			Filename:   options.FilePath,
			MaxSize:    options.MaxSize,
			MaxBackups: options.MaxBackups,
			MaxAge:     options.MaxAge,
			Compress:   options.Compress,
		}
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), level))
	}

	if len(cores) == 0 {
		// 控制台和文件都关掉时退化为丢弃输出，保持接口可用
		cores = append(cores, zapcore.NewNopCore())
	}

	var zapOptions []zap.Option
	if options.EnableCaller {
		zapOptions = append(zapOptions, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zapOptions...)
	return &Logger{
		zapLogger: zapLogger,
		sugar:     zapLogger.Sugar(),
	}, nil
}

// NewDefault 创建使用默认配置的日志记录器
func NewDefault() (*Logger, error) {
	return New(logconfig.New(nil))
}

// Debug 记录调试级别的日志
func (l *Logger) Debug(msg string) {
	l.sugar.Debug(msg)
}

// Debugf 使用格式化字符串记录调试级别的日志
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info 记录信息级别的日志
func (l *Logger) Info(msg string) {
	l.sugar.Info(msg)
}

// Infof 使用格式化字符串记录信息级别的日志
func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn 记录警告级别的日志
func (l *Logger) Warn(msg string) {
	l.sugar.Warn(msg)
}

// Warnf 使用格式化字符串记录警告级别的日志
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error 记录错误级别的日志
func (l *Logger) Error(msg string) {
	l.sugar.Error(msg)
}

// Errorf 使用格式化字符串记录错误级别的日志
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatal 记录致命级别的日志，然后退出程序
func (l *Logger) Fatal(msg string) {
	l.sugar.Fatal(msg)
}

// Fatalf 使用格式化字符串记录致命级别的日志，然后退出程序
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// With 返回一个带有额外字段的Logger
func (l *Logger) With(args ...interface{}) logintf.Logger {
	sugar := l.sugar.With(args...)
	return &Logger{
		zapLogger: sugar.Desugar(),
		sugar:     sugar,
	}
}

// Sync 同步日志缓冲区到输出
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// GetZapLogger 获取原始的zap日志记录器
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zapLogger
}
