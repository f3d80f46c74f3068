package logger_test

import (
	"context"
	"seoguard/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantDebug   bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, wantDebug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, wantDebug: false},
		{name: "explicit level wins", environment: logger.DevelopmentEnvironment, level: "warn", wantDebug: false},
		{name: "invalid level", environment: logger.ProductionEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
			require.Equal(t, tt.wantDebug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("requestID", "abc"))
	logger.Info(ctx, "proxied")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "proxied", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["requestID"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
