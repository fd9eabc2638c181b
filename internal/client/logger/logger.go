// logger - логер консольного клиента HealthPulse.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// ClientLog будет доступен всему коду клиента как синглтон.
// По умолчанию установлен no-op-логер: вывод команд не смешивается с логами.
var ClientLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует синглтон логера. Если задан logFile, логи пишутся в файл,
// иначе в stderr в консольном формате.
func Initialize(level, logFile string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if logFile != "" {
		// файл логов дописывается между запусками команд
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		cfg = zap.NewProductionConfig()
		cfg.Level = lvl
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	ClientLog = zl.With(zap.String("role", "client"))
	return nil
}
