package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
}

// LevelToggler is implemented by loggers whose level can be switched at
// runtime between debug and info.
type LevelToggler interface {
	Level() zapcore.Level
	SetLevel(index int)
	ToggleLevel()
}

// levels cycled by ToggleLevel
var toggleLevels = []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel}

type Logx struct {
	level       zap.AtomicLevel
	levelIndex  int
	dev         bool
	console     bool
	sugarLogger *zap.SugaredLogger
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	l := &Logx{level: zap.NewAtomicLevelAt(lvl), levelIndex: -1, dev: dev, console: console}
	for i, tl := range toggleLevels {
		if tl == lvl {
			l.levelIndex = i
		}
	}
	return l
}

// NewNop returns an initialized logger that drops everything.
func NewNop() *Logx {
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.sugarLogger = zap.NewNop().Sugar()
	return l
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[lvl]
	if !exist {
		return zapcore.DebugLevel
	}

	return level
}

// InitLogger builds the zap core. Console loggers write to stdout and
// ignore w.
func (l *Logx) InitLogger(w io.Writer) {
	var logWriter zapcore.WriteSyncer
	if l.console {
		logWriter = zapcore.AddSync(os.Stdout)
	} else {
		logWriter = zapcore.AddSync(w)
	}
	l.initCore(logWriter)
}

func (l *Logx) initCore(ws zapcore.WriteSyncer) {
	var encoderCfg zapcore.EncoderConfig
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}

	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, ws, l.level)
	l.attach(core)
}

func (l *Logx) attach(core zapcore.Core) {
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	l.sugarLogger = logger.Sugar()
}

func (l *Logx) Sync() error {
	return l.sugarLogger.Sync()
}

// ---- Level ----

func (l *Logx) Level() zapcore.Level {
	return l.level.Level()
}

// SetLevel selects toggleLevels[index] modulo the cycle length.
func (l *Logx) SetLevel(index int) {
	n := len(toggleLevels)
	l.levelIndex = ((index % n) + n) % n
	lvl := toggleLevels[l.levelIndex]
	l.level.SetLevel(lvl)
	l.sugarLogger.Infof("logging level set to %s", lvl.CapitalString())
}

func (l *Logx) ToggleLevel() {
	l.SetLevel(l.levelIndex + 1)
}

// ---- Logger ----

func (l *Logx) Debug(args ...interface{}) {
	l.sugarLogger.Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugarLogger.Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugarLogger.Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugarLogger.Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugarLogger.Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugarLogger.Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugarLogger.Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugarLogger.Errorf(template, args...)
}

func (l *Logx) Fatal(args ...interface{}) {
	l.sugarLogger.Fatal(args...)
}

func (l *Logx) Fatalf(template string, args ...interface{}) {
	l.sugarLogger.Fatalf(template, args...)
}
