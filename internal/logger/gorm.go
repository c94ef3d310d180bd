package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's SQL tracing through the zerolog logger
type GormLogger struct {
	log           *Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// Gorm returns a gorm logger.Interface whose verbosity follows the logger's
// level: debug traces every statement, info and warn report slow statements
// and errors, anything above only errors.
func (l *Logger) Gorm(slowThreshold time.Duration) *GormLogger {
	level := gormlogger.Error
	switch {
	case l.Level() <= zerolog.DebugLevel:
		level = gormlogger.Info
	case l.Level() <= zerolog.WarnLevel:
		level = gormlogger.Warn
	case l.Level() == zerolog.Disabled:
		level = gormlogger.Silent
	}
	return &GormLogger{log: l, level: level, slowThreshold: slowThreshold}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.log.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.log.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.log.zl.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm.query.failed")
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm.query.slow")
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.log.Debug().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm.query")
	}
}
