// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ L = (*zap.SugaredLogger)(nil)

// NewZap returns a console logger that writes entries at or above level to w.
//
// level is a zap level name, such as "debug", "info" or "warn". The returned
// function flushes buffered entries and should be called before exit.
func NewZap(w io.Writer, level string) (L, func(), error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	logger := zap.New(core).Sugar()

	return logger, func() { _ = logger.Sync() }, nil
}
