// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/board"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/config"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/render"
)

// Pipeline is one invocation: read the board at Source, print it, annotate
// it, print the result and write it to Config.Output.
// Nothing is written when the board fails to parse.
type Pipeline struct {
	Source string
	Config config.Config
	Out    io.Writer
	Logger *zap.Logger
}

// Run executes the pipeline synchronously.
func (p Pipeline) Run() error {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("source", p.Source))

	b, err := board.FromFile(p.Source)
	if err != nil {
		logger.Warn("board rejected", zap.Error(err))
		return err
	}
	logger.Info("board loaded",
		zap.Int("width", b.Width),
		zap.Int("height", b.Height),
		zap.Int("mines", b.MineCount()),
	)

	style := p.Config.RenderStyle()
	if !p.Config.HideOriginal {
		if err := render.Write(p.Out, b, style); err != nil {
			return fmt.Errorf("print board: %w", err)
		}
		if _, err := fmt.Fprintln(p.Out); err != nil {
			return fmt.Errorf("print board: %w", err)
		}
	}

	b.Annotate()
	logger.Debug("board annotated", zap.Bool("has_counts", b.Annotated()))
	if err := render.Write(p.Out, b, style); err != nil {
		return fmt.Errorf("print annotated board: %w", err)
	}

	if p.Config.DryRun {
		logger.Info("dry run, output not written", zap.String("output", p.Config.Output))
		return nil
	}
	if err := b.ToFile(p.Config.Output); err != nil {
		logger.Warn("export failed", zap.String("output", p.Config.Output), zap.Error(err))
		return err
	}
	logger.Info("board exported", zap.String("output", p.Config.Output))
	return nil
}
