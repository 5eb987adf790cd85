// Package generate drives outline production: it loads a source document,
// elaborates it into a queryable view and renders the requested outline as
// plain text.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/zyoshoka/typst/config"
	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/document"
	"github.com/zyoshoka/typst/outline"
	"github.com/zyoshoka/typst/render"
	"github.com/zyoshoka/typst/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	if from := cmd.String("from"); len(from) > 0 {
		if env.InputFmt, err = config.ParseInputFmt(from); err != nil {
			return err
		}
	} else if env.InputFmt, err = config.DetectInputFmt(src); err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.Stringer("format", env.InputFmt))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core generation logic independently of CLI framework.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open input source (%s): %w", src, err)
	}
	defer file.Close()

	if err := env.Rpt.StoreCopy("source"+filepath.Ext(src), src); err != nil {
		log.Warn("Unable to store source in debug report", zap.String("file", src), zap.Error(err))
	}

	loadOpts, compileOpts := env.Cfg.Document.Prepare()

	var root content.Node
	switch env.InputFmt {
	case config.InputFmtXML:
		root, err = document.LoadXML(ctx, file, loadOpts, log)
	default:
		root, err = document.LoadMarkdown(ctx, file, loadOpts, log)
	}
	if err != nil {
		return fmt.Errorf("unable to parse source (%s): %w", src, err)
	}

	view, err := document.Compile(ctx, root, compileOpts, log)
	if err != nil {
		return fmt.Errorf("unable to elaborate document: %w", err)
	}
	env.Rpt.StoreData("view.txt", []byte(view.String()))

	toc, err := outline.Build(env.Cfg.Outline.Prepare(env.Cfg.Document.Language), view, log)
	if err != nil {
		return fmt.Errorf("unable to build outline: %w", err)
	}

	text := render.Text(toc, env.Cfg.Outline.Width)
	return write(text, src, dst, env.Overwrite, log)
}

// write places the rendered outline at the destination. An empty destination
// means STDOUT, an existing directory gets a file name derived from the
// source.
func write(text, src, dst string, overwrite bool, log *zap.Logger) error {
	if len(dst) == 0 {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}

	if info, err := os.Stat(dst); err == nil && info.Mode().IsDir() {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst = filepath.Join(dst, config.CleanFileName(name)+"-toc.txt")
	}

	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write outline: %w", err)
	}
	log.Info("Outline written", zap.String("destination", dst))
	return nil
}
