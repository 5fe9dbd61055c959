package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/themec"
)

// ErrNoOutput is returned when no output path was given.
var ErrNoOutput = errors.New("no `--output` switch found")

// ErrNoInputs is returned when no input file was given.
var ErrNoInputs = errors.New("no input file was specified")

// CompileApp merges theme documents and writes one artifact.
type CompileApp struct {
	Inputs    []string
	Output    string
	Loader    themec.DocumentLoader
	Encoder   themec.Encoder
	WriteFile func(path string, write func(w io.Writer) error) error
	Logger    *log.Logger
}

// Run loads every input in order, merges them with first-write-wins on theme
// names, and writes the artifact. The output file is only replaced when
// encoding succeeds.
func (a *CompileApp) Run() error {
	if a.Output == "" {
		return ErrNoOutput
	}
	if len(a.Inputs) == 0 {
		return ErrNoInputs
	}

	b := themec.NewContextBuilder()
	for _, src := range a.Inputs {
		doc, err := a.Loader.Load(src)
		if err != nil {
			return err
		}
		for _, theme := range doc.Themes {
			if b.AddTheme(theme) {
				a.Logger.Info("Adding theme", "theme", theme.Name, "source", src)
			} else {
				a.Logger.Debug("Skipping duplicate theme", "theme", theme.Name, "source", src)
			}
		}
	}
	ctx := b.Context()

	var written int64
	err := a.WriteFile(a.Output, func(w io.Writer) error {
		cw := &countingWriter{w: w}
		err := a.Encoder.Encode(cw, ctx)
		written = cw.n
		return err
	})
	if err != nil {
		return fmt.Errorf("compiling %s: %w", a.Output, err)
	}

	a.Logger.Info("Wrote artifact",
		"path", a.Output,
		"themes", ctx.Len(),
		"strings", themec.BuildInternTable(ctx).Len(),
		"bytes", written,
	)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
