package main

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/chroma"
)

// InspectApp decodes an artifact and prints it.
type InspectApp struct {
	Input   string
	Decoder themec.Decoder
	Writer  themec.ArtifactWriter
	Out     io.Writer
}

// Run decodes Input and renders it to Out.
func (a *InspectApp) Run() error {
	artifact, err := decodeFile(a.Decoder, a.Input)
	if err != nil {
		return err
	}
	return a.Writer.Write(a.Out, artifact)
}

// PreviewApp decodes an artifact and opens it in a viewer.
type PreviewApp struct {
	Input   string
	Decoder themec.Decoder
	Viewer  themec.Viewer
}

// Run decodes Input and blocks until the viewer exits.
func (a *PreviewApp) Run(ctx context.Context) error {
	artifact, err := decodeFile(a.Decoder, a.Input)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, artifact)
}

func decodeFile(d themec.Decoder, path string) (*themec.Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return d.Decode(f)
}

// loadSample reads the preview code sample at path, or returns the builtin
// sample when path is empty. The language is detected from the file name or
// its content.
func loadSample(path string) (themec.Sample, error) {
	if path == "" {
		return chroma.DefaultSample, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return themec.Sample{}, err
	}
	return chroma.NewDetector().Sample(path, string(src)), nil
}
