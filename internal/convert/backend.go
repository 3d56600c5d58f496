// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/paperscan/internal/container"
	"github.com/pdiddy/paperscan/pkg/types"
)

const (
	binPdftotext   = "pdftotext"
	defaultImage   = "pdftotext:latest"
	defaultBackend = types.BackendPdftotext
)

// pdftotextArgs keeps the physical layout so column indentation survives.
var pdftotextArgs = []string{"-layout", "-enc", "UTF-8"}

// NewConverter returns the converter selected by cfg.Backend. Backends that
// need an external tool are checked before returning.
func NewConverter(ctx context.Context, cfg types.ConversionConfig) (Converter, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = defaultBackend
	}

	switch backend {
	case types.BackendPdftotext:
		return NewPdftotextConverter()
	case types.BackendPdftotextContainer:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return nil, err
		}
		image := cfg.Image
		if image == "" {
			image = defaultImage
		}
		return NewContainerConverter(ctx, rt, image)
	case types.BackendFitz:
		return &FitzConverter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// commandRunner abstracts running the pdftotext binary for testing.
type commandRunner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Output(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// PdftotextConverter runs the poppler pdftotext binary found on PATH.
type PdftotextConverter struct {
	bin    string
	runner commandRunner
}

// NewPdftotextConverter verifies that pdftotext is installed.
func NewPdftotextConverter() (*PdftotextConverter, error) {
	return newPdftotextConverter(osRunner{})
}

func newPdftotextConverter(r commandRunner) (*PdftotextConverter, error) {
	bin, err := r.LookPath(binPdftotext)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextConverter{bin: bin, runner: r}, nil
}

// Convert runs pdftotext on pdfPath and returns its standard output.
func (p *PdftotextConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	args := append(append([]string{}, pdftotextArgs...), pdfPath, "-")
	stdout, stderr, err := p.runner.Output(ctx, p.bin, args...)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("converting %s with pdftotext: %w: %s", pdfPath, err, msg)
		}
		return "", fmt.Errorf("converting %s with pdftotext: %w", pdfPath, err)
	}
	return string(stdout), nil
}

// ContainerConverter pipes PDFs through pdftotext inside a container image.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter verifies that image exists in rt.
func NewContainerConverter(ctx context.Context, rt container.Runtime, image string) (*ContainerConverter, error) {
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert streams pdfPath into the container and returns the extracted text.
func (c *ContainerConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	args := append(append([]string{binPdftotext}, pdftotextArgs...), "-", "-")
	var out bytes.Buffer
	if err := c.runtime.Run(ctx, c.image, args, f, &out); err != nil {
		return "", fmt.Errorf("converting %s in container: %w", pdfPath, err)
	}
	return out.String(), nil
}
