// Package crypt ties the keystream generator and the substitution
// cipher together behind grid- and file-level entry points.
package crypt

import (
	"context"
	"fmt"

	"github.com/san-kum/chaoscrypt/internal/chaos"
	"github.com/san-kum/chaoscrypt/internal/cipher"
	"github.com/san-kum/chaoscrypt/internal/imageio"
	"github.com/san-kum/chaoscrypt/internal/pixel"
)

// Default output paths when the caller supplies none.
const (
	DefaultEncryptedPath = "./encrypted.png"
	DefaultDecryptedPath = "./decrypted.png"
)

// Key is the full secret: the logistic-map seed and control
// parameter. Decryption must present the exact pair used to encrypt.
type Key struct {
	Seed float64
	R    float64
}

// Observer receives cosmetic progress notices. Not part of the
// transform contract.
type Observer interface {
	OnStart(op string, height, width int)
	OnDone(op string, outPath string)
}

// Engine runs encrypt/decrypt operations with a fixed worker count.
type Engine struct {
	workers   int
	observers []Observer

	// Progress, when set, receives chunk-level row counts during the
	// transform. May be called from multiple goroutines.
	Progress cipher.ProgressFunc
}

func New(workers int) *Engine {
	return &Engine{workers: workers}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// EncryptGrid derives a keystream of one byte per pixel and applies
// the substitution. The input grid is not modified.
func (e *Engine) EncryptGrid(ctx context.Context, g *pixel.Grid, key Key) (*pixel.Grid, error) {
	return e.transform(ctx, "encrypt", g, key)
}

// DecryptGrid is EncryptGrid: the substitution is self-inverse, so
// re-deriving the same keystream undoes it.
func (e *Engine) DecryptGrid(ctx context.Context, g *pixel.Grid, key Key) (*pixel.Grid, error) {
	return e.transform(ctx, "decrypt", g, key)
}

func (e *Engine) transform(ctx context.Context, op string, g *pixel.Grid, key Key) (*pixel.Grid, error) {
	for _, o := range e.observers {
		o.OnStart(op, g.Height, g.Width)
	}

	keys, err := chaos.GenerateKeys(key.Seed, key.R, g.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := cipher.TransformProgress(ctx, g, keys, e.workers, e.Progress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// EncryptFile loads the image at inPath, encrypts it, and writes the
// result to outPath (default ./encrypted.png). Validation happens
// before any output file is created.
func (e *Engine) EncryptFile(ctx context.Context, inPath, outPath string, key Key) error {
	if outPath == "" {
		outPath = DefaultEncryptedPath
	}
	return e.transformFile(ctx, "encrypt", inPath, outPath, key, e.EncryptGrid)
}

// DecryptFile is the path-based decryption entry point: it delegates
// decoding to the image loader, then applies the grid-based decrypt.
func (e *Engine) DecryptFile(ctx context.Context, inPath, outPath string, key Key) error {
	if outPath == "" {
		outPath = DefaultDecryptedPath
	}
	return e.transformFile(ctx, "decrypt", inPath, outPath, key, e.DecryptGrid)
}

func (e *Engine) transformFile(
	ctx context.Context,
	op, inPath, outPath string,
	key Key,
	fn func(context.Context, *pixel.Grid, Key) (*pixel.Grid, error),
) error {
	g, err := imageio.Load(inPath)
	if err != nil {
		return err
	}

	out, err := fn(ctx, g, key)
	if err != nil {
		return err
	}

	if err := imageio.Save(outPath, out); err != nil {
		return err
	}

	for _, o := range e.observers {
		o.OnDone(op, outPath)
	}
	return nil
}
