package thumbnail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ironsheep/archive-thumbnailer/internal/archive"
	"github.com/ironsheep/archive-thumbnailer/internal/imaging"
)

// Default thumbnail bounds in pixels.
const (
	DefaultMaxWidth  = 256
	DefaultMaxHeight = 256
)

// Generator turns the first image inside an archive into a PNG thumbnail.
//
// A Generator holds no per-call state; each Generate call opens and closes
// its own archive.
type Generator struct {
	fs        afero.Fs
	logger    *zap.Logger
	maxWidth  int
	maxHeight int
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem used to read archives and write thumbnails.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMaxSize sets the bounding box the thumbnail must fit in.
func WithMaxSize(width, height int) Option {
	return func(g *Generator) {
		g.maxWidth = width
		g.maxHeight = height
	}
}

// New creates a Generator. Without options it uses the OS filesystem, a
// no-op logger and 256x256 bounds.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:        afero.NewOsFs(),
		logger:    zap.NewNop(),
		maxWidth:  DefaultMaxWidth,
		maxHeight: DefaultMaxHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes a PNG thumbnail of the first qualifying image in the
// archive at input to output, replacing any existing file.
//
// Pipeline failures are returned as *Error. Cancellation of ctx is checked
// between steps and returned unclassified, wrapping ctx.Err().
//
// Output is only created once the thumbnail has been encoded, so failures
// before the write step leave no file behind.
func (g *Generator) Generate(ctx context.Context, input, output string) error {
	kind := archive.KindFromPath(input)
	if kind == archive.KindUnsupported {
		return newError(UnsupportedFormat, ErrUnsupportedFormat)
	}

	logger := g.logger.With(zap.String("input", input), zap.Stringer("kind", kind))

	a, err := archive.Open(g.fs, input, kind)
	if err != nil {
		return newError(ArchiveError, err)
	}
	defer a.Close()
	logger.Debug("archive opened")

	names := a.Names()
	name, ok := SelectEntry(names)
	if !ok {
		logger.Debug("no qualifying entry", zap.Int("entries", len(names)))
		return newError(NoImageFound, ErrNoImageFound)
	}
	logger = logger.With(zap.String("entry", name))
	logger.Debug("entry selected", zap.Int("entries", len(names)))

	if err := ctx.Err(); err != nil {
		return canceled(err)
	}

	data, err := a.ReadFile(name)
	if err != nil {
		return newError(ArchiveError, err)
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return newError(DecodeError, fmt.Errorf("%s: %w", name, err))
	}
	src := imaging.Info(img)
	logger.Debug("image decoded",
		zap.Int("width", src.Width),
		zap.Int("height", src.Height),
		zap.Bool("has_alpha", src.HasAlpha),
	)

	if err := ctx.Err(); err != nil {
		return canceled(err)
	}

	thumb := imaging.Fit(img, g.maxWidth, g.maxHeight)
	logger.Debug("image resized",
		zap.Int("width", thumb.Bounds().Dx()),
		zap.Int("height", thumb.Bounds().Dy()),
	)

	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, thumb); err != nil {
		return newError(IOError, err)
	}

	if err := ctx.Err(); err != nil {
		return canceled(err)
	}

	if err := afero.WriteFile(g.fs, output, buf.Bytes(), 0644); err != nil {
		return newError(IOError, fmt.Errorf("failed to write thumbnail: %w", err))
	}
	logger.Debug("thumbnail written", zap.String("output", output), zap.Int("bytes", buf.Len()))

	return nil
}

func canceled(err error) error {
	return fmt.Errorf("thumbnail generation canceled: %w", err)
}
