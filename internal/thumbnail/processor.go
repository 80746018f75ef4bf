// Package thumbnail turns uploaded images into fixed-size PNG
// thumbnails: decode, EXIF orientation correction, aspect-preserving
// resize, centered composite onto a transparent canvas.
package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"employee-records-api/internal/adapters/storage"
)

// Default bounding box and key layout
const (
	DefaultBoxWidth  = 120
	DefaultBoxHeight = 160
	DefaultPrefix    = "thumbnails/"
)

// Outcome classifies what Process did with an event
type Outcome int

const (
	// OutcomeStored means a thumbnail was written
	OutcomeStored Outcome = iota

	// OutcomeSkipped means the source could not be fetched or decoded;
	// the event is dropped without producing output
	OutcomeSkipped

	// OutcomeFailed means the thumbnail was produced but could not be
	// uploaded
	OutcomeFailed
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the typed outcome of processing one object notification
type Result struct {
	Outcome Outcome
	DestKey string
	Err     error
}

// Options configures a Processor. Zero values fall back to the package
// defaults; an empty DestBucket writes thumbnails back to the source
// bucket.
type Options struct {
	DestBucket string
	Prefix     string
	BoxWidth   int
	BoxHeight  int
}

// Processor fetches source images and writes resized thumbnails
type Processor struct {
	storage    storage.ObjectStorage
	destBucket string
	prefix     string
	boxWidth   int
	boxHeight  int
	logger     *logrus.Logger
}

// NewProcessor creates a thumbnail processor over the given object
// storage
func NewProcessor(store storage.ObjectStorage, opts Options, logger *logrus.Logger) *Processor {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.BoxWidth <= 0 {
		opts.BoxWidth = DefaultBoxWidth
	}
	if opts.BoxHeight <= 0 {
		opts.BoxHeight = DefaultBoxHeight
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Processor{
		storage:    store,
		destBucket: opts.DestBucket,
		prefix:     opts.Prefix,
		boxWidth:   opts.BoxWidth,
		boxHeight:  opts.BoxHeight,
		logger:     logger,
	}
}

// Process turns the object at bucket/key into a thumbnail under the
// configured prefix. Fetch and decode failures are swallowed (Skipped);
// upload failures surface in the result (Failed).
func (p *Processor) Process(ctx context.Context, bucket, key string) Result {
	log := p.logger.WithFields(logrus.Fields{
		"bucket": bucket,
		"key":    key,
	})

	data, err := p.storage.Retrieve(ctx, bucket, key)
	if err != nil {
		log.WithError(err).Warn("Unable to fetch image, skipping")
		return Result{Outcome: OutcomeSkipped, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.WithError(err).Warn("Unable to decode image, skipping")
		return Result{Outcome: OutcomeSkipped, Err: err}
	}

	if orientation := readOrientation(data); orientation != 0 {
		img = orientImage(img, orientation)
	}

	thumb := p.compose(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		log.WithError(err).Warn("Unable to encode thumbnail, skipping")
		return Result{Outcome: OutcomeSkipped, Err: err}
	}

	destBucket := p.destBucket
	if destBucket == "" {
		destBucket = bucket
	}
	destKey := thumbnailKey(p.prefix, key)

	err = p.storage.Store(ctx, destBucket, destKey, buf.Bytes(), &storage.StoreOptions{
		ContentType: "image/png",
	})
	if err != nil {
		log.WithError(err).Error("Unable to upload thumbnail")
		return Result{Outcome: OutcomeFailed, DestKey: destKey, Err: err}
	}

	log.WithField("dest_key", destKey).Info("Thumbnail saved")
	return Result{Outcome: OutcomeStored, DestKey: destKey}
}

// compose scales the image to fit the bounding box and centers it on a
// transparent canvas of exactly the box size.
func (p *Processor) compose(img image.Image) image.Image {
	bounds := img.Bounds()
	newWidth, newHeight := fitDimensions(bounds.Dx(), bounds.Dy(), p.boxWidth, p.boxHeight)

	if newWidth != bounds.Dx() || newHeight != bounds.Dy() {
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	canvas := imaging.New(p.boxWidth, p.boxHeight, color.NRGBA{})
	offset := image.Pt((p.boxWidth-newWidth)/2, (p.boxHeight-newHeight)/2)
	return imaging.Paste(canvas, img, offset)
}

// fitDimensions computes the scaled size preserving aspect ratio. A
// source already smaller than the box in both dimensions keeps its
// size; otherwise the limiting dimension (picked by comparing aspect
// ratios) is scaled to the box and the other follows proportionally,
// truncated toward zero.
func fitDimensions(width, height, boxWidth, boxHeight int) (int, int) {
	if width < boxWidth && height < boxHeight {
		return width, height
	}

	destRatio := float64(boxWidth) / float64(boxHeight)
	srcRatio := float64(width) / float64(height)

	if destRatio > srcRatio {
		return int(float64(width) * float64(boxHeight) / float64(height)), boxHeight
	}
	return boxWidth, int(float64(height) * float64(boxWidth) / float64(width))
}

// thumbnailKey derives the destination key: path stripped to basename,
// extension rewritten to .png, placed under the prefix.
func thumbnailKey(prefix, key string) string {
	base := path.Base(key)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return prefix + base + ".png"
}
