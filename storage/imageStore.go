package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotAnImage = errors.New("uploaded file is not a supported image")

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore persists an uploaded image and returns the URL clients use to fetch it.
type ImageStore interface {
	Save(ctx context.Context, image Image) (string, error)
}

// Image is an uploaded file whose content type has been sniffed.
type Image struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// DetectImage sniffs the content of r, rejects anything that is not an allowed
// image type and rewinds r so it can be stored.
func DetectImage(r io.ReadSeeker) (Image, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return Image{}, fmt.Errorf("detect content type: %w", err)
	}
	ext, ok := allowedImageTypes[mtype.String()]
	if !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrNotAnImage, mtype.String())
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Image{}, fmt.Errorf("rewind upload: %w", err)
	}
	return Image{Name: uuid.NewString() + ext, ContentType: mtype.String(), Body: r}, nil
}
