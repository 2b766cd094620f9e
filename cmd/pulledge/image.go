package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/pulledge/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// openSource returns a reader over the source image, be it a local file, an URL or stdin.
// The returned cleanup function should be called once the image was decoded.
func openSource(src string) (io.Reader, func(), error) {
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {
			f.Close()
			os.Remove(f.Name())
		}, nil
	}
	if src == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	ctype, err := utils.DetectContentType(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !strings.HasPrefix(ctype, "image") {
		f.Close()
		return nil, nil, fmt.Errorf("%s is not an image file: %s", src, ctype)
	}
	return f, func() { f.Close() }, nil
}

// loadContent decodes the source image and scales it to the given width, keeping its aspect ratio.
func loadContent(src string, width int) (image.Image, error) {
	r, cleanup, err := openSource(src)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	if img.Bounds().Dx() != width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return img, nil
}

// placeholder generates a striped content when no source image is provided.
func placeholder(width, height, stripe int) image.Image {
	img := imaging.New(width, height, stripeColors[0])
	for y := stripe; y < height; y += 2 * stripe {
		band := imaging.New(width, stripe, stripeColors[1])
		img = imaging.Paste(img, band, image.Pt(0, y))
	}
	return img
}
