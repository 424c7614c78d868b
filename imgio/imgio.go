// Package imgio decodes the source images puzzles are cut from.
package imgio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadImage decodes the image at path. PNG, JPEG and GIF are understood.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Debug().Msgf("decoded %s image %s (%v)", format, path, img.Bounds().Size())
	return img, nil
}
