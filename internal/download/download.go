// Package download turns rendered posters into self-contained download links.
package download

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"image"
	"image/png"
	"strings"
)

const (
	DefaultFilename = "poster.png"
	ContentType     = "image/png"

	dataURIPrefix = "data:" + ContentType + ";base64,"
	linkLabel     = "📥 Download Poster"
)

var ErrInvalidLink = errors.New("not a poster download link")

// EncodePNG serializes img losslessly as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI returns img as a base64 PNG data URI.
func DataURI(img image.Image) (string, error) {
	b, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(b), nil
}

// Link returns an HTML anchor that downloads img as filename when activated.
// An empty filename means DefaultFilename. The output is deterministic.
func Link(img image.Image, filename string) (string, error) {
	uri, err := DataURI(img)
	if err != nil {
		return "", err
	}
	return LinkFromURI(uri, filename), nil
}

// LinkFromURI wraps a data URI from DataURI in a download anchor.
func LinkFromURI(uri, filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}
	return fmt.Sprintf(`<a href="%s" download="%s">%s</a>`, uri, html.EscapeString(filename), linkLabel)
}

// DecodeLink extracts and decodes the image embedded in a link produced by Link.
func DecodeLink(link string) (image.Image, error) {
	start := strings.Index(link, dataURIPrefix)
	if start < 0 {
		return nil, ErrInvalidLink
	}
	payload := link[start+len(dataURIPrefix):]
	end := strings.IndexByte(payload, '"')
	if end < 0 {
		return nil, ErrInvalidLink
	}
	b, err := base64.StdEncoding.DecodeString(payload[:end])
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}
