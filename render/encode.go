package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/shieldchart/shield"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the encoding written by Encode.
type Format string

const (
	// FormatSVG is plain SVG markup.
	FormatSVG Format = "svg"
	// FormatSVGZ is gzip-compressed SVG.
	FormatSVGZ Format = "svgz"
)

// ParseFormat maps a name to a Format; the empty name means FormatSVG.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatSVGZ:
		return FormatSVGZ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode writes the drawing of s to w in format f.
func Encode(w io.Writer, s shield.Shield, f Format) error {
	doc := SVG(s)
	switch f {
	case FormatSVG, "":
		_, err := io.WriteString(w, doc)
		return err
	case FormatSVGZ:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(zw, doc); err != nil {
			_ = zw.Close()
			return err
		}

		return zw.Close()
	default:
		return fmt.Errorf("Encode: %w: %q", ErrUnknownFormat, string(f))
	}
}
