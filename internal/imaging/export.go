package imaging

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// DefaultJPEGQuality is the quality used for lossy exports.
const DefaultJPEGQuality = 90

// MaxIconSize is the largest width or height an ICO entry can describe.
const MaxIconSize = 256

var (
	// ErrUnsupportedFormat is returned for an unknown export format tag.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrIconTooLarge is returned when an icon export exceeds MaxIconSize.
	ErrIconTooLarge = errors.New("image too large for icon")
)

// Format is an export encoding.
type Format string

// Export formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatICO  Format = "ico"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a format tag to a Format. Besides the format names it
// accepts "lossless" (PNG), "lossy" and "jpg" (JPEG) and "icon" (ICO).
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "png", "lossless":
		return FormatPNG, nil
	case "jpeg", "jpg", "lossy":
		return FormatJPEG, nil
	case "ico", "icon":
		return FormatICO, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
}

// Ext returns the suggested file name extension, without the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// MimeType returns the media type of the encoded output.
func (f Format) MimeType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatICO:
		return "image/x-icon"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/" + string(f)
	}
}

// ExportResult contains an encoded export.
type ExportResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      Format `json:"format"`
	MimeType    string `json:"mime_type"`
	Filename    string `json:"filename"`
	ImageBase64 string `json:"image_base64,omitempty"`
	Path        string `json:"path,omitempty"`
	SizeBytes   int    `json:"size_bytes"`
}

// NewExportResult describes encoded data; the base64 payload is included
// only when inline is true.
func NewExportResult(data []byte, f Format, width, height int, inline bool) *ExportResult {
	res := &ExportResult{
		Width:     width,
		Height:    height,
		Format:    f,
		MimeType:  f.MimeType(),
		Filename:  "dotart." + f.Ext(),
		SizeBytes: len(data),
	}
	if inline {
		res.ImageBase64 = base64.StdEncoding.EncodeToString(data)
	}
	return res
}

// Encode encodes img in format f.
//
// JPEG has no alpha channel, so transparent pixels are flattened onto white
// first. ICO output wraps a PNG and is limited to MaxIconSize on each side.
// PDF output is a single page the size of the image with the PNG embedded.
func (c Codec) Encode(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch f {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case FormatGIF:
		err = imaging.Encode(&buf, img, imaging.GIF)
	case FormatBMP:
		err = imaging.Encode(&buf, img, imaging.BMP)
	case FormatJPEG:
		err = imaging.Encode(&buf, flatten(img), imaging.JPEG, imaging.JPEGQuality(c.jpegQuality()))
	case FormatICO:
		return encodeICO(img)
	case FormatPDF:
		return encodePDF(img)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

func (c Codec) jpegQuality() int {
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return c.JPEGQuality
}

// flatten composites img over an opaque white background.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// encodeICO writes a single-image ICO container holding a PNG payload.
func encodeICO(img image.Image) ([]byte, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w > MaxIconSize || h > MaxIconSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrIconTooLarge, w, h, MaxIconSize, MaxIconSize)
	}

	var payload bytes.Buffer
	if err := imaging.Encode(&payload, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode icon image: %w", err)
	}

	const headerSize = 6 + 16
	var out bytes.Buffer
	out.Grow(headerSize + payload.Len())

	// ICONDIR: reserved, type (1 = icon), image count
	_ = binary.Write(&out, binary.LittleEndian, [3]uint16{0, 1, 1})

	// ICONDIRENTRY; a dimension of 256 is stored as 0
	entry := struct {
		Width, Height uint8
		Colors        uint8
		Reserved      uint8
		Planes        uint16
		BitCount      uint16
		Size          uint32
		Offset        uint32
	}{
		Width:    uint8(w % MaxIconSize),
		Height:   uint8(h % MaxIconSize),
		Planes:   1,
		BitCount: 32,
		Size:     uint32(payload.Len()),
		Offset:   headerSize,
	}
	_ = binary.Write(&out, binary.LittleEndian, entry)

	out.Write(payload.Bytes())
	return out.Bytes(), nil
}

// encodePDF lays the image out on one page of matching size, one point per pixel.
func encodePDF(img image.Image) ([]byte, error) {
	var payload bytes.Buffer
	if err := imaging.Encode(&payload, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode pdf image: %w", err)
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetTitle("dotart", true)
	pdf.SetCreator("dotart-mcp", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("dotart", opts, &payload)
	pdf.ImageOptions("dotart", 0, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to encode pdf: %w", err)
	}
	return out.Bytes(), nil
}
