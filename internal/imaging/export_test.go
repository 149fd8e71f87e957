package imaging

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		tag     string
		want    Format
		wantExt string
	}{
		{"png", FormatPNG, "png"},
		{"lossless", FormatPNG, "png"},
		{"JPEG", FormatJPEG, "jpg"},
		{"jpg", FormatJPEG, "jpg"},
		{"lossy", FormatJPEG, "jpg"},
		{"icon", FormatICO, "ico"},
		{"ico", FormatICO, "ico"},
		{"gif", FormatGIF, "gif"},
		{"bmp", FormatBMP, "bmp"},
		{" pdf ", FormatPDF, "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseFormat(tt.tag)
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q): got %s, want %s", tt.tag, got, tt.want)
			}
			if got.Ext() != tt.wantExt {
				t.Errorf("Ext: got %s, want %s", got.Ext(), tt.wantExt)
			}
		})
	}

	if _, err := ParseFormat("webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(webp): got err %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormat_MimeType(t *testing.T) {
	tests := map[Format]string{
		FormatPNG:  "image/png",
		FormatJPEG: "image/jpeg",
		FormatICO:  "image/x-icon",
		FormatGIF:  "image/gif",
		FormatBMP:  "image/bmp",
		FormatPDF:  "application/pdf",
	}
	for f, want := range tests {
		if f.MimeType() != want {
			t.Errorf("%s MimeType: got %s, want %s", f, f.MimeType(), want)
		}
	}
}

// halfTransparent returns a 4x2 image, left half red, right half transparent
func halfTransparent() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	return img
}

func TestCodec_EncodePNGPreservesTransparency(t *testing.T) {
	data, err := Codec{}.Encode(halfTransparent(), FormatPNG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if _, _, _, a := img.At(3, 1).RGBA(); a != 0 {
		t.Errorf("transparent pixel alpha: got %d, want 0", a)
	}
	if r, _, _, a := img.At(0, 0).RGBA(); r>>8 != 255 || a>>8 != 255 {
		t.Errorf("red pixel: got r=%d a=%d", r>>8, a>>8)
	}
}

func TestCodec_EncodeJPEGFlattensOntoWhite(t *testing.T) {
	src := createInMemoryImage(16, 16, color.NRGBA{0, 0, 0, 0})
	data, err := Codec{JPEGQuality: 95}.Encode(src, FormatJPEG)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	r, g, b, _ := img.At(8, 8).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("transparent area: got (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestCodec_EncodeICO(t *testing.T) {
	data, err := Codec{}.Encode(halfTransparent(), FormatICO)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var header [3]uint16
	if err := binary.Read(bytes.NewReader(data[:6]), binary.LittleEndian, &header); err != nil {
		t.Fatal(err)
	}
	if header != [3]uint16{0, 1, 1} {
		t.Errorf("ICONDIR: got %v, want [0 1 1]", header)
	}
	if data[6] != 4 || data[7] != 2 {
		t.Errorf("entry size: got %dx%d, want 4x2", data[6], data[7])
	}
	size := binary.LittleEndian.Uint32(data[14:18])
	offset := binary.LittleEndian.Uint32(data[18:22])
	if offset != 22 || int(offset+size) != len(data) {
		t.Errorf("entry offset/size: got %d/%d for %d bytes", offset, size, len(data))
	}

	img, err := png.Decode(bytes.NewReader(data[offset:]))
	if err != nil {
		t.Fatalf("icon payload is not PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("payload width: got %d, want 4", img.Bounds().Dx())
	}
}

func TestCodec_EncodeICOMaxSize(t *testing.T) {
	data, err := Codec{}.Encode(image.NewNRGBA(image.Rect(0, 0, 256, 256)), FormatICO)
	if err != nil {
		t.Fatalf("Encode 256x256 failed: %v", err)
	}
	if data[6] != 0 || data[7] != 0 {
		t.Errorf("256 should be stored as 0, got %d/%d", data[6], data[7])
	}

	_, err = Codec{}.Encode(image.NewNRGBA(image.Rect(0, 0, 257, 16)), FormatICO)
	if !errors.Is(err, ErrIconTooLarge) {
		t.Errorf("Encode 257 wide: got err %v, want ErrIconTooLarge", err)
	}
}

func TestCodec_EncodeOtherFormats(t *testing.T) {
	tests := []struct {
		format Format
		magic  []byte
	}{
		{FormatGIF, []byte("GIF8")},
		{FormatBMP, []byte("BM")},
		{FormatPDF, []byte("%PDF")},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data, err := Codec{}.Encode(halfTransparent(), tt.format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.HasPrefix(data, tt.magic) {
				t.Errorf("output does not start with %q", tt.magic)
			}
		})
	}
}

func TestCodec_EncodeUnknownFormat(t *testing.T) {
	_, err := Codec{}.Encode(halfTransparent(), Format("tga"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode tga: got err %v, want ErrUnsupportedFormat", err)
	}
}

func TestNewExportResult(t *testing.T) {
	data := []byte{1, 2, 3}

	res := NewExportResult(data, FormatJPEG, 10, 20, true)
	if res.Filename != "dotart.jpg" || res.MimeType != "image/jpeg" {
		t.Errorf("naming: got %s %s", res.Filename, res.MimeType)
	}
	if res.SizeBytes != 3 || res.Width != 10 || res.Height != 20 {
		t.Errorf("sizes: got %+v", res)
	}
	decoded, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil || !bytes.Equal(decoded, data) {
		t.Errorf("base64 payload mismatch: %v", err)
	}

	if NewExportResult(data, FormatPNG, 1, 1, false).ImageBase64 != "" {
		t.Error("payload included when inline is false")
	}
}
