package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/pmartell/iconforge/internal/color"
)

// Signature is the fixed 8-byte header that opens every PNG datastream.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	bitDepth8     = 8
	colorTypeRGBA = 6 // truecolor with alpha
)

// EncodeSolid produces a size×size truecolor-with-alpha PNG filled with a
// single color. size must be positive.
func EncodeSolid(size int, fill color.RGBA) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d: must be positive", size)
	}

	pix := make([]byte, size*size*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = fill.R
		pix[i+1] = fill.G
		pix[i+2] = fill.B
		pix[i+3] = fill.A
	}
	return EncodeRGBA(size, size, pix)
}

// EncodeRGBA encodes raw interleaved RGBA pixels (8 bits per channel,
// row-major) as a PNG. pix must be exactly width*height*4 bytes.
func EncodeRGBA(width, height int, pix []byte) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: must be positive", width, height)
	}
	expected := width * height * 4
	if len(pix) != expected {
		return nil, fmt.Errorf("expected %d RGBA bytes for %dx%d, got %d", expected, width, height, len(pix))
	}

	// Each scanline is one filter-type byte (0 = none) followed by the
	// row's pixels.
	stride := width * 4
	raster := make([]byte, 0, height*(1+stride))
	for y := 0; y < height; y++ {
		raster = append(raster, 0)
		raster = append(raster, pix[y*stride:(y+1)*stride]...)
	}

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib init: %w", err)
	}
	if _, err := zw.Write(raster); err != nil {
		return nil, fmt.Errorf("compressing raster: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flushing raster: %w", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = bitDepth8
	ihdr[9] = colorTypeRGBA
	// bytes 10-12: compression, filter and interlace methods, all zero

	var out bytes.Buffer
	out.Grow(len(Signature) + 3*12 + len(ihdr) + compressed.Len())
	out.Write(Signature)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", compressed.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

// writeChunk appends one chunk: big-endian payload length, 4-byte type tag,
// payload, then CRC-32 over tag+payload.
func writeChunk(out *bytes.Buffer, tag string, payload []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(len(payload)))
	copy(hdr[4:8], tag)
	out.Write(hdr[:])
	out.Write(payload)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	out.Write(sum[:])
}
