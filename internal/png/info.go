package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// ImageInfo contains metadata parsed from a PNG datastream.
type ImageInfo struct {
	Width     int
	Height    int
	BitDepth  int
	ColorType int
	Chunks    []string // chunk type tags in file order
	DataSize  int      // total IDAT payload bytes
}

// ColorTypeName returns a human-readable name for a PNG color type.
func ColorTypeName(ct int) string {
	switch ct {
	case 0:
		return "Grayscale"
	case 2:
		return "Truecolor"
	case 3:
		return "Indexed"
	case 4:
		return "GrayscaleAlpha"
	case 6:
		return "TruecolorAlpha"
	default:
		return fmt.Sprintf("ColorType(%d)", ct)
	}
}

// GetInfo reads PNG metadata, verifying the signature and every chunk's CRC
// without decompressing pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, fmt.Errorf("not a PNG: bad signature")
	}

	info := &ImageInfo{}
	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 12 {
			return nil, fmt.Errorf("truncated chunk at offset %d", off)
		}
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		tag := string(data[off+4 : off+8])
		if len(data)-off-12 < length {
			return nil, fmt.Errorf("chunk %s at offset %d: payload truncated", tag, off)
		}
		payload := data[off+8 : off+8+length]
		stored := binary.BigEndian.Uint32(data[off+8+length : off+12+length])
		if sum := crc32.ChecksumIEEE(data[off+4 : off+8+length]); sum != stored {
			return nil, fmt.Errorf("chunk %s: CRC mismatch (stored %08x, computed %08x)", tag, stored, sum)
		}

		if len(info.Chunks) == 0 && tag != "IHDR" {
			return nil, fmt.Errorf("first chunk is %s, expected IHDR", tag)
		}
		info.Chunks = append(info.Chunks, tag)

		switch tag {
		case "IHDR":
			if length != 13 {
				return nil, fmt.Errorf("IHDR: expected 13 payload bytes, got %d", length)
			}
			info.Width = int(binary.BigEndian.Uint32(payload[0:4]))
			info.Height = int(binary.BigEndian.Uint32(payload[4:8]))
			info.BitDepth = int(payload[8])
			info.ColorType = int(payload[9])
		case "IDAT":
			info.DataSize += length
		case "IEND":
			if length != 0 {
				return nil, fmt.Errorf("IEND: expected empty payload, got %d bytes", length)
			}
		}
		off += 12 + length
	}

	if len(info.Chunks) == 0 {
		return nil, fmt.Errorf("no chunks after signature")
	}
	if info.Chunks[len(info.Chunks)-1] != "IEND" {
		return nil, fmt.Errorf("missing IEND chunk")
	}
	return info, nil
}
