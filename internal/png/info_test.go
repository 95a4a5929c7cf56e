package png

import (
	"strings"
	"testing"

	"github.com/pmartell/iconforge/internal/color"
)

func TestGetInfo(t *testing.T) {
	data, err := EncodeSolid(16, color.DefaultFill)
	if err != nil {
		t.Fatalf("EncodeSolid: %v", err)
	}

	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}

	if info.Width != 16 || info.Height != 16 {
		t.Errorf("dimensions %dx%d, want 16x16", info.Width, info.Height)
	}
	if info.BitDepth != 8 {
		t.Errorf("bit depth %d, want 8", info.BitDepth)
	}
	if info.ColorType != 6 {
		t.Errorf("color type %d, want 6 (truecolor with alpha)", info.ColorType)
	}
	if got := strings.Join(info.Chunks, " "); got != "IHDR IDAT IEND" {
		t.Errorf("chunk order %q, want \"IHDR IDAT IEND\"", got)
	}
	if info.DataSize == 0 {
		t.Error("expected nonzero IDAT payload")
	}
	t.Logf("16x16: %d chunks, %d compressed bytes", len(info.Chunks), info.DataSize)
}

func TestGetInfoDetectsCorruption(t *testing.T) {
	data, err := EncodeSolid(8, color.DefaultFill)
	if err != nil {
		t.Fatalf("EncodeSolid: %v", err)
	}

	// Flip a byte inside the IDAT chunk. IEND is the trailing 12 bytes.
	data[len(data)-13] ^= 0xFF
	if _, err := GetInfo(data); err == nil {
		t.Fatal("expected CRC mismatch, got nil")
	} else if !strings.Contains(err.Error(), "CRC mismatch") {
		t.Fatalf("expected CRC mismatch error, got: %v", err)
	}
}

func TestGetInfoTruncated(t *testing.T) {
	data, err := EncodeSolid(8, color.DefaultFill)
	if err != nil {
		t.Fatalf("EncodeSolid: %v", err)
	}
	if _, err := GetInfo(data[:len(data)-4]); err == nil {
		t.Fatal("expected error for truncated file, got nil")
	}
}

func TestGetInfoRejectsNonPNG(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("GIF89a"), []byte("\xFF\xD8\xFF\xE0 not a png at all")} {
		if _, err := GetInfo(data); err == nil {
			t.Errorf("GetInfo(%q): expected error, got nil", data)
		}
	}
}

func TestColorTypeName(t *testing.T) {
	if got := ColorTypeName(6); got != "TruecolorAlpha" {
		t.Errorf("ColorTypeName(6) = %q", got)
	}
	if got := ColorTypeName(42); got != "ColorType(42)" {
		t.Errorf("ColorTypeName(42) = %q", got)
	}
}
