package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int, asPNG bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	var buf bytes.Buffer
	if asPNG {
		png.Encode(&buf, img)
	} else {
		jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	}
	return buf.Bytes()
}

func TestPrepareJPEG(t *testing.T) {
	data, mime, err := Prepare(bytes.NewReader(encodeTestImage(t, 100, 100, false)))
	if err != nil {
		t.Fatalf("Prepare JPEG: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", mime)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestPreparePNGConvertedToJPEG(t *testing.T) {
	_, mime, err := Prepare(bytes.NewReader(encodeTestImage(t, 100, 100, true)))
	if err != nil {
		t.Fatalf("Prepare PNG: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg (output is always JPEG), got %s", mime)
	}
}

func TestPrepareDownscale(t *testing.T) {
	data, _, err := Prepare(bytes.NewReader(encodeTestImage(t, 2600, 1400, false)))
	if err != nil {
		t.Fatalf("Prepare large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareSmallPhotoNotUpscaled(t *testing.T) {
	data, _, err := Prepare(bytes.NewReader(encodeTestImage(t, 60, 40, false)))
	if err != nil {
		t.Fatalf("Prepare small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 60 || bounds.Dy() != 40 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareInvalidFormat(t *testing.T) {
	if _, _, err := Prepare(bytes.NewReader([]byte("not a photo"))); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestPrepareGIFRejected(t *testing.T) {
	if _, _, err := Prepare(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF")
	}
}
