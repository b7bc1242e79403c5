package upload

import (
	"testing"
)

var pngHead = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestValidateMediaBySniffPNG(t *testing.T) {
	mime, err := ValidateMediaBySniff("photo.png", pngHead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("expected image/png, got %q", mime)
	}
}

func TestValidateMediaBySniffRejectsUnknownExtension(t *testing.T) {
	if _, err := ValidateMediaBySniff("script.exe", pngHead); err == nil {
		t.Fatalf("expected error for disallowed extension")
	}
}

func TestValidateMediaBySniffRejectsHTML(t *testing.T) {
	if _, err := ValidateMediaBySniff("fake.png", []byte("<html><body>hi</body></html>")); err == nil {
		t.Fatalf("expected error for HTML content")
	}
}

func TestValidateMediaBySniffRejectsSVG(t *testing.T) {
	if _, err := ValidateMediaBySniff("image.png", []byte(`<?xml version="1.0"?><svg></svg>`)); err == nil {
		t.Fatalf("expected error for XML content")
	}
}

func TestValidateMediaBySniffOctetStreamTrustsExtension(t *testing.T) {
	// MP4 headers often sniff as application/octet-stream
	head := make([]byte, 16)
	mime, err := ValidateMediaBySniff("clip.mp4", head)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime != "video/mp4" {
		t.Fatalf("expected video/mp4, got %q", mime)
	}
}
