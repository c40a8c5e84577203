package imgconv

import (
	"bytes"
	"strings"
	"testing"
)

func TestPPMRoundTrip(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 2}, {17, 5}} {
		m := pattern(sz[0], sz[1])
		var buf bytes.Buffer
		if err := EncodePPM(&buf, m); err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("P6")) {
			t.Fatalf("%q", buf.Bytes()[:2])
		}
		got, err := DecodePPM(&buf)
		if err != nil {
			t.Fatal(sz, err)
		}
		sameRGB(t, got, m)
		for y := 0; y < got.Height(); y++ {
			for _, c := range got.Row(y) {
				if c.A != 0xff {
					t.Fatal("alpha", c.A)
				}
			}
		}
	}
}

func TestPPMKeepsRGBOfTranslucentPixels(t *testing.T) {
	m := NewImage(2, 1, Color{R: 200, G: 100, B: 50, A: 0})
	var buf bytes.Buffer
	if err := EncodePPM(&buf, m); err != nil {
		t.Fatal(err)
	}
	got, err := DecodePPM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sameRGB(t, got, m)
}

func TestDecodePPMRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"GIF89a\x01\x00\x01\x00",
		"BM\x00\x00",
		"P6\n0 1\n255\n",
	} {
		m, err := DecodePPM(strings.NewReader(in))
		if err == nil || m.IsValid() {
			t.Errorf("%q: err = %v", in, err)
		}
	}
}

func TestEncodePPMInvalid(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePPM(&buf, Image{}); err != ErrInvalidImage {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatal(buf.Len())
	}
}
