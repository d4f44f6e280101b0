package media

import (
	"errors"
	"testing"
)

func TestClassifyImages(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.heic", "e.HEIC", "f.arw", "g.tiff", "h.gif"} {
		category, err := Classify(name, false)
		if err != nil {
			t.Fatalf("Classify(%q): %v", name, err)
		}
		if category != CategoryImage {
			t.Fatalf("Classify(%q) = %v, want image", name, category)
		}
	}
}

func TestClassifyVideos(t *testing.T) {
	for _, name := range []string{"a.mp4", "b.mov", "c.MOV", "d.mkv", "e.avi", "f.m4v"} {
		category, err := Classify(name, false)
		if err != nil {
			t.Fatalf("Classify(%q): %v", name, err)
		}
		if category != CategoryVideo {
			t.Fatalf("Classify(%q) = %v, want video", name, category)
		}
	}
}

func TestClassifyRejections(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		isDir  bool
		reason Reason
	}{
		{name: "directory", path: "holiday", isDir: true, reason: ReasonIsDirectory},
		{name: "directory with extension", path: "holiday.jpg", isDir: true, reason: ReasonIsDirectory},
		{name: "no extension", path: "README", reason: ReasonNoExtension},
		{name: "pdf", path: "scan.pdf", reason: ReasonUnsupportedType},
		{name: "gibberish extension", path: "x.zzqq", reason: ReasonUnknownType},
		{name: "invalid utf8 name", path: "bad\xff.jpg", reason: ReasonUnresolvableName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.path, tc.isDir)
			if err == nil {
				t.Fatalf("Classify(%q) succeeded, want rejection", tc.path)
			}
			var ie *IneligibleError
			if !errors.As(err, &ie) {
				t.Fatalf("Classify(%q) returned %T, want *IneligibleError", tc.path, err)
			}
			if ie.Reason != tc.reason {
				t.Fatalf("Classify(%q) reason = %v, want %v", tc.path, ie.Reason, tc.reason)
			}
			if !Ineligible(err) {
				t.Fatalf("Ineligible(%v) = false", err)
			}
		})
	}
}

func TestClassifyNonMediaFiles(t *testing.T) {
	// Whether .txt resolves through the builtin table or the platform's
	// mime.types, it must never classify as image or video.
	for _, name := range []string{"notes.txt", "data.json", "page.html"} {
		if _, err := Classify(name, false); !Ineligible(err) {
			t.Fatalf("Classify(%q) = %v, want ineligible", name, err)
		}
	}
}

func TestClassifyNormalizesCase(t *testing.T) {
	category, err := Classify("photo.ARW", false)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if category != CategoryImage {
		t.Fatalf("Classify(photo.ARW) = %v, want image", category)
	}
}
