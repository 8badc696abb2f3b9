package transfer

import (
	"testing"
)

func TestPropertiesDefaults(t *testing.T) {
	root := t.TempDir()

	// Only the name is transmitted; everything else defaults
	f, err := NewFromProperties(root, Properties{propName: "doc.txt"}, 16)
	if err != nil {
		t.Fatalf("NewFromProperties: %v", err)
	}

	if f.Size() != 0 {
		t.Errorf("expected zero size, got %d", f.Size())
	}
	if f.ReadOnly() {
		t.Error("expected read_only to default to false")
	}
	if f.Executable() {
		t.Error("expected executable to default to false")
	}
	if f.Created() != 0 || f.LastRead() != 0 || f.LastModified() != 0 {
		t.Errorf("expected zero timestamps, got %d/%d/%d",
			f.Created(), f.LastRead(), f.LastModified())
	}
}

func TestPropertiesFullBag(t *testing.T) {
	root := t.TempDir()

	f, err := NewFromProperties(root, Properties{
		propName:         "a/b.txt",
		propSize:         int64(42),
		propReadOnly:     true,
		propExecutable:   true,
		propCreated:      int64(1600000000000),
		propLastRead:     int64(1650000000000),
		propLastModified: int64(1700000000000),
	}, 16)
	if err != nil {
		t.Fatalf("NewFromProperties: %v", err)
	}

	if f.Name() != "a/b.txt" {
		t.Errorf("name: got %q", f.Name())
	}
	if f.Size() != 42 {
		t.Errorf("size: got %d", f.Size())
	}
	if !f.ReadOnly() || !f.Executable() {
		t.Errorf("flags: got read_only=%v executable=%v", f.ReadOnly(), f.Executable())
	}
	if f.Created() != 1600000000000 || f.LastRead() != 1650000000000 || f.LastModified() != 1700000000000 {
		t.Errorf("timestamps: got %d/%d/%d", f.Created(), f.LastRead(), f.LastModified())
	}
}

func TestPropertiesWeaklyTyped(t *testing.T) {
	root := t.TempDir()

	// JSON transports deliver numbers as float64 and sometimes bools as strings
	f, err := NewFromProperties(root, Properties{
		propName:         "doc.txt",
		propSize:         float64(1024),
		propReadOnly:     "true",
		propLastModified: float64(1700000000000),
	}, 16)
	if err != nil {
		t.Fatalf("NewFromProperties: %v", err)
	}

	if f.Size() != 1024 {
		t.Errorf("size: got %d", f.Size())
	}
	if !f.ReadOnly() {
		t.Error("expected read_only true from string input")
	}
	if f.LastModified() != 1700000000000 {
		t.Errorf("last_modified: got %d", f.LastModified())
	}
}

func TestPropertiesRoundTrip(t *testing.T) {
	root := t.TempDir()

	in := Properties{
		propName:         "x/y/z.bin",
		propSize:         int64(7),
		propExecutable:   true,
		propLastModified: int64(1700000000000),
	}
	f, err := NewFromProperties(root, in, 16)
	if err != nil {
		t.Fatalf("NewFromProperties: %v", err)
	}

	out := f.Properties()
	g, err := NewFromProperties(root, out, 16)
	if err != nil {
		t.Fatalf("NewFromProperties(round-trip): %v", err)
	}

	if g.Metadata() != f.Metadata() {
		t.Errorf("round-trip mismatch: %+v vs %+v", g.Metadata(), f.Metadata())
	}
}
