package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jotkit/jot/pkg/adapters/fs"
	"github.com/jotkit/jot/pkg/core"
)

// setupSlot creates a slot in a fresh temp directory.
func setupSlot(t *testing.T, opts ...func(*fs.Config)) (*fs.Slot, string) {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "notes.json")

	cfg := fs.Config{
		Path:     path,
		AutoInit: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	slot := fs.NewSlot(cfg)
	if err := slot.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return slot, path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Data Directory With AutoInit", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "data", "notes.json")

		slot := fs.NewSlot(fs.Config{Path: path, AutoInit: true})
		if err := slot.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
			t.Error("expected data directory to be created")
		}
	})

	t.Run("Fails Without AutoInit When Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "missing", "notes.json")

		slot := fs.NewSlot(fs.Config{Path: path})
		if err := slot.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when directory is missing")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Missing Slot Yields Empty Collection", func(t *testing.T) {
		slot, _ := setupSlot(t)

		if notes := slot.Load(context.Background()); len(notes) != 0 {
			t.Errorf("expected empty collection, got %d notes", len(notes))
		}
		if slot.LastError() != nil {
			t.Errorf("missing slot is not an error: %v", slot.LastError())
		}
	})

	t.Run("Corrupt Slot Degrades To Empty", func(t *testing.T) {
		slot, path := setupSlot(t)
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if notes := slot.Load(context.Background()); len(notes) != 0 {
			t.Errorf("expected empty collection, got %d notes", len(notes))
		}
		// The decode failure stays observable even though Load absorbed it.
		if slot.LastError() == nil {
			t.Error("expected the decode failure to be recorded")
		}
	})

	t.Run("NonArray JSON Degrades To Empty", func(t *testing.T) {
		slot, path := setupSlot(t)
		if err := os.WriteFile(path, []byte(`{"id":"x"}`), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if notes := slot.Load(context.Background()); len(notes) != 0 {
			t.Errorf("expected empty collection, got %d notes", len(notes))
		}
	})

	t.Run("Older Snapshots Default Missing Fields", func(t *testing.T) {
		slot, path := setupSlot(t)
		old := `[{"id":"legacy","title":"old note","content":"body",` +
			`"createdAt":"2023-01-02T15:04:05Z","updatedAt":"2023-01-02T15:04:05Z"}]`
		if err := os.WriteFile(path, []byte(old), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		notes := slot.Load(context.Background())
		if len(notes) != 1 {
			t.Fatalf("expected 1 note, got %d", len(notes))
		}
		if notes[0].Pinned || notes[0].Color != nil {
			t.Errorf("expected defaults for missing fields, got %+v", notes[0])
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	slot, _ := setupSlot(t)
	ctx := context.Background()

	color := "amber"
	want := []core.Note{
		{
			ID:        "n1",
			Title:     "first",
			Content:   "# heading\nbody",
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
			Pinned:    true,
			Color:     &color,
		},
		{
			ID:        "n2",
			CreatedAt: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
		},
	}

	slot.Save(ctx, want)
	got := slot.Load(ctx)

	if len(got) != len(want) {
		t.Fatalf("expected %d notes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title ||
			got[i].Content != want[i].Content || got[i].Pinned != want[i].Pinned {
			t.Errorf("note %d mismatch: %+v != %+v", i, got[i], want[i])
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt) || !got[i].UpdatedAt.Equal(want[i].UpdatedAt) {
			t.Errorf("note %d timestamps mismatch", i)
		}
	}
	if got[0].Color == nil || *got[0].Color != "amber" {
		t.Errorf("color tag lost in round trip")
	}
	if got[1].Color != nil {
		t.Errorf("nil color became %v", *got[1].Color)
	}

	// Save replaces, never appends.
	slot.Save(ctx, want[:1])
	if got := slot.Load(ctx); len(got) != 1 {
		t.Errorf("expected whole-collection overwrite, got %d notes", len(got))
	}
}

func TestSaveEmptyCollection(t *testing.T) {
	slot, path := setupSlot(t)
	ctx := context.Background()

	slot.Save(ctx, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("slot not written: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty JSON array, got %q", string(data))
	}
}

func TestSaveFailureIsAbsorbed(t *testing.T) {
	// Point the slot at a path whose parent cannot exist.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("file, not dir"), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	slot := fs.NewSlot(fs.Config{Path: filepath.Join(blocker, "notes.json")})
	slot.Save(context.Background(), []core.Note{{ID: "doomed"}})

	if slot.LastError() == nil {
		t.Error("expected the write failure to be recorded")
	}
	// No panic, no error surfaced: reduced durability, never a crash.
}

func TestSelfHealAfterCorruption(t *testing.T) {
	slot, path := setupSlot(t)
	ctx := context.Background()

	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if notes := slot.Load(ctx); len(notes) != 0 {
		t.Fatalf("corrupt slot should read empty, got %d", len(notes))
	}

	// The next save replaces the corrupt slot entirely.
	slot.Save(ctx, []core.Note{{ID: "fresh"}})
	notes := slot.Load(ctx)
	if len(notes) != 1 || notes[0].ID != "fresh" {
		t.Errorf("expected self-healed slot, got %v", notes)
	}
	if slot.LastError() != nil {
		t.Errorf("expected error cleared after successful save: %v", slot.LastError())
	}
}
