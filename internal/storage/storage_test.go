package storage

import (
	"errors"
	"os"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestMagicStore(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer s.Close()

	t.Run("Missing", func(t *testing.T) {
		_, err := s.LoadMagics(board.Rook)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadMagics error = %v, want %v", err, ErrNotFound)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		set := board.DefaultMagics(board.Bishop)
		if err := s.SaveMagics(board.Bishop, NewMagicRecord(board.Bishop, 99, set)); err != nil {
			t.Fatalf("SaveMagics: %v", err)
		}

		rec, err := s.LoadMagics(board.Bishop)
		if err != nil {
			t.Fatalf("LoadMagics: %v", err)
		}
		if rec.Seed != 99 || rec.Piece != "Bishop" {
			t.Errorf("record header = %q seed %d", rec.Piece, rec.Seed)
		}
		if *rec.Set() != *set {
			t.Error("loaded set differs from saved set")
		}
		if _, err := s.LoadMagics(board.Rook); !errors.Is(err, ErrNotFound) {
			t.Errorf("rook lookup error = %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeleteMagics(board.Bishop); err != nil {
			t.Fatalf("DeleteMagics: %v", err)
		}
		if _, err := s.LoadMagics(board.Bishop); !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadMagics after delete error = %v", err)
		}
	})
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	set := board.DefaultMagics(board.Rook)
	if err := s.SaveMagics(board.Rook, NewMagicRecord(board.Rook, 1, set)); err != nil {
		t.Fatalf("SaveMagics: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	rec, err := s.LoadMagics(board.Rook)
	if err != nil {
		t.Fatalf("LoadMagics: %v", err)
	}
	if *rec.Set() != *set {
		t.Error("set did not survive reopening")
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv(DataDirEnv, t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir != os.Getenv(DataDirEnv) {
		t.Errorf("GetDataDir = %q, want override %q", dataDir, os.Getenv(DataDirEnv))
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}
