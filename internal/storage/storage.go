// Package storage persists discovered magic sets so a long search can be
// resumed or re-emitted without running it again.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/chesscore/internal/board"
)

// ErrNotFound is returned when no magic set is stored for a piece type.
var ErrNotFound = errors.New("storage: magic set not found")

// MagicEntry is the stored form of one square's magic.
type MagicEntry struct {
	Mask       uint64 `json:"mask"`
	Multiplier uint64 `json:"multiplier"`
	Shift      uint8  `json:"shift"`
}

// MagicRecord is one complete set for a slider type.
type MagicRecord struct {
	Piece   string         `json:"piece"`
	Seed    uint64         `json:"seed"`
	Found   time.Time      `json:"found"`
	Entries [64]MagicEntry `json:"entries"`
}

// Set converts the record back into board magics.
func (r *MagicRecord) Set() *[64]board.Magic {
	var set [64]board.Magic
	for i, e := range r.Entries {
		set[i] = board.Magic{
			Mask:       board.Bitboard(e.Mask),
			Multiplier: e.Multiplier,
			Shift:      e.Shift,
		}
	}
	return &set
}

// NewMagicRecord captures a magic set found with the given seed.
func NewMagicRecord(pt board.PieceType, seed uint64, set *[64]board.Magic) *MagicRecord {
	r := &MagicRecord{
		Piece: pt.String(),
		Seed:  seed,
		Found: time.Now(),
	}
	for i, m := range set {
		r.Entries[i] = MagicEntry{
			Mask:       uint64(m.Mask),
			Multiplier: m.Multiplier,
			Shift:      m.Shift,
		}
	}
	return r
}

func magicKey(pt board.PieceType) []byte {
	return []byte("magics/" + pt.String())
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir. An empty dir selects the default
// data directory.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		if dir, err = GetDatabaseDir(); err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open magic store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMagics stores a record, replacing any previous set for its piece type.
func (s *Storage) SaveMagics(pt board.PieceType, rec *MagicRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(magicKey(pt), data)
	})
}

// LoadMagics returns the stored record for pt, or ErrNotFound.
func (s *Storage) LoadMagics(pt board.PieceType) (*MagicRecord, error) {
	rec := &MagicRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(magicKey(pt))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, pt)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteMagics removes the stored set for pt. Deleting a missing set is not
// an error.
func (s *Storage) DeleteMagics(pt board.PieceType) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(magicKey(pt))
	})
}
