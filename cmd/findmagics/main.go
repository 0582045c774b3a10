// Command findmagics searches for rook and bishop magic multipliers and
// writes them out as internal/board/magics_generated.go.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/magicsearch"
	"github.com/hailam/chesscore/internal/storage"
	"golang.org/x/sync/errgroup"
)

type Settings struct {
	Seed   uint64
	Budget int
	DBPath string
	Fresh  bool
	Output string
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var settings = Settings{
		Seed:   uint64(time.Now().UnixNano()),
		Budget: magicsearch.DefaultBudget,
		Output: "internal/board/magics_generated.go",
	}

	flag.Uint64Var(&settings.Seed, "seed", settings.Seed, "random seed for the candidate generator")
	flag.IntVar(&settings.Budget, "budget", settings.Budget, "candidates tried per square before giving up")
	flag.StringVar(&settings.DBPath, "db", settings.DBPath, "magic store directory (default: data directory, "+storage.DataDirEnv+" overrides)")
	flag.BoolVar(&settings.Fresh, "fresh", settings.Fresh, "ignore stored sets and search again")
	flag.StringVar(&settings.Output, "out", settings.Output, "generated Go file, - for stdout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, settings); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, settings Settings) error {
	log.Printf("%+v", settings)

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var sets [2]*[64]board.Magic
	pieces := [2]board.PieceType{board.Rook, board.Bishop}

	g, ctx := errgroup.WithContext(ctx)
	for i, pt := range pieces {
		i, pt := i, pt
		g.Go(func() error {
			set, err := loadOrSearch(ctx, store, pt, settings)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if settings.Output == "-" {
		return magicsearch.WriteGo(os.Stdout, sets[0], sets[1])
	}
	if err := writeGoFile(settings.Output, sets[0], sets[1]); err != nil {
		return err
	}
	log.Printf("wrote %s", settings.Output)
	return nil
}

func writeGoFile(path string, rook, bishop *[64]board.Magic) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := magicsearch.WriteGo(f, rook, bishop); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// loadOrSearch returns the stored set for pt unless a fresh search was
// requested or nothing usable is stored. Every set is checked by building
// its table before it is saved or emitted.
func loadOrSearch(ctx context.Context, store *storage.Storage, pt board.PieceType, settings Settings) (*[64]board.Magic, error) {
	if !settings.Fresh {
		rec, err := store.LoadMagics(pt)
		switch {
		case err == nil:
			set := rec.Set()
			if _, err := board.NewSliderTable(pt, set); err != nil {
				log.Printf("stored %s set rejected, searching again: %v", pt, err)
				break
			}
			log.Printf("using stored %s set (seed %d, found %s)", pt, rec.Seed, rec.Found.Format(time.RFC3339))
			return set, nil
		case errors.Is(err, storage.ErrNotFound):
		default:
			return nil, err
		}
	}

	start := time.Now()
	log.Printf("searching %s magics", pt)
	set, err := magicsearch.FindAll(ctx, pt, settings.Seed, settings.Budget)
	if err != nil {
		return nil, err
	}
	if _, err := board.NewSliderTable(pt, set); err != nil {
		return nil, err
	}
	log.Printf("found %s magics in %v", pt, time.Since(start))

	if err := store.SaveMagics(pt, storage.NewMagicRecord(pt, settings.Seed, set)); err != nil {
		return nil, err
	}
	return set, nil
}
