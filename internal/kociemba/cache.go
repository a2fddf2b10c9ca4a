package kociemba

import (
	"bytes"
	"encoding/gob"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// cacheVersion is bumped whenever the table layout or generation algorithm
// changes in a way that invalidates previously-cached tables.
const cacheVersion = "kociemba-tables-v2"

// cachePayload is the gob-serialized shape of the cache file: a version
// tag followed by the eight move tables, the merge table and the four
// pruning tables, in a fixed order.
type cachePayload struct {
	Version      string
	TwistMove    [][numMoves]int16
	FlipMove     [][numMoves]int16
	FRtoBRMove   [][numMoves]int16
	URFtoDLFMove [][numMoves]int16
	URtoULMove   [][numMoves]int16
	UBtoDFMove   [][numMoves]int16
	URtoDFMove   [][10]int16
	ParityMove   [nParity][numMoves]int8
	MergeTable   [336][336]int16

	SliceFlipPrun         []byte
	SliceTwistPrun        []byte
	SliceURFtoDLFParity   []byte
	SliceURtoDFParityPrun []byte
}

// defaultCachePath resolves to a per-user cache directory, falling back to
// the working directory when one isn't available (e.g. a minimal sandbox).
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "kociemba_tables.bin.gz"
	}
	return filepath.Join(dir, "cube", "kociemba_tables.bin.gz")
}

// loadTables attempts to read and decompress a cache file at path. A
// missing file, version mismatch, or any decode error is treated as a
// cache miss, never a fatal error: the caller regenerates from scratch.
func loadTables(path string) (*tables, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	r := snappy.NewReader(f)
	var payload cachePayload
	if err := gob.NewDecoder(r).Decode(&payload); err != nil {
		log.Printf("kociemba: cache at %s unreadable, regenerating: %v", path, err)
		return nil, false
	}
	if payload.Version != cacheVersion {
		log.Printf("kociemba: cache at %s has stale version %q, regenerating", path, payload.Version)
		return nil, false
	}

	t := &tables{
		twistMove:             payload.TwistMove,
		flipMove:              payload.FlipMove,
		frToBRMove:            payload.FRtoBRMove,
		urfToDLFMove:          payload.URFtoDLFMove,
		urToULMove:            payload.URtoULMove,
		ubToDFMove:            payload.UBtoDFMove,
		urToDFMove:            payload.URtoDFMove,
		parityMove:            payload.ParityMove,
		mergeURtoDF:           payload.MergeTable,
		sliceFlipPrun:         payload.SliceFlipPrun,
		sliceTwistPrun:        payload.SliceTwistPrun,
		sliceURFtoDLFParity:   payload.SliceURFtoDLFParity,
		sliceURtoDFParityPrun: payload.SliceURtoDFParityPrun,
	}
	return t, true
}

// saveTables writes the cache file. Failures are logged as warnings, never
// returned as errors: a write failure must not abort a process that
// otherwise has fully usable, in-memory tables (spec §4.6).
func saveTables(path string, t *tables) {
	payload := cachePayload{
		Version:               cacheVersion,
		TwistMove:             t.twistMove,
		FlipMove:              t.flipMove,
		FRtoBRMove:            t.frToBRMove,
		URFtoDLFMove:          t.urfToDLFMove,
		URtoULMove:            t.urToULMove,
		UBtoDFMove:            t.ubToDFMove,
		URtoDFMove:            t.urToDFMove,
		ParityMove:            t.parityMove,
		MergeTable:            t.mergeURtoDF,
		SliceFlipPrun:         t.sliceFlipPrun,
		SliceTwistPrun:        t.sliceTwistPrun,
		SliceURFtoDLFParity:   t.sliceURFtoDLFParity,
		SliceURtoDFParityPrun: t.sliceURtoDFParityPrun,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&payload); err != nil {
		log.Printf("kociemba: warning: failed to encode table cache: %v", errors.WithStack(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("kociemba: warning: failed to create cache directory: %v", errors.WithStack(err))
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Printf("kociemba: warning: failed to create cache file %s: %v", path, errors.WithStack(err))
		return
	}
	defer f.Close()

	w := snappy.NewBufferedWriter(f)
	defer w.Close()
	if _, err := io.Copy(w, &buf); err != nil {
		log.Printf("kociemba: warning: failed to write table cache: %v", errors.WithStack(err))
		return
	}
	log.Printf("kociemba: table cache saved to %s", path)
}
