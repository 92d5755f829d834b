// Package hashing provides position keys and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/boardstate-go/internal/chess"
)

// Zobrist keys, indexed by colour, piece and square.
var (
	pieceKeys    [2][7][chess.BoardSize * chess.BoardSize]uint64
	sideKey      uint64
	castlingKeys [4]uint64 // White K, White Q, Black K, Black Q
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	// splitmix64 with a fixed seed so keys are stable between runs.
	state := uint64(0x5EED)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = next()
			}
		}
	}
	sideKey = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
}

// PositionKey returns the Zobrist key of a position. The key covers piece
// placement, side to move, castling availability and the en-passant file;
// the move counters are not part of it.
func PositionKey(board *chess.Board) uint64 {
	var key uint64
	for _, p := range board.Pieces {
		key ^= pieceKeys[p.Colour][p.Piece][square(p.Position)]
	}
	if board.ToMove == chess.Black {
		key ^= sideKey
	}
	if board.WhiteCastling.CanCastleKingside() {
		key ^= castlingKeys[0]
	}
	if board.WhiteCastling.CanCastleQueenside() {
		key ^= castlingKeys[1]
	}
	if board.BlackCastling.CanCastleKingside() {
		key ^= castlingKeys[2]
	}
	if board.BlackCastling.CanCastleQueenside() {
		key ^= castlingKeys[3]
	}
	if ep, ok := board.EnPassantTarget(); ok {
		key ^= epFileKeys[ep.Column]
	}
	return key
}

// MaterialSignature packs the piece counts of both sides, four bits per
// piece type. It is a cheap second check next to PositionKey.
func MaterialSignature(board *chess.Board) uint64 {
	var sig uint64
	for _, p := range board.Pieces {
		shift := uint(int(p.Colour)*24 + (int(p.Piece)-1)*4)
		sig += 1 << shift
	}
	return sig
}

func square(pos chess.Position) int {
	return pos.Row*chess.BoardSize + pos.Column
}

// GameSignature stores identifying information about a replayed game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// Material is the material signature of the final position
	Material uint64
	// PlyCount is the number of plies replayed
	PlyCount int
	// Index is the game's position in the input
	Index int
}

// DuplicateDetector finds games that end in a position already seen.
// It is not safe for concurrent use; feed it results in input order.
type DuplicateDetector struct {
	// hashTable stores seen signatures by position key
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records the final position of game index. If an earlier game
// ended in the same position it returns that game's index and true.
func (d *DuplicateDetector) CheckAndAdd(index, plies int, board *chess.Board) (int, bool) {
	if board == nil {
		return -1, false
	}

	sig := GameSignature{
		Hash:     PositionKey(board),
		Material: MaterialSignature(board),
		PlyCount: plies,
		Index:    index,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Index, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return -1, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Material != b.Material {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
