package green

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// noHash is the sentinel meaning "this value was not cached", propagated
// upward through node() so a node with an uncacheable descendant is never
// itself cached (see cache.go).
const noHash uint64 = 0

// escapeNoHash maps the real digest 0 (astronomically unlikely, but
// reachable in principle) away from the sentinel value.
func escapeNoHash(h uint64) uint64 {
	if h == noHash {
		return 1
	}
	return h
}

func hashKindText(kind Kind, text []byte) uint64 {
	d := xxhash.New()
	var kb [2]byte
	binary.LittleEndian.PutUint16(kb[:], uint16(kind))
	_, _ = d.Write(kb[:])
	_, _ = d.Write(text)
	return escapeNoHash(d.Sum64())
}

func hashTriviaList(pieces []Trivia) uint64 {
	d := xxhash.New()
	var lb [8]byte
	binary.LittleEndian.PutUint64(lb[:], uint64(len(pieces)))
	_, _ = d.Write(lb[:])
	for _, p := range pieces {
		h := hashKindText(p.Kind(), p.Text())
		var hb [8]byte
		binary.LittleEndian.PutUint64(hb[:], h)
		_, _ = d.Write(hb[:])
	}
	return escapeNoHash(d.Sum64())
}

// combineNodeHash implements "hash is h(kind) . Pi h(child_i)" via a
// streaming digest rather than literal multiplication, following the
// streaming-hasher idiom this corpus's own xxhash consumers use. If any
// child hash is the sentinel, the sentinel is propagated and the node is
// not cached, as required by §4.4 of the specification.
func combineNodeHash(kind Kind, childHashes []uint64) uint64 {
	for _, h := range childHashes {
		if h == noHash {
			return noHash
		}
	}
	d := xxhash.New()
	var kb [2]byte
	binary.LittleEndian.PutUint16(kb[:], uint16(kind))
	_, _ = d.Write(kb[:])
	for _, h := range childHashes {
		var hb [8]byte
		binary.LittleEndian.PutUint64(hb[:], h)
		_, _ = d.Write(hb[:])
	}
	return escapeNoHash(d.Sum64())
}
