package frame

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"time"
)

// Domain prefix for content-addressed index identity.
// Version suffix enables future algorithm migration.
const domainIndex = "slate/index/v1"

// Label tags for the canonical byte encoding. The encoding is injective
// per label sequence, so equal sequences produce equal digests and
// unequal sequences cannot collide by construction (only by SHA-256
// collision).
const (
	tagAbsent byte = iota
	tagBool
	tagInt
	tagFloat
	tagTimestamp
	tagText
)

// Hash returns a hex SHA-256 digest of the full label sequence with
// domain separation, consistent with Equal: equal indices hash
// identically regardless of representation.
//
// The digest is defined over the materialized sequence, so hashing a
// large numeric or fused index walks every label. That cost is the
// documented contract; no lazy shortcut is taken.
func (x *Index) Hash() string {
	h := sha256.New()
	h.Write([]byte(domainIndex))
	h.Write([]byte{0x00}) // domain/data separator
	length := x.Length()
	for i := 0; i < length; i++ {
		writeCanonicalLabel(h, x.at(i))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeCanonicalLabel(h io.Writer, l Label) {
	var buf [8]byte
	switch lv := l.(type) {
	case nil:
		h.Write([]byte{tagAbsent})
	case Absent:
		h.Write([]byte{tagAbsent})
	case Bool:
		if lv {
			h.Write([]byte{tagBool, 1})
		} else {
			h.Write([]byte{tagBool, 0})
		}
	case Int:
		h.Write([]byte{tagInt})
		binary.BigEndian.PutUint64(buf[:], uint64(lv))
		h.Write(buf[:])
	case Float:
		f := float64(lv)
		if f == 0 {
			f = 0 // fold negative zero, which compares equal to zero
		}
		h.Write([]byte{tagFloat})
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	case Timestamp:
		h.Write([]byte{tagTimestamp})
		binary.BigEndian.PutUint64(buf[:], uint64(time.Time(lv).UnixNano()))
		h.Write(buf[:])
	case Text:
		h.Write([]byte{tagText})
		binary.BigEndian.PutUint64(buf[:], uint64(len(lv)))
		h.Write(buf[:])
		h.Write([]byte(lv))
	}
}

// labelKey returns the canonical bytes of a single label as a map key.
// Keys are equal exactly when LabelsEqual holds (modulo sub-nanosecond
// timestamp drift, which Timestamp does not carry after parsing).
func labelKey(l Label) string {
	var k keyWriter
	writeCanonicalLabel(&k, l)
	return string(k.buf)
}

// keyWriter collects canonical bytes without hashing them.
type keyWriter struct {
	buf []byte
}

func (k *keyWriter) Write(p []byte) (int, error) {
	k.buf = append(k.buf, p...)
	return len(p), nil
}
