// Package schema defines the accessibility data model: node identifiers,
// roles, actions, state flags, the compact per-node property store, and the
// TreeUpdate protocol that carries tree snapshots and incremental changes
// from a producer to a consumer. Values in this package are plain data; all
// interpretation (parent/child navigation, filtering, text ranges) lives in
// pkg/consumer.
package schema

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrInvalidNodeID is returned when parsing a node id from text fails.
var ErrInvalidNodeID = errors.New("schema: invalid node id")

// NodeID identifies a node within a tree. IDs are opaque 128-bit values
// chosen by the producer; they carry no meaning beyond equality. The zero
// value is a valid id.
//
// The textual (and JSON) form is the decimal representation of the full
// 128-bit value.
type NodeID struct {
	Hi, Lo uint64
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

func (id NodeID) String() string {
	if id.Hi == 0 {
		return strconv.FormatUint(id.Lo, 10)
	}
	v := new(big.Int).SetUint64(id.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(id.Lo))
	return v.String()
}

// ParseNodeID parses the decimal form produced by String.
func ParseNodeID(s string) (NodeID, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return NodeID{}, ErrInvalidNodeID
	}
	lo := new(big.Int).And(v, maxUint64).Uint64()
	hi := v.Rsh(v, 64).Uint64()
	return NodeID{Hi: hi, Lo: lo}, nil
}

func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
