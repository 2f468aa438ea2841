package trampoline

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightningnetwork/lnd/lnwire"

	"github.com/lnwallet/walletcore/pkg/lightning"
)

// DefaultNodeID is the wallet operator's routing hub. Payments to
// anyone else are sent through it as a trampoline hop.
const DefaultNodeID = "03864ef025fde8fb587d989186ce6a4a186895ee44a926bfc370e2c366597a3f8f"

const (
	// DefaultBaseFeeMsat is charged once per assumed trampoline hop.
	DefaultBaseFeeMsat = lnwire.MilliSatoshi(5_000)
	// DefaultHopCount is a conservative bound on the length of a
	// trampoline path.
	DefaultHopCount = 5
	// DefaultProportionalRate is the variable fee share of the amount.
	DefaultProportionalRate = 0.001
)

// Mode selects how trampoline necessity is determined.
type Mode int

const (
	// ModeDestination routes every payment whose destination is not the
	// hub itself through a trampoline hop.
	ModeDestination Mode = iota
	// ModePeerHint would additionally skip the trampoline when the
	// first routing hint of the invoice identifies a direct channel
	// with the hub. Inactive: Decide treats it like ModeDestination
	// until product decides otherwise.
	ModePeerHint
)

// Policy decides trampoline usage and fees for outgoing payments.
// It is a pure value; a single Policy may be shared between goroutines.
type Policy struct {
	NodeID           *btcec.PublicKey
	BaseFeeMsat      lnwire.MilliSatoshi
	HopCount         int
	ProportionalRate float64
	Mode             Mode
}

// NewPolicy returns the default fee policy routed through nodeID.
func NewPolicy(nodeID *btcec.PublicKey) *Policy {
	return &Policy{
		NodeID:           nodeID,
		BaseFeeMsat:      DefaultBaseFeeMsat,
		HopCount:         DefaultHopCount,
		ProportionalRate: DefaultProportionalRate,
	}
}

// Decision is the outcome of a trampoline check. A nil NodeID means the
// payment goes out directly and no extra fee applies.
type Decision struct {
	NodeID  *btcec.PublicKey
	FeeMsat lnwire.MilliSatoshi
}

// Decide determines whether paying invoice requires a trampoline hop
// and what that hop adds on top of amount. It is total over its inputs.
func (p *Policy) Decide(amount lnwire.MilliSatoshi, invoice *lightning.Invoice) Decision {
	if invoice.Destination.IsEqual(p.NodeID) {
		return Decision{}
	}
	fee := p.BaseFeeMsat*lnwire.MilliSatoshi(p.HopCount) +
		lnwire.MilliSatoshi(float64(amount)*p.ProportionalRate)
	return Decision{NodeID: p.NodeID, FeeMsat: fee}
}

// ParseNodeID decodes a hex-encoded compressed node public key.
func ParseNodeID(nodeID string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(nodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid node id %q: %w", nodeID, err)
	}
	return btcec.ParsePubKey(raw)
}
