package iec104

import (
	"fmt"
	"time"
)

// Defaults follow the values recommended by IEC 60870-5-104 clause 9.
const (
	DefaultK = 12
	DefaultW = 8

	DefaultT0 = 30 * time.Second
	DefaultT1 = 15 * time.Second
	DefaultT2 = 10 * time.Second
	DefaultT3 = 20 * time.Second
)

/*
ConnectionParameters fixes the wire-format sizing and the flow-control and
timing behaviour of one link. The sizing fields (SizeOfCOT, SizeOfCA,
SizeOfIOA) must match the outstation's configuration or every ASDU on the link
will misalign; they are agreed off-line, never negotiated.

Parameters are cloned when a connection is created and do not change for the
life of the link.
*/
type ConnectionParameters struct {
	// SizeOfCOT is the width of the cause-of-transmission field in octets
	// (1 or 2). With 2 the originator address octet is carried.
	SizeOfCOT int
	// SizeOfCA is the width of the common address in octets (1 or 2).
	SizeOfCA int
	// SizeOfIOA is the width of the information object address in octets
	// (1, 2 or 3).
	SizeOfIOA int
	// OriginatorAddress is emitted in every ASDU when SizeOfCOT is 2.
	OriginatorAddress ORG

	// K is the maximum number of unacknowledged I-frames in flight (1..32767).
	// Send calls block once the window is full.
	K int
	// W is the number of received I-frames that forces an S-frame
	// acknowledgement (1..K).
	W int

	// T0 bounds the TCP connect (three-way handshake).
	T0 time.Duration
	// T1 bounds the wait for acknowledgement of a sent I- or U-frame.
	// Expiry closes the link.
	T1 time.Duration
	// T2 bounds the delay before received I-frames must be acknowledged.
	// Must be smaller than T1.
	T2 time.Duration
	// T3 is the idle period after which a TESTFR_ACT keep-alive is issued.
	T3 time.Duration

	// Autostart makes the engine emit STARTDT_ACT immediately after the TCP
	// connection opens. With Autostart false the link stays in the
	// unconfirmed-open state until SendStartDT is called.
	Autostart bool
	// Trace enables hex dumps of every frame at debug level.
	Trace bool
}

// DefaultConnectionParameters returns the common profile: 2-octet cause of
// transmission (with originator), 2-octet common address, 3-octet information
// object address, and the clause 9 timing defaults.
func DefaultConnectionParameters() *ConnectionParameters {
	return &ConnectionParameters{
		SizeOfCOT:         2,
		SizeOfCA:          2,
		SizeOfIOA:         3,
		OriginatorAddress: 0,
		K:                 DefaultK,
		W:                 DefaultW,
		T0:                DefaultT0,
		T1:                DefaultT1,
		T2:                DefaultT2,
		T3:                DefaultT3,
		Autostart:         true,
	}
}

func (p *ConnectionParameters) Validate() error {
	switch {
	case p.SizeOfCOT != 1 && p.SizeOfCOT != 2:
		return fmt.Errorf("invalid SizeOfCOT %d: must be 1 or 2", p.SizeOfCOT)
	case p.SizeOfCA != 1 && p.SizeOfCA != 2:
		return fmt.Errorf("invalid SizeOfCA %d: must be 1 or 2", p.SizeOfCA)
	case p.SizeOfIOA < 1 || p.SizeOfIOA > 3:
		return fmt.Errorf("invalid SizeOfIOA %d: must be 1, 2 or 3", p.SizeOfIOA)
	case p.K < 1 || p.K > 32767:
		return fmt.Errorf("invalid K %d: must be in 1..32767", p.K)
	case p.W < 1 || p.W > p.K:
		return fmt.Errorf("invalid W %d: must be in 1..K(%d)", p.W, p.K)
	case p.T0 <= 0 || p.T1 <= 0 || p.T2 <= 0 || p.T3 <= 0:
		return fmt.Errorf("invalid timeouts: t0..t3 must be positive")
	case p.T2 >= p.T1:
		return fmt.Errorf("invalid timeouts: t2 (%s) must be smaller than t1 (%s)", p.T2, p.T1)
	}
	return nil
}

func (p *ConnectionParameters) Clone() *ConnectionParameters {
	clone := *p
	return &clone
}

// BroadcastAddress is the all-ones common address for the configured width.
func (p *ConnectionParameters) BroadcastAddress() COA {
	if p.SizeOfCA == 1 {
		return 0xFF
	}
	return 0xFFFF
}

// maxCOA is the largest common address the configured width can carry.
func (p *ConnectionParameters) maxCOA() COA {
	if p.SizeOfCA == 1 {
		return 0xFF
	}
	return 0xFFFF
}

// maxIOA is the largest information object address the configured width can
// carry.
func (p *ConnectionParameters) maxIOA() IOA {
	switch p.SizeOfIOA {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	default:
		return 0xFFFFFF
	}
}
