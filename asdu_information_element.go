package iec104

import (
	"encoding/binary"
	"math"
	"time"
)

/*
InformationElement building blocks. Format and length of each element differs
and is given by the standard; everything below is little-endian on the wire.

The elements are combined into the information objects of
asdu_information_object.go; the object catalogue decides which elements an
ASDU of a given type identification carries.
*/

/*
QualityDescriptor is the 1-octet quality flag set attached to most monitor
direction elements:

  | <-                 8 bits                 -> |
  ------------------------------------------------
  | IV  | NT  | SB  | BL  |  0  |  0  |  0  | OV |

For single/double point indications the low bits carry the point value instead
of OV; the quality mask is the high nibble in every layout.
*/
type QualityDescriptor byte

const (
	// OV marks an overflowed measurand.
	OV QualityDescriptor = 1 << 0
	// BL marks a value blocked for transmission.
	BL QualityDescriptor = 1 << 4
	// SB marks a substituted value.
	SB QualityDescriptor = 1 << 5
	// NT marks a not-topical value.
	NT QualityDescriptor = 1 << 6
	// IV marks an invalid value.
	IV QualityDescriptor = 1 << 7
)

// GoodQuality is the all-clear descriptor.
const GoodQuality QualityDescriptor = 0

func ParseQualityDescriptor(x byte) QualityDescriptor {
	return QualityDescriptor(x & 0xf1)
}

/*
DoublePointValue is the two-bit state of a double point indication.
0 and 3 are the intermediate/indeterminate states of a switching device whose
two position contacts disagree.
*/
type DoublePointValue byte

const (
	DoublePointIndeterminate DoublePointValue = 0
	DoublePointOff           DoublePointValue = 1
	DoublePointOn            DoublePointValue = 2
	DoublePointFaulty        DoublePointValue = 3
)

/*
NormalizedValue is a 16-bit fixed point value scaled to [-1, 1-2^-15]:
the transmitted integer divided by 32768.
*/
type NormalizedValue float64

func parseNormalizedValue(data []byte) NormalizedValue {
	return NormalizedValue(parseLittleEndianInt16(data)) / 32768
}

func (v NormalizedValue) raw() int16 {
	scaled := float64(v) * 32768
	switch {
	case scaled > 32767:
		return 32767
	case scaled < -32768:
		return -32768
	}
	return int16(math.Round(scaled))
}

func (v NormalizedValue) serialize() []byte {
	return serializeLittleEndianInt16(v.raw())
}

/*
StepPosition is a transformer tap position or similar 7-bit value in
[-64, 63] with a transient indicator: VTI element.

  | <-                 8 bits                 -> |
  ------------------------------------------------
  |  T  |                Value I7                |
*/
type StepPosition struct {
	Value     int8
	Transient bool
}

func parseStepPosition(b byte) StepPosition {
	v := int8(b << 1)
	return StepPosition{
		Value:     v >> 1,
		Transient: b&0x80 == 0x80,
	}
}

func (s StepPosition) serialize() byte {
	b := byte(s.Value) & 0x7f
	if s.Transient {
		b |= 0x80
	}
	return b
}

/*
BinaryCounterReading is the 5-octet BCR element of the integrated totals
telegrams: a 32-bit signed reading followed by a sequence/flag octet.

  | <-                 8 bits                 -> |
  ------------------------------------------------
  |                 Value I32                    |  4 octets
  | IV  | CA  | CY  |     Sequence (0..31)       |
*/
type BinaryCounterReading struct {
	Value          int32
	SequenceNumber uint8
	Carry          bool
	Adjusted       bool
	Invalid        bool
}

func parseBinaryCounterReading(data []byte) BinaryCounterReading {
	flags := data[4]
	return BinaryCounterReading{
		Value:          int32(binary.LittleEndian.Uint32(data[:4])),
		SequenceNumber: flags & 0x1f,
		Carry:          flags&0x20 == 0x20,
		Adjusted:       flags&0x40 == 0x40,
		Invalid:        flags&0x80 == 0x80,
	}
}

func (b BinaryCounterReading) serialize() []byte {
	data := make([]byte, 5)
	binary.LittleEndian.PutUint32(data, uint32(b.Value))
	flags := b.SequenceNumber & 0x1f
	if b.Carry {
		flags |= 0x20
	}
	if b.Adjusted {
		flags |= 0x40
	}
	if b.Invalid {
		flags |= 0x80
	}
	data[4] = flags
	return data
}

/*
SingleEvent is the SEP element of the protection equipment telegrams: a
two-bit event state plus quality flags sharing the descriptor bit layout.
*/
type SingleEvent struct {
	State        DoublePointValue
	ElapsedValid bool
	Quality      QualityDescriptor
}

func parseSingleEvent(b byte) SingleEvent {
	return SingleEvent{
		State:        DoublePointValue(b & 0x03),
		ElapsedValid: b&0x08 == 0,
		Quality:      QualityDescriptor(b & 0xf0),
	}
}

func (e SingleEvent) serialize() byte {
	b := byte(e.State&0x03) | byte(e.Quality&0xf0)
	if !e.ElapsedValid {
		b |= 0x08
	}
	return b
}

/*
StartEvents is the SPE element: the per-phase start events of protection
equipment, packed one bit each.
*/
type StartEvents byte

const (
	StartEventGeneral          StartEvents = 1 << 0
	StartEventPhaseL1          StartEvents = 1 << 1
	StartEventPhaseL2          StartEvents = 1 << 2
	StartEventPhaseL3          StartEvents = 1 << 3
	StartEventEarthCurrent     StartEvents = 1 << 4
	StartEventReverseDirection StartEvents = 1 << 5
)

/*
OutputCircuitInfo is the OCI element: the output circuits of protection
equipment that issued a command, packed one bit each.
*/
type OutputCircuitInfo byte

const (
	OutputCircuitGeneral OutputCircuitInfo = 1 << 0
	OutputCircuitPhaseL1 OutputCircuitInfo = 1 << 1
	OutputCircuitPhaseL2 OutputCircuitInfo = 1 << 2
	OutputCircuitPhaseL3 OutputCircuitInfo = 1 << 3
)

/*
CP16Time2a is the 2-octet binary time: elapsed milliseconds in 0..59999.
*/
type CP16Time2a uint16

func parseCP16Time2a(data []byte) CP16Time2a {
	return CP16Time2a(binary.LittleEndian.Uint16(data))
}

func (t CP16Time2a) serialize() []byte {
	return serializeLittleEndianUint16(uint16(t))
}

/*
CP24Time2a is the 3-octet binary time: milliseconds within the minute plus
the minute itself. The hour and above must be known from context.

  | <-                 8 bits                 -> |
  ------------------------------------------------
  |              Milliseconds (L)                |
  |              Milliseconds (H)                |
  | IV  |  R  |         Minutes (0..59)          |
*/
type CP24Time2a struct {
	Millisecond uint16 // 0..59999
	Minute      uint8  // 0..59
	Invalid     bool
}

func parseCP24Time2a(data []byte) CP24Time2a {
	return CP24Time2a{
		Millisecond: binary.LittleEndian.Uint16(data[:2]),
		Minute:      data[2] & 0x3f,
		Invalid:     data[2]&0x80 == 0x80,
	}
}

func (t CP24Time2a) serialize() []byte {
	data := make([]byte, 3)
	binary.LittleEndian.PutUint16(data, t.Millisecond)
	data[2] = t.Minute & 0x3f
	if t.Invalid {
		data[2] |= 0x80
	}
	return data
}

/*
CP56Time2a is the 7-octet binary time carried by the long time-tagged
telegrams and the clock synchronization command.

  | <-                 8 bits                 -> |
  ------------------------------------------------
  |              Milliseconds (L)                |
  |              Milliseconds (H)                |
  | IV  |  R  |         Minutes (0..59)          |
  | SU  |  R  |  R  |      Hours (0..23)         |
  | Day of week (1..7) | Day of month (1..31)    |
  |  R  |  R  |  R  |  R  |   Months (1..12)     |
  |  R  |          Years (0..99)                 |
*/
type CP56Time2a struct {
	Millisecond uint16 // 0..59999, seconds folded in
	Minute      uint8  // 0..59
	Hour        uint8  // 0..23
	DayOfMonth  uint8  // 1..31
	DayOfWeek   uint8  // 1 (Monday) .. 7 (Sunday), 0 if unused
	Month       uint8  // 1..12
	Year        uint8  // 0..99, offset from 2000
	SummerTime  bool
	Invalid     bool
}

func parseCP56Time2a(data []byte) CP56Time2a {
	return CP56Time2a{
		Millisecond: binary.LittleEndian.Uint16(data[:2]),
		Minute:      data[2] & 0x3f,
		Invalid:     data[2]&0x80 == 0x80,
		Hour:        data[3] & 0x1f,
		SummerTime:  data[3]&0x80 == 0x80,
		DayOfMonth:  data[4] & 0x1f,
		DayOfWeek:   data[4] >> 5,
		Month:       data[5] & 0x0f,
		Year:        data[6] & 0x7f,
	}
}

func (t CP56Time2a) serialize() []byte {
	data := make([]byte, 7)
	binary.LittleEndian.PutUint16(data, t.Millisecond)
	data[2] = t.Minute & 0x3f
	if t.Invalid {
		data[2] |= 0x80
	}
	data[3] = t.Hour & 0x1f
	if t.SummerTime {
		data[3] |= 0x80
	}
	data[4] = t.DayOfMonth&0x1f | t.DayOfWeek<<5
	data[5] = t.Month & 0x0f
	data[6] = t.Year & 0x7f
	return data
}

// NewCP56Time2a converts a wall-clock instant. Years outside 2000..2099 fold
// into the two-digit range the encoding can carry.
func NewCP56Time2a(ts time.Time) CP56Time2a {
	dow := uint8(ts.Weekday())
	if dow == 0 {
		dow = 7 // ISO: Sunday is 7
	}
	return CP56Time2a{
		Millisecond: uint16(ts.Second()*1000 + ts.Nanosecond()/1e6),
		Minute:      uint8(ts.Minute()),
		Hour:        uint8(ts.Hour()),
		DayOfMonth:  uint8(ts.Day()),
		DayOfWeek:   dow,
		Month:       uint8(ts.Month()),
		Year:        uint8(ts.Year() % 100),
	}
}

// Time reconstructs the instant in the given location. A zero month or day
// (unset tag) yields the zero time.
func (t CP56Time2a) Time(loc *time.Location) time.Time {
	if t.Month == 0 || t.DayOfMonth == 0 {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(2000+int(t.Year), time.Month(t.Month), int(t.DayOfMonth),
		int(t.Hour), int(t.Minute), int(t.Millisecond)/1000,
		int(t.Millisecond)%1000*int(time.Millisecond), loc)
}
