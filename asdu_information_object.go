package iec104

import (
	"encoding/binary"
	"math"
)

/*
InformationObject . Each information object is addressed by Information Object
Address (IOA) which identifies the particular data within a defined station. The address
is used as destination address in control direction and as source address in monitor direction.
- The width of the IOA on the wire is fixed per link by ConnectionParameters.SizeOfIOA
  (3 octets in the common profile).
- If the information object address is not relevant (not used) in some ASDUs, it is set to zero.

All information objects transmitted by one ASDU must have the same ASDU type. If there are more objects of different types
to be transmitted, they are inserted in several ASDUs.

The catalogue below is a closed set keyed by type identification: each variant
knows its type id, its payload width after the IOA, and its encode/decode. The
layout table drives the offset arithmetic of ASDU.Element for both the
discrete (SQ=0, one IOA per element) and the sequence (SQ=1, single IOA,
implicit addresses ioa+k) forms.
*/
type InformationObject interface {
	// TypeID is the type identification the variant belongs to.
	TypeID() TypeID
	// Address is the information object address.
	Address() IOA
	// encode appends the payload octets after the IOA.
	encode(f *Frame)
}

type IOA uint32

type elementLayout struct {
	width    int  // payload octets after the IOA
	sequence bool // SQ=1 layout legal
}

// elementLayouts is the authoritative width table. Type ids absent from it
// (file transfer, private ranges) cannot be enumerated by Element.
var elementLayouts = map[TypeID]elementLayout{
	MSpNa1: {1, true},
	MSpTa1: {4, true},
	MDpNa1: {1, true},
	MDpTa1: {4, true},
	MStNa1: {2, true},
	MStTa1: {5, true},
	MBoNa1: {5, true},
	MBoTa1: {8, true},
	MMeNa1: {3, true},
	MMeTa1: {6, true},
	MMeNb1: {3, true},
	MMeTb1: {6, true},
	MMeNc1: {5, true},
	MMeTc1: {8, true},
	MItNa1: {5, true},
	MItTa1: {8, true},
	MEpTa1: {6, true},
	MEpTb1: {7, true},
	MEpTc1: {7, true},
	MPsNa1: {5, true},
	MMeNd1: {2, true},
	MSpTb1: {8, true},
	MDpTb1: {8, true},
	MStTb1: {9, true},
	MBoTb1: {12, true},
	MMeTd1: {10, true},
	MMeTe1: {10, true},
	MMeTf1: {12, true},
	MItTb1: {12, true},
	MEpTd1: {10, true},
	MEpTe1: {11, true},
	MEpTf1: {11, true},
	CScNa1: {1, false},
	CDcNa1: {1, false},
	CRcNa1: {1, false},
	CSeNa1: {3, false},
	CSeNb1: {3, false},
	CSeNc1: {5, false},
	CBoNa1: {4, false},
	CScTa1: {8, false},
	CDcTa1: {8, false},
	CRcTa1: {8, false},
	CSeTa1: {10, false},
	CSeTb1: {10, false},
	CSeTc1: {12, false},
	CBoTa1: {11, false},
	MEiNa1: {1, false},
	CIcNa1: {1, false},
	CCiNa1: {1, false},
	CRdNa1: {0, false},
	CCsNa1: {7, false},
	CTsNb1: {2, false},
	CRpNc1: {1, false},
	CCdNa1: {2, false},
	CTsTa1: {9, false},
	PMeNa1: {3, false},
	PMeNb1: {3, false},
	PMeNc1: {5, false},
	PAcNa1: {1, false},
}

// ElementWidth reports the payload width after the IOA for a catalogued type.
func ElementWidth(t TypeID) (int, bool) {
	layout, ok := elementLayouts[t]
	return layout.width, ok
}

// SupportsSequence reports whether the SQ=1 layout is legal for a type.
// Control, system and parameter telegrams never are.
func SupportsSequence(t TypeID) bool {
	return elementLayouts[t].sequence
}

// Process information in monitor direction.

// SinglePointInformation is M_SP_NA_1 (1): one status bit with quality.
type SinglePointInformation struct {
	IOA     IOA
	Value   bool
	Quality QualityDescriptor
}

func (x *SinglePointInformation) TypeID() TypeID { return MSpNa1 }
func (x *SinglePointInformation) Address() IOA   { return x.IOA }
func (x *SinglePointInformation) encode(f *Frame) {
	b := byte(x.Quality & 0xf0)
	if x.Value {
		b |= 0x01
	}
	f.AppendByte(b)
}

// SinglePointWithCP24Time2a is M_SP_TA_1 (2).
type SinglePointWithCP24Time2a struct {
	SinglePointInformation
	Time CP24Time2a
}

func (x *SinglePointWithCP24Time2a) TypeID() TypeID { return MSpTa1 }
func (x *SinglePointWithCP24Time2a) encode(f *Frame) {
	x.SinglePointInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// SinglePointWithCP56Time2a is M_SP_TB_1 (30).
type SinglePointWithCP56Time2a struct {
	SinglePointInformation
	Time CP56Time2a
}

func (x *SinglePointWithCP56Time2a) TypeID() TypeID { return MSpTb1 }
func (x *SinglePointWithCP56Time2a) encode(f *Frame) {
	x.SinglePointInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// DoublePointInformation is M_DP_NA_1 (3): two status bits with quality.
type DoublePointInformation struct {
	IOA     IOA
	Value   DoublePointValue
	Quality QualityDescriptor
}

func (x *DoublePointInformation) TypeID() TypeID { return MDpNa1 }
func (x *DoublePointInformation) Address() IOA   { return x.IOA }
func (x *DoublePointInformation) encode(f *Frame) {
	f.AppendByte(byte(x.Value&0x03) | byte(x.Quality&0xf0))
}

// DoublePointWithCP24Time2a is M_DP_TA_1 (4).
type DoublePointWithCP24Time2a struct {
	DoublePointInformation
	Time CP24Time2a
}

func (x *DoublePointWithCP24Time2a) TypeID() TypeID { return MDpTa1 }
func (x *DoublePointWithCP24Time2a) encode(f *Frame) {
	x.DoublePointInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// DoublePointWithCP56Time2a is M_DP_TB_1 (31).
type DoublePointWithCP56Time2a struct {
	DoublePointInformation
	Time CP56Time2a
}

func (x *DoublePointWithCP56Time2a) TypeID() TypeID { return MDpTb1 }
func (x *DoublePointWithCP56Time2a) encode(f *Frame) {
	x.DoublePointInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// StepPositionInformation is M_ST_NA_1 (5): VTI plus quality.
type StepPositionInformation struct {
	IOA     IOA
	Value   StepPosition
	Quality QualityDescriptor
}

func (x *StepPositionInformation) TypeID() TypeID { return MStNa1 }
func (x *StepPositionInformation) Address() IOA   { return x.IOA }
func (x *StepPositionInformation) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize(), byte(x.Quality))
}

// StepPositionWithCP24Time2a is M_ST_TA_1 (6).
type StepPositionWithCP24Time2a struct {
	StepPositionInformation
	Time CP24Time2a
}

func (x *StepPositionWithCP24Time2a) TypeID() TypeID { return MStTa1 }
func (x *StepPositionWithCP24Time2a) encode(f *Frame) {
	x.StepPositionInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// StepPositionWithCP56Time2a is M_ST_TB_1 (32).
type StepPositionWithCP56Time2a struct {
	StepPositionInformation
	Time CP56Time2a
}

func (x *StepPositionWithCP56Time2a) TypeID() TypeID { return MStTb1 }
func (x *StepPositionWithCP56Time2a) encode(f *Frame) {
	x.StepPositionInformation.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// Bitstring32 is M_BO_NA_1 (7): 32 packed status bits plus quality.
type Bitstring32 struct {
	IOA     IOA
	Value   uint32
	Quality QualityDescriptor
}

func (x *Bitstring32) TypeID() TypeID { return MBoNa1 }
func (x *Bitstring32) Address() IOA   { return x.IOA }
func (x *Bitstring32) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint32(x.Value)...)
	f.AppendByte(byte(x.Quality))
}

// Bitstring32WithCP24Time2a is M_BO_TA_1 (8).
type Bitstring32WithCP24Time2a struct {
	Bitstring32
	Time CP24Time2a
}

func (x *Bitstring32WithCP24Time2a) TypeID() TypeID { return MBoTa1 }
func (x *Bitstring32WithCP24Time2a) encode(f *Frame) {
	x.Bitstring32.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// Bitstring32WithCP56Time2a is M_BO_TB_1 (33).
type Bitstring32WithCP56Time2a struct {
	Bitstring32
	Time CP56Time2a
}

func (x *Bitstring32WithCP56Time2a) TypeID() TypeID { return MBoTb1 }
func (x *Bitstring32WithCP56Time2a) encode(f *Frame) {
	x.Bitstring32.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueNormalized is M_ME_NA_1 (9): NVA plus quality.
type MeasuredValueNormalized struct {
	IOA     IOA
	Value   NormalizedValue
	Quality QualityDescriptor
}

func (x *MeasuredValueNormalized) TypeID() TypeID { return MMeNa1 }
func (x *MeasuredValueNormalized) Address() IOA   { return x.IOA }
func (x *MeasuredValueNormalized) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize()...)
	f.AppendByte(byte(x.Quality))
}

// MeasuredValueNormalizedWithCP24Time2a is M_ME_TA_1 (10).
type MeasuredValueNormalizedWithCP24Time2a struct {
	MeasuredValueNormalized
	Time CP24Time2a
}

func (x *MeasuredValueNormalizedWithCP24Time2a) TypeID() TypeID { return MMeTa1 }
func (x *MeasuredValueNormalizedWithCP24Time2a) encode(f *Frame) {
	x.MeasuredValueNormalized.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueNormalizedWithCP56Time2a is M_ME_TD_1 (34).
type MeasuredValueNormalizedWithCP56Time2a struct {
	MeasuredValueNormalized
	Time CP56Time2a
}

func (x *MeasuredValueNormalizedWithCP56Time2a) TypeID() TypeID { return MMeTd1 }
func (x *MeasuredValueNormalizedWithCP56Time2a) encode(f *Frame) {
	x.MeasuredValueNormalized.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueScaled is M_ME_NB_1 (11): SVA plus quality.
type MeasuredValueScaled struct {
	IOA     IOA
	Value   int16
	Quality QualityDescriptor
}

func (x *MeasuredValueScaled) TypeID() TypeID { return MMeNb1 }
func (x *MeasuredValueScaled) Address() IOA   { return x.IOA }
func (x *MeasuredValueScaled) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianInt16(x.Value)...)
	f.AppendByte(byte(x.Quality))
}

// MeasuredValueScaledWithCP24Time2a is M_ME_TB_1 (12).
type MeasuredValueScaledWithCP24Time2a struct {
	MeasuredValueScaled
	Time CP24Time2a
}

func (x *MeasuredValueScaledWithCP24Time2a) TypeID() TypeID { return MMeTb1 }
func (x *MeasuredValueScaledWithCP24Time2a) encode(f *Frame) {
	x.MeasuredValueScaled.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueScaledWithCP56Time2a is M_ME_TE_1 (35).
type MeasuredValueScaledWithCP56Time2a struct {
	MeasuredValueScaled
	Time CP56Time2a
}

func (x *MeasuredValueScaledWithCP56Time2a) TypeID() TypeID { return MMeTe1 }
func (x *MeasuredValueScaledWithCP56Time2a) encode(f *Frame) {
	x.MeasuredValueScaled.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueShort is M_ME_NC_1 (13): IEEE-754 single plus quality.
type MeasuredValueShort struct {
	IOA     IOA
	Value   float32
	Quality QualityDescriptor
}

func (x *MeasuredValueShort) TypeID() TypeID { return MMeNc1 }
func (x *MeasuredValueShort) Address() IOA   { return x.IOA }
func (x *MeasuredValueShort) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint32(math.Float32bits(x.Value))...)
	f.AppendByte(byte(x.Quality))
}

// MeasuredValueShortWithCP24Time2a is M_ME_TC_1 (14).
type MeasuredValueShortWithCP24Time2a struct {
	MeasuredValueShort
	Time CP24Time2a
}

func (x *MeasuredValueShortWithCP24Time2a) TypeID() TypeID { return MMeTc1 }
func (x *MeasuredValueShortWithCP24Time2a) encode(f *Frame) {
	x.MeasuredValueShort.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// MeasuredValueShortWithCP56Time2a is M_ME_TF_1 (36).
type MeasuredValueShortWithCP56Time2a struct {
	MeasuredValueShort
	Time CP56Time2a
}

func (x *MeasuredValueShortWithCP56Time2a) TypeID() TypeID { return MMeTf1 }
func (x *MeasuredValueShortWithCP56Time2a) encode(f *Frame) {
	x.MeasuredValueShort.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// IntegratedTotals is M_IT_NA_1 (15): a binary counter reading.
type IntegratedTotals struct {
	IOA   IOA
	Value BinaryCounterReading
}

func (x *IntegratedTotals) TypeID() TypeID { return MItNa1 }
func (x *IntegratedTotals) Address() IOA   { return x.IOA }
func (x *IntegratedTotals) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize()...)
}

// IntegratedTotalsWithCP24Time2a is M_IT_TA_1 (16).
type IntegratedTotalsWithCP24Time2a struct {
	IntegratedTotals
	Time CP24Time2a
}

func (x *IntegratedTotalsWithCP24Time2a) TypeID() TypeID { return MItTa1 }
func (x *IntegratedTotalsWithCP24Time2a) encode(f *Frame) {
	x.IntegratedTotals.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// IntegratedTotalsWithCP56Time2a is M_IT_TB_1 (37).
type IntegratedTotalsWithCP56Time2a struct {
	IntegratedTotals
	Time CP56Time2a
}

func (x *IntegratedTotalsWithCP56Time2a) TypeID() TypeID { return MItTb1 }
func (x *IntegratedTotalsWithCP56Time2a) encode(f *Frame) {
	x.IntegratedTotals.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// EventOfProtectionEquipment is M_EP_TA_1 (17): a relay event with the
// operating duration and a CP24 tag.
type EventOfProtectionEquipment struct {
	IOA     IOA
	Event   SingleEvent
	Elapsed CP16Time2a
	Time    CP24Time2a
}

func (x *EventOfProtectionEquipment) TypeID() TypeID { return MEpTa1 }
func (x *EventOfProtectionEquipment) Address() IOA   { return x.IOA }
func (x *EventOfProtectionEquipment) encode(f *Frame) {
	f.AppendByte(x.Event.serialize())
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// EventOfProtectionEquipmentWithCP56Time2a is M_EP_TD_1 (38).
type EventOfProtectionEquipmentWithCP56Time2a struct {
	IOA     IOA
	Event   SingleEvent
	Elapsed CP16Time2a
	Time    CP56Time2a
}

func (x *EventOfProtectionEquipmentWithCP56Time2a) TypeID() TypeID { return MEpTd1 }
func (x *EventOfProtectionEquipmentWithCP56Time2a) Address() IOA   { return x.IOA }
func (x *EventOfProtectionEquipmentWithCP56Time2a) encode(f *Frame) {
	f.AppendByte(x.Event.serialize())
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// PackedStartEventsOfProtectionEquipment is M_EP_TB_1 (18).
type PackedStartEventsOfProtectionEquipment struct {
	IOA     IOA
	Events  StartEvents
	Quality QualityDescriptor
	Elapsed CP16Time2a
	Time    CP24Time2a
}

func (x *PackedStartEventsOfProtectionEquipment) TypeID() TypeID { return MEpTb1 }
func (x *PackedStartEventsOfProtectionEquipment) Address() IOA   { return x.IOA }
func (x *PackedStartEventsOfProtectionEquipment) encode(f *Frame) {
	f.AppendBytes(byte(x.Events), byte(x.Quality))
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// PackedStartEventsOfProtectionEquipmentWithCP56Time2a is M_EP_TE_1 (39).
type PackedStartEventsOfProtectionEquipmentWithCP56Time2a struct {
	IOA     IOA
	Events  StartEvents
	Quality QualityDescriptor
	Elapsed CP16Time2a
	Time    CP56Time2a
}

func (x *PackedStartEventsOfProtectionEquipmentWithCP56Time2a) TypeID() TypeID { return MEpTe1 }
func (x *PackedStartEventsOfProtectionEquipmentWithCP56Time2a) Address() IOA   { return x.IOA }
func (x *PackedStartEventsOfProtectionEquipmentWithCP56Time2a) encode(f *Frame) {
	f.AppendBytes(byte(x.Events), byte(x.Quality))
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// PackedOutputCircuitInfo is M_EP_TC_1 (19).
type PackedOutputCircuitInfo struct {
	IOA      IOA
	Circuits OutputCircuitInfo
	Quality  QualityDescriptor
	Elapsed  CP16Time2a
	Time     CP24Time2a
}

func (x *PackedOutputCircuitInfo) TypeID() TypeID { return MEpTc1 }
func (x *PackedOutputCircuitInfo) Address() IOA   { return x.IOA }
func (x *PackedOutputCircuitInfo) encode(f *Frame) {
	f.AppendBytes(byte(x.Circuits), byte(x.Quality))
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// PackedOutputCircuitInfoWithCP56Time2a is M_EP_TF_1 (40).
type PackedOutputCircuitInfoWithCP56Time2a struct {
	IOA      IOA
	Circuits OutputCircuitInfo
	Quality  QualityDescriptor
	Elapsed  CP16Time2a
	Time     CP56Time2a
}

func (x *PackedOutputCircuitInfoWithCP56Time2a) TypeID() TypeID { return MEpTf1 }
func (x *PackedOutputCircuitInfoWithCP56Time2a) Address() IOA   { return x.IOA }
func (x *PackedOutputCircuitInfoWithCP56Time2a) encode(f *Frame) {
	f.AppendBytes(byte(x.Circuits), byte(x.Quality))
	f.AppendBytes(x.Elapsed.serialize()...)
	f.AppendBytes(x.Time.serialize()...)
}

// PackedSinglePointWithSCD is M_PS_NA_1 (20): 16 status bits with their
// change-detection bits and a quality octet.
type PackedSinglePointWithSCD struct {
	IOA          IOA
	Status       uint16
	StatusChange uint16
	Quality      QualityDescriptor
}

func (x *PackedSinglePointWithSCD) TypeID() TypeID { return MPsNa1 }
func (x *PackedSinglePointWithSCD) Address() IOA   { return x.IOA }
func (x *PackedSinglePointWithSCD) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint16(x.Status)...)
	f.AppendBytes(serializeLittleEndianUint16(x.StatusChange)...)
	f.AppendByte(byte(x.Quality))
}

// MeasuredValueNormalizedWithoutQuality is M_ME_ND_1 (21).
type MeasuredValueNormalizedWithoutQuality struct {
	IOA   IOA
	Value NormalizedValue
}

func (x *MeasuredValueNormalizedWithoutQuality) TypeID() TypeID { return MMeNd1 }
func (x *MeasuredValueNormalizedWithoutQuality) Address() IOA   { return x.IOA }
func (x *MeasuredValueNormalizedWithoutQuality) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize()...)
}

// EndOfInitialization is M_EI_NA_1 (70).
type EndOfInitialization struct {
	IOA                  IOA
	Cause                uint8
	AfterParameterChange bool
}

func (x *EndOfInitialization) TypeID() TypeID { return MEiNa1 }
func (x *EndOfInitialization) Address() IOA   { return x.IOA }
func (x *EndOfInitialization) encode(f *Frame) {
	b := x.Cause & 0x7f
	if x.AfterParameterChange {
		b |= 0x80
	}
	f.AppendByte(b)
}

// Process information in control direction.

// SingleCommand is C_SC_NA_1 (45): SCO octet.
type SingleCommand struct {
	IOA       IOA
	Value     bool
	Select    bool
	Qualifier uint8 // 0..31, QOC
}

func (x *SingleCommand) TypeID() TypeID { return CScNa1 }
func (x *SingleCommand) Address() IOA   { return x.IOA }
func (x *SingleCommand) encode(f *Frame) {
	b := x.Qualifier << 2
	if x.Value {
		b |= 0x01
	}
	if x.Select {
		b |= 0x80
	}
	f.AppendByte(b)
}

// SingleCommandWithCP56Time2a is C_SC_TA_1 (58).
type SingleCommandWithCP56Time2a struct {
	SingleCommand
	Time CP56Time2a
}

func (x *SingleCommandWithCP56Time2a) TypeID() TypeID { return CScTa1 }
func (x *SingleCommandWithCP56Time2a) encode(f *Frame) {
	x.SingleCommand.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// DoubleCommand is C_DC_NA_1 (46): DCO octet.
type DoubleCommand struct {
	IOA       IOA
	State     DoublePointValue
	Select    bool
	Qualifier uint8
}

func (x *DoubleCommand) TypeID() TypeID { return CDcNa1 }
func (x *DoubleCommand) Address() IOA   { return x.IOA }
func (x *DoubleCommand) encode(f *Frame) {
	b := byte(x.State&0x03) | x.Qualifier<<2
	if x.Select {
		b |= 0x80
	}
	f.AppendByte(b)
}

// DoubleCommandWithCP56Time2a is C_DC_TA_1 (59).
type DoubleCommandWithCP56Time2a struct {
	DoubleCommand
	Time CP56Time2a
}

func (x *DoubleCommandWithCP56Time2a) TypeID() TypeID { return CDcTa1 }
func (x *DoubleCommandWithCP56Time2a) encode(f *Frame) {
	x.DoubleCommand.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// StepCommandValue selects the regulating direction of a step command.
type StepCommandValue byte

const (
	StepLower  StepCommandValue = 1
	StepHigher StepCommandValue = 2
)

// StepCommand is C_RC_NA_1 (47): RCO octet.
type StepCommand struct {
	IOA       IOA
	Step      StepCommandValue
	Select    bool
	Qualifier uint8
}

func (x *StepCommand) TypeID() TypeID { return CRcNa1 }
func (x *StepCommand) Address() IOA   { return x.IOA }
func (x *StepCommand) encode(f *Frame) {
	b := byte(x.Step&0x03) | x.Qualifier<<2
	if x.Select {
		b |= 0x80
	}
	f.AppendByte(b)
}

// StepCommandWithCP56Time2a is C_RC_TA_1 (60).
type StepCommandWithCP56Time2a struct {
	StepCommand
	Time CP56Time2a
}

func (x *StepCommandWithCP56Time2a) TypeID() TypeID { return CRcTa1 }
func (x *StepCommandWithCP56Time2a) encode(f *Frame) {
	x.StepCommand.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

func encodeQOS(f *Frame, qualifier uint8, sel bool) {
	b := qualifier & 0x7f
	if sel {
		b |= 0x80
	}
	f.AppendByte(b)
}

// SetpointCommandNormalized is C_SE_NA_1 (48): NVA plus QOS.
type SetpointCommandNormalized struct {
	IOA       IOA
	Value     NormalizedValue
	Select    bool
	Qualifier uint8
}

func (x *SetpointCommandNormalized) TypeID() TypeID { return CSeNa1 }
func (x *SetpointCommandNormalized) Address() IOA   { return x.IOA }
func (x *SetpointCommandNormalized) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize()...)
	encodeQOS(f, x.Qualifier, x.Select)
}

// SetpointCommandNormalizedWithCP56Time2a is C_SE_TA_1 (61).
type SetpointCommandNormalizedWithCP56Time2a struct {
	SetpointCommandNormalized
	Time CP56Time2a
}

func (x *SetpointCommandNormalizedWithCP56Time2a) TypeID() TypeID { return CSeTa1 }
func (x *SetpointCommandNormalizedWithCP56Time2a) encode(f *Frame) {
	x.SetpointCommandNormalized.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// SetpointCommandScaled is C_SE_NB_1 (49): SVA plus QOS.
type SetpointCommandScaled struct {
	IOA       IOA
	Value     int16
	Select    bool
	Qualifier uint8
}

func (x *SetpointCommandScaled) TypeID() TypeID { return CSeNb1 }
func (x *SetpointCommandScaled) Address() IOA   { return x.IOA }
func (x *SetpointCommandScaled) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianInt16(x.Value)...)
	encodeQOS(f, x.Qualifier, x.Select)
}

// SetpointCommandScaledWithCP56Time2a is C_SE_TB_1 (62).
type SetpointCommandScaledWithCP56Time2a struct {
	SetpointCommandScaled
	Time CP56Time2a
}

func (x *SetpointCommandScaledWithCP56Time2a) TypeID() TypeID { return CSeTb1 }
func (x *SetpointCommandScaledWithCP56Time2a) encode(f *Frame) {
	x.SetpointCommandScaled.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// SetpointCommandShort is C_SE_NC_1 (50): IEEE-754 single plus QOS.
type SetpointCommandShort struct {
	IOA       IOA
	Value     float32
	Select    bool
	Qualifier uint8
}

func (x *SetpointCommandShort) TypeID() TypeID { return CSeNc1 }
func (x *SetpointCommandShort) Address() IOA   { return x.IOA }
func (x *SetpointCommandShort) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint32(math.Float32bits(x.Value))...)
	encodeQOS(f, x.Qualifier, x.Select)
}

// SetpointCommandShortWithCP56Time2a is C_SE_TC_1 (63).
type SetpointCommandShortWithCP56Time2a struct {
	SetpointCommandShort
	Time CP56Time2a
}

func (x *SetpointCommandShortWithCP56Time2a) TypeID() TypeID { return CSeTc1 }
func (x *SetpointCommandShortWithCP56Time2a) encode(f *Frame) {
	x.SetpointCommandShort.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// Bitstring32Command is C_BO_NA_1 (51).
type Bitstring32Command struct {
	IOA   IOA
	Value uint32
}

func (x *Bitstring32Command) TypeID() TypeID { return CBoNa1 }
func (x *Bitstring32Command) Address() IOA   { return x.IOA }
func (x *Bitstring32Command) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint32(x.Value)...)
}

// Bitstring32CommandWithCP56Time2a is C_BO_TA_1 (64).
type Bitstring32CommandWithCP56Time2a struct {
	Bitstring32Command
	Time CP56Time2a
}

func (x *Bitstring32CommandWithCP56Time2a) TypeID() TypeID { return CBoTa1 }
func (x *Bitstring32CommandWithCP56Time2a) encode(f *Frame) {
	x.Bitstring32Command.encode(f)
	f.AppendBytes(x.Time.serialize()...)
}

// System information in control direction.

// QOIStation requests a station (global) interrogation; 21..36 address the
// interrogation groups 1..16.
const QOIStation uint8 = 20

// InterrogationCommand is C_IC_NA_1 (100).
type InterrogationCommand struct {
	IOA IOA
	QOI uint8
}

func (x *InterrogationCommand) TypeID() TypeID { return CIcNa1 }
func (x *InterrogationCommand) Address() IOA   { return x.IOA }
func (x *InterrogationCommand) encode(f *Frame) {
	f.AppendByte(x.QOI)
}

// QCC request (RQT, bits 0..5) and freeze (FRZ, bits 6..7) values.
const (
	QCCGroup1  uint8 = 1
	QCCGroup2  uint8 = 2
	QCCGroup3  uint8 = 3
	QCCGroup4  uint8 = 4
	QCCGeneral uint8 = 5

	QCCFreezeRead         uint8 = 0x00
	QCCFreezeWithoutReset uint8 = 0x40
	QCCFreezeWithReset    uint8 = 0x80
	QCCCounterReset       uint8 = 0xC0
)

// CounterInterrogationCommand is C_CI_NA_1 (101).
type CounterInterrogationCommand struct {
	IOA IOA
	QCC uint8
}

func (x *CounterInterrogationCommand) TypeID() TypeID { return CCiNa1 }
func (x *CounterInterrogationCommand) Address() IOA   { return x.IOA }
func (x *CounterInterrogationCommand) encode(f *Frame) {
	f.AppendByte(x.QCC)
}

// ReadCommand is C_RD_NA_1 (102): the IOA alone.
type ReadCommand struct {
	IOA IOA
}

func (x *ReadCommand) TypeID() TypeID  { return CRdNa1 }
func (x *ReadCommand) Address() IOA    { return x.IOA }
func (x *ReadCommand) encode(_ *Frame) {}

// ClockSynchronizationCommand is C_CS_NA_1 (103).
type ClockSynchronizationCommand struct {
	IOA  IOA
	Time CP56Time2a
}

func (x *ClockSynchronizationCommand) TypeID() TypeID { return CCsNa1 }
func (x *ClockSynchronizationCommand) Address() IOA   { return x.IOA }
func (x *ClockSynchronizationCommand) encode(f *Frame) {
	f.AppendBytes(x.Time.serialize()...)
}

// testPattern is the fixed FBP of the test command.
var testPattern = [2]byte{0xCC, 0x55}

// TestCommand is C_TS_NA_1 (104). Valid reports whether a decoded command
// carried the fixed test bit pattern.
type TestCommand struct {
	IOA   IOA
	Valid bool
}

func (x *TestCommand) TypeID() TypeID { return CTsNb1 }
func (x *TestCommand) Address() IOA   { return x.IOA }
func (x *TestCommand) encode(f *Frame) {
	f.AppendBytes(testPattern[0], testPattern[1])
}

// QRPGeneralReset is the common qualifier of a reset process command.
const QRPGeneralReset uint8 = 1

// ResetProcessCommand is C_RP_NA_1 (105).
type ResetProcessCommand struct {
	IOA IOA
	QRP uint8
}

func (x *ResetProcessCommand) TypeID() TypeID { return CRpNc1 }
func (x *ResetProcessCommand) Address() IOA   { return x.IOA }
func (x *ResetProcessCommand) encode(f *Frame) {
	f.AppendByte(x.QRP)
}

// DelayAcquisitionCommand is C_CD_NA_1 (106).
type DelayAcquisitionCommand struct {
	IOA   IOA
	Delay CP16Time2a
}

func (x *DelayAcquisitionCommand) TypeID() TypeID { return CCdNa1 }
func (x *DelayAcquisitionCommand) Address() IOA   { return x.IOA }
func (x *DelayAcquisitionCommand) encode(f *Frame) {
	f.AppendBytes(x.Delay.serialize()...)
}

// TestCommandWithCP56Time2a is C_TS_TA_1 (107): a test sequence counter and
// a CP56 tag. The link engine answers these itself.
type TestCommandWithCP56Time2a struct {
	IOA     IOA
	Counter uint16
	Time    CP56Time2a
}

func (x *TestCommandWithCP56Time2a) TypeID() TypeID { return CTsTa1 }
func (x *TestCommandWithCP56Time2a) Address() IOA   { return x.IOA }
func (x *TestCommandWithCP56Time2a) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint16(x.Counter)...)
	f.AppendBytes(x.Time.serialize()...)
}

// Parameter in control direction.

// ParameterNormalizedValue is P_ME_NA_1 (110).
type ParameterNormalizedValue struct {
	IOA   IOA
	Value NormalizedValue
	QPM   uint8
}

func (x *ParameterNormalizedValue) TypeID() TypeID { return PMeNa1 }
func (x *ParameterNormalizedValue) Address() IOA   { return x.IOA }
func (x *ParameterNormalizedValue) encode(f *Frame) {
	f.AppendBytes(x.Value.serialize()...)
	f.AppendByte(x.QPM)
}

// ParameterScaledValue is P_ME_NB_1 (111).
type ParameterScaledValue struct {
	IOA   IOA
	Value int16
	QPM   uint8
}

func (x *ParameterScaledValue) TypeID() TypeID { return PMeNb1 }
func (x *ParameterScaledValue) Address() IOA   { return x.IOA }
func (x *ParameterScaledValue) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianInt16(x.Value)...)
	f.AppendByte(x.QPM)
}

// ParameterShortValue is P_ME_NC_1 (112).
type ParameterShortValue struct {
	IOA   IOA
	Value float32
	QPM   uint8
}

func (x *ParameterShortValue) TypeID() TypeID { return PMeNc1 }
func (x *ParameterShortValue) Address() IOA   { return x.IOA }
func (x *ParameterShortValue) encode(f *Frame) {
	f.AppendBytes(serializeLittleEndianUint32(math.Float32bits(x.Value))...)
	f.AppendByte(x.QPM)
}

// ParameterActivation is P_AC_NA_1 (113).
type ParameterActivation struct {
	IOA IOA
	QPA uint8
}

func (x *ParameterActivation) TypeID() TypeID { return PAcNa1 }
func (x *ParameterActivation) Address() IOA   { return x.IOA }
func (x *ParameterActivation) encode(f *Frame) {
	f.AppendByte(x.QPA)
}

// decodeInformationObject builds the variant for one element. data holds
// exactly the payload width the layout table declares for t.
func decodeInformationObject(t TypeID, ioa IOA, data []byte) (InformationObject, error) {
	switch t {
	case MSpNa1:
		return decodeSinglePoint(ioa, data[0]), nil
	case MSpTa1:
		return &SinglePointWithCP24Time2a{
			SinglePointInformation: *decodeSinglePoint(ioa, data[0]),
			Time:                   parseCP24Time2a(data[1:]),
		}, nil
	case MSpTb1:
		return &SinglePointWithCP56Time2a{
			SinglePointInformation: *decodeSinglePoint(ioa, data[0]),
			Time:                   parseCP56Time2a(data[1:]),
		}, nil
	case MDpNa1:
		return decodeDoublePoint(ioa, data[0]), nil
	case MDpTa1:
		return &DoublePointWithCP24Time2a{
			DoublePointInformation: *decodeDoublePoint(ioa, data[0]),
			Time:                   parseCP24Time2a(data[1:]),
		}, nil
	case MDpTb1:
		return &DoublePointWithCP56Time2a{
			DoublePointInformation: *decodeDoublePoint(ioa, data[0]),
			Time:                   parseCP56Time2a(data[1:]),
		}, nil
	case MStNa1:
		return decodeStepPosition(ioa, data), nil
	case MStTa1:
		return &StepPositionWithCP24Time2a{
			StepPositionInformation: *decodeStepPosition(ioa, data),
			Time:                    parseCP24Time2a(data[2:]),
		}, nil
	case MStTb1:
		return &StepPositionWithCP56Time2a{
			StepPositionInformation: *decodeStepPosition(ioa, data),
			Time:                    parseCP56Time2a(data[2:]),
		}, nil
	case MBoNa1:
		return decodeBitstring32(ioa, data), nil
	case MBoTa1:
		return &Bitstring32WithCP24Time2a{
			Bitstring32: *decodeBitstring32(ioa, data),
			Time:        parseCP24Time2a(data[5:]),
		}, nil
	case MBoTb1:
		return &Bitstring32WithCP56Time2a{
			Bitstring32: *decodeBitstring32(ioa, data),
			Time:        parseCP56Time2a(data[5:]),
		}, nil
	case MMeNa1:
		return decodeMeasuredNormalized(ioa, data), nil
	case MMeTa1:
		return &MeasuredValueNormalizedWithCP24Time2a{
			MeasuredValueNormalized: *decodeMeasuredNormalized(ioa, data),
			Time:                    parseCP24Time2a(data[3:]),
		}, nil
	case MMeTd1:
		return &MeasuredValueNormalizedWithCP56Time2a{
			MeasuredValueNormalized: *decodeMeasuredNormalized(ioa, data),
			Time:                    parseCP56Time2a(data[3:]),
		}, nil
	case MMeNb1:
		return decodeMeasuredScaled(ioa, data), nil
	case MMeTb1:
		return &MeasuredValueScaledWithCP24Time2a{
			MeasuredValueScaled: *decodeMeasuredScaled(ioa, data),
			Time:                parseCP24Time2a(data[3:]),
		}, nil
	case MMeTe1:
		return &MeasuredValueScaledWithCP56Time2a{
			MeasuredValueScaled: *decodeMeasuredScaled(ioa, data),
			Time:                parseCP56Time2a(data[3:]),
		}, nil
	case MMeNc1:
		return decodeMeasuredShort(ioa, data), nil
	case MMeTc1:
		return &MeasuredValueShortWithCP24Time2a{
			MeasuredValueShort: *decodeMeasuredShort(ioa, data),
			Time:               parseCP24Time2a(data[5:]),
		}, nil
	case MMeTf1:
		return &MeasuredValueShortWithCP56Time2a{
			MeasuredValueShort: *decodeMeasuredShort(ioa, data),
			Time:               parseCP56Time2a(data[5:]),
		}, nil
	case MItNa1:
		return &IntegratedTotals{IOA: ioa, Value: parseBinaryCounterReading(data)}, nil
	case MItTa1:
		return &IntegratedTotalsWithCP24Time2a{
			IntegratedTotals: IntegratedTotals{IOA: ioa, Value: parseBinaryCounterReading(data)},
			Time:             parseCP24Time2a(data[5:]),
		}, nil
	case MItTb1:
		return &IntegratedTotalsWithCP56Time2a{
			IntegratedTotals: IntegratedTotals{IOA: ioa, Value: parseBinaryCounterReading(data)},
			Time:             parseCP56Time2a(data[5:]),
		}, nil
	case MEpTa1:
		return &EventOfProtectionEquipment{
			IOA:     ioa,
			Event:   parseSingleEvent(data[0]),
			Elapsed: parseCP16Time2a(data[1:3]),
			Time:    parseCP24Time2a(data[3:]),
		}, nil
	case MEpTd1:
		return &EventOfProtectionEquipmentWithCP56Time2a{
			IOA:     ioa,
			Event:   parseSingleEvent(data[0]),
			Elapsed: parseCP16Time2a(data[1:3]),
			Time:    parseCP56Time2a(data[3:]),
		}, nil
	case MEpTb1:
		return &PackedStartEventsOfProtectionEquipment{
			IOA:     ioa,
			Events:  StartEvents(data[0]),
			Quality: ParseQualityDescriptor(data[1]),
			Elapsed: parseCP16Time2a(data[2:4]),
			Time:    parseCP24Time2a(data[4:]),
		}, nil
	case MEpTe1:
		return &PackedStartEventsOfProtectionEquipmentWithCP56Time2a{
			IOA:     ioa,
			Events:  StartEvents(data[0]),
			Quality: ParseQualityDescriptor(data[1]),
			Elapsed: parseCP16Time2a(data[2:4]),
			Time:    parseCP56Time2a(data[4:]),
		}, nil
	case MEpTc1:
		return &PackedOutputCircuitInfo{
			IOA:      ioa,
			Circuits: OutputCircuitInfo(data[0]),
			Quality:  ParseQualityDescriptor(data[1]),
			Elapsed:  parseCP16Time2a(data[2:4]),
			Time:     parseCP24Time2a(data[4:]),
		}, nil
	case MEpTf1:
		return &PackedOutputCircuitInfoWithCP56Time2a{
			IOA:      ioa,
			Circuits: OutputCircuitInfo(data[0]),
			Quality:  ParseQualityDescriptor(data[1]),
			Elapsed:  parseCP16Time2a(data[2:4]),
			Time:     parseCP56Time2a(data[4:]),
		}, nil
	case MPsNa1:
		return &PackedSinglePointWithSCD{
			IOA:          ioa,
			Status:       binary.LittleEndian.Uint16(data[:2]),
			StatusChange: binary.LittleEndian.Uint16(data[2:4]),
			Quality:      ParseQualityDescriptor(data[4]),
		}, nil
	case MMeNd1:
		return &MeasuredValueNormalizedWithoutQuality{IOA: ioa, Value: parseNormalizedValue(data)}, nil
	case MEiNa1:
		return &EndOfInitialization{
			IOA:                  ioa,
			Cause:                data[0] & 0x7f,
			AfterParameterChange: data[0]&0x80 == 0x80,
		}, nil
	case CScNa1:
		return decodeSingleCommand(ioa, data[0]), nil
	case CScTa1:
		return &SingleCommandWithCP56Time2a{
			SingleCommand: *decodeSingleCommand(ioa, data[0]),
			Time:          parseCP56Time2a(data[1:]),
		}, nil
	case CDcNa1:
		return decodeDoubleCommand(ioa, data[0]), nil
	case CDcTa1:
		return &DoubleCommandWithCP56Time2a{
			DoubleCommand: *decodeDoubleCommand(ioa, data[0]),
			Time:          parseCP56Time2a(data[1:]),
		}, nil
	case CRcNa1:
		return decodeStepCommand(ioa, data[0]), nil
	case CRcTa1:
		return &StepCommandWithCP56Time2a{
			StepCommand: *decodeStepCommand(ioa, data[0]),
			Time:        parseCP56Time2a(data[1:]),
		}, nil
	case CSeNa1:
		return decodeSetpointNormalized(ioa, data), nil
	case CSeTa1:
		return &SetpointCommandNormalizedWithCP56Time2a{
			SetpointCommandNormalized: *decodeSetpointNormalized(ioa, data),
			Time:                      parseCP56Time2a(data[3:]),
		}, nil
	case CSeNb1:
		return decodeSetpointScaled(ioa, data), nil
	case CSeTb1:
		return &SetpointCommandScaledWithCP56Time2a{
			SetpointCommandScaled: *decodeSetpointScaled(ioa, data),
			Time:                  parseCP56Time2a(data[3:]),
		}, nil
	case CSeNc1:
		return decodeSetpointShort(ioa, data), nil
	case CSeTc1:
		return &SetpointCommandShortWithCP56Time2a{
			SetpointCommandShort: *decodeSetpointShort(ioa, data),
			Time:                 parseCP56Time2a(data[5:]),
		}, nil
	case CBoNa1:
		return &Bitstring32Command{IOA: ioa, Value: binary.LittleEndian.Uint32(data)}, nil
	case CBoTa1:
		return &Bitstring32CommandWithCP56Time2a{
			Bitstring32Command: Bitstring32Command{IOA: ioa, Value: binary.LittleEndian.Uint32(data[:4])},
			Time:               parseCP56Time2a(data[4:]),
		}, nil
	case CIcNa1:
		return &InterrogationCommand{IOA: ioa, QOI: data[0]}, nil
	case CCiNa1:
		return &CounterInterrogationCommand{IOA: ioa, QCC: data[0]}, nil
	case CRdNa1:
		return &ReadCommand{IOA: ioa}, nil
	case CCsNa1:
		return &ClockSynchronizationCommand{IOA: ioa, Time: parseCP56Time2a(data)}, nil
	case CTsNb1:
		return &TestCommand{IOA: ioa, Valid: data[0] == testPattern[0] && data[1] == testPattern[1]}, nil
	case CRpNc1:
		return &ResetProcessCommand{IOA: ioa, QRP: data[0]}, nil
	case CCdNa1:
		return &DelayAcquisitionCommand{IOA: ioa, Delay: parseCP16Time2a(data)}, nil
	case CTsTa1:
		return &TestCommandWithCP56Time2a{
			IOA:     ioa,
			Counter: binary.LittleEndian.Uint16(data[:2]),
			Time:    parseCP56Time2a(data[2:]),
		}, nil
	case PMeNa1:
		return &ParameterNormalizedValue{IOA: ioa, Value: parseNormalizedValue(data[:2]), QPM: data[2]}, nil
	case PMeNb1:
		return &ParameterScaledValue{IOA: ioa, Value: parseLittleEndianInt16(data[:2]), QPM: data[2]}, nil
	case PMeNc1:
		return &ParameterShortValue{
			IOA:   ioa,
			Value: math.Float32frombits(binary.LittleEndian.Uint32(data[:4])),
			QPM:   data[4],
		}, nil
	case PAcNa1:
		return &ParameterActivation{IOA: ioa, QPA: data[0]}, nil
	}
	return nil, asduParsingErrorf("Unknown ASDU type id:%d", t)
}

func decodeSinglePoint(ioa IOA, b byte) *SinglePointInformation {
	return &SinglePointInformation{
		IOA:     ioa,
		Value:   b&0x01 == 0x01,
		Quality: QualityDescriptor(b & 0xf0),
	}
}

func decodeDoublePoint(ioa IOA, b byte) *DoublePointInformation {
	return &DoublePointInformation{
		IOA:     ioa,
		Value:   DoublePointValue(b & 0x03),
		Quality: QualityDescriptor(b & 0xf0),
	}
}

func decodeStepPosition(ioa IOA, data []byte) *StepPositionInformation {
	return &StepPositionInformation{
		IOA:     ioa,
		Value:   parseStepPosition(data[0]),
		Quality: ParseQualityDescriptor(data[1]),
	}
}

func decodeBitstring32(ioa IOA, data []byte) *Bitstring32 {
	return &Bitstring32{
		IOA:     ioa,
		Value:   binary.LittleEndian.Uint32(data[:4]),
		Quality: ParseQualityDescriptor(data[4]),
	}
}

func decodeMeasuredNormalized(ioa IOA, data []byte) *MeasuredValueNormalized {
	return &MeasuredValueNormalized{
		IOA:     ioa,
		Value:   parseNormalizedValue(data[:2]),
		Quality: ParseQualityDescriptor(data[2]),
	}
}

func decodeMeasuredScaled(ioa IOA, data []byte) *MeasuredValueScaled {
	return &MeasuredValueScaled{
		IOA:     ioa,
		Value:   parseLittleEndianInt16(data[:2]),
		Quality: ParseQualityDescriptor(data[2]),
	}
}

func decodeMeasuredShort(ioa IOA, data []byte) *MeasuredValueShort {
	return &MeasuredValueShort{
		IOA:     ioa,
		Value:   math.Float32frombits(binary.LittleEndian.Uint32(data[:4])),
		Quality: ParseQualityDescriptor(data[4]),
	}
}

func decodeSingleCommand(ioa IOA, b byte) *SingleCommand {
	return &SingleCommand{
		IOA:       ioa,
		Value:     b&0x01 == 0x01,
		Select:    b&0x80 == 0x80,
		Qualifier: b >> 2 & 0x1f,
	}
}

func decodeDoubleCommand(ioa IOA, b byte) *DoubleCommand {
	return &DoubleCommand{
		IOA:       ioa,
		State:     DoublePointValue(b & 0x03),
		Select:    b&0x80 == 0x80,
		Qualifier: b >> 2 & 0x1f,
	}
}

func decodeStepCommand(ioa IOA, b byte) *StepCommand {
	return &StepCommand{
		IOA:       ioa,
		Step:      StepCommandValue(b & 0x03),
		Select:    b&0x80 == 0x80,
		Qualifier: b >> 2 & 0x1f,
	}
}

func decodeSetpointNormalized(ioa IOA, data []byte) *SetpointCommandNormalized {
	return &SetpointCommandNormalized{
		IOA:       ioa,
		Value:     parseNormalizedValue(data[:2]),
		Select:    data[2]&0x80 == 0x80,
		Qualifier: data[2] & 0x7f,
	}
}

func decodeSetpointScaled(ioa IOA, data []byte) *SetpointCommandScaled {
	return &SetpointCommandScaled{
		IOA:       ioa,
		Value:     parseLittleEndianInt16(data[:2]),
		Select:    data[2]&0x80 == 0x80,
		Qualifier: data[2] & 0x7f,
	}
}

func decodeSetpointShort(ioa IOA, data []byte) *SetpointCommandShort {
	return &SetpointCommandShort{
		IOA:       ioa,
		Value:     math.Float32frombits(binary.LittleEndian.Uint32(data[:4])),
		Select:    data[4]&0x80 == 0x80,
		Qualifier: data[4] & 0x7f,
	}
}
