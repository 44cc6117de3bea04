package iec104

import (
	"encoding/binary"
	"fmt"
)

/*
ASDU (Application Service Data Unit).

The ASDU contains two main sections:
- the data unit identifier:
  - defining the specific type of data;
  - providing addressing to identify the specific data;
  - including information as cause of transmission.
- the data itself, made up of one or more information objects:
  - each ASDU can transmit maximum 127 objects;
  - the type identification is applied to the entire ASDU, so the information objects contained in the ASDU
    are of the same type.

The format of ASDU:
 | <-              8 bits              -> |
 | Type Identification                    |  --------------------
 | SQ | Number of objects                 |           |
 | T  | P/N | Cause of transmission (COT) |           |
 | Original address (ORG)                 |  Data Unit Identifier
 | ASDU address fields                    |           |
 | ASDU address fields                    |  --------------------
 | Information object address (IOA)       |  --------------------
 | Information object address (IOA)       |           |
 | Information object address (IOA)       |  Information Object 1
 | Information Elements                   |           |
 | Time Tag                               |  --------------------
 | Information Object 2                   |
 | Information Object N                   |

The widths of the originator (present iff SizeOfCOT is 2), common address and
information object address fields follow the link's ConnectionParameters.

A decoded ASDU keeps the octets after the identifier as a raw payload; the
typed information objects are produced on demand by Element, so a misparsing
body never takes the link down.
*/
type ASDU struct {
	params *ConnectionParameters

	typeID TypeID // 8  bits
	sq     SQ     // 1  bit
	nObjs  NOO    // 7  bits
	t      T      // 1  bit
	pn     PN     // 1  bit
	cot    COT    // 6  bits
	org    ORG    // 8  bits
	coa    COA    // 8 or 16 bits

	ios     []InformationObject
	payload []byte
}

// NewASDU starts an outbound ASDU with an empty information object list.
func NewASDU(params *ConnectionParameters, typeID TypeID, cot COT, coa COA) *ASDU {
	return &ASDU{
		params: params,
		typeID: typeID,
		cot:    cot,
		org:    params.OriginatorAddress,
		coa:    coa,
	}
}

func (asdu *ASDU) TypeID() TypeID          { return asdu.typeID }
func (asdu *ASDU) COT() COT                { return asdu.cot }
func (asdu *ASDU) COA() COA                { return asdu.coa }
func (asdu *ASDU) Originator() ORG         { return asdu.org }
func (asdu *ASDU) NumberOfElements() uint8 { return asdu.nObjs }
func (asdu *ASDU) IsSequence() bool        { return bool(asdu.sq) }
func (asdu *ASDU) IsTest() bool            { return bool(asdu.t) }
func (asdu *ASDU) IsNegative() bool        { return bool(asdu.pn) }

// Payload is the raw body after the data unit identifier of a decoded ASDU.
func (asdu *ASDU) Payload() []byte { return asdu.payload }

// SetTest marks the ASDU as generated under test conditions.
func (asdu *ASDU) SetTest(test bool) { asdu.t = T(test) }

// SetNegative marks a negative confirmation.
func (asdu *ASDU) SetNegative(neg bool) { asdu.pn = PN(neg) }

// SetSequence switches the ASDU to the compact SQ=1 layout. Only legal for
// type identifications that allow it; elements added afterwards must carry
// contiguous addresses.
func (asdu *ASDU) SetSequence(sq bool) error {
	if sq && !SupportsSequence(asdu.typeID) {
		return asduParsingErrorf("sequence layout not allowed for type id:%d", asdu.typeID)
	}
	asdu.sq = SQ(sq)
	return nil
}

// AddInformationObject appends one element. All elements of an ASDU must
// declare the ASDU's type identification; in sequence layout the address must
// continue the run started by the first element.
func (asdu *ASDU) AddInformationObject(io InformationObject) error {
	if io.TypeID() != asdu.typeID {
		return &TypeMismatchError{Want: asdu.typeID, Got: io.TypeID()}
	}
	if asdu.nObjs == 127 {
		return asduParsingErrorf("too many information objects: limit is 127")
	}
	if io.Address() > asdu.params.maxIOA() {
		return asduParsingErrorf("information object address %d exceeds %d octet width",
			io.Address(), asdu.params.SizeOfIOA)
	}
	if bool(asdu.sq) && len(asdu.ios) > 0 {
		want := asdu.ios[0].Address() + IOA(len(asdu.ios))
		if io.Address() != want {
			return asduParsingErrorf("sequence address %d breaks the run: want %d", io.Address(), want)
		}
	}
	asdu.ios = append(asdu.ios, io)
	asdu.nObjs++
	return nil
}

// Encode appends the data unit identifier and every information object to the
// frame, in wire order. The caller stamps the APCI afterwards.
func (asdu *ASDU) Encode(f *Frame) error {
	if asdu.coa > asdu.params.maxCOA() {
		return asduParsingErrorf("common address %d exceeds %d octet width", asdu.coa, asdu.params.SizeOfCA)
	}

	f.AppendByte(byte(asdu.typeID))

	vsq := asdu.nObjs
	if asdu.sq {
		vsq |= 0b1 << 7
	}
	f.AppendByte(vsq)

	cot := byte(asdu.cot)
	if asdu.t {
		cot |= 0b1 << 7
	}
	if asdu.pn {
		cot |= 0b1 << 6
	}
	f.AppendByte(cot)

	if asdu.params.SizeOfCOT == 2 {
		f.AppendByte(byte(asdu.org))
	}

	if asdu.params.SizeOfCA == 1 {
		f.AppendByte(byte(asdu.coa))
	} else {
		f.AppendBytes(serializeLittleEndianUint16(asdu.coa)...)
	}

	for i, io := range asdu.ios {
		if !bool(asdu.sq) || i == 0 {
			f.AppendBytes(serializeIOA(io.Address(), asdu.params.SizeOfIOA)...)
		}
		io.encode(f)
	}
	return nil
}

// Parse reads the data unit identifier and retains the rest as raw payload.
func (asdu *ASDU) Parse(data []byte) error {
	headerLen := 2 + asdu.params.SizeOfCOT + asdu.params.SizeOfCA
	if len(data) < headerLen {
		return asduParsingErrorf("asdu header truncated: % X", data)
	}

	asdu.parseTypeID(data[0])
	asdu.parseSQ(data[1])
	asdu.parseNOO(data[1])
	asdu.parseT(data[2])
	asdu.parsePN(data[2])
	asdu.parseCOT(data[2])

	rest := data[3:]
	if asdu.params.SizeOfCOT == 2 {
		asdu.parseORG(rest[0])
		rest = rest[1:]
	} else {
		asdu.org = 0
	}
	asdu.parseCOA(rest[:asdu.params.SizeOfCA])
	asdu.payload = rest[asdu.params.SizeOfCA:]
	return nil
}

/*
Element produces the typed information object at index i of a decoded ASDU.

The width table is authoritative: the element at index i lives at payload
offset SizeOfIOA + i*width with computed address ioa0+i in sequence layout,
and at i*(SizeOfIOA+width) otherwise. A type id outside the catalogue, an
index past the element count, a forbidden sequence layout or a payload whose
length disagrees with the advertised count all fail with ASDUParsingError.
*/
func (asdu *ASDU) Element(i int) (InformationObject, error) {
	layout, ok := elementLayouts[asdu.typeID]
	if !ok {
		return nil, asduParsingErrorf("Unknown ASDU type id:%d", asdu.typeID)
	}
	n := int(asdu.nObjs)
	if i < 0 || i >= n {
		return nil, asduParsingErrorf("element index %d out of range: %d elements", i, n)
	}
	ioaLen := asdu.params.SizeOfIOA

	if asdu.sq {
		if !layout.sequence {
			return nil, asduParsingErrorf("sequence layout not allowed for type id:%d", asdu.typeID)
		}
		if len(asdu.payload) != ioaLen+n*layout.width {
			return nil, asduParsingErrorf("payload length %d inconsistent with %d sequence elements of width %d",
				len(asdu.payload), n, layout.width)
		}
		ioa := parseIOA(asdu.payload[:ioaLen])
		off := ioaLen + i*layout.width
		return decodeInformationObject(asdu.typeID, ioa+IOA(i), asdu.payload[off:off+layout.width])
	}

	if len(asdu.payload) != n*(ioaLen+layout.width) {
		return nil, asduParsingErrorf("payload length %d inconsistent with %d elements of width %d",
			len(asdu.payload), n, layout.width)
	}
	off := i * (ioaLen + layout.width)
	ioa := parseIOA(asdu.payload[off : off+ioaLen])
	return decodeInformationObject(asdu.typeID, ioa, asdu.payload[off+ioaLen:off+ioaLen+layout.width])
}

// Elements enumerates every information object of a decoded ASDU.
func (asdu *ASDU) Elements() ([]InformationObject, error) {
	ios := make([]InformationObject, 0, asdu.nObjs)
	for i := 0; i < int(asdu.nObjs); i++ {
		io, err := asdu.Element(i)
		if err != nil {
			return nil, err
		}
		ios = append(ios, io)
	}
	return ios, nil
}

func parseIOA(data []byte) IOA {
	var ioa IOA
	for i, b := range data {
		ioa |= IOA(b) << (8 * i)
	}
	return ioa
}

func serializeIOA(ioa IOA, size int) []byte {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(ioa))
	return data[:size]
}

/*
TypeID (Type Identification, 1 byte):
- value range:
  - 0 is not used;
  - 1-127 is used for standard IEC 101 definitions:
    | Type ID | Group                                    |
    | 1-40    | Process information in monitor direction |
    | 45-64   | Process information in control direction |
    | 70      | System information in monitor direction  |
    | 100-107 | System information in control direction  |
    | 110-113 | Parameter in control direction           |
    | 120-127 | File transfer                            |
  - 128-135 is reserved for message routing;
  - 136-255 for special use.
*/
type TypeID uint8

const (
	// Process information in monitor direction, no time tag.

	// MSpNa1 indicates single point information.
	// InformationElement Format: SIQ
	MSpNa1 TypeID = 1
	// MDpNa1 indicates double point information.
	// InformationElement Format: DIQ
	MDpNa1 TypeID = 3
	// MStNa1 indicates step position information.
	// InformationElement Format: VTI + QDS
	MStNa1 TypeID = 5
	// MBoNa1 indicates a bitstring of 32 bit.
	// InformationElement Format: BSI + QDS
	MBoNa1 TypeID = 7
	// MMeNa1 indicates measured value, normalized.
	// InformationElement Format: NVA + QDS
	MMeNa1 TypeID = 9
	// MMeNb1 indicates measured value, scaled.
	// InformationElement Format: SVA + QDS
	MMeNb1 TypeID = 11
	// MMeNc1 indicates measured value, short floating point.
	// InformationElement Format: IEEE STD 754 + QDS
	MMeNc1 TypeID = 13
	// MItNa1 indicates integrated totals.
	// InformationElement Format: BCR
	MItNa1 TypeID = 15
	// MPsNa1 indicates packed single point information with status change detection.
	// InformationElement Format: SCD + QDS
	MPsNa1 TypeID = 20
	// MMeNd1 indicates measured value, normalized, without quality descriptor.
	// InformationElement Format: NVA
	MMeNd1 TypeID = 21

	// Process telegrams with short time tag (3 bytes).

	// MSpTa1 indicates single point information with time tag CP24Time2a.
	MSpTa1 TypeID = 2
	// MDpTa1 indicates double point information with time tag CP24Time2a.
	MDpTa1 TypeID = 4
	// MStTa1 indicates step position information with time tag CP24Time2a.
	MStTa1 TypeID = 6
	// MBoTa1 indicates a bitstring of 32 bit with time tag CP24Time2a.
	MBoTa1 TypeID = 8
	// MMeTa1 indicates measured value, normalized, with time tag CP24Time2a.
	MMeTa1 TypeID = 10
	// MMeTb1 indicates measured value, scaled, with time tag CP24Time2a.
	MMeTb1 TypeID = 12
	// MMeTc1 indicates measured value, short floating point, with time tag CP24Time2a.
	MMeTc1 TypeID = 14
	// MItTa1 indicates integrated totals with time tag CP24Time2a.
	MItTa1 TypeID = 16
	// MEpTa1 indicates an event of protection equipment with time tag CP24Time2a.
	MEpTa1 TypeID = 17
	// MEpTb1 indicates packed start events of protection equipment with time tag CP24Time2a.
	MEpTb1 TypeID = 18
	// MEpTc1 indicates packed output circuit information of protection equipment
	// with time tag CP24Time2a.
	MEpTc1 TypeID = 19

	// Process telegrams with long time tag (7 bytes).

	// MSpTb1 indicates single point information with time tag CP56Time2a.
	MSpTb1 TypeID = 30
	// MDpTb1 indicates double point information with time tag CP56Time2a.
	MDpTb1 TypeID = 31
	// MStTb1 indicates step position information with time tag CP56Time2a.
	MStTb1 TypeID = 32
	// MBoTb1 indicates a bitstring of 32 bit with time tag CP56Time2a.
	MBoTb1 TypeID = 33
	// MMeTd1 indicates measured value, normalized, with time tag CP56Time2a.
	MMeTd1 TypeID = 34
	// MMeTe1 indicates measured value, scaled, with time tag CP56Time2a.
	MMeTe1 TypeID = 35
	// MMeTf1 indicates measured value, short floating point, with time tag CP56Time2a.
	MMeTf1 TypeID = 36
	// MItTb1 indicates integrated totals with time tag CP56Time2a.
	MItTb1 TypeID = 37
	// MEpTd1 indicates an event of protection equipment with time tag CP56Time2a.
	MEpTd1 TypeID = 38
	// MEpTe1 indicates packed start events of protection equipment with time tag CP56Time2a.
	MEpTe1 TypeID = 39
	// MEpTf1 indicates packed output circuit information of protection equipment
	// with time tag CP56Time2a.
	MEpTf1 TypeID = 40

	// Process information in control direction.

	// CScNa1 indicates single command.
	// InformationElement Format: SCO
	CScNa1 TypeID = 45
	// CDcNa1 indicates double command.
	// InformationElement Format: DCO
	CDcNa1 TypeID = 46
	// CRcNa1 indicates regulating step command.
	// InformationElement Format: RCO
	CRcNa1 TypeID = 47
	// CSeNa1 indicates set point command, normalized value.
	// InformationElement Format: NVA + QOS
	CSeNa1 TypeID = 48
	// CSeNb1 indicates set point command, scaled value.
	// InformationElement Format: SVA + QOS
	CSeNb1 TypeID = 49
	// CSeNc1 indicates set point command, short floating point.
	// InformationElement Format: IEEE STD 754 + QOS
	CSeNc1 TypeID = 50
	// CBoNa1 indicates a bitstring of 32 bit command.
	// InformationElement Format: BSI
	CBoNa1 TypeID = 51

	// Command telegrams with long time tag (7 bytes).

	// CScTa1 indicates single command with time tag CP56Time2a.
	CScTa1 TypeID = 58
	// CDcTa1 indicates double command with time tag CP56Time2a.
	CDcTa1 TypeID = 59
	// CRcTa1 indicates regulating step command with time tag CP56Time2a.
	CRcTa1 TypeID = 60
	// CSeTa1 indicates set point command, normalized value, with time tag CP56Time2a.
	CSeTa1 TypeID = 61
	// CSeTb1 indicates set point command, scaled value, with time tag CP56Time2a.
	CSeTb1 TypeID = 62
	// CSeTc1 indicates set point command, short floating point, with time tag CP56Time2a.
	CSeTc1 TypeID = 63
	// CBoTa1 indicates a bitstring of 32 bit command with time tag CP56Time2a.
	CBoTa1 TypeID = 64

	// System information in monitor direction.

	// MEiNa1 indicates end of initialization.
	// InformationElement Format: COI
	MEiNa1 TypeID = 70

	// System information in control direction.

	// CIcNa1 indicates general interrogation command. [召唤全数据]
	// InformationElement Format: QOI
	// Valid COT: 6,7,8,9,10,44,45,46,47
	// ASDU Body: 1 InformationObject [ IOA + 1 byte Value ]
	CIcNa1 TypeID = 100
	// CCiNa1 indicates counter interrogation command. [召唤全电度]
	// InformationElement Format: QCC
	// Valid COT: 6,7,8,9,10,44,45,46,47
	CCiNa1 TypeID = 101
	// CRdNa1 indicates read command.
	// InformationElement Format: none (IOA only)
	CRdNa1 TypeID = 102
	// CCsNa1 indicates clock synchronization command. [时钟同步]
	// InformationElement Format: CP56Time2a
	// Valid COT: 3,6,7,44,45,46,47
	CCsNa1 TypeID = 103
	// CTsNb1 indicates test command.
	// InformationElement Format: FBP
	CTsNb1 TypeID = 104
	// CRpNc1 indicates reset process command.
	// InformationElement Format: QRP
	CRpNc1 TypeID = 105
	// CCdNa1 indicates delay acquisition command.
	// InformationElement Format: CP16Time2a
	CCdNa1 TypeID = 106
	// CTsTa1 indicates test command with time tag CP56Time2a.
	// InformationElement Format: TSC + CP56Time2a
	CTsTa1 TypeID = 107

	// Parameter in control direction.

	// PMeNa1 indicates parameter of measured value, normalized.
	// InformationElement Format: NVA + QPM
	PMeNa1 TypeID = 110
	// PMeNb1 indicates parameter of measured value, scaled.
	// InformationElement Format: SVA + QPM
	PMeNb1 TypeID = 111
	// PMeNc1 indicates parameter of measured value, short floating point.
	// InformationElement Format: IEEE STD 754 + QPM
	PMeNc1 TypeID = 112
	// PAcNa1 indicates parameter activation.
	// InformationElement Format: QPA
	PAcNa1 TypeID = 113

	// File transfer. Catalogued for completeness; the element dispatch does
	// not decode them.

	// FFrNa1 indicates file ready.
	FFrNa1 TypeID = 120
	// FSrNa1 indicates section ready.
	FSrNa1 TypeID = 121
	// FScNa1 indicates call directory, select file, call file, call section.
	FScNa1 TypeID = 122
	// FLsNa1 indicates last section, last segment.
	FLsNa1 TypeID = 123
	// FAfNa1 indicates ack file, ack section.
	FAfNa1 TypeID = 124
	// FSgNa1 indicates a segment.
	FSgNa1 TypeID = 125
	// FDrTa1 indicates a directory entry.
	FDrTa1 TypeID = 126
	// FSpNa1 indicates query log, request archive file.
	FSpNa1 TypeID = 127
)

func (asdu *ASDU) parseTypeID(data byte) TypeID {
	asdu.typeID = TypeID(data)
	return asdu.typeID
}

/*
SQ (Structure Qualifier, 1 bit) specifies how information objects or elements are addressed.
- SQ=0 (false): each information object has its own information object address (IOA);
  a set of discontinuous values.
- SQ=1  (true): there is just one information object address, which is the address of
  the first information element; the following elements are identified by numbers
  continuous by +1 from this offset. A sequence of continuous values, saving
  (n-1)*SizeOfIOA octets over the discrete layout.
*/
type SQ bool

func (asdu *ASDU) parseSQ(data byte) SQ {
	asdu.sq = (data & (1 << 7)) == 1<<7
	return asdu.sq
}

/*
NOO (Number of Objects/Elements, 7 bits).
*/
type NOO = uint8

func (asdu *ASDU) parseNOO(data byte) NOO {
	asdu.nObjs = data & 0b1111111
	return asdu.nObjs
}

/*
T (Test, 1 bit) defines ASDUs which generated during test conditions. That is to say, it is not intended to control the
process or change the system state.
- T=0 (false): no test.
- T=1  (true): test.
*/
type T bool

func (asdu *ASDU) parseT(data byte) T {
	asdu.t = (data & (1 << 7)) == 1<<7
	return asdu.t
}

/*
PN (Positive/Negative, 1 bit) indicates the positive or negative confirmation of an activation requested by a primary
application function. The bit is used when the control command is mirrored in the monitor direction, and it provides
indication of whether the command was executed or not.
- PN=0 (false): positive confirm.
- PN=1  (true): negative confirm.
*/
type PN bool

func (asdu *ASDU) parsePN(data byte) PN {
	asdu.pn = (data & (1 << 6)) == 1<<6
	return asdu.pn
}

/*
COT (Cause of Transmission, 6 bits) is used to control message routing.
- value range:
  - 0 is not defined!
  - 1-47 is used for standard IEC 101 definitions
  - 48-63 is for special use (private range)

COT is a 6-bit code which is used in interpreting the information at the destination station. Each defined ASDU
type has a defined subset of the codes which are meaningful with it.
*/
type COT uint8

const (
	// the standard definitions of COT
	// 14-19 is reserved for further compatible definitions
	CotPer, CotCyc COT = 1, 1 // periodic, cyclic
	CotBack        COT = 2    // background scan
	CotSpt         COT = 3    // spontaneous
	CotInit        COT = 4    // initialized
	CotReq         COT = 5    // request or requested
	CotAct         COT = 6    // activation
	CotActCon      COT = 7    // activation confirmation
	CotDeact       COT = 8    // deactivation
	CotDeactCon    COT = 9    // deactivation confirmation
	CotActTerm     COT = 10   // activation termination
	CotRetRem      COT = 11   // return information caused by a remote command
	CotRetLoc      COT = 12   // return information caused by a local command
	CotFile        COT = 13   // file transfer
	CotInrogen     COT = 20   // interrogated by general interrogation
	CotInro1       COT = 21   // interrogated by interrogation group1
	CotInro2       COT = 22   // interrogated by interrogation group2
	CotInro3       COT = 23   // interrogated by interrogation group3
	CotInro4       COT = 24   // interrogated by interrogation group4
	CotInro5       COT = 25   // interrogated by interrogation group5
	CotInro6       COT = 26   // interrogated by interrogation group6
	CotInro7       COT = 27   // interrogated by interrogation group7
	CotInro8       COT = 28   // interrogated by interrogation group8
	CotInro9       COT = 29   // interrogated by interrogation group9
	CotInro10      COT = 30   // interrogated by interrogation group10
	CotInro11      COT = 31   // interrogated by interrogation group11
	CotInro12      COT = 32   // interrogated by interrogation group12
	CotInro13      COT = 33   // interrogated by interrogation group13
	CotInro14      COT = 34   // interrogated by interrogation group14
	CotInro15      COT = 35   // interrogated by interrogation group15
	CotInro16      COT = 36   // interrogated by interrogation group16
	CotReqcogen    COT = 37   // interrogated by counter general interrogation
	CotReqco1      COT = 38   // interrogated by interrogation counter group 1
	CotReqco2      COT = 39   // interrogated by interrogation counter group 2
	CotReqco3      COT = 40   // interrogated by interrogation counter group 3
	CotReqco4      COT = 41   // interrogated by interrogation counter group 4
	CotUnType      COT = 44   // unknown type
	CotUnCause     COT = 45   // unknown cause
	CotUnAsduAddr  COT = 46   // unknown asdu address
	CotUnObjAddr   COT = 47   // unknown object address
)

func (asdu *ASDU) parseCOT(data byte) COT {
	asdu.cot = COT(data & 0b111111)
	return asdu.cot
}

/*
ORG (Originator Address, 1 byte) provides a method for a controlling station to explicitly identify itself.
- The originator address is optional when there is only one controlling station in a system. If it is not used, all bits
  are set to zero.
- It is required when where is more than one controlling station, or some stations are dual-mode. In this case,
  the address can be used to direct command confirmations back to the particular controlling station rather than to the
  whole system.
*/
type ORG uint8

func (asdu *ASDU) parseORG(data byte) ORG {
	asdu.org = ORG(data)
	return asdu.org
}

/*
COA (Common Address of ASDU) is normally interpreted as a station address.
- COA is either 1 or 2 bytes in length, fixed on pre-system basis. The value range of 2 bytes (the standard):
  - 0 is not used;
  - 1-65534 means a station address;
  - 65535 means global address, and it is broadcast in control direction have to be answered in monitor direction by
    the address that is the specific defined common address (station address).
- Global Address is used when the same application function must be initiated simultaneously. It's restricted to the
  following ASDUs:
  - TypeID = CIcNa1: replay with particular system data snapshot at common time
  - TypeID = CCiNa1: freeze totals at common time
  - TypeID = CCsNa1: synchronize clocks to common time
  - TypeID = CRpNc1: simultaneous reset
*/
type COA = uint16

func (asdu *ASDU) parseCOA(data []byte) COA {
	if len(data) == 1 {
		asdu.coa = COA(data[0])
	} else {
		asdu.coa = binary.LittleEndian.Uint16(data)
	}
	return asdu.coa
}

func (asdu *ASDU) String() string {
	return fmt.Sprintf("ASDU{type:%d cot:%d coa:%d n:%d sq:%v}",
		asdu.typeID, asdu.cot, asdu.coa, asdu.nObjs, bool(asdu.sq))
}
