package iec104

import "encoding/binary"

/*
ClientHandler receives ASDUs delivered by the link engine. Every method runs on
the connection's receive goroutine: implementations must not block for long and
must not call Close on the same connection (send methods are fine).

The per-command handlers fire for the mirrored system commands; everything else
(process telegrams in monitor direction, parameter confirmations, unknown
types) reaches ASDUHandler.
*/
type ClientHandler interface {
	GeneralInterrogationHandler(asdu *ASDU) error
	CounterInterrogationHandler(asdu *ASDU) error
	ReadCommandHandler(asdu *ASDU) error
	ClockSynchronizationHandler(asdu *ASDU) error
	TestCommandHandler(asdu *ASDU) error
	ResetProcessCommandHandler(asdu *ASDU) error
	DelayAcquisitionCommandHandler(asdu *ASDU) error

	ASDUHandler(asdu *ASDU) error
}

func parseLittleEndianUint16(x []byte) uint16 {
	return binary.LittleEndian.Uint16(x)
}

func parseLittleEndianInt16(x []byte) int16 {
	return int16(binary.LittleEndian.Uint16(x))
}

func serializeLittleEndianUint16(x uint16) []byte {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, x)
	return data
}

func serializeLittleEndianInt16(x int16) []byte {
	return serializeLittleEndianUint16(uint16(x))
}

func serializeLittleEndianUint32(x uint32) []byte {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, x)
	return data
}
