package iec104

import (
	"bytes"
	"testing"
)

func TestFramePrepareToSend(t *testing.T) {
	type args struct {
		send uint16
		recv uint16
		body []byte
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{
			"counters zero",
			args{
				0, 0,
				[]byte{0x64, 0x01, 0x06, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x14},
			},
			[]byte{0x68, 0x0E, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"small counters shift left once",
			args{
				2, 5,
				[]byte{0x64, 0x00, 0x07, 0x00, 0x01, 0x00},
			},
			[]byte{0x68, 0x0A, 0x04, 0x00, 0x0A, 0x00},
		},
		{
			"counters overflow into the high octet",
			args{
				128, 300,
				[]byte{0x64, 0x00, 0x07, 0x00, 0x01, 0x00},
			},
			// 128 -> (128%128)*2=0x00, 128/128=0x01; 300 -> (300%128)*2=0x58, 300/128=0x02
			[]byte{0x68, 0x0A, 0x00, 0x01, 0x58, 0x02},
		},
		{
			"maximum counters",
			args{
				32767, 32767,
				[]byte{0x64, 0x00, 0x07, 0x00, 0x01, 0x00},
			},
			[]byte{0x68, 0x0A, 0xFE, 0xFF, 0xFE, 0xFF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame()
			f.AppendBytes(tt.args.body...)
			if err := f.PrepareToSend(tt.args.send, tt.args.recv); err != nil {
				t.Fatalf("PrepareToSend() error = %v", err)
			}
			if got := f.Buffer()[:apciLength]; !bytes.Equal(got, tt.want) {
				t.Errorf("PrepareToSend() header = [% X], want [% X]", got, tt.want)
			}
			if f.Size() != len(tt.args.body)+apciLength {
				t.Errorf("Size() = %d, want %d", f.Size(), len(tt.args.body)+apciLength)
			}
		})
	}
}

func TestFramePrepareSFrame(t *testing.T) {
	type args struct {
		recv uint16
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{
			"nr 8",
			args{8},
			[]byte{0x68, 0x04, 0x01, 0x00, 0x10, 0x00},
		},
		{
			"nr 0",
			args{0},
			[]byte{0x68, 0x04, 0x01, 0x00, 0x00, 0x00},
		},
		{
			"nr 20000",
			args{20000},
			// (20000%128)*2=0x40, 20000/128=0x9C
			[]byte{0x68, 0x04, 0x01, 0x00, 0x40, 0x9C},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame()
			if err := f.PrepareSFrame(tt.args.recv); err != nil {
				t.Fatalf("PrepareSFrame() error = %v", err)
			}
			if !bytes.Equal(f.Buffer(), tt.want) {
				t.Errorf("PrepareSFrame() = [% X], want [% X]", f.Buffer(), tt.want)
			}
		})
	}
}

func TestFramePrepareUFrame(t *testing.T) {
	type args struct {
		fn UFrameFunction
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{
			"startdt act",
			args{UFrameFunctionStartDTA},
			[]byte{0x68, 0x04, 0x07, 0x00, 0x00, 0x00},
		},
		{
			"testfr act",
			args{UFrameFunctionTestFA},
			[]byte{0x68, 0x04, 0x43, 0x00, 0x00, 0x00},
		},
		{
			"testfr con",
			args{UFrameFunctionTestFC},
			[]byte{0x68, 0x04, 0x83, 0x00, 0x00, 0x00},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame()
			if err := f.PrepareUFrame(tt.args.fn); err != nil {
				t.Fatalf("PrepareUFrame() error = %v", err)
			}
			if !bytes.Equal(f.Buffer(), tt.want) {
				t.Errorf("PrepareUFrame() = [% X], want [% X]", f.Buffer(), tt.want)
			}
		})
	}
}

func TestFrameTooLong(t *testing.T) {
	f := NewFrame()
	for i := 0; i < maxApduLength+1; i++ {
		f.AppendByte(0x00)
	}
	err := f.PrepareToSend(0, 0)
	if err == nil {
		t.Fatal("PrepareToSend() expected error for oversized apdu")
	}
	if !IsFramingError(err) {
		t.Errorf("PrepareToSend() error = %T, want FramingError", err)
	}
}
