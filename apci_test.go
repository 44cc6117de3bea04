package iec104

import (
	"testing"
)

func TestAPCIParse(t *testing.T) {
	type args struct {
		cf [4]byte
	}
	tests := []struct {
		name     string
		args     args
		wantType FrameType
		check    func(t *testing.T, frame ControlFrame)
	}{
		{
			"i-frame with zero counters",
			args{[4]byte{0x00, 0x00, 0x00, 0x00}},
			FrameTypeI,
			func(t *testing.T, frame ControlFrame) {
				i := frame.(*IFrame)
				if i.SendSN != 0 || i.RecvSN != 0 {
					t.Errorf("IFrame = %+v, want 0/0", i)
				}
			},
		},
		{
			"i-frame with counters 2/5",
			args{[4]byte{0x04, 0x00, 0x0A, 0x00}},
			FrameTypeI,
			func(t *testing.T, frame ControlFrame) {
				i := frame.(*IFrame)
				if i.SendSN != 2 || i.RecvSN != 5 {
					t.Errorf("IFrame = %+v, want 2/5", i)
				}
			},
		},
		{
			"i-frame with high counters",
			args{[4]byte{0x00, 0x01, 0x58, 0x02}},
			FrameTypeI,
			func(t *testing.T, frame ControlFrame) {
				i := frame.(*IFrame)
				if i.SendSN != 128 || i.RecvSN != 300 {
					t.Errorf("IFrame = %+v, want 128/300", i)
				}
			},
		},
		{
			"s-frame nr 8",
			args{[4]byte{0x01, 0x00, 0x10, 0x00}},
			FrameTypeS,
			func(t *testing.T, frame ControlFrame) {
				s := frame.(*SFrame)
				if s.RecvSN != 8 {
					t.Errorf("SFrame = %+v, want nr 8", s)
				}
			},
		},
		{
			"u-frame startdt con",
			args{[4]byte{0x0B, 0x00, 0x00, 0x00}},
			FrameTypeU,
			func(t *testing.T, frame ControlFrame) {
				u := frame.(*UFrame)
				if u.Cmd[0] != UFrameFunctionStartDTC[0] {
					t.Errorf("UFrame = %+v, want StartDTC", u)
				}
			},
		},
		{
			"u-frame testfr con",
			args{[4]byte{0x83, 0x00, 0x00, 0x00}},
			FrameTypeU,
			func(t *testing.T, frame ControlFrame) {
				u := frame.(*UFrame)
				if u.Cmd[0] != UFrameFunctionTestFC[0] {
					t.Errorf("UFrame = %+v, want TestFC", u)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apci := &APCI{
				ApduLen: 4,
				Cf1:     tt.args.cf[0],
				Cf2:     tt.args.cf[1],
				Cf3:     tt.args.cf[2],
				Cf4:     tt.args.cf[3],
			}
			ft, frame, err := apci.Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if ft != tt.wantType {
				t.Fatalf("Parse() type = %v, want %v", ft, tt.wantType)
			}
			tt.check(t, frame)
		})
	}
}

func TestAPCIParseBadUFrame(t *testing.T) {
	type args struct {
		cf [4]byte
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"no function bit",
			args{[4]byte{0x03, 0x00, 0x00, 0x00}},
		},
		{
			"two function bits",
			args{[4]byte{0x47, 0x00, 0x00, 0x00}},
		},
		{
			"nonzero trailing control fields",
			args{[4]byte{0x07, 0x01, 0x00, 0x00}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apci := &APCI{
				ApduLen: 4,
				Cf1:     tt.args.cf[0],
				Cf2:     tt.args.cf[1],
				Cf3:     tt.args.cf[2],
				Cf4:     tt.args.cf[3],
			}
			_, _, err := apci.Parse()
			if err == nil {
				t.Fatal("Parse() expected framing error")
			}
			if !IsFramingError(err) {
				t.Errorf("Parse() error = %T, want FramingError", err)
			}
		})
	}
}
