package iec104

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

// mockServer is a scripted outstation on a loopback listener. Tests drive it
// frame by frame to assert the exact octets the client puts on the wire.
type mockServer struct {
	t    *testing.T
	ln   net.Listener
	conn net.Conn
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return &mockServer{t: t, ln: ln}
}

func (s *mockServer) addr() string {
	return s.ln.Addr().String()
}

func (s *mockServer) accept() {
	s.t.Helper()
	if tcp, ok := s.ln.(*net.TCPListener); ok {
		tcp.SetDeadline(time.Now().Add(2 * time.Second))
	}
	conn, err := s.ln.Accept()
	if err != nil {
		s.t.Fatalf("accept: %v", err)
	}
	s.conn = conn
}

func (s *mockServer) close() {
	if s.conn != nil {
		s.conn.Close()
	}
	s.ln.Close()
}

// readFrame blocks for one whole APDU.
func (s *mockServer) readFrame() []byte {
	s.t.Helper()
	s.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	header := make([]byte, 2)
	if _, err := io.ReadFull(s.conn, header); err != nil {
		s.t.Fatalf("server read header: %v", err)
	}
	if header[0] != startByte {
		s.t.Fatalf("server read: bad start octet % X", header)
	}
	body := make([]byte, header[1])
	if _, err := io.ReadFull(s.conn, body); err != nil {
		s.t.Fatalf("server read body: %v", err)
	}
	return append(header, body...)
}

func (s *mockServer) expectFrame(want []byte) {
	s.t.Helper()
	got := s.readFrame()
	if !bytes.Equal(got, want) {
		s.t.Fatalf("server read [% X], want [% X]", got, want)
	}
}

// expectSilence asserts no octets arrive for the given window.
func (s *mockServer) expectSilence(d time.Duration) {
	s.t.Helper()
	s.conn.SetReadDeadline(time.Now().Add(d))
	buf := make([]byte, 1)
	n, err := s.conn.Read(buf)
	if err == nil || n > 0 {
		s.t.Fatalf("server expected silence, got data")
	}
	var nerr net.Error
	if !errors.As(err, &nerr) || !nerr.Timeout() {
		s.t.Fatalf("server expected read timeout, got %v", err)
	}
}

func (s *mockServer) write(data []byte) {
	s.t.Helper()
	if _, err := s.conn.Write(data); err != nil {
		s.t.Fatalf("server write: %v", err)
	}
}

var (
	wireStartDTAct = []byte{0x68, 0x04, 0x07, 0x00, 0x00, 0x00}
	wireStartDTCon = []byte{0x68, 0x04, 0x0B, 0x00, 0x00, 0x00}
	wireTestFRAct  = []byte{0x68, 0x04, 0x43, 0x00, 0x00, 0x00}
	wireTestFRCon  = []byte{0x68, 0x04, 0x83, 0x00, 0x00, 0x00}
)

type captureHandler struct {
	asdus chan *ASDU
}

func newCaptureHandler() *captureHandler {
	return &captureHandler{asdus: make(chan *ASDU, 16)}
}

func (h *captureHandler) capture(asdu *ASDU) error {
	h.asdus <- asdu
	return nil
}

func (h *captureHandler) GeneralInterrogationHandler(asdu *ASDU) error  { return h.capture(asdu) }
func (h *captureHandler) CounterInterrogationHandler(asdu *ASDU) error  { return h.capture(asdu) }
func (h *captureHandler) ReadCommandHandler(asdu *ASDU) error           { return h.capture(asdu) }
func (h *captureHandler) ClockSynchronizationHandler(asdu *ASDU) error  { return h.capture(asdu) }
func (h *captureHandler) TestCommandHandler(asdu *ASDU) error           { return h.capture(asdu) }
func (h *captureHandler) ResetProcessCommandHandler(asdu *ASDU) error   { return h.capture(asdu) }
func (h *captureHandler) DelayAcquisitionCommandHandler(asdu *ASDU) error {
	return h.capture(asdu)
}
func (h *captureHandler) ASDUHandler(asdu *ASDU) error { return h.capture(asdu) }

type testHarness struct {
	srv     *mockServer
	client  *Client
	handler *captureHandler
	events  chan ConnectionEvent
}

func newTestHarness(t *testing.T, params *ConnectionParameters) *testHarness {
	t.Helper()
	srv := newMockServer(t)
	handler := newCaptureHandler()
	events := make(chan ConnectionEvent, 16)

	option, err := NewClientOption(srv.addr(), handler)
	if err != nil {
		t.Fatalf("NewClientOption() error = %v", err)
	}
	option.SetConnectionParameters(params).
		SetConnectionEventHandler(func(_ *Client, event ConnectionEvent) {
			events <- event
		})

	h := &testHarness{
		srv:     srv,
		client:  NewClient(option),
		handler: handler,
		events:  events,
	}
	t.Cleanup(func() {
		h.client.Close()
		h.srv.close()
	})
	return h
}

func fastParams() *ConnectionParameters {
	params := DefaultConnectionParameters()
	params.T0 = 2 * time.Second
	params.T1 = 4 * time.Second
	params.T2 = 2 * time.Second
	params.T3 = 30 * time.Second
	return params
}

func (h *testHarness) waitEvent(t *testing.T, want ConnectionEvent) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-h.events:
			if event == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %s", want)
		}
	}
}

// activate performs the connect and STARTDT handshake on both ends.
func (h *testHarness) activate(t *testing.T) {
	t.Helper()
	if err := h.client.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	h.srv.accept()
	h.srv.expectFrame(wireStartDTAct)
	h.srv.write(wireStartDTCon)
	h.waitEvent(t, EventStartDTConReceived)
	if !h.client.IsConnected() {
		t.Fatal("IsConnected() = false after STARTDT_CON")
	}
}

func (h *testHarness) sendIFrame(t *testing.T, ns, nr uint16, asdu *ASDU) {
	t.Helper()
	frame := NewFrame()
	if err := asdu.Encode(frame); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := frame.PrepareToSend(ns, nr); err != nil {
		t.Fatalf("PrepareToSend() error = %v", err)
	}
	h.srv.write(frame.Buffer())
}

func TestConnectStartDTHandshake(t *testing.T) {
	h := newTestHarness(t, fastParams())

	if err := h.client.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	h.srv.accept()
	h.waitEvent(t, EventOpened)

	h.srv.expectFrame(wireStartDTAct)
	h.srv.write(wireStartDTCon)
	h.waitEvent(t, EventStartDTConReceived)

	if !h.client.IsConnected() {
		t.Error("IsConnected() = false, want true")
	}
	if err := h.client.Connect(); !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("reentrant Connect() error = %v, want ErrAlreadyConnected", err)
	}
}

func TestAutostartDisabled(t *testing.T) {
	params := fastParams()
	params.Autostart = false
	h := newTestHarness(t, params)

	if err := h.client.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	h.srv.accept()
	h.srv.expectSilence(300 * time.Millisecond)

	if err := h.client.SendStartDT(); err != nil {
		t.Fatalf("SendStartDT() error = %v", err)
	}
	h.srv.expectFrame(wireStartDTAct)
	h.srv.write(wireStartDTCon)
	h.waitEvent(t, EventStartDTConReceived)
}

func TestInterrogationOnTheWire(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	if err := h.client.SendGeneralInterrogation(1); err != nil {
		t.Fatalf("SendGeneralInterrogation() error = %v", err)
	}
	h.srv.expectFrame([]byte{
		0x68, 0x0E, 0x00, 0x00, 0x00, 0x00,
		0x64, 0x01, 0x06, 0x00, 0x01, 0x00,
		0x00, 0x00, 0x00, 0x14,
	})
}

func TestSFrameCadence(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	for i := 0; i < int(h.client.params.W); i++ {
		asdu := NewASDU(h.client.params, MSpNa1, CotSpt, 1)
		if err := asdu.AddInformationObject(&SinglePointInformation{IOA: IOA(i + 1), Value: true}); err != nil {
			t.Fatalf("AddInformationObject() error = %v", err)
		}
		h.sendIFrame(t, uint16(i), 0, asdu)
	}

	// NR=8: (8%128)*2 = 0x10
	h.srv.expectFrame([]byte{0x68, 0x04, 0x01, 0x00, 0x10, 0x00})

	for i := 0; i < int(h.client.params.W); i++ {
		select {
		case <-h.handler.asdus:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivered asdu %d", i)
		}
	}
}

func TestIFrameBeforeStartDTClosesLink(t *testing.T) {
	params := fastParams()
	params.Autostart = false
	h := newTestHarness(t, params)

	if err := h.client.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	h.srv.accept()

	// data before STARTDT_CON violates the state machine: the link must die
	asdu := NewASDU(params, MSpNa1, CotSpt, 1)
	if err := asdu.AddInformationObject(&SinglePointInformation{IOA: 1, Value: true}); err != nil {
		t.Fatalf("AddInformationObject() error = %v", err)
	}
	h.sendIFrame(t, 0, 0, asdu)

	h.waitEvent(t, EventClosed)
	select {
	case delivered := <-h.handler.asdus:
		t.Errorf("handler received %s before STARTDT_CON", delivered)
	default:
	}
}

func TestReceivedTestCommandAutoAck(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	asdu := NewASDU(h.client.params, CTsNb1, CotAct, 1)
	if err := asdu.AddInformationObject(&TestCommand{IOA: 0}); err != nil {
		t.Fatalf("AddInformationObject() error = %v", err)
	}
	h.sendIFrame(t, 0, 0, asdu)

	// the engine mirrors the command with activation confirmation on its own
	h.srv.expectFrame([]byte{
		0x68, 0x0F, 0x00, 0x00, 0x02, 0x00,
		0x68, 0x01, 0x07, 0x00, 0x01, 0x00,
		0x00, 0x00, 0x00, 0xCC, 0x55,
	})

	// and the command still reaches the handler
	select {
	case delivered := <-h.handler.asdus:
		if delivered.TypeID() != CTsNb1 {
			t.Errorf("delivered TypeID() = %d, want %d", delivered.TypeID(), CTsNb1)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered test command")
	}
}

func TestReceivedTestCommandWithTimeAutoAck(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	asdu := NewASDU(h.client.params, CTsTa1, CotAct, 1)
	if err := asdu.AddInformationObject(&TestCommandWithCP56Time2a{IOA: 0, Counter: 77, Time: tag56}); err != nil {
		t.Fatalf("AddInformationObject() error = %v", err)
	}
	h.sendIFrame(t, 0, 0, asdu)

	got := h.srv.readFrame()
	reply := &ASDU{params: h.client.params}
	if err := reply.Parse(got[apciLength:]); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if reply.TypeID() != CTsTa1 {
		t.Errorf("reply TypeID() = %d, want %d", reply.TypeID(), CTsTa1)
	}
	if reply.COT() != CotActCon {
		t.Errorf("reply COT() = %d, want %d", reply.COT(), CotActCon)
	}
	el, err := reply.Element(0)
	if err != nil {
		t.Fatalf("reply Element(0) error = %v", err)
	}
	tc := el.(*TestCommandWithCP56Time2a)
	if tc.Counter != 77 {
		t.Errorf("reply counter = %d, want 77", tc.Counter)
	}

	select {
	case <-h.handler.asdus:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered test command")
	}
}

func TestTestFrameReply(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	h.srv.write(wireTestFRAct)
	h.srv.expectFrame(wireTestFRCon)
}

func TestIdleLinkSendsTestFrame(t *testing.T) {
	params := fastParams()
	params.T1 = 2 * time.Second
	params.T2 = 500 * time.Millisecond
	params.T3 = 500 * time.Millisecond
	h := newTestHarness(t, params)
	h.activate(t)

	// no traffic for t3: exactly one TESTFR_ACT must appear
	h.srv.expectFrame(wireTestFRAct)
	h.srv.write(wireTestFRCon)

	time.Sleep(200 * time.Millisecond)
	if !h.client.IsConnected() {
		t.Error("IsConnected() = false after test frame exchange, want true")
	}
}

func TestProtocolTimeoutClosesLink(t *testing.T) {
	params := fastParams()
	params.T1 = 400 * time.Millisecond
	params.T2 = 200 * time.Millisecond
	h := newTestHarness(t, params)
	h.activate(t)

	// the peer never answers the keep-alive
	if err := h.client.SendTestFrame(); err != nil {
		t.Fatalf("SendTestFrame() error = %v", err)
	}
	h.srv.expectFrame(wireTestFRAct)
	h.waitEvent(t, EventClosed)

	if h.client.IsConnected() {
		t.Error("IsConnected() = true after t1 expiry, want false")
	}
	if err := h.client.SendGeneralInterrogation(1); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendGeneralInterrogation() error = %v, want ErrNotConnected", err)
	}
}

func TestUnknownTypeIDDelivered(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	frame := NewFrame()
	frame.AppendBytes(200, 0x01, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00)
	if err := frame.PrepareToSend(0, 0); err != nil {
		t.Fatalf("PrepareToSend() error = %v", err)
	}
	h.srv.write(frame.Buffer())

	var asdu *ASDU
	select {
	case asdu = <-h.handler.asdus:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered asdu")
	}
	_, err := asdu.Element(0)
	if err == nil || err.Error() != "Unknown ASDU type id:200" {
		t.Errorf("Element(0) error = %v, want Unknown ASDU type id:200", err)
	}

	// the link survived and its receive counter advanced
	if err := h.client.SendTestCommand(1); err != nil {
		t.Fatalf("SendTestCommand() error = %v", err)
	}
	got := h.srv.readFrame()
	if got[4] != 0x02 || got[5] != 0x00 {
		t.Errorf("i-frame nr octets = % X, want 02 00", got[4:6])
	}
}

func TestSendSequenceNumbers(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	if err := h.client.SendTestCommand(1); err != nil {
		t.Fatalf("SendTestCommand() error = %v", err)
	}
	first := h.srv.readFrame()
	if first[2] != 0x00 || first[3] != 0x00 {
		t.Errorf("first i-frame ns octets = % X, want 00 00", first[2:4])
	}

	if err := h.client.SendTestCommand(1); err != nil {
		t.Fatalf("SendTestCommand() error = %v", err)
	}
	second := h.srv.readFrame()
	if second[2] != 0x02 || second[3] != 0x00 {
		t.Errorf("second i-frame ns octets = % X, want 02 00", second[2:4])
	}
}

func TestSendWindowBackpressure(t *testing.T) {
	params := fastParams()
	params.K = 2
	params.W = 1
	h := newTestHarness(t, params)
	h.activate(t)

	for i := 0; i < params.K; i++ {
		if err := h.client.SendTestCommand(1); err != nil {
			t.Fatalf("SendTestCommand() error = %v", err)
		}
		h.srv.readFrame()
	}

	blocked := make(chan error, 1)
	go func() {
		blocked <- h.client.SendTestCommand(1)
	}()

	select {
	case err := <-blocked:
		t.Fatalf("send with full window returned early: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	// acknowledge everything: NR=2 releases the window
	h.srv.write([]byte{0x68, 0x04, 0x01, 0x00, 0x04, 0x00})
	select {
	case err := <-blocked:
		if err != nil {
			t.Fatalf("send after window drain error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send still blocked after acknowledgement")
	}
	h.srv.readFrame()
}

func TestStopDTFallsBackToUnconfirmed(t *testing.T) {
	h := newTestHarness(t, fastParams())
	h.activate(t)

	if err := h.client.SendStopDT(); err != nil {
		t.Fatalf("SendStopDT() error = %v", err)
	}
	h.srv.expectFrame([]byte{0x68, 0x04, 0x13, 0x00, 0x00, 0x00})
	h.srv.write([]byte{0x68, 0x04, 0x23, 0x00, 0x00, 0x00})
	h.waitEvent(t, EventStopDTConReceived)

	if h.client.IsConnected() {
		t.Error("IsConnected() = true after STOPDT_CON, want false")
	}
	if err := h.client.SendGeneralInterrogation(1); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendGeneralInterrogation() error = %v, want ErrNotConnected", err)
	}
}

func TestSendRequiresConnection(t *testing.T) {
	option, err := NewClientOption("127.0.0.1:2404", nil)
	if err != nil {
		t.Fatalf("NewClientOption() error = %v", err)
	}
	client := NewClient(option)

	if err := client.SendGeneralInterrogation(1); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendGeneralInterrogation() error = %v, want ErrNotConnected", err)
	}
	if err := client.SendClockSync(1, NewCP56Time2a(time.Now())); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendClockSync() error = %v, want ErrNotConnected", err)
	}
}

func TestSendControlTypeMismatch(t *testing.T) {
	option, err := NewClientOption("127.0.0.1:2404", nil)
	if err != nil {
		t.Fatalf("NewClientOption() error = %v", err)
	}
	client := NewClient(option)

	err = client.SendControl(CScNa1, CotAct, 1, &DoubleCommand{IOA: 1, State: DoublePointOn})
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("SendControl() error = %v, want TypeMismatchError", err)
	}

	if err := client.SendControl(CIcNa1, CotAct, 1, &InterrogationCommand{}); err == nil {
		t.Error("SendControl() expected error for non-control type id")
	}
}

func TestConnectTimeoutHonoured(t *testing.T) {
	params := fastParams()
	params.T0 = 200 * time.Millisecond

	// 203.0.113.1 is TEST-NET-3: never routable, the dial must hit t0
	option, err := NewClientOption("203.0.113.1:2404", nil)
	if err != nil {
		t.Fatalf("NewClientOption() error = %v", err)
	}
	option.SetConnectionParameters(params)
	client := NewClient(option)

	start := time.Now()
	if err := client.Connect(); err == nil {
		client.Close()
		t.Fatal("Connect() expected error for unreachable host")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Connect() took %s, want about t0 (%s)", elapsed, params.T0)
	}
}
