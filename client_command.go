package iec104

/*
Command surface of the controlling station. Every method builds a one-element
ASDU (SQ=0) and hands it to the I-frame pipeline; all of them fail with
ErrNotConnected while data transfer is not active, before anything is
encoded.
*/

// linkParams returns the cloned parameters of the active link.
func (c *Client) linkParams() (*ConnectionParameters, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateActive {
		return nil, ErrNotConnected
	}
	return c.params, nil
}

func (c *Client) sendCommand(typeID TypeID, cot COT, coa COA, io InformationObject) error {
	params, err := c.linkParams()
	if err != nil {
		return err
	}
	asdu := NewASDU(params, typeID, cot, coa)
	if err := asdu.AddInformationObject(io); err != nil {
		return err
	}
	return c.Send(asdu)
}

// SendInterrogation issues an interrogation command (100). qoi 20 requests
// the full station image; 21..36 address the interrogation groups.
func (c *Client) SendInterrogation(cot COT, coa COA, qoi uint8) error {
	return c.sendCommand(CIcNa1, cot, coa, &InterrogationCommand{IOA: 0, QOI: qoi})
}

// SendGeneralInterrogation is the station interrogation shorthand. [召唤全数据]
func (c *Client) SendGeneralInterrogation(coa COA) error {
	return c.SendInterrogation(CotAct, coa, QOIStation)
}

// SendCounterInterrogation issues a counter interrogation command (101). The
// qcc octet combines a request value (QCCGeneral, QCCGroup1..4) with a freeze
// variant (QCCFreeze*). [召唤全电度]
func (c *Client) SendCounterInterrogation(cot COT, coa COA, qcc uint8) error {
	return c.sendCommand(CCiNa1, cot, coa, &CounterInterrogationCommand{IOA: 0, QCC: qcc})
}

// SendRead requests the current value of a single information object (102).
func (c *Client) SendRead(coa COA, ioa IOA) error {
	return c.sendCommand(CRdNa1, CotReq, coa, &ReadCommand{IOA: ioa})
}

// SendClockSync issues a clock synchronization command (103). Use the
// broadcast common address to set every outstation at once. [时钟同步]
func (c *Client) SendClockSync(coa COA, t CP56Time2a) error {
	return c.sendCommand(CCsNa1, CotAct, coa, &ClockSynchronizationCommand{IOA: 0, Time: t})
}

// SendTestCommand issues a test command (104) with the fixed bit pattern.
func (c *Client) SendTestCommand(coa COA) error {
	return c.sendCommand(CTsNb1, CotAct, coa, &TestCommand{IOA: 0})
}

// SendResetProcess issues a reset process command (105).
func (c *Client) SendResetProcess(cot COT, coa COA, qrp uint8) error {
	return c.sendCommand(CRpNc1, cot, coa, &ResetProcessCommand{IOA: 0, QRP: qrp})
}

// SendDelayAcquisition issues a delay acquisition command (106) carrying the
// measured channel delay.
func (c *Client) SendDelayAcquisition(cot COT, coa COA, delay CP16Time2a) error {
	return c.sendCommand(CCdNa1, cot, coa, &DelayAcquisitionCommand{IOA: 0, Delay: delay})
}

// SendControl transmits a process command (45..64). The information object
// must declare the same type identification; a mismatch fails locally before
// anything is sent.
func (c *Client) SendControl(typeID TypeID, cot COT, coa COA, io InformationObject) error {
	if !isControlType(typeID) {
		return asduParsingErrorf("type id:%d is not a control command", typeID)
	}
	if io.TypeID() != typeID {
		return &TypeMismatchError{Want: typeID, Got: io.TypeID()}
	}
	return c.sendCommand(typeID, cot, coa, io)
}

func isControlType(t TypeID) bool {
	return (t >= CScNa1 && t <= CBoNa1) || (t >= CScTa1 && t <= CBoTa1)
}

// SendSingleCommand switches a single point (45). With sel the command is
// only selected; a second call with sel false executes.
func (c *Client) SendSingleCommand(coa COA, ioa IOA, value, sel bool) error {
	return c.SendControl(CScNa1, CotAct, coa, &SingleCommand{IOA: ioa, Value: value, Select: sel})
}

// SendDoubleCommand switches a double point (46).
func (c *Client) SendDoubleCommand(coa COA, ioa IOA, state DoublePointValue, sel bool) error {
	return c.SendControl(CDcNa1, CotAct, coa, &DoubleCommand{IOA: ioa, State: state, Select: sel})
}

// SendStepCommand raises or lowers a regulating step (47).
func (c *Client) SendStepCommand(coa COA, ioa IOA, step StepCommandValue, sel bool) error {
	return c.SendControl(CRcNa1, CotAct, coa, &StepCommand{IOA: ioa, Step: step, Select: sel})
}
