package packet

// Handshake opens every connection and selects the next state.
//
// @gen:r,w,sb=0x00
type Handshake struct {
	ProtocolVersion int32           `field:"VarInt"`
	ServerAddress   string          `field:"BoundedString" args:"255"`
	ServerPort      uint16          `field:"UnsignedShort"`
	NextState       HandshakeIntent `field:"VarIntEnum" args:"HandshakeIntents"`
}

// State returns the connection state the client asked for.
func (p Handshake) State() State {
	if p.NextState == IntentLogin {
		return Login
	}
	return Status
}
