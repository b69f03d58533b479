// net_udp.go - UDP-backed Net capability
//
// Raw best-effort datagrams, never a framed session protocol: Net is a
// thin transport underneath the lock-step layer, which already handles
// its own retries via periodic rebroadcast. stdlib net.UDPConn is used
// directly rather than a P2P library (pion/webrtc operates at the
// ICE/SRTP/SDP level, far above a raw <=64-byte-datagram abstraction;
// see DESIGN.md) — this is deliberately the plainest possible transport
// satisfying the Net interface.

package main

import (
	"net"
)

// udpAddr adapts *net.UDPAddr to NetAddr.
type udpAddr struct {
	addr *net.UDPAddr
}

func (a udpAddr) String() string { return a.addr.String() }

// UDPNet is a non-blocking Net backed by a single UDP socket. A
// background goroutine drains the socket into a small buffered channel;
// Recv never blocks, matching the interface contract.
type UDPNet struct {
	conn *net.UDPConn
	inb  chan NetMessage
	done chan struct{}
}

// NewUDPNet opens a UDP socket on localAddr (host:port, or ":0" for an
// ephemeral port) and starts its receive loop.
func NewUDPNet(localAddr string) (*UDPNet, error) {
	addr, err := net.ResolveUDPAddr("udp", localAddr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}
	n := &UDPNet{
		conn: conn,
		inb:  make(chan NetMessage, 64),
		done: make(chan struct{}),
	}
	go n.recvLoop()
	return n, nil
}

func (n *UDPNet) recvLoop() {
	buf := make([]byte, MaxNetMessageSize)
	for {
		select {
		case <-n.done:
			return
		default:
		}
		nn, from, err := n.conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		data := make([]byte, nn)
		copy(data, buf[:nn])
		msg := NetMessage{Addr: udpAddr{addr: from}, Data: data}
		select {
		case n.inb <- msg:
		default:
			// Inbound queue saturated: drop, matching the lock-step
			// layer's own drift tolerance rather than blocking the
			// socket reader.
		}
	}
}

// Recv returns the oldest buffered datagram, or ok=false if none is
// waiting.
func (n *UDPNet) Recv() (NetMessage, bool) {
	select {
	case msg := <-n.inb:
		return msg, true
	default:
		return NetMessage{}, false
	}
}

// Send writes data to addr, which must be a udpAddr produced by this
// same Net (or another UDPNet resolving to the same address family).
func (n *UDPNet) Send(addr NetAddr, data []byte) error {
	ua, ok := addr.(udpAddr)
	if !ok {
		resolved, err := net.ResolveUDPAddr("udp", addr.String())
		if err != nil {
			return err
		}
		ua = udpAddr{addr: resolved}
	}
	_, err := n.conn.WriteToUDP(data, ua.addr)
	return err
}

// Close stops the receive loop and closes the socket.
func (n *UDPNet) Close() error {
	close(n.done)
	return n.conn.Close()
}
