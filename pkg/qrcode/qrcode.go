package qr

import "github.com/skip2/go-qrcode"

// Config describes a ticket QR code render.
type Config struct {
	Content       string
	Size          int
	RecoveryLevel qrcode.RecoveryLevel
}

// Ticket is the default configuration for event ticket codes.
var Ticket = Config{
	Size:          512,
	RecoveryLevel: qrcode.Medium,
}

// Generate renders the QR code as a PNG byte slice.
func (c *Config) Generate() ([]byte, error) {
	size := c.Size
	if size == 0 {
		size = Ticket.Size
	}
	return qrcode.Encode(c.Content, c.RecoveryLevel, size)
}
