package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TrackingQRGenerator encodes the order tracking page URL as a PNG.
type TrackingQRGenerator struct {
	BaseURL string
	Size    int
}

func (g TrackingQRGenerator) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(fmt.Sprintf("%s/orders/%d/track", g.BaseURL, orderID), qrcode.Medium, size)
}
