package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

type QRGenerator interface {
	Generate(restaurantID string, size int) ([]byte, error)
	MenuURL(restaurantID string) string
}

// MenuQRGenerator renders a PNG pointing at the restaurant's public menu.
type MenuQRGenerator struct {
	BaseURL string
}

func (g MenuQRGenerator) MenuURL(restaurantID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(g.BaseURL, "/"), restaurantID)
}

func (g MenuQRGenerator) Generate(restaurantID string, size int) ([]byte, error) {
	switch {
	case size == 0:
		size = DefaultQRSize
	case size < minQRSize:
		size = minQRSize
	case size > maxQRSize:
		size = maxQRSize
	}
	return qrcode.Encode(g.MenuURL(restaurantID), qrcode.Medium, size)
}
