package banner

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSizePx = 400

// QRImage returns a QR code image for the given payload, for compositing
// onto a banner. Empty payload returns (nil, nil).
func QRImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRSizePx
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return code.Image(sizePx), nil
}

// QRPNG returns PNG bytes of a QR code for the given payload.
func QRPNG(payload string, sizePx int) ([]byte, error) {
	if sizePx <= 0 {
		sizePx = defaultQRSizePx
	}
	return qrcode.Encode(payload, qrcode.Medium, sizePx)
}
