package services

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
)

// QRCodeService renders the public QR artifact for an encrypted code.
// Rendering is best-effort: a failure yields a generated placeholder image
// instead of an error, so registration never fails on image rendering alone.
type QRCodeService interface {
	GenerateDataURL(text string, size int) (string, error)
}

type qrCodeService struct {
	log      *logger.Logger
	fontFace font.Face
}

func NewQRCodeService(baseLog *logger.Logger) QRCodeService {
	serviceLog := baseLog.With("service", "QRCodeService")

	// Optional label font for the placeholder image. Missing font just means
	// a shape-only placeholder.
	var face font.Face
	fontPath := strings.TrimSpace(os.Getenv("QR_FALLBACK_FONT"))
	if fontPath != "" {
		loaded, err := loadFontFace(fontPath, 24)
		if err != nil {
			serviceLog.Warn("Could not load QR fallback font, placeholders will be unlabeled", "font", fontPath, "error", err)
		} else {
			face = loaded
		}
	}

	return &qrCodeService{log: serviceLog, fontFace: face}
}

func (qs *qrCodeService) GenerateDataURL(text string, size int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.Validation("text cannot be empty for QR code generation")
	}
	if size <= 0 {
		size = 300
	}

	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		qs.log.Error("Failed to render QR code, producing placeholder", "error", err)
		pngBytes = qs.placeholderPNG(size)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}

// placeholderPNG draws a bordered square with a diagonal cross and, when a
// font is loaded, an error label. Returned on QR render failure.
func (qs *qrCodeService) placeholderPNG(size int) []byte {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(4)
	dc.DrawRectangle(8, 8, float64(size-16), float64(size-16))
	dc.Stroke()
	dc.DrawLine(8, 8, float64(size-8), float64(size-8))
	dc.Stroke()
	dc.DrawLine(float64(size-8), 8, 8, float64(size-8))
	dc.Stroke()

	if qs.fontFace != nil {
		dc.SetFontFace(qs.fontFace)
		dc.DrawStringAnchored("QR unavailable", float64(size)/2, float64(size)/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		qs.log.Error("Failed to encode placeholder image", "error", err)
		return []byte{}
	}
	return buf.Bytes()
}

func loadFontFace(path string, points float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points}), nil
}
