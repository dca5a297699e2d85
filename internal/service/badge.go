package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"

	"workforce/backend/internal/repository/postgres/user"
)

// CheckInQRContent is the payload encoded in a badge: the check-in endpoint
// pre-filled for the account.
func CheckInQRContent(baseURL string, userID int) string {
	return fmt.Sprintf("%s/api/v1/attendance/checkin?user_id=%d", baseURL, userID)
}

// CreateCheckInQRCode renders one account's badge QR into a PNG file.
func CreateCheckInQRCode(baseURL string, userID int, fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("error creating qr directory: %w", err)
	}
	if err := qrcode.WriteFile(CheckInQRContent(baseURL, userID), qrcode.Medium, 256, fileName); err != nil {
		return fmt.Errorf("error generating qr code: %w", err)
	}
	return nil
}

// CreateBadgeSheet lays every account's QR badge out on an A4 PDF, three
// badges per row.
func CreateBadgeSheet(rows []user.BadgeRow, baseURL, fileName string) error {
	qrDir, err := os.MkdirTemp("", "badges")
	if err != nil {
		return fmt.Errorf("error creating temp directory: %w", err)
	}
	defer os.RemoveAll(qrDir)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)
	pdf.AddPage()

	const (
		badgeW  = 60.0
		badgeH  = 75.0
		marginX = 12.0
		marginY = 12.0
		perRow  = 3
	)

	for i, row := range rows {
		qrFile := filepath.Join(qrDir, fmt.Sprintf("user_%d.png", row.ID))
		if err := CreateCheckInQRCode(baseURL, row.ID, qrFile); err != nil {
			return err
		}

		col := i % perRow
		line := (i / perRow) % 3
		if i > 0 && col == 0 && line == 0 {
			pdf.AddPage()
		}

		x := marginX + float64(col)*badgeW
		y := marginY + float64(line)*badgeH

		pdf.ImageOptions(qrFile, x, y, 50, 50, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetXY(x, y+52)
		pdf.CellFormat(50, 5, row.Username, "", 2, "C", false, 0, "")
		pdf.CellFormat(50, 5, row.Email, "", 0, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return fmt.Errorf("error saving pdf: %w", err)
	}
	return nil
}
