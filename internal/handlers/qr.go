package handlers

import (
	"encoding/base64"
	"fmt"
	"html/template"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/faithss/website/internal/models"
)

// reportQR encodes a short verification line for a printed report as a PNG
// data URI.
func reportQR(school string, res models.Result) (template.URL, error) {
	text := fmt.Sprintf("%s | %s | %s | %s %s | %d%% %s",
		school, res.AdmissionID, res.Name, res.Term, res.Session, res.OverallScore, res.OverallGrade)
	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}
