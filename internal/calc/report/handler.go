package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	titleY      = 42.0 // pt from the page top
	firstLineY  = 72.0
	lineSpacing = 20.0
	leftMargin  = 100.0
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Aircraft & Multirotor Calculator Report"
	}

	lines, err := BuildLines(input)
	if err != nil {
		http.Error(w, "No results to export", http.StatusUnprocessableEntity)
		return
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // unit superscripts are not ASCII
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftMargin, titleY, tr(input.Title))
	pdf.SetFont("Helvetica", "", 11)
	y := firstLineY
	for _, line := range lines {
		pdf.Text(leftMargin, y, tr(fmt.Sprintf("%s: %s", line.Label, line.Value)))
		y += lineSpacing
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(leftMargin, y+lineSpacing, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"drone_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
