package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/leasing-service/internal/model"
)

const fontName = "Helvetica"

// Generator renders single-rent invoices with the core Helvetica font, so
// text is translated to cp1252 before it is written.
type Generator struct {
	issuer   string
	currency string
}

func NewGenerator(issuer, currency string) *Generator {
	return &Generator{issuer: issuer, currency: currency}
}

func (g *Generator) Generate(statement model.RentStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Rent invoice", true)
	pdf.SetCreator(g.issuer, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, tr("Rent invoice"), "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Invoice %s of %s", statement.Rent.ID, formatDate(statement.Rent.CreatedAt))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Issued by %s", safeValue(g.issuer))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	partyBlock(pdf, tr, "Landlord", []string{
		statement.Owner.FullName(),
		fmt.Sprintf("Email: %s", safeValue(statement.Owner.Email)),
		fmt.Sprintf("Phone: %s", safeValue(statement.Owner.Phone)),
	})
	pdf.Ln(2)
	partyBlock(pdf, tr, "Tenant", []string{
		statement.Customer.FullName(),
		fmt.Sprintf("Email: %s", safeValue(statement.Customer.Email)),
	})
	pdf.Ln(2)
	partyBlock(pdf, tr, "Property", []string{
		fmt.Sprintf("%s (%s)", statement.Property.Name, kindLabel(statement.Property.Kind)),
		fmt.Sprintf("Address: %s", safeValue(statement.Property.Address)),
		fmt.Sprintf("Lease: %s to %s", formatDate(statement.Lease.StartDate), formatDate(statement.Lease.EndDate)),
	})
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Charges"), "", 1, "L", false, 0, "")

	colWidths := []float64{110, 30, 40}
	drawTableRow(pdf, tr, []string{"Description", "Type", fmt.Sprintf("Amount, %s", g.currency)}, colWidths, true)
	drawTableRow(pdf, tr, []string{
		fmt.Sprintf("Base rent: %s", statement.Property.Name),
		"Lease",
		formatAmount(statement.Lease.RentalRate),
	}, colWidths, false)
	for _, line := range statement.Utilities {
		drawTableRow(pdf, tr, []string{line.UtilityName, "Utility", formatAmount(line.Rate)}, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(fontName, "", 11)
	if len(statement.Utilities) > 0 {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Utilities: %s %s", formatAmount(statement.UtilitiesTotal()), g.currency)), "", 1, "R", false, 0, "")
	}
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Total due: %s %s", formatAmount(statement.Rent.Total), g.currency)), "", 1, "R", false, 0, "")

	pdf.Ln(8)
	signatureBlock(pdf, tr, "Landlord", statement.Owner.FullName())
	signatureBlock(pdf, tr, "Tenant", statement.Customer.FullName())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func partyBlock(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []string) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, tr func(string) string, label, name string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name))), "", 1, "L", false, 0, "")
}

func kindLabel(kind model.PropertyKind) string {
	switch kind {
	case model.PropertyKindResidence:
		return "residence"
	case model.PropertyKindEventSpace:
		return "event space"
	case model.PropertyKindOfficeSpace:
		return "office space"
	default:
		return string(kind)
	}
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
