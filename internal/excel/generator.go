package excel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/leasing-service/internal/model"
)

const summarySheet = "Summary"

// Generator writes the rent roll workbook: a summary sheet followed by one
// sheet per owner listing that owner's rents.
type Generator struct {
	currency string
	now      func() time.Time
}

func NewGenerator(currency string) *Generator {
	return &Generator{currency: currency, now: time.Now}
}

type ownerGroup struct {
	owner model.Owner
	rents []model.RentStatement
}

func (g *Generator) Generate(roll []model.RentStatement) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	groups := groupByOwner(roll)
	if err := g.writeSummary(file, summarySheet, roll, groups); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, group := range groups {
		sheetName := buildSheetName(group.owner.FullName(), group.owner.ID, usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeDetail(file, sheetName, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, roll []model.RentStatement, groups []ownerGroup) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Rent roll")
	set("A2", "Generated")
	set("B2", formatDate(g.now().UTC()))
	set("A3", "Currency")
	set("B3", g.currency)
	set("A4", "Rents")
	set("B4", len(roll))
	set("A5", "Grand total")
	set("B5", roundAmount(sumTotals(roll)))

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Owner")
	set(fmt.Sprintf("B%d", tableRow), "Email")
	set(fmt.Sprintf("C%d", tableRow), "Rents")
	set(fmt.Sprintf("D%d", tableRow), "Total")

	for i, group := range groups {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), group.owner.FullName())
		set(fmt.Sprintf("B%d", row), group.owner.Email)
		set(fmt.Sprintf("C%d", row), len(group.rents))
		set(fmt.Sprintf("D%d", row), roundAmount(sumTotals(group.rents)))
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	_ = file.SetColWidth(sheet, "C", "D", 14)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group ownerGroup) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Owner")
	set("B1", group.owner.FullName())
	set("A2", "Email")
	set("B2", group.owner.Email)
	set("A3", "Rents")
	set("B3", len(group.rents))
	set("A4", "Total")
	set("B4", roundAmount(sumTotals(group.rents)))

	tableRow := 6
	headers := []string{
		"Rent",
		"Customer",
		"Property",
		"Type",
		"Address",
		"Lease start",
		"Lease end",
		"Base rate",
		"Utilities",
		"Utilities total",
		"Total",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, statement := range group.rents {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), statement.Rent.ID.String())
		set(fmt.Sprintf("B%d", row), statement.Customer.FullName())
		set(fmt.Sprintf("C%d", row), statement.Property.Name)
		set(fmt.Sprintf("D%d", row), kindLabel(statement.Property.Kind))
		set(fmt.Sprintf("E%d", row), statement.Property.Address)
		set(fmt.Sprintf("F%d", row), formatDate(statement.Lease.StartDate))
		set(fmt.Sprintf("G%d", row), formatDate(statement.Lease.EndDate))
		set(fmt.Sprintf("H%d", row), roundAmount(statement.Lease.RentalRate))
		set(fmt.Sprintf("I%d", row), utilityNames(statement.Utilities))
		set(fmt.Sprintf("J%d", row), roundAmount(statement.UtilitiesTotal()))
		set(fmt.Sprintf("K%d", row), roundAmount(statement.Rent.Total))
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "C", 28)
	_ = file.SetColWidth(sheet, "D", "D", 14)
	_ = file.SetColWidth(sheet, "E", "E", 36)
	_ = file.SetColWidth(sheet, "F", "G", 12)
	_ = file.SetColWidth(sheet, "H", "H", 12)
	_ = file.SetColWidth(sheet, "I", "I", 32)
	_ = file.SetColWidth(sheet, "J", "K", 14)
	return nil
}

// groupByOwner keeps the roll order inside each group and sorts groups by
// owner name.
func groupByOwner(roll []model.RentStatement) []ownerGroup {
	index := make(map[uuid.UUID]int)
	var groups []ownerGroup
	for _, statement := range roll {
		i, ok := index[statement.Owner.ID]
		if !ok {
			i = len(groups)
			index[statement.Owner.ID] = i
			groups = append(groups, ownerGroup{owner: statement.Owner})
		}
		groups[i].rents = append(groups[i].rents, statement)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].owner.FullName() < groups[b].owner.FullName()
	})
	return groups
}

func buildSheetName(name string, id uuid.UUID, used map[string]struct{}) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = id.String()
	}
	base = sanitizeSheetName(base)

	if len(base) > 31 {
		base = base[:31]
	}

	nameCandidate := base
	counter := 2
	for {
		if _, exists := used[nameCandidate]; !exists {
			return nameCandidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		nameCandidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Owner"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Owner"
	}
	return value
}

func kindLabel(kind model.PropertyKind) string {
	switch kind {
	case model.PropertyKindResidence:
		return "Residence"
	case model.PropertyKindEventSpace:
		return "Event space"
	case model.PropertyKindOfficeSpace:
		return "Office space"
	default:
		return string(kind)
	}
}

func utilityNames(lines []model.UtilityLine) string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.UtilityName)
	}
	return strings.Join(names, ", ")
}

func sumTotals(roll []model.RentStatement) float64 {
	total := 0.0
	for _, statement := range roll {
		total += statement.Rent.Total
	}
	return total
}

func roundAmount(value float64) float64 {
	return float64(int64(value*100+0.5)) / 100
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
