package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/leasing-service/internal/model"
)

func statement(owner model.Owner, total float64, utilities ...model.UtilityLine) model.RentStatement {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	rate := total
	for _, line := range utilities {
		rate -= line.Rate
	}
	return model.RentStatement{
		Rent:      model.Rent{ID: uuid.New(), Total: total},
		Lease:     model.Lease{RentalRate: rate, StartDate: start, EndDate: start.AddDate(0, 6, 0)},
		Property:  model.ResolvedProperty{Kind: model.PropertyKindOfficeSpace, PropertyBase: model.PropertyBase{Name: "Office", Address: "Main St 1"}},
		Customer:  model.Customer{FirstName: "Carl", LastName: "Customer"},
		Owner:     owner,
		Utilities: utilities,
	}
}

func TestGenerateRentRoll(t *testing.T) {
	alice := model.Owner{ID: uuid.New(), FirstName: "Alice", LastName: "Adams", Email: "alice@x.com"}
	bob := model.Owner{ID: uuid.New(), FirstName: "Bob", LastName: "Brown", Email: "bob@x.com"}
	roll := []model.RentStatement{
		statement(bob, 120),
		statement(alice, 340, model.UtilityLine{UtilityName: "WiFi", Rate: 40}),
		statement(alice, 200),
	}

	generator := NewGenerator("EUR")
	generator.now = func() time.Time { return time.Date(2030, 2, 3, 10, 0, 0, 0, time.UTC) }
	content, err := generator.Generate(roll)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Summary", "Alice Adams", "Bob Brown"}, file.GetSheetList())

	get := func(sheet, cell string) string {
		value, err := file.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return value
	}
	assert.Equal(t, "2030-02-03", get("Summary", "B2"))
	assert.Equal(t, "EUR", get("Summary", "B3"))
	assert.Equal(t, "3", get("Summary", "B4"))
	assert.Equal(t, "660", get("Summary", "B5"))
	assert.Equal(t, "Alice Adams", get("Summary", "A8"))
	assert.Equal(t, "540", get("Summary", "D8"))

	assert.Equal(t, "2", get("Alice Adams", "B3"))
	assert.Equal(t, "Office space", get("Alice Adams", "D7"))
	assert.Equal(t, "300", get("Alice Adams", "H7"))
	assert.Equal(t, "WiFi", get("Alice Adams", "I7"))
	assert.Equal(t, "340", get("Alice Adams", "K7"))
	assert.Equal(t, "2030-01-01", get("Alice Adams", "F7"))
}

func TestGenerateEmptyRoll(t *testing.T) {
	content, err := NewGenerator("EUR").Generate(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, []string{"Summary"}, file.GetSheetList())
}

func TestBuildSheetName(t *testing.T) {
	id := uuid.New()
	used := map[string]struct{}{"Summary": {}}

	name := buildSheetName("Ann [Lee]: Estates/Holdings", id, used)
	assert.Equal(t, "Ann -Lee-- Estates-Holdings", name)
	used[name] = struct{}{}
	assert.Equal(t, "Ann -Lee-- Estates-Holdings-2", buildSheetName("Ann [Lee]: Estates/Holdings", id, used))

	assert.Equal(t, id.String()[:31], buildSheetName("  ", id, used))
	assert.LessOrEqual(t, len(buildSheetName("An extremely long owner name that overflows", id, used)), 31)
}
