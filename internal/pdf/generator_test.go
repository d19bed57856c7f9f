package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/leasing-service/internal/model"
)

func TestGenerateInvoice(t *testing.T) {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	statement := model.RentStatement{
		Rent:  model.Rent{ID: uuid.New(), Total: 340, CreatedAt: start},
		Lease: model.Lease{RentalRate: 300, StartDate: start, EndDate: start.AddDate(0, 6, 0)},
		Property: model.ResolvedProperty{
			Kind:         model.PropertyKindOfficeSpace,
			PropertyBase: model.PropertyBase{Name: "Café Office", Address: "Main St 1"},
		},
		Customer:  model.Customer{FirstName: "Carl", LastName: "Customer", Email: "c@x.com"},
		Owner:     model.Owner{FirstName: "Olga", LastName: "Owner", Email: "o@x.com"},
		Utilities: []model.UtilityLine{{UtilityName: "WiFi", Rate: 40}},
	}

	content, err := NewGenerator("Leasing Office", "EUR").Generate(statement)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "340.00", formatAmount(340))
	assert.Equal(t, "-", formatDate(time.Time{}))
	assert.Equal(t, "03.02.2030", formatDate(time.Date(2030, 2, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", safeValue("  "))
	assert.Equal(t, "office space", kindLabel(model.PropertyKindOfficeSpace))
}
