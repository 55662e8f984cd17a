package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(v float64) *float64 {
	return &v
}

func TestAddPartValidation(t *testing.T) {
	db := setupTestDB(t)
	tech := seedTechnician(t, db, "tech@example.com")
	device := seedDevice(t, db, "SN-001")
	ticket := seedTicket(t, db, device.ID, tech.ID, day(2025, 6, 1))
	svc := NewPartService(db)

	tests := []struct {
		name    string
		input   AddPartInput
		message string
	}{
		{
			name:    "zero quantity",
			input:   AddPartInput{PartName: "PSU", Quantity: 0, Cost: money(45.00)},
			message: "Quantity must be a positive number.",
		},
		{
			name:    "negative cost",
			input:   AddPartInput{PartName: "PSU", Quantity: 1, Cost: money(-5)},
			message: "Cost must be a valid number.",
		},
		{
			name:    "missing cost",
			input:   AddPartInput{PartName: "PSU", Quantity: 1},
			message: "Cost must be a valid number.",
		},
		{
			name:    "blank part name",
			input:   AddPartInput{PartName: "  ", Quantity: 1, Cost: money(10)},
			message: "Part name is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(tech.ID, ticket.ID, tt.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Messages, tt.message)
		})
	}

	parts, err := svc.List(tech.ID, ticket.ID)
	require.NoError(t, err)
	assert.Empty(t, parts, "rejected input must not be recorded")
}

func TestAddAndListPartsMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	tech := seedTechnician(t, db, "tech@example.com")
	device := seedDevice(t, db, "SN-001")
	ticket := seedTicket(t, db, device.ID, tech.ID, day(2025, 6, 1))
	svc := NewPartService(db)

	older, err := svc.Add(tech.ID, ticket.ID, AddPartInput{
		PartName: "RAM module",
		Quantity: 2,
		Cost:     money(10.50),
		Date:     day(2025, 6, 2),
	})
	require.NoError(t, err)

	newer, err := svc.Add(tech.ID, ticket.ID, AddPartInput{
		PartName: "PSU",
		Quantity: 1,
		Cost:     money(45.00),
		Date:     day(2025, 6, 5),
	})
	require.NoError(t, err)

	parts, err := svc.List(tech.ID, ticket.ID)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, newer.ID, parts[0].ID)
	assert.Equal(t, older.ID, parts[1].ID)
	assert.Equal(t, 21.0, parts[1].TotalCost())
}

func TestAddPartZeroCost(t *testing.T) {
	db := setupTestDB(t)
	tech := seedTechnician(t, db, "tech@example.com")
	device := seedDevice(t, db, "SN-001")
	ticket := seedTicket(t, db, device.ID, tech.ID, day(2025, 6, 1))
	svc := NewPartService(db)

	// An explicit $0 (warranty replacement) is valid; only a missing or
	// negative cost is rejected.
	part, err := svc.Add(tech.ID, ticket.ID, AddPartInput{
		PartName: "Fan",
		Quantity: 1,
		Cost:     money(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, part.Cost)
}

func TestAddPartOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedTechnician(t, db, "owner@example.com")
	other := seedTechnician(t, db, "other@example.com")
	device := seedDevice(t, db, "SN-001")
	ticket := seedTicket(t, db, device.ID, owner.ID, day(2025, 6, 1))
	svc := NewPartService(db)

	_, err := svc.Add(other.ID, ticket.ID, AddPartInput{PartName: "PSU", Quantity: 1, Cost: money(45)})
	assert.ErrorIs(t, err, ErrTicketNotFound)

	_, err = svc.List(other.ID, ticket.ID)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
