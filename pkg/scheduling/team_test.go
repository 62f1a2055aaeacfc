package scheduling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/infrastructure/repositories/memory"
)

func TestTeamPartition(t *testing.T) {
	roster := []*entities.Inspector{
		buildInspector(t, "I001", false, "08:00", "16:30", 0, "default"),
		buildInspector(t, "I002", true, "08:00", "16:30", 0, "default"),
		buildInspector(t, "I003", false, "08:00", "16:30", 0, "default"),
		buildInspector(t, "I004", true, "08:00", "16:30", 0, "default"),
	}

	newTeam := NewProductMembers(roster)
	require.Len(t, newTeam, 2)
	require.Equal(t, entities.InspectorID("I002"), newTeam[0].ID)
	require.Equal(t, entities.InspectorID("I004"), newTeam[1].ID)

	regular := RegularMembers(roster)
	require.Len(t, regular, 2)
	require.Equal(t, entities.InspectorID("I001"), regular[0].ID)
	require.Equal(t, entities.InspectorID("I003"), regular[1].ID)
}

func TestIsNewProduct(t *testing.T) {
	products := memory.NewProductRepository(1)
	registered, err := entities.NewProduct("P-100", "Widget", 10, decimal.NewFromFloat(0.25), "standard")
	require.NoError(t, err)
	require.NoError(t, products.AddProduct(*registered))

	due := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	known, err := entities.NewWorkItem("P-100", due, 5, "pending")
	require.NoError(t, err)
	unknown, err := entities.NewWorkItem("NEW-1", due, 5, "pending")
	require.NoError(t, err)

	require.False(t, IsNewProduct(known, products))
	require.True(t, IsNewProduct(unknown, products))
}
