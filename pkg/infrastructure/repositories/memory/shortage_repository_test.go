package memory

import (
	"testing"
	"time"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

func TestShortageRepository_PreservesInputOrder(t *testing.T) {
	repo := NewShortageRepository(3)
	due := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	codes := []string{"P-300", "P-100", "P-200"}
	var items []*entities.WorkItem
	for _, code := range codes {
		item, err := entities.NewWorkItem(entities.ProductCode(code), due, 5, "pending")
		if err != nil {
			t.Fatalf("Failed to create work item: %v", err)
		}
		items = append(items, item)
	}

	if err := repo.LoadWorkItems(items); err != nil {
		t.Fatalf("Failed to load work items: %v", err)
	}

	loaded, err := repo.GetWorkItems()
	if err != nil {
		t.Fatalf("Failed to get work items: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 work items, got %d", len(loaded))
	}
	for i, code := range codes {
		if string(loaded[i].ProductCode) != code {
			t.Errorf("Expected %s at position %d, got %s", code, i, loaded[i].ProductCode)
		}
	}
}
