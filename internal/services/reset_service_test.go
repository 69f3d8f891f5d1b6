package services

import (
	"errors"
	"testing"
)

type recordingCleaner struct {
	name string
	log  *[]string
	err  error
}

func (cleaner *recordingCleaner) DeleteAll() error {
	*cleaner.log = append(*cleaner.log, cleaner.name)
	return cleaner.err
}

func TestClearAllDeletesChildrenBeforeParents(t *testing.T) {
	order := make([]string, 0, 4)
	service := NewResetService(
		&recordingCleaner{name: "meal_helpers", log: &order},
		&recordingCleaner{name: "ingredients", log: &order},
		&recordingCleaner{name: "dishes", log: &order},
		&recordingCleaner{name: "users", log: &order},
	)

	if err := service.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	expected := []string{"meal_helpers", "ingredients", "dishes", "users"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d deletes, got %d", len(expected), len(order))
	}
	for position, table := range expected {
		if order[position] != table {
			t.Fatalf("delete %d: expected %s, got %s", position, table, order[position])
		}
	}
}

func TestClearAllStopsOnFirstFailure(t *testing.T) {
	order := make([]string, 0, 4)
	service := NewResetService(
		&recordingCleaner{name: "meal_helpers", log: &order},
		&recordingCleaner{name: "ingredients", log: &order, err: errors.New("locked")},
		&recordingCleaner{name: "dishes", log: &order},
		&recordingCleaner{name: "users", log: &order},
	)

	if err := service.ClearAll(); err == nil {
		t.Fatal("expected error from failing cleaner")
	}
	if len(order) != 2 {
		t.Fatalf("expected deletes to stop after the failure, got %v", order)
	}
}
