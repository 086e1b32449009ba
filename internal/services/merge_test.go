package services

import (
	"testing"

	"delivery-analytics-service/internal/domain"
)

func TestMergeRecordsAttachesParentsAndOrder(t *testing.T) {
	tours := []domain.Tour{
		{UniqueID: "T1", Warehouse: "Paris Nord"},
		{UniqueID: "T2", Warehouse: "Lyon Sud"},
	}
	tasks := []domain.Task{
		{TourUniqueID: "T1", Sequence: 1},
		{TourUniqueID: "T2", Sequence: 1},
		{TourUniqueID: "T9", Sequence: 1},
		{TourUniqueID: "T1", Sequence: 2},
	}

	records := MergeRecords(tours, tasks)

	if len(records) != len(tasks) {
		t.Fatalf("expected %d records, got %d", len(tasks), len(records))
	}

	for i, r := range records {
		if r.Ordre != i+1 {
			t.Errorf("record %d: ordre = %d, want %d", i, r.Ordre, i+1)
		}
	}

	if records[0].Tour == nil || records[0].Tour.UniqueID != "T1" {
		t.Errorf("record 0 should resolve tour T1, got %+v", records[0].Tour)
	}
	if records[1].Tour == nil || records[1].Tour.UniqueID != "T2" {
		t.Errorf("record 1 should resolve tour T2, got %+v", records[1].Tour)
	}

	// A dangling reference keeps a nil tour instead of being dropped.
	if records[2].Tour != nil {
		t.Errorf("record 2 references an unknown tour, want nil parent, got %+v", records[2].Tour)
	}
}

func TestMergeRecordsEmptyInputs(t *testing.T) {
	if got := MergeRecords(nil, nil); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}

	tours := []domain.Tour{{UniqueID: "T1"}}
	if got := MergeRecords(tours, nil); len(got) != 0 {
		t.Fatalf("tours without tasks should produce no records, got %d", len(got))
	}
}
