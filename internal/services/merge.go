package services

import (
	"delivery-analytics-service/internal/domain"
)

// MergeRecords joins each task to its parent tour by the shared tour
// identifier and assigns the overall 1-based ingestion order.
//
// Output has the same length and order as the task input. A task whose tour
// is absent from the ingested set keeps a nil tour rather than being dropped,
// since merged-record consumers tolerate a missing parent.
func MergeRecords(tours []domain.Tour, tasks []domain.Task) []domain.MergedRecord {
	byID := make(map[string]*domain.Tour, len(tours))
	for i := range tours {
		byID[tours[i].UniqueID] = &tours[i]
	}

	records := make([]domain.MergedRecord, 0, len(tasks))
	for i, task := range tasks {
		records = append(records, domain.MergedRecord{
			Task:  task,
			Tour:  byID[task.TourUniqueID],
			Ordre: i + 1,
		})
	}

	return records
}
