package dto

import "github.com/yigit/passboard/internal/app/models"

// RecordListResponse carries the published record collection
type RecordListResponse struct {
	Records []models.Record `json:"records"`
	Count   int             `json:"count" example:"42"`
}

// NewRecordListResponse builds a RecordListResponse, never with a nil slice
func NewRecordListResponse(records []models.Record) RecordListResponse {
	if records == nil {
		records = []models.Record{}
	}
	return RecordListResponse{
		Records: records,
		Count:   len(records),
	}
}
