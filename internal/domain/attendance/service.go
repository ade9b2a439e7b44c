package attendance

import "context"

// AttendanceService defines the interface for attendance entry
type AttendanceService interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, req ListRecordsRequest) ([]RecordResponse, error)
}
