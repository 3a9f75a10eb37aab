package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRanking ranks suppliers by how many complaints name them.
type SupplierRanking struct {
	Supplier       string `json:"supplier"`
	ComplaintCount int64  `json:"complaint_count"`
}

// StatisticsResponse aggregates complaint metrics for the admin dashboard.
type StatisticsResponse struct {
	TimeRangeStartDate time.Time `json:"time_range_start_date"`
	TimeRangeEndDate   time.Time `json:"time_range_end_date"`

	TotalComplaints    int64 `json:"total_complaints"`
	PendingComplaints  int64 `json:"pending_complaints"`
	AssignedComplaints int64 `json:"assigned_complaints"`
	ResolvedComplaints int64 `json:"resolved_complaints"`

	// ResolutionRate = resolved / total, DefectiveRatio = sum(defective) / sum(total quantity)
	ResolutionRate decimal.Decimal `json:"resolution_rate"`
	DefectiveRatio decimal.Decimal `json:"defective_ratio"`

	TopSuppliers []SupplierRanking `json:"top_suppliers"`
}
