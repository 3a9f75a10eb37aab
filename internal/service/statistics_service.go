package service

import (
	"context"
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error)
}

type statisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetStatistics aggregates complaint metrics for the admin dashboard within
// the given time bracket.
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error) {
	var response model.StatisticsResponse
	response.TimeRangeStartDate = startDate
	response.TimeRangeEndDate = endDate

	base := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&model.Complaint{}).
			Where("created_at >= ? AND created_at <= ?", startDate, endDate)
	}

	if err := base().Count(&response.TotalComplaints).Error; err != nil {
		return response, err
	}
	if err := base().Where("status = ?", model.StatusPending).Count(&response.PendingComplaints).Error; err != nil {
		return response, err
	}
	if err := base().Where("status = ?", model.StatusAssigned).Count(&response.AssignedComplaints).Error; err != nil {
		return response, err
	}
	if err := base().Where("status = ?", model.StatusResolved).Count(&response.ResolvedComplaints).Error; err != nil {
		return response, err
	}

	response.ResolutionRate = decimal.Zero
	if response.TotalComplaints > 0 {
		response.ResolutionRate = decimal.NewFromInt(response.ResolvedComplaints).
			Div(decimal.NewFromInt(response.TotalComplaints)).
			Round(4)
	}

	// Defective ratio across all reported quantities
	var quantities struct {
		Total     int64
		Defective int64
	}
	if err := base().
		Select("COALESCE(SUM(total_quantity),0) as total, COALESCE(SUM(defective_quantity),0) as defective").
		Scan(&quantities).Error; err != nil {
		return response, err
	}
	response.DefectiveRatio = decimal.Zero
	if quantities.Total > 0 {
		response.DefectiveRatio = decimal.NewFromInt(quantities.Defective).
			Div(decimal.NewFromInt(quantities.Total)).
			Round(4)
	}

	var topSuppliers []model.SupplierRanking
	if err := base().
		Select("supplier, COUNT(*) as complaint_count").
		Where("supplier <> ''").
		Group("supplier").
		Order("complaint_count DESC").
		Limit(5).
		Scan(&topSuppliers).Error; err != nil {
		return response, err
	}
	response.TopSuppliers = topSuppliers

	return response, nil
}
