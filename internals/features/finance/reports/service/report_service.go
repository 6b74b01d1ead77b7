package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feemodel "swaram_backend/internals/features/finance/fees/model"
	"swaram_backend/internals/features/finance/reports/dto"
)

// academicYearMonths orders the chart June through May, matching the
// academy's admission cycle. Calendar years collapse into one bucket per
// month label.
var academicYearMonths = []string{
	"Jun", "Jul", "Aug", "Sep", "Oct", "Nov",
	"Dec", "Jan", "Feb", "Mar", "Apr", "May",
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// currentMonthStart is midnight on the first of the current month, local time.
func currentMonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
}

// -----------------------------------------
// GetFeeReports
// -----------------------------------------

// GetFeeReports builds the dashboard metric cards for both fee streams.
// Either query failing fails the whole report; partial numbers are worse
// than no numbers.
func (s *ReportService) GetFeeReports(ctx context.Context) (dto.FeeReportsResponse, error) {
	var out dto.FeeReportsResponse

	var regRows []feemodel.RegistrationFee
	if err := s.DB.WithContext(ctx).
		Select("registeration_fee", "is_paid", "created_at").
		Find(&regRows).Error; err != nil {
		return out, err
	}

	var instRows []feemodel.Installment
	if err := s.DB.WithContext(ctx).
		Select("fee_summary_id", "installment_amount", "payment_status", "due_date", "created_at").
		Find(&instRows).Error; err != nil {
		return out, err
	}

	monthStart := currentMonthStart(time.Now())
	out.Registration = buildRegistrationMetrics(regRows, monthStart)
	out.Installments = buildInstallmentMetrics(instRows, monthStart)
	return out, nil
}

// buildRegistrationMetrics aggregates registration fee rows.
//
// pendingStudents counts pending rows, not distinct students, and
// percentPaid divides by the raw total without a zero guard. Both match
// what the dashboard has always shown; see buildInstallmentMetrics for
// the guarded variant.
func buildRegistrationMetrics(rows []feemodel.RegistrationFee, monthStart time.Time) dto.MetricSummary {
	var m dto.MetricSummary
	if len(rows) == 0 {
		return m
	}

	pending := 0
	pendingRows := 0
	total := 0
	thisMonth := 0
	for _, r := range rows {
		total += r.Amount
		if !r.IsPaid {
			pending += r.Amount
			pendingRows++
			continue
		}
		if !r.CreatedAt.Before(monthStart) {
			thisMonth += r.Amount
		}
	}

	m.Total = total
	m.Outstanding = pending
	m.PendingStudents = pendingRows
	m.CollectedThisMonth = thisMonth
	m.PercentPaid = (1 - float64(pending)/float64(total)) * 100
	return m
}

// buildInstallmentMetrics aggregates installment rows. Anything not
// Completed counts as outstanding, Cancelled included. pendingStudents is
// the distinct fee_summary_id count across outstanding rows.
func buildInstallmentMetrics(rows []feemodel.Installment, monthStart time.Time) dto.MetricSummary {
	var m dto.MetricSummary
	if len(rows) == 0 {
		return m
	}

	total := 0
	outstanding := 0
	thisMonth := 0
	pendingSummaries := map[uuid.UUID]struct{}{}
	for _, r := range rows {
		total += r.Amount
		if r.PaymentStatus != feemodel.PaymentCompleted {
			outstanding += r.Amount
			pendingSummaries[r.FeeSummaryID] = struct{}{}
			continue
		}
		if !r.CreatedAt.Before(monthStart) {
			thisMonth += r.Amount
		}
	}

	m.Total = total
	m.Outstanding = outstanding
	m.CollectedThisMonth = thisMonth
	m.PendingStudents = len(pendingSummaries)
	if total != 0 {
		m.PercentPaid = (1 - float64(outstanding)/float64(total)) * 100
	}
	return m
}

// -----------------------------------------
// GetMonthlyChartData
// -----------------------------------------

// GetMonthlyChartData buckets collected fees by month label for the
// dashboard chart.
func (s *ReportService) GetMonthlyChartData(ctx context.Context) (dto.MonthlyChartResponse, error) {
	var out dto.MonthlyChartResponse

	var regRows []feemodel.RegistrationFee
	if err := s.DB.WithContext(ctx).
		Select("registeration_fee", "is_paid", "created_at").
		Find(&regRows).Error; err != nil {
		return out, err
	}

	var instRows []feemodel.Installment
	if err := s.DB.WithContext(ctx).
		Select("payment_status", "installment_amount", "created_at").
		Find(&instRows).Error; err != nil {
		return out, err
	}

	out.Registration = buildRegistrationChart(regRows)
	out.Installments = buildInstallmentChart(instRows)
	return out, nil
}

func initTotals() map[string]int {
	m := make(map[string]int, len(academicYearMonths))
	for _, month := range academicYearMonths {
		m[month] = 0
	}
	return m
}

func toPoints(totals map[string]int) []dto.MonthlyPoint {
	out := make([]dto.MonthlyPoint, 0, len(academicYearMonths))
	for _, month := range academicYearMonths {
		out = append(out, dto.MonthlyPoint{Month: month, Fees: totals[month]})
	}
	return out
}

func buildRegistrationChart(rows []feemodel.RegistrationFee) []dto.MonthlyPoint {
	totals := initTotals()
	for _, r := range rows {
		if !r.IsPaid || r.CreatedAt.IsZero() {
			continue
		}
		totals[r.CreatedAt.Format("Jan")] += r.Amount
	}
	return toPoints(totals)
}

func buildInstallmentChart(rows []feemodel.Installment) []dto.MonthlyPoint {
	totals := initTotals()
	for _, r := range rows {
		if r.PaymentStatus != feemodel.PaymentCompleted || r.CreatedAt.IsZero() {
			continue
		}
		totals[r.CreatedAt.Format("Jan")] += r.Amount
	}
	return toPoints(totals)
}
