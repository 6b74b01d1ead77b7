package service

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	feemodel "swaram_backend/internals/features/finance/fees/model"
	"swaram_backend/internals/features/finance/reports/dto"
)

var monthStart = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)

func reg(amount int, paid bool, created time.Time) feemodel.RegistrationFee {
	return feemodel.RegistrationFee{Amount: amount, IsPaid: paid, CreatedAt: created}
}

func inst(summary uuid.UUID, amount int, status feemodel.PaymentStatus, created time.Time) feemodel.Installment {
	return feemodel.Installment{FeeSummaryID: summary, Amount: amount, PaymentStatus: status, CreatedAt: created}
}

func TestBuildInstallmentMetrics(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()
	old := monthStart.AddDate(0, -2, 0)
	recent := monthStart.AddDate(0, 0, 3)

	t.Run("mixed statuses", func(t *testing.T) {
		rows := []feemodel.Installment{
			inst(s1, 100, feemodel.PaymentCompleted, recent),
			inst(s2, 200, feemodel.PaymentPending, recent),
		}
		m := buildInstallmentMetrics(rows, monthStart)

		if m.Total != 300 {
			t.Errorf("Total = %d, want 300", m.Total)
		}
		if m.Outstanding != 200 {
			t.Errorf("Outstanding = %d, want 200", m.Outstanding)
		}
		if m.CollectedThisMonth != 100 {
			t.Errorf("CollectedThisMonth = %d, want 100", m.CollectedThisMonth)
		}
		if m.PendingStudents != 1 {
			t.Errorf("PendingStudents = %d, want 1", m.PendingStudents)
		}
		if math.Abs(m.PercentPaid-100.0/3) > 1e-9 {
			t.Errorf("PercentPaid = %v, want %v", m.PercentPaid, 100.0/3)
		}
	})

	t.Run("all completed", func(t *testing.T) {
		rows := []feemodel.Installment{
			inst(s1, 100, feemodel.PaymentCompleted, old),
			inst(s2, 250, feemodel.PaymentCompleted, old),
		}
		m := buildInstallmentMetrics(rows, monthStart)

		if m.PercentPaid != 100 {
			t.Errorf("PercentPaid = %v, want 100", m.PercentPaid)
		}
		if m.Outstanding != 0 || m.PendingStudents != 0 {
			t.Errorf("Outstanding = %d, PendingStudents = %d, want 0, 0", m.Outstanding, m.PendingStudents)
		}
		if m.CollectedThisMonth != 0 {
			t.Errorf("CollectedThisMonth = %d, want 0 for rows before month start", m.CollectedThisMonth)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		m := buildInstallmentMetrics(nil, monthStart)
		if m.Total != 0 || m.Outstanding != 0 || m.PendingStudents != 0 || m.PercentPaid != 0 {
			t.Errorf("empty input should produce zero metrics, got %+v", m)
		}
	})

	t.Run("zero amounts keep percent at zero", func(t *testing.T) {
		rows := []feemodel.Installment{
			inst(s1, 0, feemodel.PaymentPending, old),
		}
		m := buildInstallmentMetrics(rows, monthStart)
		if m.PercentPaid != 0 {
			t.Errorf("PercentPaid = %v, want 0 when total is 0", m.PercentPaid)
		}
	})

	t.Run("cancelled counts as outstanding", func(t *testing.T) {
		rows := []feemodel.Installment{
			inst(s1, 100, feemodel.PaymentCancelled, old),
			inst(s1, 100, feemodel.PaymentPending, old),
		}
		m := buildInstallmentMetrics(rows, monthStart)
		if m.Outstanding != 200 {
			t.Errorf("Outstanding = %d, want 200", m.Outstanding)
		}
		// both rows share a summary, so one pending student
		if m.PendingStudents != 1 {
			t.Errorf("PendingStudents = %d, want 1", m.PendingStudents)
		}
	})
}

func TestBuildRegistrationMetrics(t *testing.T) {
	old := monthStart.AddDate(0, -1, 0)
	recent := monthStart.AddDate(0, 0, 1)

	t.Run("mixed rows", func(t *testing.T) {
		rows := []feemodel.RegistrationFee{
			reg(500, true, recent),
			reg(500, true, old),
			reg(1000, false, recent),
		}
		m := buildRegistrationMetrics(rows, monthStart)

		if m.Total != 2000 {
			t.Errorf("Total = %d, want 2000", m.Total)
		}
		if m.Outstanding != 1000 {
			t.Errorf("Outstanding = %d, want 1000", m.Outstanding)
		}
		if m.CollectedThisMonth != 500 {
			t.Errorf("CollectedThisMonth = %d, want 500", m.CollectedThisMonth)
		}
		// every unpaid row counts, even two rows for the same student
		if m.PendingStudents != 1 {
			t.Errorf("PendingStudents = %d, want 1", m.PendingStudents)
		}
		if m.PercentPaid != 50 {
			t.Errorf("PercentPaid = %v, want 50", m.PercentPaid)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		m := buildRegistrationMetrics(nil, monthStart)
		if m.Total != 0 || m.PercentPaid != 0 {
			t.Errorf("empty input should produce zero metrics, got %+v", m)
		}
	})

	t.Run("all zero amounts divide to NaN", func(t *testing.T) {
		// no zero guard on the registration side; this documents the
		// behavior rather than endorsing it
		rows := []feemodel.RegistrationFee{
			reg(0, false, old),
		}
		m := buildRegistrationMetrics(rows, monthStart)
		if !math.IsNaN(m.PercentPaid) {
			t.Errorf("PercentPaid = %v, want NaN for zero total", m.PercentPaid)
		}

		// the NaN must still survive the JSON boundary as null
		body, err := json.Marshal(dto.FeeReportsResponse{Registration: m})
		if err != nil {
			t.Fatalf("marshal with NaN percentPaid: %v", err)
		}
		if !strings.Contains(string(body), `"percentPaid":null`) {
			t.Errorf("marshaled body = %s, want percentPaid null", body)
		}
	})
}

func TestBuildCharts(t *testing.T) {
	s1 := uuid.New()

	jun2025 := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)
	jun2026 := time.Date(2026, time.June, 2, 10, 0, 0, 0, time.Local)
	jan2026 := time.Date(2026, time.January, 20, 10, 0, 0, 0, time.Local)

	t.Run("registration buckets by month label across years", func(t *testing.T) {
		rows := []feemodel.RegistrationFee{
			reg(100, true, jun2025),
			reg(150, true, jun2026),
			reg(300, true, jan2026),
			reg(999, false, jan2026), // unpaid rows never chart
		}
		points := buildRegistrationChart(rows)

		if len(points) != 12 {
			t.Fatalf("len(points) = %d, want 12", len(points))
		}
		if points[0].Month != "Jun" || points[11].Month != "May" {
			t.Errorf("month order = %s..%s, want Jun..May", points[0].Month, points[11].Month)
		}
		if points[0].Fees != 250 {
			t.Errorf("Jun = %d, want 250 (years collapse into one bucket)", points[0].Fees)
		}
		if points[7].Month != "Jan" || points[7].Fees != 300 {
			t.Errorf("Jan = %+v, want {Jan 300}", points[7])
		}
	})

	t.Run("installments chart only completed rows", func(t *testing.T) {
		rows := []feemodel.Installment{
			inst(s1, 400, feemodel.PaymentCompleted, jan2026),
			inst(s1, 500, feemodel.PaymentPending, jan2026),
			inst(s1, 600, feemodel.PaymentCancelled, jan2026),
		}
		points := buildInstallmentChart(rows)

		if points[7].Fees != 400 {
			t.Errorf("Jan = %d, want 400", points[7].Fees)
		}
		total := 0
		for _, p := range points {
			total += p.Fees
		}
		if total != 400 {
			t.Errorf("chart total = %d, want 400", total)
		}
	})

	t.Run("empty input still yields all twelve months", func(t *testing.T) {
		points := buildInstallmentChart(nil)
		if len(points) != 12 {
			t.Fatalf("len(points) = %d, want 12", len(points))
		}
		for _, p := range points {
			if p.Fees != 0 {
				t.Errorf("%s = %d, want 0", p.Month, p.Fees)
			}
		}
	})
}
