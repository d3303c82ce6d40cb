// services/finance_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"freelancedesk-backend/models"
	"freelancedesk-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type FinanceService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &FinanceService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *FinanceService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.RunDailySweep()
	})

	c.Start()
	log.Println("Finance scheduler started")
}

// RunDailySweep flips pending invoices past their due date to overdue,
// refreshes the monthly income aggregates and sends reminders for invoices
// that just went overdue.
func (s *FinanceService) RunDailySweep() {
	log.Println("Starting daily finance sweep...")

	overdue, err := s.MarkOverdueInvoices()
	if err != nil {
		log.Printf("Failed to mark overdue invoices: %v", err)
	}

	if err := s.RecomputeMonthlyIncome(); err != nil {
		log.Printf("Failed to recompute monthly income: %v", err)
	}

	s.sendOverdueReminders(overdue)

	log.Println("Daily finance sweep completed")
}

// MarkOverdueInvoices moves Pending invoices whose due date has passed to
// Overdue and returns the affected rows.
func (s *FinanceService) MarkOverdueInvoices() ([]models.Invoice, error) {
	today := utils.BeginningOfDay(time.Now())

	var invoices []models.Invoice
	if err := s.db.Preload("Client").
		Where("status = ? AND due_date < ?", string(models.InvoicePending), today).
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]any, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}

	if err := s.db.Model(&models.Invoice{}).
		Where("id IN ?", ids).
		Update("status", string(models.InvoiceOverdue)).Error; err != nil {
		return nil, err
	}

	log.Printf("Marked %d invoice(s) overdue", len(invoices))
	return invoices, nil
}

type incomeRow struct {
	Year     int
	Month    int
	Revenue  float64
	Projects int
}

// RecomputeMonthlyIncome rebuilds the precomputed monthly_income rows from
// the payments table. Read paths never aggregate; they only see these rows.
func (s *FinanceService) RecomputeMonthlyIncome() error {
	var rows []incomeRow
	if err := s.db.Raw(`
        SELECT EXTRACT(YEAR FROM p.date)::int AS year,
               EXTRACT(MONTH FROM p.date)::int AS month,
               COALESCE(SUM(p.amount), 0) AS revenue,
               COUNT(DISTINCT i.project_id) AS projects
        FROM payments p
        JOIN invoices i ON i.id = p.invoice_id
        GROUP BY 1, 2
    `).Scan(&rows).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			income := models.MonthlyIncome{
				Year:     row.Year,
				Month:    row.Month,
				Revenue:  row.Revenue,
				Projects: row.Projects,
			}
			result := tx.Model(&models.MonthlyIncome{}).
				Where("year = ? AND month = ?", row.Year, row.Month).
				Updates(map[string]interface{}{
					"revenue":  row.Revenue,
					"projects": row.Projects,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				if err := tx.Create(&income).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *FinanceService) sendOverdueReminders(invoices []models.Invoice) {
	for _, invoice := range invoices {
		if invoice.Client == nil || invoice.Client.Phone == "" {
			continue
		}

		daysLate := utils.DaysOverdue(invoice.DueDate, time.Now())
		message := fmt.Sprintf(
			"Hi %s, invoice %s for %.2f is %d day(s) overdue. Please arrange payment at your earliest convenience.",
			invoice.Client.Name, invoice.Number, invoice.Amount, daysLate)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(invoice.Client.Phone)
		params.SetBody(message)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", invoice.Client.Phone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", invoice.Client.Phone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", invoice.Client.Phone)
		}

		reminderLog := models.ReminderLog{
			InvoiceID:    invoice.ID,
			ClientID:     invoice.ClientID,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Printf("Failed to log reminder for invoice %s: %v", invoice.ID, err)
		}
	}
}
