package assistant

import (
	"math"

	"github.com/sitecrew/estimator/internal/domain"
)

// Calculate derives crew duration and labor totals for a quantity of an
// item. Returns false for header rows and non-positive inputs; a quantity
// estimate is never fabricated from partial data.
func Calculate(item *domain.LineItem, quantity float64, crews int) (*domain.ProductivityEstimate, bool) {
	if item == nil || quantity <= 0 {
		return nil, false
	}
	if item.DailyOutput == nil || item.ManHours == nil || *item.DailyOutput <= 0 {
		return nil, false
	}
	if crews < 1 {
		crews = 1
	}

	days := int(math.Ceil(quantity / (*item.DailyOutput * float64(crews))))
	if days < 1 {
		days = 1
	}

	return &domain.ProductivityEstimate{
		ItemCode:      item.FullCode,
		Description:   item.Description,
		Quantity:      quantity,
		Unit:          item.Unit,
		DailyOutput:   *item.DailyOutput,
		Crews:         crews,
		DurationDays:  days,
		TotalManHours: quantity * *item.ManHours,
		CrewStructure: item.CrewStructure,
	}, true
}
