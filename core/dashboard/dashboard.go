// Package dashboard recomputes the back-office overview numbers from the live
// collections on every read.
package dashboard

import (
	"math"
	"time"

	"github.com/trezcool/hostela/core/expense"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
)

const trendMonths = 6

type Stats struct {
	TotalResidents  int     `json:"totalResidents"`
	ActiveResidents int     `json:"activeResidents"`
	TotalRooms      int     `json:"totalRooms"`
	OccupancyRate   float64 `json:"occupancyRate"`
	TotalRevenue    int     `json:"totalRevenue"`
	PendingFees     int     `json:"pendingFees"`
	TotalExpenses   int     `json:"totalExpenses"`
	NetIncome       int     `json:"netIncome"`
}

type MonthlyData struct {
	Month    string `json:"month"`
	Revenue  int    `json:"revenue"`
	Expenses int    `json:"expenses"`
	Profit   int    `json:"profit"`
}

type Service struct {
	residents *resident.Service
	rooms     *room.Service
	fees      *fee.Service
	expenses  *expense.Service

	now func() time.Time
}

func NewService(residents *resident.Service, rooms *room.Service, fees *fee.Service, expenses *expense.Service) *Service {
	return &Service{
		residents: residents,
		rooms:     rooms,
		fees:      fees,
		expenses:  expenses,
		now:       time.Now,
	}
}

func (svc *Service) Stats() (Stats, error) {
	var stats Stats

	residents, err := svc.residents.QueryAll()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalResidents = len(residents)
	for _, r := range residents {
		if r.Status == resident.StatusActive {
			stats.ActiveResidents++
		}
	}

	rooms, err := svc.rooms.QueryAll()
	if err != nil {
		return Stats{}, err
	}
	stats.TotalRooms = len(rooms)
	var totalBeds, occupiedBeds int
	for _, rm := range rooms {
		totalBeds += rm.Capacity
		occupiedBeds += rm.OccupiedBeds
	}
	if totalBeds > 0 {
		stats.OccupancyRate = math.Round(float64(occupiedBeds) / float64(totalBeds) * 100)
	}

	feeStats, err := svc.fees.MonthlyStats()
	if err != nil {
		return Stats{}, err
	}
	for _, m := range feeStats {
		stats.TotalRevenue += m.Collected
	}
	if stats.PendingFees, err = svc.fees.TotalPendingAmount(); err != nil {
		return Stats{}, err
	}

	expenses, err := svc.expenses.QueryAll()
	if err != nil {
		return Stats{}, err
	}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
	}

	stats.NetIncome = stats.TotalRevenue - stats.TotalExpenses
	return stats, nil
}

// Monthly returns revenue/expenses/profit for the last 6 calendar months,
// oldest first. Months without activity come back zero-filled.
func (svc *Service) Monthly() ([]MonthlyData, error) {
	collected := make(map[string]int)
	feeStats, err := svc.fees.MonthlyStats()
	if err != nil {
		return nil, err
	}
	for _, m := range feeStats {
		collected[m.Month] = m.Collected
	}

	spent := make(map[string]int)
	expTotals, err := svc.expenses.MonthlyTotals()
	if err != nil {
		return nil, err
	}
	for _, m := range expTotals {
		spent[m.Month] = m.Total
	}

	now := svc.now().UTC()
	data := make([]MonthlyData, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, -now.Day()+1).Format("2006-01")
		data = append(data, MonthlyData{
			Month:    month,
			Revenue:  collected[month],
			Expenses: spent[month],
			Profit:   collected[month] - spent[month],
		})
	}
	return data, nil
}
