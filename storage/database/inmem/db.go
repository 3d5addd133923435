// Package inmemdb keeps every collection in process memory, guarded by a
// RWMutex per table. Rows iterate in insertion order and IDs come from a
// monotonic per-table counter that never reuses a value, deletions included.
package inmemdb

import (
	"fmt"
	"sync"
	"time"

	"github.com/trezcool/hostela/core/employee"
	"github.com/trezcool/hostela/core/expense"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/mess"
	"github.com/trezcool/hostela/core/notification"
	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
	"github.com/trezcool/hostela/core/settings"
	"github.com/trezcool/hostela/core/user"
)

type (
	DB struct {
		resident     *table[resident.Resident]
		room         *table[room.Room]
		employee     *table[employee.Employee]
		leave        *table[employee.LeaveRecord]
		salary       *table[employee.SalaryRecord]
		fee          *table[fee.FeeTransaction]
		payment      *table[fee.Payment]
		expense      *table[expense.Expense]
		messExpense  *table[mess.Expense]
		messMember   *table[mess.Member]
		notification *table[notification.Notification]
		template     *table[notification.Template]
		user         *table[user.User]
		settings     *settingsTable
	}

	table[T any] struct {
		sync.RWMutex
		prefix string
		width  int
		seq    int
		order  []string
		rows   map[string]*T
	}

	settingsTable struct {
		sync.RWMutex
		row settings.SystemSettings
	}
)

func Open(seed bool) (*DB, error) {
	db := &DB{
		resident:     newTable[resident.Resident]("R", 3),
		room:         newTable[room.Room]("RM", 3),
		employee:     newTable[employee.Employee]("E", 3),
		leave:        newTable[employee.LeaveRecord]("LV", 3),
		salary:       newTable[employee.SalaryRecord]("SAL", 4),
		fee:          newTable[fee.FeeTransaction]("FEE", 4),
		payment:      newTable[fee.Payment]("PAY", 5),
		expense:      newTable[expense.Expense]("EXP", 4),
		messExpense:  newTable[mess.Expense]("MESS", 4),
		messMember:   newTable[mess.Member]("MM", 3),
		notification: newTable[notification.Notification]("N", 4),
		template:     newTable[notification.Template]("TPL", 3),
		user:         newTable[user.User]("U", 3),
		settings:     &settingsTable{row: defaultSettings()},
	}
	if seed {
		if err := loadFixtures(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func newTable[T any](prefix string, width int) *table[T] {
	return &table[T]{
		prefix: prefix,
		width:  width,
		rows:   make(map[string]*T),
	}
}

// nextID reserves the next identifier. Callers must hold the write lock.
func (t *table[T]) nextID() string {
	t.seq++
	return fmt.Sprintf("%s%0*d", t.prefix, t.width, t.seq)
}

// all returns copies of every row in insertion order. Callers must hold a lock.
func (t *table[T]) all() []T {
	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, *t.rows[id])
	}
	return rows
}

func (t *table[T]) get(id string) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) insert(id string, row *T) {
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func defaultSettings() settings.SystemSettings {
	return settings.SystemSettings{
		HostelName:            "Al-Noor Boys Hostel",
		HostelNameUrdu:        "النور بوائز ہاسٹل",
		Address:               "House 45, Block C, Model Town, Lahore",
		Phone:                 "0300-1234567",
		Email:                 "info@alnoorhostel.pk",
		Currency:              "pkr",
		DateFormat:            "DD/MM/YYYY",
		Language:              "en",
		FeeGenerationDay:      1,
		LateFeePercentage:     5,
		SecurityDepositMonths: 2,
		UpdatedAt:             time.Now().UTC(),
	}
}
