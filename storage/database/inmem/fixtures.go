package inmemdb

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/employee"
	"github.com/trezcool/hostela/core/expense"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/mess"
	"github.com/trezcool/hostela/core/notification"
	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
	"github.com/trezcool/hostela/core/user"
)

// loadFixtures populates every table with a realistic starter data set. All
// randomness flows through one seeded source so two processes started with the
// same SEED_RAND_SEED hold identical collections.
func loadFixtures(db *DB) error {
	rng := rand.New(rand.NewSource(core.Conf.SeedRandSeed))
	now := time.Now().UTC()

	seedRooms(db)
	seedResidents(db, now)
	seedEmployees(db, now)
	seedFees(db, rng, now)
	seedExpenses(db, now)
	seedMess(db, rng, now)
	seedTemplates(db, now)
	seedNotifications(db, now)
	return seedUsers(db, now)
}

func seedRooms(db *DB) {
	rooms := []room.Room{
		{RoomNumber: "101", Floor: 1, Type: "double", Capacity: 2, MonthlyRent: 15000, HasAC: true, HasAttachedBath: true, Amenities: []string{"wifi", "cupboard"}},
		{RoomNumber: "102", Floor: 1, Type: "triple", Capacity: 3, MonthlyRent: 12000, HasAttachedBath: true, Amenities: []string{"wifi"}},
		{RoomNumber: "103", Floor: 1, Type: "single", Capacity: 1, MonthlyRent: 20000, HasAC: true, HasAttachedBath: true, Amenities: []string{"wifi", "cupboard", "desk"}},
		{RoomNumber: "201", Floor: 2, Type: "quad", Capacity: 4, MonthlyRent: 10000, Amenities: []string{"wifi"}},
		{RoomNumber: "202", Floor: 2, Type: "double", Capacity: 2, MonthlyRent: 14000, HasAC: true, Amenities: []string{"wifi", "cupboard"}},
		{RoomNumber: "203", Floor: 2, Type: "triple", Capacity: 3, MonthlyRent: 12000, Amenities: []string{"wifi"}},
		{RoomNumber: "301", Floor: 3, Type: "dormitory", Capacity: 6, MonthlyRent: 8000, Amenities: []string{"wifi"}},
		{RoomNumber: "302", Floor: 3, Type: "double", Capacity: 2, MonthlyRent: 13000, UnderMaintenance: true, Amenities: []string{"wifi"}},
	}
	for i := range rooms {
		rooms[i].ID = db.room.nextID()
		db.room.insert(rooms[i].ID, &rooms[i])
	}
}

func seedResidents(db *DB, now time.Time) {
	monthsAgo := func(n int) time.Time { return now.AddDate(0, -n, 0) }
	residents := []resident.Resident{
		{Name: "Ahmed Khan", FatherName: "Rashid Khan", CNIC: "35201-1234567-1", Phone: "0300-1112223", EmergencyContact: "0300-9998887", Email: null.StringFrom("ahmed.khan@gmail.com"), Address: "House 23, Gulberg III", City: "Lahore", Occupation: "Student", Workplace: null.StringFrom("Punjab University"), RoomID: "RM001", BedNumber: 1, JoinDate: monthsAgo(8), Status: resident.StatusActive, SecurityDeposit: 30000, MonthlyRent: 15000},
		{Name: "Bilal Ahmed", FatherName: "Naseer Ahmed", CNIC: "35202-2345678-3", Phone: "0301-2223334", EmergencyContact: "0301-8887776", Address: "Street 4, Samanabad", City: "Faisalabad", Occupation: "Software Engineer", Workplace: null.StringFrom("Systems Ltd"), RoomID: "RM001", BedNumber: 2, JoinDate: monthsAgo(7), Status: resident.StatusActive, SecurityDeposit: 30000, MonthlyRent: 15000},
		{Name: "Usman Tariq", FatherName: "Tariq Mehmood", CNIC: "35203-3456789-5", Phone: "0302-3334445", EmergencyContact: "0302-7776665", Email: null.StringFrom("usman.t@outlook.com"), Address: "Flat 12, Johar Town", City: "Lahore", Occupation: "Student", RoomID: "RM002", BedNumber: 1, JoinDate: monthsAgo(6), Status: resident.StatusActive, SecurityDeposit: 24000, MonthlyRent: 12000},
		{Name: "Hassan Raza", FatherName: "Raza Hussain", CNIC: "35204-4567890-7", Phone: "0303-4445556", EmergencyContact: "0303-6665554", Address: "House 8, Satellite Town", City: "Rawalpindi", Occupation: "Bank Officer", Workplace: null.StringFrom("HBL"), RoomID: "RM002", BedNumber: 2, JoinDate: monthsAgo(5), Status: resident.StatusActive, SecurityDeposit: 24000, MonthlyRent: 12000},
		{Name: "Ali Hamza", FatherName: "Hamza Iqbal", CNIC: "35205-5678901-9", Phone: "0304-5556667", EmergencyContact: "0304-5554443", Address: "Street 9, Wapda Town", City: "Multan", Occupation: "Student", RoomID: "RM003", BedNumber: 1, JoinDate: monthsAgo(10), Status: resident.StatusActive, SecurityDeposit: 40000, MonthlyRent: 20000},
		{Name: "Fahad Malik", FatherName: "Malik Riaz", CNIC: "35206-6789012-1", Phone: "0305-6667778", EmergencyContact: "0305-4443332", Address: "House 45, DHA Phase 2", City: "Karachi", Occupation: "Designer", Workplace: null.StringFrom("Arbisoft"), RoomID: "RM004", BedNumber: 1, JoinDate: monthsAgo(4), Status: resident.StatusActive, SecurityDeposit: 20000, MonthlyRent: 10000},
		{Name: "Zain Abbas", FatherName: "Abbas Shah", CNIC: "35207-7890123-3", Phone: "0306-7778889", EmergencyContact: "0306-3332221", Address: "Flat 3, Garden Town", City: "Lahore", Occupation: "Student", RoomID: "RM004", BedNumber: 2, JoinDate: monthsAgo(3), Status: resident.StatusActive, SecurityDeposit: 20000, MonthlyRent: 10000},
		{Name: "Imran Siddiqui", FatherName: "Javed Siddiqui", CNIC: "35208-8901234-5", Phone: "0307-8889990", EmergencyContact: "0307-2221110", Email: null.StringFrom("imran.sid@gmail.com"), Address: "House 67, Gulshan-e-Iqbal", City: "Karachi", Occupation: "Accountant", Workplace: null.StringFrom("EY Karachi"), RoomID: "RM005", BedNumber: 1, JoinDate: monthsAgo(9), Status: resident.StatusActive, SecurityDeposit: 28000, MonthlyRent: 14000},
		{Name: "Saad Qureshi", FatherName: "Anwar Qureshi", CNIC: "35209-9012345-7", Phone: "0308-9990001", EmergencyContact: "0308-1110009", Address: "Street 2, Cantt", City: "Sialkot", Occupation: "Student", RoomID: "RM006", BedNumber: 1, JoinDate: monthsAgo(2), Status: resident.StatusActive, SecurityDeposit: 24000, MonthlyRent: 12000},
		{Name: "Omar Farooq", FatherName: "Farooq Azam", CNIC: "35210-0123456-9", Phone: "0309-0001112", EmergencyContact: "0309-0009998", Address: "House 11, Model Town", City: "Gujranwala", Occupation: "Teacher", Workplace: null.StringFrom("Beaconhouse"), RoomID: "RM007", BedNumber: 1, JoinDate: monthsAgo(6), Status: resident.StatusInactive, SecurityDeposit: 16000, MonthlyRent: 8000},
		{Name: "Tariq Javed", FatherName: "Javed Khan", CNIC: "35211-1234560-1", Phone: "0310-1112220", EmergencyContact: "0310-9998880", Address: "Flat 9, Iqbal Town", City: "Lahore", Occupation: "Student", RoomID: "RM007", BedNumber: 2, JoinDate: monthsAgo(12), Status: resident.StatusCheckout, SecurityDeposit: 16000, MonthlyRent: 8000},
		{Name: "Kamran Aslam", FatherName: "Aslam Pervez", CNIC: "35212-2345601-3", Phone: "0311-2223330", EmergencyContact: "0311-8887770", Address: "House 5, Shadman", City: "Peshawar", Occupation: "Student", RoomID: "RM007", BedNumber: 3, JoinDate: monthsAgo(1), Status: resident.StatusActive, SecurityDeposit: 16000, MonthlyRent: 8000},
	}
	for i := range residents {
		residents[i].ID = db.resident.nextID()
		db.resident.insert(residents[i].ID, &residents[i])
	}
}

func seedEmployees(db *DB, now time.Time) {
	employees := []employee.Employee{
		{Name: "Muhammad Aslam", FatherName: "Abdul Rashid", CNIC: "35201-9876543-1", Phone: "0300-9876543", Address: "House 12, Shahdara, Lahore", Role: employee.RoleManager, Salary: 80000, JoinDate: now.AddDate(-4, 0, 0), Status: employee.StatusActive, BankAccount: null.StringFrom("HBL-1234567890")},
		{Name: "Akbar Ali", FatherName: "Bashir Ahmed", CNIC: "35202-8765432-3", Phone: "0301-8765432", Address: "House 34, Township, Lahore", Role: employee.RoleWarden, Salary: 45000, JoinDate: now.AddDate(-3, 0, 0), Status: employee.StatusActive, BankAccount: null.StringFrom("MCB-2345678901")},
		{Name: "Nasreen Bibi", FatherName: "Chand Khan", CNIC: "35203-7654321-5", Phone: "0302-7654321", Address: "Flat 56, Samnabad, Lahore", Role: employee.RoleAccountant, Salary: 55000, JoinDate: now.AddDate(-4, -6, 0), Status: employee.StatusActive, BankAccount: null.StringFrom("UBL-3456789012")},
		{Name: "Riaz Ahmed", FatherName: "Dawood Khan", CNIC: "35204-6543210-7", Phone: "0303-6543210", Address: "House 78, Badami Bagh, Lahore", Role: employee.RoleCook, Salary: 30000, JoinDate: now.AddDate(-2, 0, 0), Status: employee.StatusActive},
		{Name: "Shabbir Hussain", FatherName: "Iqbal Hussain", CNIC: "35205-5432109-9", Phone: "0304-5432109", Address: "Street 3, Ichhra, Lahore", Role: employee.RoleSecurity, Salary: 28000, JoinDate: now.AddDate(-1, -6, 0), Status: employee.StatusActive},
		{Name: "Ghulam Abbas", FatherName: "Sardar Khan", CNIC: "35206-4321098-1", Phone: "0305-4321098", Address: "House 90, Mughalpura, Lahore", Role: employee.RoleCleaner, Salary: 22000, JoinDate: now.AddDate(0, -8, 0), Status: employee.StatusInactive},
	}
	for i := range employees {
		employees[i].ID = db.employee.nextID()
		db.employee.insert(employees[i].ID, &employees[i])
	}

	leaves := []employee.LeaveRecord{
		{EmployeeID: "E002", StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, -1, 3), Type: "casual", Status: "approved", Reason: "Family wedding"},
		{EmployeeID: "E004", StartDate: now.AddDate(0, 0, -10), EndDate: now.AddDate(0, 0, -8), Type: "sick", Status: "approved", Reason: "Fever"},
		{EmployeeID: "E002", StartDate: now.AddDate(0, 0, 5), EndDate: now.AddDate(0, 0, 9), Type: "annual", Status: "pending", Reason: "Eid holidays"},
	}
	for i := range leaves {
		leaves[i].ID = db.leave.nextID()
		db.leave.insert(leaves[i].ID, &leaves[i])
	}

	lastMonth := now.AddDate(0, -1, 0).Format("2006-01")
	for _, emp := range []struct {
		id     string
		salary int
	}{{"E001", 80000}, {"E002", 45000}, {"E003", 55000}, {"E004", 30000}, {"E005", 28000}} {
		sal := employee.SalaryRecord{
			EmployeeID: emp.id,
			Month:      lastMonth,
			BaseSalary: emp.salary,
			NetSalary:  emp.salary,
			PaidDate:   null.TimeFrom(now.AddDate(0, 0, -now.Day()+1)),
			Status:     "paid",
		}
		sal.ID = db.salary.nextID()
		db.salary.insert(sal.ID, &sal)
	}
}

// seedFees walks the last 6 months for every non-checked-out resident, marking
// older months paid (with a matching Payment), the previous month a coin toss
// and the current month pending, the way the collections look mid-cycle.
func seedFees(db *DB, rng *rand.Rand, now time.Time) {
	methods := []string{"cash", "bank", "online"}
	receivers := []string{"E001", "E002", "E003"}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	addFee := func(res resident.Resident, typ string, amount int, monthIdx int) {
		month := firstOfMonth.AddDate(0, monthIdx-5, 0)
		if month.Before(time.Date(res.JoinDate.Year(), res.JoinDate.Month(), 1, 0, 0, 0, 0, time.UTC)) {
			return
		}

		paid := monthIdx < 4 || (monthIdx == 4 && rng.Float64() > 0.3)
		if monthIdx == 5 {
			paid = false
		}

		f := fee.FeeTransaction{
			ResidentID: res.ID,
			Type:       typ,
			Amount:     amount,
			Month:      month.Format("2006-01"),
			DueDate:    month.AddDate(0, 0, 4),
			Status:     fee.StatusPending,
		}
		if paid {
			paidDate := month.AddDate(0, 0, rng.Intn(10)+1)
			f.Status = fee.StatusPaid
			f.PaidDate = null.TimeFrom(paidDate)
			f.PaymentMethod = null.StringFrom(methods[rng.Intn(len(methods))])
			f.ReceiptNumber = null.StringFrom(fmt.Sprintf("RCP%05d", db.payment.seq+1))
		} else if monthIdx < 5 {
			f.Status = fee.StatusOverdue
		}
		f.ID = db.fee.nextID()
		db.fee.insert(f.ID, &f)

		if paid {
			pay := fee.Payment{
				ResidentID:       res.ID,
				FeeTransactionID: f.ID,
				Amount:           amount,
				PaymentDate:      f.PaidDate.Time,
				PaymentMethod:    f.PaymentMethod.String,
				ReceivedBy:       receivers[rng.Intn(len(receivers))],
				ReceiptNumber:    f.ReceiptNumber.String,
			}
			pay.ID = db.payment.nextID()
			db.payment.insert(pay.ID, &pay)
		}
	}

	for _, res := range db.resident.all() {
		if res.Status == resident.StatusCheckout {
			continue
		}
		inMess := rng.Float64() > 0.4
		for monthIdx := 0; monthIdx < 6; monthIdx++ {
			addFee(res, fee.TypeRent, res.MonthlyRent, monthIdx)
			if inMess {
				addFee(res, fee.TypeMess, 8000, monthIdx)
			}
		}
	}
}

func seedExpenses(db *DB, now time.Time) {
	monthsAgo := func(n, day int) time.Time {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -n, day-1)
	}
	expenses := []expense.Expense{
		{Category: expense.CategoryUtility, Subcategory: null.StringFrom("electricity"), Description: "Electricity bill", Amount: 45000, Date: monthsAgo(1, 10), PaidTo: "LESCO", PaymentMethod: "bank", ApprovedBy: null.StringFrom("E001")},
		{Category: expense.CategoryUtility, Subcategory: null.StringFrom("gas"), Description: "Gas bill", Amount: 12000, Date: monthsAgo(1, 12), PaidTo: "SNGPL", PaymentMethod: "online"},
		{Category: expense.CategoryMaintenance, Description: "Plumbing repair, second floor bathrooms", Amount: 8500, Date: monthsAgo(2, 18), PaidTo: "Rafiq Plumber", PaymentMethod: "cash", ApprovedBy: null.StringFrom("E002")},
		{Category: expense.CategorySalary, Description: "Staff salaries", Amount: 238000, Date: monthsAgo(1, 1), PaidTo: "Staff", PaymentMethod: "bank", ApprovedBy: null.StringFrom("E001")},
		{Category: expense.CategorySupplies, Description: "Cleaning supplies", Amount: 5200, Date: monthsAgo(0, 3), PaidTo: "Metro Cash & Carry", PaymentMethod: "cash"},
		{Category: expense.CategoryUtility, Subcategory: null.StringFrom("internet"), Description: "Fiber internet monthly charges", Amount: 15000, Date: monthsAgo(0, 5), PaidTo: "PTCL", PaymentMethod: "online"},
		{Category: expense.CategoryMaintenance, Description: "Generator service", Amount: 18000, Date: monthsAgo(3, 22), PaidTo: "Pak Power Services", PaymentMethod: "cheque", ReceiptNumber: null.StringFrom("GS-4471")},
		{Category: expense.CategoryRent, Description: "Building rent", Amount: 150000, Date: monthsAgo(1, 5), PaidTo: "Malik Estate", PaymentMethod: "bank", ApprovedBy: null.StringFrom("E001")},
		{Category: expense.CategoryOther, Description: "Ramzan iftar arrangement", Amount: 25000, Date: monthsAgo(4, 15), PaidTo: "Caterer", PaymentMethod: "cash"},
	}
	for i := range expenses {
		expenses[i].ID = db.expense.nextID()
		expenses[i].CreatedAt, expenses[i].UpdatedAt = now, now
		db.expense.insert(expenses[i].ID, &expenses[i])
	}
}

func seedMess(db *DB, rng *rand.Rand, now time.Time) {
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	messExpenses := []mess.Expense{
		{Date: daysAgo(2), Category: mess.CategoryGrocery, Description: "Weekly ration", Amount: 18500, Vendor: "Imtiaz Store", PaidBy: "E004"},
		{Date: daysAgo(3), Category: mess.CategoryVegetables, Description: "Vegetables and fruit", Amount: 6200, Vendor: "Sabzi Mandi", PaidBy: "E004"},
		{Date: daysAgo(5), Category: mess.CategoryMeat, Description: "Chicken 25kg", Amount: 14500, Vendor: "A1 Poultry", PaidBy: "E004"},
		{Date: daysAgo(7), Category: mess.CategoryDairy, Description: "Milk and yogurt", Amount: 5400, Vendor: "Gourmet Dairy", PaidBy: "E002"},
		{Date: daysAgo(12), Category: mess.CategoryGas, Description: "LPG cylinders refill", Amount: 7800, Vendor: "Pak Gas", PaidBy: "E004"},
		{Date: daysAgo(16), Category: mess.CategoryGrocery, Description: "Rice and flour", Amount: 11200, Vendor: "Imtiaz Store", PaidBy: "E004"},
		{Date: daysAgo(34), Category: mess.CategoryOther, Description: "Kitchen utensils replacement", Amount: 4300, Vendor: "Alkaram Traders", PaidBy: "E002"},
	}
	for i := range messExpenses {
		messExpenses[i].ID = db.messExpense.nextID()
		messExpenses[i].CreatedAt, messExpenses[i].UpdatedAt = now, now
		db.messExpense.insert(messExpenses[i].ID, &messExpenses[i])
	}

	mealTypes := []string{mess.MealFull, mess.MealFull, mess.MealDinner, mess.MealLunch}
	for _, res := range db.resident.all() {
		if res.Status == resident.StatusCheckout || rng.Float64() > 0.6 {
			continue
		}
		mem := mess.Member{
			ResidentID: res.ID,
			JoinDate:   res.JoinDate,
			Status:     mess.MemberActive,
			MealType:   mealTypes[rng.Intn(len(mealTypes))],
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		mem.ID = db.messMember.nextID()
		db.messMember.insert(mem.ID, &mem)
	}
}

func seedTemplates(db *DB, now time.Time) {
	templates := []notification.Template{
		{Name: "Fee Reminder", Type: notification.TypeFeeReminder, MessageTemplate: "Dear {name}, your rent of PKR {amount} for {month} is due. Please pay by {dueDate} to avoid late fee. Contact: 0300-1234567", Channel: notification.ChannelSMS, IsActive: true},
		{Name: "Fee Reminder (Urdu)", Type: notification.TypeFeeReminder, MessageTemplate: "محترم {name}، آپ کا {month} کا کرایہ {amount} روپے واجب الادا ہے۔ براہ کرم {dueDate} تک ادائیگی کریں۔ رابطہ: 0300-1234567", Channel: notification.ChannelWhatsapp, IsActive: true},
		{Name: "Payment Confirmation", Type: notification.TypePaymentConfirmation, MessageTemplate: "Thank you {name}! Payment of PKR {amount} received for {month}. Receipt: {receiptNumber}. Al-Noor Hostel", Channel: notification.ChannelSMS, IsActive: true},
		{Name: "Overdue Notice", Type: notification.TypeFeeReminder, MessageTemplate: "URGENT: {name}, your payment of PKR {amount} is {days} days overdue. Please pay immediately to avoid service disruption. Contact: 0300-1234567", Channel: notification.ChannelBoth, IsActive: true},
		{Name: "General Announcement", Type: notification.TypeAnnouncement, MessageTemplate: "Al-Noor Hostel Notice: {message}. For queries contact management.", Channel: notification.ChannelWhatsapp, IsActive: true},
		{Name: "Maintenance Alert", Type: notification.TypeAlert, MessageTemplate: "Dear Residents, {message}. We apologize for any inconvenience. - Management", Channel: notification.ChannelBoth, IsActive: true},
	}
	for i := range templates {
		templates[i].ID = db.template.nextID()
		templates[i].CreatedAt, templates[i].UpdatedAt = now, now
		db.template.insert(templates[i].ID, &templates[i])
	}
}

func seedNotifications(db *DB, now time.Time) {
	notifications := []notification.Notification{
		{Type: notification.TypeFeeReminder, Title: "Rent due reminder", Message: "Dear Ahmed Khan, your rent of PKR 15000 for " + now.Format("2006-01") + " is due. Please pay by the 5th.", RecipientID: null.StringFrom("R001"), Channel: notification.ChannelSMS, Status: notification.StatusSent, SentAt: null.TimeFrom(now.AddDate(0, 0, -2))},
		{Type: notification.TypeAnnouncement, Title: "Water supply maintenance", Message: "Al-Noor Hostel Notice: Water supply will be suspended on Sunday 10am-2pm for tank cleaning. For queries contact management.", Channel: notification.ChannelWhatsapp, Status: notification.StatusSent, SentAt: null.TimeFrom(now.AddDate(0, 0, -5))},
		{Type: notification.TypeFeeReminder, Title: "Overdue payment", Message: "URGENT: Omar Farooq, your payment of PKR 8000 is 12 days overdue.", RecipientID: null.StringFrom("R010"), Channel: notification.ChannelBoth, Status: notification.StatusPending},
	}
	for i := range notifications {
		notifications[i].ID = db.notification.nextID()
		notifications[i].CreatedAt, notifications[i].UpdatedAt = now, now
		db.notification.insert(notifications[i].ID, &notifications[i])
	}
}

func seedUsers(db *DB, now time.Time) error {
	users := []struct {
		usr user.User
		pwd string
	}{
		{user.User{Username: "admin", Name: "Muhammad Aslam", Email: "admin@alnoorhostel.pk", Phone: "0300-1234567", Role: user.RoleAdmin, IsActive: true}, "LahoreGate#1"},
		{user.User{Username: "manager", Name: "Akbar Ali", Email: "manager@alnoorhostel.pk", Phone: "0301-2345678", Role: user.RoleManager, IsActive: true}, "LahoreGate#2"},
		{user.User{Username: "accountant", Name: "Nasreen Bibi", Email: "accounts@alnoorhostel.pk", Phone: "0302-3456789", Role: user.RoleStaff, IsActive: true}, "LahoreGate#3"},
	}
	for i := range users {
		usr := users[i].usr
		if err := usr.SetPassword(users[i].pwd); err != nil {
			return err
		}
		usr.ID = db.user.nextID()
		usr.CreatedAt, usr.UpdatedAt = now, now
		db.user.insert(usr.ID, &usr)
	}
	return nil
}
