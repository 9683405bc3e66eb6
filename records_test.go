package fintrack

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/google/go-cmp/cmp"
)

func TestNewGoal(t *testing.T) {
	g := NewGoal("Laptop", A(3000), 100, date.New(2025, 1, 1))

	if !g.DailyAmount.Equal(A(30)) {
		t.Errorf("DailyAmount = %v, want 30", g.DailyAmount)
	}
	if got, want := g.ExpectedCompletionDate(), date.New(2025, 4, 11); got != want {
		t.Errorf("ExpectedCompletionDate() = %v, want %v", got, want)
	}
	if got := g.DaysRemaining(date.New(2025, 1, 21)); got != 80 {
		t.Errorf("DaysRemaining() = %d, want 80", got)
	}
	if g.ID == "" {
		t.Error("NewGoal() has no id")
	}
}

func TestGoal_Contribute(t *testing.T) {
	g := NewGoal("Laptop", A(3000), 100, day(1))

	g, err := g.Contribute(A(1000))
	if err != nil {
		t.Fatalf("Contribute() error = %v", err)
	}
	if !g.CurrentAmount.Equal(A(1000)) || g.Reached() {
		t.Errorf("after 1000: current = %v, reached = %v", g.CurrentAmount, g.Reached())
	}

	g, _ = g.Contribute(A(3500))
	if !g.CurrentAmount.Equal(A(3000)) {
		t.Errorf("CurrentAmount = %v, want clamped to 3000", g.CurrentAmount)
	}
	if p := g.Progress(); !p.Percent.Equal(100) || !p.Remaining.IsZero() {
		t.Errorf("Progress() = %v, want 100%% and nothing remaining", p)
	}
	if !g.Reached() {
		t.Error("Reached() = false, want true")
	}

	if _, err := g.Contribute(A(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Contribute(-1) error = %v, want ErrInvalidAmount", err)
	}
}

func TestDebt_Pay(t *testing.T) {
	tests := []struct {
		name     string
		paid     Amount
		payment  Amount
		wantPaid Amount
	}{
		{"partial", A(0), A(250), A(250)},
		{"exact", A(750), A(250), A(1000)},
		{"overpay is clamped", A(900), A(500), A(1000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Debt{TotalDebt: A(1000), PaidAmount: tt.paid}
			got, err := d.Pay(tt.payment)
			if err != nil {
				t.Fatalf("Pay() error = %v", err)
			}
			if !got.PaidAmount.Equal(tt.wantPaid) {
				t.Errorf("PaidAmount = %v, want %v", got.PaidAmount, tt.wantPaid)
			}
		})
	}

	if _, err := (Debt{TotalDebt: A(1000)}).Pay(A(0)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Pay(0) error = %v, want ErrInvalidAmount", err)
	}
}

func TestDebt_SetPaid(t *testing.T) {
	d := Debt{TotalDebt: A(1000), PaidAmount: A(300)}
	for _, tt := range []struct{ paid, want Amount }{
		{A(400), A(400)},
		{A(1200), A(1000)},
		{A(-50), A(0)},
	} {
		if got := d.SetPaid(tt.paid).PaidAmount; !got.Equal(tt.want) {
			t.Errorf("SetPaid(%v) = %v, want %v", tt.paid, got, tt.want)
		}
	}
	if !d.SetPaid(A(1000)).PaidOff() {
		t.Error("PaidOff() = false, want true")
	}
}

func TestDebt_DaysUntilTarget(t *testing.T) {
	d := NewDebt("Car loan", A(5000), date.New(2025, 6, 30), 0)
	if got := d.DaysUntilTarget(date.New(2025, 6, 1)); got != 29 {
		t.Errorf("DaysUntilTarget() = %d, want 29", got)
	}
	if got := d.DaysUntilTarget(date.New(2025, 7, 2)); got != -2 {
		t.Errorf("DaysUntilTarget() overdue = %d, want -2", got)
	}
}

func TestDebtTotals(t *testing.T) {
	total, paid := DebtTotals([]Debt{
		{TotalDebt: A(1000), PaidAmount: A(250)},
		{TotalDebt: A(5000), PaidAmount: A(1000)},
	})
	if !total.Equal(A(6000)) || !paid.Equal(A(1250)) {
		t.Errorf("DebtTotals() = %v, %v, want 6000, 1250", total, paid)
	}
}

func TestEnvelope_Spend(t *testing.T) {
	e := Envelope{Allocated: A(500), Spent: A(400)}
	e, err := e.Spend(A(250))
	if err != nil {
		t.Fatalf("Spend() error = %v", err)
	}
	if !e.Spent.Equal(A(650)) {
		t.Errorf("Spent = %v, want 650", e.Spent)
	}
	if !e.Overspent() {
		t.Error("Overspent() = false, want true")
	}
	if r := e.Progress().Remaining; !r.Equal(A(-150)) {
		t.Errorf("Remaining = %v, want -150", r)
	}
	if _, err := e.Spend(A(-10)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Spend(-10) error = %v, want ErrInvalidAmount", err)
	}
}

func TestEmergencyFund(t *testing.T) {
	f := defaultEmergencyFund()
	current := A(5000)
	f = f.Merge(FundUpdate{CurrentAmount: &current})

	want := EmergencyFund{TargetAmount: A(10000), CurrentAmount: A(5000), MonthlyExpenses: A(2000)}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if got := f.MonthsCovered(); got != 2.5 {
		t.Errorf("MonthsCovered() = %v, want 2.5", got)
	}
	low, high := f.RecommendedRange()
	if !low.Equal(A(6000)) || !high.Equal(A(12000)) {
		t.Errorf("RecommendedRange() = %v, %v, want 6000, 12000", low, high)
	}
}

func TestNewRecords_Colors(t *testing.T) {
	var got []Color
	for n := range len(AccountPalette) + 1 {
		got = append(got, NewAccount("a", A(0), IconNone, n).Color)
	}
	want := append(Palette{}, AccountPalette...)
	want = append(want, AccountPalette[0])
	if diff := cmp.Diff([]Color(want), got); diff != "" {
		t.Errorf("account colors mismatch (-want +got):\n%s", diff)
	}
	if got := NewEnvelope("e", A(0), IconNone, 1).Color; got != EnvelopePalette[1] {
		t.Errorf("envelope color = %v, want %v", got, EnvelopePalette[1])
	}
	if got := NewDebt("d", A(0), day(1), 5).Color; got != DebtPalette[1] {
		t.Errorf("debt color = %v, want %v", got, DebtPalette[1])
	}
}

func TestNewRecords_Icons(t *testing.T) {
	if got := NewAccount("a", A(0), IconPiggyBank, 0).Icon; got != IconWallet {
		t.Errorf("account icon = %v, want Wallet", got)
	}
	if got := NewEnvelope("e", A(0), IconPlane, 0).Icon; got != IconPlane {
		t.Errorf("envelope icon = %v, want Plane", got)
	}
	if got := NewPiggybank("p", IconNone, 0).Icon; got != IconPiggyBank {
		t.Errorf("piggybank icon = %v, want PiggyBank", got)
	}
}

func TestTotalBalance(t *testing.T) {
	got := TotalBalance([]Account{{Balance: A(1500)}, {Balance: A(-200)}, {Balance: A(10000.5)}})
	if !got.Equal(A(11300.5)) {
		t.Errorf("TotalBalance() = %v, want 11300.5", got)
	}
}

func TestNewNote(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 30, 0, 123456789, time.FixedZone("PHT", 8*3600))
	n := NewNote("Keep going", "You can do it", CategoryMotivation, "Laptop", now)

	if want := time.Date(2025, 3, 4, 2, 30, 0, 123000000, time.UTC); !n.CreatedDate.Equal(want) {
		t.Errorf("CreatedDate = %v, want %v", n.CreatedDate, want)
	}
	if n.Category.Color() != ColorYellowOrangeSoft {
		t.Errorf("Category.Color() = %v, want yellow", n.Category.Color())
	}
}

// TestJSON checks the stored shape of records, which other clients of the
// same store read.
func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "account",
			value: Account{ID: "1", Name: "Main Checking", Balance: A(1500.5), Color: ColorBlue, Icon: IconWallet},
			want:  `{"id":"1","name":"Main Checking","balance":1500.5,"color":"from-blue-500 to-blue-600","icon":"Wallet"}`,
		},
		{
			name:  "goal",
			value: Goal{ID: "g", Name: "Laptop", TargetAmount: A(3000), CurrentAmount: A(0), Days: 100, StartDate: date.New(2025, 1, 1), DailyAmount: A(30)},
			want:  `{"id":"g","name":"Laptop","targetAmount":3000,"currentAmount":0,"days":100,"startDate":"2025-01-01","dailyAmount":30}`,
		},
		{
			name:  "piggybank",
			value: Piggybank{ID: "1", Name: "Daily Savings", History: []Deposit{}, Color: ColorPinkRose, Icon: IconPiggyBank},
			want:  `{"id":"1","name":"Daily Savings","total":0,"streak":0,"lastSaveDate":"","history":[],"color":"from-pink-500 to-rose-600","icon":"PiggyBank"}`,
		},
		{
			name:  "note",
			value: Note{ID: "n", Title: "t", Content: "c", CreatedDate: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Category: CategoryGoal},
			want:  `{"id":"n","title":"t","content":"c","createdDate":"2025-01-02T03:04:05Z","category":"goal"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestJSON_Tolerant(t *testing.T) {
	var got Envelope
	in := `{"id":"x","name":"Pets","allocated":"120.50","spent":0,"icon":"Dog","color":"from-lime-500 to-lime-600"}`
	if err := json.Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := Envelope{ID: "x", Name: "Pets", Allocated: A(120.5), Spent: A(0), Icon: IconNone, Color: ColorDefault}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}
