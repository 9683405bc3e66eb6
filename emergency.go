package fintrack

// EmergencyFund is the single safety-net record.
type EmergencyFund struct {
	TargetAmount    Amount `json:"targetAmount"`
	CurrentAmount   Amount `json:"currentAmount"`
	MonthlyExpenses Amount `json:"monthlyExpenses"`
}

func defaultEmergencyFund() EmergencyFund {
	return EmergencyFund{
		TargetAmount:    A(10000),
		MonthlyExpenses: A(2000),
	}
}

// FundUpdate is a partial update of the emergency fund, nil fields are kept.
type FundUpdate struct {
	TargetAmount    *Amount
	CurrentAmount   *Amount
	MonthlyExpenses *Amount
}

// Merge applies a partial update.
func (f EmergencyFund) Merge(u FundUpdate) EmergencyFund {
	if u.TargetAmount != nil {
		f.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		f.CurrentAmount = *u.CurrentAmount
	}
	if u.MonthlyExpenses != nil {
		f.MonthlyExpenses = *u.MonthlyExpenses
	}
	return f
}

// Progress implements Tracker.
func (f EmergencyFund) Progress() Progress {
	return Progress{
		Percent:   ProgressPercent(f.CurrentAmount, f.TargetAmount),
		Remaining: Remaining(f.TargetAmount, f.CurrentAmount),
	}
}

// MonthsCovered returns how many months of expenses the fund covers.
func (f EmergencyFund) MonthsCovered() float64 {
	return MonthsCovered(f.CurrentAmount, f.MonthlyExpenses)
}

// RecommendedRange returns the usual 3 to 6 months of expenses target.
func (f EmergencyFund) RecommendedRange() (low, high Amount) {
	low = Amount{value: f.MonthlyExpenses.value.Mul(A(3).value)}
	high = Amount{value: f.MonthlyExpenses.value.Mul(A(6).value)}
	return low, high
}
