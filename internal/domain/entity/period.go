package entity

import "time"

// LastFullMonth retorna o mês-calendário completo anterior a "today".
// time.Date normaliza o estouro de mês, então a virada de ano
// (janeiro -> dezembro do ano anterior) funciona sem caso especial.
func LastFullMonth(today time.Time) BillingPeriod {
	firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return BillingPeriod{
		Start: firstOfThisMonth.AddDate(0, -1, 0),
		End:   firstOfThisMonth.AddDate(0, 0, -1),
	}
}

// CurrentMonthToDate retorna a janela de previsão: do primeiro dia do mês
// corrente ao primeiro dia do mês seguinte (exclusivo, como o Cost Explorer espera).
func CurrentMonthToDate(today time.Time) BillingPeriod {
	firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return BillingPeriod{
		Start: firstOfThisMonth,
		End:   firstOfThisMonth.AddDate(0, 1, 0),
	}
}
