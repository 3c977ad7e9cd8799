package model

// Сводная статистика по всем раундам процесса (для метрик оператора)
type RTPState struct {
	TotalRounds int     // Сколько всего раундов сыграно
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100

	Window     []RoundResult // Окно последних раундов
	WindowRTP  float64       // RTP в окне последних раундов
	WindowSize int           // Размер окна
}

// Результат раунда для окна
type RoundResult struct {
	Bet    float64
	Payout float64
	RTP    float64
}
