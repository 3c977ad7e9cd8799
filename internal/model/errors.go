package model

import "errors"

var (
	// ErrInvalidGuessFormat прогноз не соответствует формату выбранного типа
	ErrInvalidGuessFormat = errors.New("invalid guess format")
	// ErrInvalidBetAmount ставка вне диапазона или больше баланса
	ErrInvalidBetAmount = errors.New("invalid bet amount")
	// ErrUnknownPredictionKind неизвестный тип прогноза
	ErrUnknownPredictionKind = errors.New("unknown prediction kind")
	// ErrSessionNotFound сессии нет в хранилище (или она истекла)
	ErrSessionNotFound = errors.New("session not found")
)
