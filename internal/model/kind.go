package model

import (
	"fmt"
	"strings"
)

// PredictionKind тип прогноза
type PredictionKind int

const (
	SignalDigit PredictionKind = iota + 1
	CombinedSignal
	UniquePattern
	RepeatingPattern
	ConsensusPattern
)

// Kinds все типы прогноза в порядке отображения
var Kinds = []PredictionKind{
	SignalDigit,
	CombinedSignal,
	UniquePattern,
	RepeatingPattern,
	ConsensusPattern,
}

var kindNames = map[PredictionKind]string{
	SignalDigit:      "signal_digit",
	CombinedSignal:   "combined_signal",
	UniquePattern:    "unique_pattern",
	RepeatingPattern: "repeating_pattern",
	ConsensusPattern: "consensus_pattern",
}

// String возвращает каноническое имя типа (используется в API)
func (k PredictionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid проверяет, что тип входит в перечисление
func (k PredictionKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// GuessDigits количество цифр в прогнозе для данного типа
func (k PredictionKind) GuessDigits() int {
	switch k {
	case SignalDigit:
		return 1
	case CombinedSignal:
		return 2
	case UniquePattern, RepeatingPattern, ConsensusPattern:
		return 3
	}
	return 0
}

// IsPattern true для типов, которые сравнивают тройки цифр
func (k PredictionKind) IsPattern() bool {
	return k == UniquePattern || k == RepeatingPattern || k == ConsensusPattern
}

// ParseKind разбирает каноническое имя типа прогноза.
// Регистр и пробелы по краям не важны, '-' эквивалентен '_'.
func ParseKind(s string) (PredictionKind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, name := range kindNames {
		if name == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPredictionKind, s)
}
