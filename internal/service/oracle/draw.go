package oracle

import "oracle_predict/internal/model"

// GenerateDraw разыгрывает два независимых фида по три цифры 0-9.
// Порядок вызовов источника фиксирован: сначала три цифры первого фида, затем второго.
func GenerateDraw(rnd RandomSource) model.Draw {
	return model.Draw{
		Feed1: generateFeed(rnd),
		Feed2: generateFeed(rnd),
	}
}

func generateFeed(rnd RandomSource) model.Feed {
	var digits [3]int
	for i := range digits {
		digits[i] = rnd.IntN(10)
	}
	return model.NewFeed(digits)
}
