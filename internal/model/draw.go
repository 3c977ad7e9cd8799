package model

import (
	"fmt"
	"strconv"
)

// Feed тройка случайных цифр и ее сигнал (сумма цифр по модулю 10)
type Feed struct {
	Digits [3]int
	Signal int
}

// NewFeed собирает фид из трех цифр и считает сигнал
func NewFeed(digits [3]int) Feed {
	sum := 0
	for _, d := range digits {
		sum += d
	}
	return Feed{Digits: digits, Signal: sum % 10}
}

// DigitString цифры фида в исходном порядке, например "258"
func (f Feed) DigitString() string {
	return fmt.Sprintf("%d%d%d", f.Digits[0], f.Digits[1], f.Digits[2])
}

// Result формат для истории: цифры*сигнал, например "258*5"
func (f Feed) Result() string {
	return f.DigitString() + "*" + strconv.Itoa(f.Signal)
}

// Draw результат одного розыгрыша
type Draw struct {
	Feed1 Feed
	Feed2 Feed
}

// CombinedSignal конкатенация двух сигналов ("58"), а не их сумма
func (d Draw) CombinedSignal() string {
	return strconv.Itoa(d.Feed1.Signal) + strconv.Itoa(d.Feed2.Signal)
}
