package domain

import (
	"fmt"
	"sort"
)

const (
	MinNumber         = 1
	MaxNumber         = 16
	MinBoardNumbers   = 5
	MaxBoardNumbers   = 8
	WinningNumbersLen = 3
)

var boardPrices = map[int]int{
	5: 20,
	6: 40,
	7: 80,
	8: 160,
}

// BoardPrice returns the price in DKK for a board with count numbers.
func BoardPrice(count int) (int, bool) {
	price, ok := boardPrices[count]
	return price, ok
}

func ValidateBoardNumbers(numbers []int) error {
	if len(numbers) < MinBoardNumbers || len(numbers) > MaxBoardNumbers {
		return Validation(fmt.Sprintf("a board must have between %d and %d numbers", MinBoardNumbers, MaxBoardNumbers))
	}
	return validateNumbers(numbers)
}

func ValidateWinningNumbers(numbers []int) error {
	if len(numbers) != WinningNumbersLen {
		return Validation(fmt.Sprintf("exactly %d winning numbers are required", WinningNumbersLen))
	}
	return validateNumbers(numbers)
}

func validateNumbers(numbers []int) error {
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if n < MinNumber || n > MaxNumber {
			return Validation(fmt.Sprintf("numbers must be between %d and %d", MinNumber, MaxNumber))
		}
		if _, ok := seen[n]; ok {
			return Validation("numbers must be unique")
		}
		seen[n] = struct{}{}
	}
	return nil
}

// SortedNumbers returns an ascending copy of numbers.
func SortedNumbers(numbers []int) []int {
	out := make([]int, len(numbers))
	copy(out, numbers)
	sort.Ints(out)
	return out
}
