package entities

import (
	"fmt"
	"strings"
)

// Denomination is a coin type
type Denomination string

// Coin denominations, highest value first
const (
	DenominationPP Denomination = "pp"
	DenominationGP Denomination = "gp"
	DenominationEP Denomination = "ep"
	DenominationSP Denomination = "sp"
	DenominationCP Denomination = "cp"
)

// ParseDenomination normalizes a coin code such as "GP"
func ParseDenomination(s string) (Denomination, error) {
	d := Denomination(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DenominationPP, DenominationGP, DenominationEP, DenominationSP, DenominationCP:
		return d, nil
	default:
		return "", fmt.Errorf("unknown denomination %q", s)
	}
}

// Currency is a purse of coins
type Currency struct {
	PP int `json:"pp"`
	GP int `json:"gp"`
	EP int `json:"ep"`
	SP int `json:"sp"`
	CP int `json:"cp"`
}

// Add returns the sum of both purses
func (c Currency) Add(other Currency) Currency {
	return Currency{
		PP: c.PP + other.PP,
		GP: c.GP + other.GP,
		EP: c.EP + other.EP,
		SP: c.SP + other.SP,
		CP: c.CP + other.CP,
	}
}

// AddCoins adds an amount of one denomination
func (c Currency) AddCoins(d Denomination, amount int) Currency {
	switch d {
	case DenominationPP:
		c.PP += amount
	case DenominationGP:
		c.GP += amount
	case DenominationEP:
		c.EP += amount
	case DenominationSP:
		c.SP += amount
	case DenominationCP:
		c.CP += amount
	}
	return c
}

// IsZero reports whether the purse is empty
func (c Currency) IsZero() bool {
	return c == Currency{}
}
