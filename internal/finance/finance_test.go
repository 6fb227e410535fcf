package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nivethitha870/BANK/internal/finance"
)

func TestEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		months    int
		want      float64
	}{
		{name: "personal loan one year", principal: 100000, rate: 10.5, months: 12, want: 8815},
		{name: "home loan twenty years", principal: 500000, rate: 8.5, months: 240, want: 4339},
		{name: "car loan five years", principal: 200000, rate: 9.0, months: 60, want: 4152},
		{name: "education loan two years", principal: 50000, rate: 7.5, months: 24, want: 2250},
		{name: "zero rate splits principal evenly", principal: 120000, rate: 0, months: 12, want: 10000},
		{name: "zero tenure", principal: 100000, rate: 10.5, months: 0, want: 0},
		{name: "negative tenure", principal: 100000, rate: 10.5, months: -6, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.EMI(tt.principal, tt.rate, tt.months))
		})
	}
}

func TestMaturityValue(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		months int
		want   float64
	}{
		{name: "fixed deposit one year", amount: 10000, rate: 6.5, months: 12, want: 10650},
		{name: "mutual fund half year", amount: 5000, rate: 12.0, months: 6, want: 5300},
		{name: "zero rate returns principal", amount: 7500, rate: 0, months: 24, want: 7500},
		{name: "zero tenure returns principal", amount: 7500, rate: 6.0, months: 0, want: 7500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.MaturityValue(tt.amount, tt.rate, tt.months))
		})
	}
}
