package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeInsurance_OptedOut(t *testing.T) {
	breakdown := ComputeInsurance(decimal.NewFromInt(18_000_000), false)

	assert.True(t, breakdown.Health.IsZero())
	assert.True(t, breakdown.Social.IsZero())
	assert.True(t, breakdown.Unemployment.IsZero())
	assert.True(t, breakdown.Total().IsZero())
}

func TestComputeInsurance_OptedIn(t *testing.T) {
	breakdown := ComputeInsurance(decimal.NewFromInt(10_000_000), true)

	assert.True(t, decimal.NewFromInt(150_000).Equal(breakdown.Health), "health: %s", breakdown.Health)
	assert.True(t, decimal.NewFromInt(800_000).Equal(breakdown.Social), "social: %s", breakdown.Social)
	assert.True(t, decimal.NewFromInt(100_000).Equal(breakdown.Unemployment), "unemployment: %s", breakdown.Unemployment)
	assert.True(t, decimal.NewFromInt(1_050_000).Equal(breakdown.Total()), "total: %s", breakdown.Total())
}

func TestComputeInsurance_ScalesWithBase(t *testing.T) {
	small := ComputeInsurance(decimal.NewFromInt(10_000_000), true)
	large := ComputeInsurance(decimal.NewFromInt(20_000_000), true)

	assert.True(t, small.Total().Mul(decimal.NewFromInt(2)).Equal(large.Total()))
}

func TestComputeEmployerInsurance(t *testing.T) {
	breakdown := ComputeEmployerInsurance(decimal.NewFromInt(10_000_000))

	assert.True(t, decimal.NewFromInt(300_000).Equal(breakdown.Health))
	assert.True(t, decimal.NewFromInt(1_750_000).Equal(breakdown.Social))
	assert.True(t, decimal.NewFromInt(100_000).Equal(breakdown.Unemployment))
}
