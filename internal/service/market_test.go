package service

import (
	"testing"

	"github.com/pathway-edu/website/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMarketBySlug(t *testing.T) {
	svc := NewMarketService(model.Markets)

	m, ok := svc.BySlug("new-zealand")
	assert.True(t, ok)
	assert.Equal(t, "New Zealand", m.Country)

	m, ok = svc.BySlug("United Kingdom")
	assert.True(t, ok)
	assert.Equal(t, "GBP 12,000 - 20,000/year", m.LivingCosts)

	_, ok = svc.BySlug("atlantis")
	assert.False(t, ok)

	assert.Len(t, svc.All(), len(model.Markets))
}
