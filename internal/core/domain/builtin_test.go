package domain_test

import (
	"sync"
	"testing"

	"github.com/quantleap/refdata/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFromCode_Builtin(t *testing.T) {
	usd, ok := domain.CurrencyFromCode("USD")
	require.True(t, ok)
	assert.Equal(t, domain.USD, usd)
	assert.Equal(t, uint16(840), usd.ISO4217())

	btc, ok := domain.CurrencyFromCode("BTC")
	require.True(t, ok)
	assert.Equal(t, domain.Crypto, btc.Type())
	assert.Equal(t, uint16(0), btc.ISO4217())

	_, ok = domain.CurrencyFromCode("XXX")
	assert.False(t, ok)
}

func TestRegisterCurrency(t *testing.T) {
	doge := domain.NewCurrency("DOGE", 8, 0, "Dogecoin", domain.Crypto)
	domain.RegisterCurrency(doge)

	got, ok := domain.CurrencyFromCode("DOGE")
	require.True(t, ok)
	assert.Equal(t, doge, got)
}

func TestRegisteredCurrencies_ContainsBuiltins(t *testing.T) {
	all := domain.RegisteredCurrencies()
	assert.Contains(t, all, domain.USD)
	assert.Contains(t, all, domain.EUR)
	assert.Contains(t, all, domain.BTC)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			domain.RegisterCurrency(domain.NewCurrency("TST", 2, 0, "Test unit", domain.Crypto))
		}()
		go func() {
			defer wg.Done()
			_, _ = domain.CurrencyFromCode("TST")
		}()
	}
	wg.Wait()
}
