package domain

import "sync"

// Builtin currency descriptors. These are package-level constants in
// spirit: construct-once values shared read-only by every consumer.
var (
	AUD = NewCurrency("AUD", 2, 36, "Australian dollar", Fiat)
	BRL = NewCurrency("BRL", 2, 986, "Brazilian real", Fiat)
	CAD = NewCurrency("CAD", 2, 124, "Canadian dollar", Fiat)
	CHF = NewCurrency("CHF", 2, 756, "Swiss franc", Fiat)
	CNY = NewCurrency("CNY", 2, 156, "Chinese yuan", Fiat)
	EUR = NewCurrency("EUR", 2, 978, "Euro", Fiat)
	GBP = NewCurrency("GBP", 2, 826, "British pound", Fiat)
	HKD = NewCurrency("HKD", 2, 344, "Hong Kong dollar", Fiat)
	INR = NewCurrency("INR", 2, 356, "Indian rupee", Fiat)
	JPY = NewCurrency("JPY", 0, 392, "Japanese yen", Fiat)
	KRW = NewCurrency("KRW", 0, 410, "South Korean won", Fiat)
	MXN = NewCurrency("MXN", 2, 484, "Mexican peso", Fiat)
	NOK = NewCurrency("NOK", 2, 578, "Norwegian krone", Fiat)
	NZD = NewCurrency("NZD", 2, 554, "New Zealand dollar", Fiat)
	SEK = NewCurrency("SEK", 2, 752, "Swedish krona", Fiat)
	SGD = NewCurrency("SGD", 2, 702, "Singapore dollar", Fiat)
	USD = NewCurrency("USD", 2, 840, "United States dollar", Fiat)
	ZAR = NewCurrency("ZAR", 2, 710, "South African rand", Fiat)

	BTC  = NewCurrency("BTC", 8, 0, "Bitcoin", Crypto)
	ETH  = NewCurrency("ETH", 8, 0, "Ether", Crypto)
	USDC = NewCurrency("USDC", 8, 0, "USD Coin", Crypto)
	USDT = NewCurrency("USDT", 8, 0, "Tether", Crypto)
)

// currencyRegistry is a read-mostly table keyed by currency code. It is
// populated with the builtin set at package init and extended at runtime
// only through RegisterCurrency, guarded by the mutex.
var (
	registryMu       sync.RWMutex
	currencyRegistry = func() map[string]Currency {
		builtins := []Currency{
			AUD, BRL, CAD, CHF, CNY, EUR, GBP, HKD, INR, JPY, KRW, MXN,
			NOK, NZD, SEK, SGD, USD, ZAR,
			BTC, ETH, USDC, USDT,
		}
		m := make(map[string]Currency, len(builtins))
		for _, c := range builtins {
			m[c.Code()] = c
		}
		return m
	}()
)

// CurrencyFromCode looks up a registered currency by code. The second
// return value reports whether the code was found.
func CurrencyFromCode(code string) (Currency, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := currencyRegistry[code]
	return c, ok
}

// RegisterCurrency adds a currency to the registry, replacing any
// existing entry with the same code.
func RegisterCurrency(c Currency) {
	registryMu.Lock()
	defer registryMu.Unlock()
	currencyRegistry[c.Code()] = c
}

// RegisteredCurrencies returns a snapshot of all registered currencies.
func RegisteredCurrencies() []Currency {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Currency, 0, len(currencyRegistry))
	for _, c := range currencyRegistry {
		out = append(out, c)
	}
	return out
}
