package units

import "math/big"

const pow10CacheSize = 32

var big10 = big.NewInt(10)

// pow10Cache holds 10^0 through 10^31. Entries are shared: never mutate one
// and never hand one to a caller without copying.
var pow10Cache [pow10CacheSize]*big.Int

func init() {
	x := big.NewInt(1)
	for i := range pow10Cache {
		pow10Cache[i] = new(big.Int).Set(x)
		x.Mul(x, big10)
	}
}

// pow10 returns 10^n for n >= 0. Small exponents come from the cache; larger
// ones are computed on demand.
func pow10(n int) *big.Int {
	if n < pow10CacheSize {
		return pow10Cache[n]
	}
	return new(big.Int).Exp(big10, big.NewInt(int64(n)), nil)
}
