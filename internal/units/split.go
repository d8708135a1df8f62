package units

import "math/big"

// SplitAmount splits total into chunks of exactly lotSize each, plus one
// final chunk holding any strictly positive leftover. The chunks sum back to
// total whenever total is non-negative.
func SplitAmount(total, lotSize *big.Int) ([]*big.Int, error) {
	if lotSize == nil || lotSize.Sign() <= 0 {
		return nil, ErrLotSize.New("lot size must be > 0")
	}
	var chunks []*big.Int
	rem := new(big.Int).Set(total)
	for rem.Cmp(lotSize) >= 0 {
		chunks = append(chunks, new(big.Int).Set(lotSize))
		rem.Sub(rem, lotSize)
	}
	if rem.Sign() > 0 {
		chunks = append(chunks, rem)
	}
	return chunks, nil
}
