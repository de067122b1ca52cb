package wallet

import (
	"math/big"
	"strings"
)

// winstonPerAR is the number of atomic units in one AR.
var winstonPerAR = big.NewInt(1_000_000_000_000)

// WinstonToAR converts a winston amount to its AR decimal string
// representation, with trailing fraction zeros trimmed (the shape produced
// by arweave-js winstonToAr): 23144 winston -> "0.000000023144",
// 1000000000000 winston -> "1".
func WinstonToAR(winston *big.Int) string {
	if winston == nil {
		return "0"
	}

	quo, rem := new(big.Int).QuoRem(winston, winstonPerAR, new(big.Int))

	neg := false
	if rem.Sign() < 0 {
		rem.Neg(rem)
		neg = winston.Sign() < 0
	}

	whole := quo.String()
	if neg && quo.Sign() == 0 {
		whole = "-" + whole
	}

	if rem.Sign() == 0 {
		return whole
	}

	frac := rem.String()
	frac = strings.Repeat("0", 12-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")

	return whole + "." + frac
}

// ARToFloat parses the decimal AR string produced by [WinstonToAR] into a
// float64 for fiat arithmetic. Precision loss is acceptable there: the fiat
// amount is rounded to 4 decimal places anyway.
func ARToFloat(ar string) float64 {
	f, _, err := big.ParseFloat(ar, 10, 64, big.ToNearestEven)
	if err != nil {
		return 0
	}
	out, _ := f.Float64()
	return out
}
