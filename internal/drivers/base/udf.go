package base

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/normalizer"
)

// UDFHistory is the TradingView UDF history shape served by Nobitex and
// Wallex. Arrays are parallel: t[i], o[i], h[i], l[i], c[i], v[i] form one
// candle. Values may be numbers or strings.
//
//	{"s":"ok","t":[1562095800],"o":[146272500],"h":[155869600],"l":[140062400],"c":[151440200],"v":[18.22]}
type UDFHistory struct {
	Status  string            `json:"s"`
	ErrMsg  string            `json:"errmsg"`
	Times   []int64           `json:"t"`
	Opens   []decimal.Decimal `json:"o"`
	Highs   []decimal.Decimal `json:"h"`
	Lows    []decimal.Decimal `json:"l"`
	Closes  []decimal.Decimal `json:"c"`
	Volumes []decimal.Decimal `json:"v"`
}

// DecodeCandles zips a UDF history body. "no_data" yields an empty series.
// When rial is set, prices (not volumes) are divided by 10.
func DecodeCandles(name exchange.Name, body []byte, symbol, resolution string, rial bool, f normalizer.Formatter) (*models.CandleSeries, error) {
	var resp UDFHistory
	if err := Decode(body, &resp); err != nil {
		return nil, err
	}

	series := &models.CandleSeries{Symbol: symbol, Resolution: resolution, Candles: []models.Candle{}}
	switch resp.Status {
	case "ok":
	case "no_data":
		return series, nil
	case "error":
		return nil, &exchange.UpstreamError{Exchange: name, StatusCode: http.StatusOK, Message: resp.ErrMsg}
	default:
		return nil, exchange.Malformed("candle status %q", resp.Status)
	}

	n := len(resp.Times)
	if len(resp.Opens) != n || len(resp.Highs) != n || len(resp.Lows) != n ||
		len(resp.Closes) != n || len(resp.Volumes) != n {
		return nil, exchange.Malformed("candle arrays differ in length")
	}

	price := func(d decimal.Decimal) string {
		if rial {
			d = normalizer.RialToToman(d)
		}
		return f.Format(d)
	}
	for i := 0; i < n; i++ {
		series.Candles = append(series.Candles, models.Candle{
			Time:   normalizer.UnixToISO(decimal.NewFromInt(resp.Times[i])),
			Open:   price(resp.Opens[i]),
			High:   price(resp.Highs[i]),
			Low:    price(resp.Lows[i]),
			Close:  price(resp.Closes[i]),
			Volume: f.Format(resp.Volumes[i]),
		})
	}
	return series, nil
}
