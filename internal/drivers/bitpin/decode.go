package bitpin

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/normalizer"
)

func decodeMarkets(body []byte, f normalizer.Formatter) (models.Prices, error) {
	var tickers []tickerWire
	if err := base.Decode(body, &tickers); err != nil {
		return nil, err
	}

	prices := make(models.Prices, len(tickers))
	for _, t := range tickers {
		if !t.Price.Valid {
			continue
		}
		symbol, err := normalizer.FromNative(string(exchange.Bitpin), t.Symbol)
		if err != nil {
			continue
		}
		prices[symbol] = f.Format(t.Price.Decimal)
	}
	return prices, nil
}

func decodeTrades(body []byte, f normalizer.Formatter) ([]models.Trade, error) {
	var matches []matchWire
	if err := base.Decode(body, &matches); err != nil {
		return nil, err
	}

	trades := make([]models.Trade, 0, len(matches))
	for _, m := range matches {
		price, err := normalizer.Require("price", m.Price)
		if err != nil {
			return nil, exchange.Malformed("match %s: %v", m.ID, err)
		}
		amount, err := normalizer.Require("base_amount", m.BaseAmount)
		if err != nil {
			return nil, exchange.Malformed("match %s: %v", m.ID, err)
		}
		ts, err := normalizer.Require("time", m.Time)
		if err != nil {
			return nil, exchange.Malformed("match %s: %v", m.ID, err)
		}
		trades = append(trades, models.Trade{
			Time:   normalizer.UnixToISO(ts),
			Price:  f.Format(price),
			Volume: f.Format(amount),
			Side:   models.OrderSide(strings.ToUpper(m.Side)),
		})
	}
	return trades, nil
}

func decodeOrderBook(body []byte, symbol string, f normalizer.Formatter) (*models.OrderBook, error) {
	var resp orderBookResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Bids == nil || resp.Asks == nil {
		return nil, exchange.Malformed("bids or asks missing")
	}

	book := &models.OrderBook{Symbol: symbol}
	for _, side := range []struct {
		raw [][]decimal.Decimal
		out *[]models.Level
	}{
		{*resp.Bids, &book.Bids},
		{*resp.Asks, &book.Asks},
	} {
		levels := make([]models.Level, 0, len(side.raw))
		for i, l := range side.raw {
			if len(l) < 2 {
				return nil, exchange.Malformed("level %d has %d values", i, len(l))
			}
			levels = append(levels, models.Level{Price: f.Format(l[0]), Quantity: f.Format(l[1])})
		}
		*side.out = levels
	}
	return book, nil
}

func decodeCandles(body []byte, symbol, resolution string, f normalizer.Formatter) (*models.CandleSeries, error) {
	var bars []barWire
	if err := base.Decode(body, &bars); err != nil {
		return nil, err
	}

	series := &models.CandleSeries{Symbol: symbol, Resolution: resolution, Candles: make([]models.Candle, 0, len(bars))}
	for i, b := range bars {
		values := make([]decimal.Decimal, 6)
		for j, field := range []struct {
			name  string
			value decimal.NullDecimal
		}{
			{"ts", b.Timestamp},
			{"open", b.Open},
			{"high", b.High},
			{"low", b.Low},
			{"close", b.Close},
			{"volume", b.Volume},
		} {
			v, err := normalizer.Require(field.name, field.value)
			if err != nil {
				return nil, exchange.Malformed("bar %d: %v", i, err)
			}
			values[j] = v
		}
		series.Candles = append(series.Candles, models.Candle{
			Time:   normalizer.UnixToISO(values[0]),
			Open:   f.Format(values[1]),
			High:   f.Format(values[2]),
			Low:    f.Format(values[3]),
			Close:  f.Format(values[4]),
			Volume: f.Format(values[5]),
		})
	}
	return series, nil
}
