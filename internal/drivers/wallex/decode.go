package wallex

import (
	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/normalizer"
)

// decodeMarkets keys the bid price of every market by canonical symbol.
func decodeMarkets(body []byte, f normalizer.Formatter) (models.Prices, error) {
	var resp marketsResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, exchange.Malformed("result missing")
	}

	prices := make(models.Prices, len(resp.Result.Symbols))
	for native, market := range resp.Result.Symbols {
		price, ok := normalizer.ParseNumber(market.Stats.BidPrice)
		if !ok {
			continue
		}
		symbol, err := normalizer.FromNative(string(exchange.Wallex), native)
		if err != nil {
			continue
		}
		prices[symbol] = f.Format(price)
	}
	return prices, nil
}

func decodeTrades(body []byte, f normalizer.Formatter) ([]models.Trade, error) {
	var resp tradesResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, exchange.Malformed("result missing")
	}

	trades := make([]models.Trade, 0, len(resp.Result.LatestTrades))
	for i, t := range resp.Result.LatestTrades {
		price, err := normalizer.Require("price", t.Price)
		if err != nil {
			return nil, exchange.Malformed("trade %d: %v", i, err)
		}
		quantity, err := normalizer.Require("quantity", t.Quantity)
		if err != nil {
			return nil, exchange.Malformed("trade %d: %v", i, err)
		}
		ts, err := normalizer.ISO8601(t.Timestamp)
		if err != nil {
			return nil, exchange.Malformed("trade %d: %v", i, err)
		}

		side := models.SideSell
		if t.IsBuyOrder {
			side = models.SideBuy
		}
		trades = append(trades, models.Trade{
			Time:   ts,
			Price:  f.Format(price),
			Volume: f.Format(quantity),
			Side:   side,
		})
	}
	return trades, nil
}

func decodeOrderBook(body []byte, symbol string, f normalizer.Formatter) (*models.OrderBook, error) {
	var resp depthResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, exchange.Malformed("result missing")
	}

	bids, err := decodeLevels(resp.Result.Bid, f)
	if err != nil {
		return nil, err
	}
	asks, err := decodeLevels(resp.Result.Ask, f)
	if err != nil {
		return nil, err
	}
	return &models.OrderBook{Symbol: symbol, Bids: bids, Asks: asks}, nil
}

func decodeLevels(raw []levelWire, f normalizer.Formatter) ([]models.Level, error) {
	levels := make([]models.Level, 0, len(raw))
	for i, l := range raw {
		price, err := normalizer.Require("price", l.Price)
		if err != nil {
			return nil, exchange.Malformed("level %d: %v", i, err)
		}
		quantity, err := normalizer.Require("quantity", l.Quantity)
		if err != nil {
			return nil, exchange.Malformed("level %d: %v", i, err)
		}
		levels = append(levels, models.Level{Price: f.Format(price), Quantity: f.Format(quantity)})
	}
	return levels, nil
}

func decodeProfile(body []byte) (*models.Profile, error) {
	var resp profileResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, exchange.Malformed("result missing")
	}
	p := resp.Result
	return &models.Profile{
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Mobile:    p.Mobile,
	}, nil
}
