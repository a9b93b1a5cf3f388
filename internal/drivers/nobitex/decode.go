package nobitex

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/normalizer"
)

// decodeMarkets turns v2/orderbook/all into last prices keyed by canonical
// symbol. Entries without a usable price or with an unknown quote are skipped.
func decodeMarkets(body []byte, f normalizer.Formatter) (models.Prices, error) {
	var raw map[string]json.RawMessage
	if err := base.Decode(body, &raw); err != nil {
		return nil, err
	}

	prices := make(models.Prices, len(raw))
	for native, value := range raw {
		if native == "status" {
			continue
		}
		var entry marketEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			continue
		}
		price, ok := lastTradePrice(entry.LastTradePrice)
		if !ok {
			continue
		}
		symbol, err := normalizer.ToHyphenated(native)
		if err != nil {
			continue
		}
		prices[symbol] = f.Format(normalizer.ScaleForMarket(native, price))
	}
	return prices, nil
}

func lastTradePrice(raw json.RawMessage) (decimal.Decimal, bool) {
	if len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			return decimal.Decimal{}, false
		}
		raw = items[0]
	}
	return normalizer.ParseNumber(raw)
}

func decodeTrades(body []byte, symbol string, f normalizer.Formatter) ([]models.Trade, error) {
	var resp tradesResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Trades == nil {
		return nil, exchange.Malformed("trades missing")
	}

	trades := make([]models.Trade, 0, len(*resp.Trades))
	for i, t := range *resp.Trades {
		price, err := normalizer.Require("price", t.Price)
		if err != nil {
			return nil, exchange.Malformed("trade %d: %v", i, err)
		}
		volume, err := normalizer.Require("volume", t.Volume)
		if err != nil {
			return nil, exchange.Malformed("trade %d: %v", i, err)
		}
		trades = append(trades, models.Trade{
			Time:   normalizer.UnixMilliToISO(t.Time),
			Price:  f.Format(normalizer.ScaleForMarket(symbol, price)),
			Volume: f.Format(volume),
			Side:   models.OrderSide(strings.ToUpper(t.Type)),
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

	bids, err := decodeLevels(*resp.Bids, symbol, f)
	if err != nil {
		return nil, err
	}
	asks, err := decodeLevels(*resp.Asks, symbol, f)
	if err != nil {
		return nil, err
	}
	return &models.OrderBook{Symbol: symbol, Bids: bids, Asks: asks}, nil
}

// decodeLevels reads [price, quantity] pairs. Only the price is rescaled.
func decodeLevels(raw [][]decimal.Decimal, symbol string, f normalizer.Formatter) ([]models.Level, error) {
	levels := make([]models.Level, 0, len(raw))
	for i, l := range raw {
		if len(l) < 2 {
			return nil, exchange.Malformed("level %d has %d values", i, len(l))
		}
		levels = append(levels, models.Level{
			Price:    f.Format(normalizer.ScaleForMarket(symbol, l[0])),
			Quantity: f.Format(l[1]),
		})
	}
	return levels, nil
}

// decodeTicker picks the stats entry for key (e.g. "btc-rls"), or the only
// entry when the key differs. isClosed, dayChange and volumeSrc are never
// rescaled.
func decodeTicker(body []byte, symbol, key string, f normalizer.Formatter) (*models.Ticker, error) {
	var resp statsResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	stats, ok := resp.Stats[key]
	if !ok {
		if len(resp.Stats) != 1 {
			return nil, exchange.Malformed("stats for %s missing", key)
		}
		for _, s := range resp.Stats {
			stats = s
		}
	}


	t := &models.Ticker{Symbol: symbol, IsClosed: stats.IsClosed}
	fields := []struct {
		name  string
		value decimal.NullDecimal
		scale bool
		out   *string
	}{
		{"bestBuy", stats.BestBuy, true, &t.BestBuy},
		{"bestSell", stats.BestSell, true, &t.BestSell},
		{"latest", stats.Latest, true, &t.Latest},
		{"dayOpen", stats.DayOpen, true, &t.DayOpen},
		{"dayHigh", stats.DayHigh, true, &t.DayHigh},
		{"dayLow", stats.DayLow, true, &t.DayLow},
		{"dayClose", stats.DayClose, true, &t.DayClose},
		{"volumeDst", stats.VolumeDst, true, &t.VolumeDst},
		{"dayChange", stats.DayChange, false, &t.DayChange},
		{"volumeSrc", stats.VolumeSrc, false, &t.VolumeSrc},
	}
	for _, field := range fields {
		v, err := normalizer.Require(field.name, field.value)
		if err != nil {
			return nil, base.MalformedErr(err)
		}
		if field.scale {
			v = normalizer.ScaleForMarket(symbol, v)
		}
		*field.out = f.Format(v)
	}
	return t, nil
}

func decodeProfile(body []byte) (*models.Profile, error) {
	var resp profileResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Profile == nil {
		return nil, exchange.Malformed("profile missing")
	}
	p := resp.Profile
	return &models.Profile{
		Username:         p.Username,
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Mobile:           p.Mobile,
		WithdrawEligible: p.WithdrawEligible,
	}, nil
}

// decodeWallets surfaces the rls wallet as IRT with amounts divided by 10.
func decodeWallets(body []byte, f normalizer.Formatter) ([]models.Wallet, error) {
	var resp walletsResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Wallets == nil {
		return nil, exchange.Malformed("wallets missing")
	}

	wallets := make([]models.Wallet, 0, len(*resp.Wallets))
	for _, w := range *resp.Wallets {
		currency := strings.ToUpper(w.Currency)
		rial := currency == normalizer.Rial
		if rial {
			currency = normalizer.Toman
		}

		amounts := make([]string, 3)
		for i, n := range []struct {
			name  string
			value decimal.NullDecimal
		}{
			{"balance", w.Balance},
			{"blockedBalance", w.BlockedBalance},
			{"activeBalance", w.ActiveBalance},
		} {
			v, err := normalizer.Require(n.name, n.value)
			if err != nil {
				return nil, exchange.Malformed("wallet %s: %v", w.Currency, err)
			}
			if rial {
				v = normalizer.RialToToman(v)
			}
			amounts[i] = f.Format(v)
		}

		wallets = append(wallets, models.Wallet{
			ID:             rawID(w.ID),
			Currency:       currency,
			Balance:        amounts[0],
			BlockedBalance: amounts[1],
			ActiveBalance:  amounts[2],
		})
	}
	return wallets, nil
}

func decodeLoginAttempts(body []byte) ([]models.LoginAttempt, error) {
	var resp loginAttemptsResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Attempts == nil {
		return nil, exchange.Malformed("attempts missing")
	}

	attempts := make([]models.LoginAttempt, 0, len(*resp.Attempts))
	for _, a := range *resp.Attempts {
		createdAt, err := normalizer.ISO8601(a.CreatedAt)
		if err != nil {
			return nil, base.MalformedErr(err)
		}
		attempts = append(attempts, models.LoginAttempt{
			IP:        a.IP,
			Username:  a.Username,
			Status:    a.Status,
			CreatedAt: createdAt,
		})
	}
	return attempts, nil
}

func decodeOrderResponse(body []byte, f normalizer.Formatter) (*models.Order, error) {
	var resp orderResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, exchange.Malformed("order missing")
	}
	return decodeOrder(resp.Order, f)
}

func decodeOrders(body []byte, f normalizer.Formatter) ([]models.Order, error) {
	var resp ordersResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Orders == nil {
		return nil, exchange.Malformed("orders missing")
	}

	orders := make([]models.Order, 0, len(*resp.Orders))
	for i := range *resp.Orders {
		o, err := decodeOrder(&(*resp.Orders)[i], f)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

// decodeOrder converts one order. On RLS markets price, totalPrice and
// averagePrice are divided by 10 and the market is shown as IRT; fee is
// divided only for sell orders, where Nobitex charges it in the quote
// currency.
func decodeOrder(w *orderWire, f normalizer.Formatter) (*models.Order, error) {
	id := rawID(w.ID)
	if id == "" {
		return nil, exchange.Malformed("order id missing")
	}
	if w.Market == "" || w.Type == "" || w.Execution == "" {
		return nil, exchange.Malformed("order %s: market, type or execution missing", id)
	}

	values := make(map[string]decimal.Decimal, 5)
	for _, field := range []struct {
		name  string
		value decimal.NullDecimal
	}{
		{"amount", w.Amount},
		{"matchedAmount", w.MatchedAmount},
		{"totalPrice", w.TotalPrice},
		{"averagePrice", w.AveragePrice},
		{"fee", w.Fee},
	} {
		v, err := normalizer.Require(field.name, field.value)
		if err != nil {
			return nil, exchange.Malformed("order %s: %v", id, err)
		}
		values[field.name] = v
	}

	fill, err := normalizer.Percentage(values["matchedAmount"], values["amount"])
	if err != nil {
		return nil, exchange.Malformed("order %s: zero original quantity", id)
	}
	createdAt, err := normalizer.ISO8601(w.CreatedAt)
	if err != nil {
		return nil, exchange.Malformed("order %s: %v", id, err)
	}

	isRLS := normalizer.IsRialMarket(w.Market)
	rescale := func(d decimal.Decimal) decimal.Decimal {
		if isRLS {
			return normalizer.RialToToman(d)
		}
		return d
	}
	fee := values["fee"]
	if isRLS && strings.EqualFold(w.Type, "sell") {
		fee = normalizer.RialToToman(fee)
	}

	var originalPrice *string
	if price, ok := normalizer.ParseNumber(w.Price); ok {
		s := f.Format(rescale(price))
		originalPrice = &s
	}

	return &models.Order{
		ID:                      normalizer.UpperNonNumeric(id),
		Market:                  strings.ToUpper(normalizer.DisplayMarket(w.Market)),
		Type:                    models.OrderType(strings.ToUpper(w.Execution)),
		Side:                    models.OrderSide(strings.ToUpper(w.Type)),
		OriginalQuantity:        f.Format(values["amount"]),
		ExecutedQuantity:        f.Format(values["matchedAmount"]),
		CumulativeQuoteQuantity: f.Format(rescale(values["totalPrice"])),
		FillPercentage:          fill,
		OriginalPrice:           originalPrice,
		ExecutedPrice:           f.Format(rescale(values["averagePrice"])),
		WageQuantity:            f.Format(fee),
		CreatedAt:               createdAt,
	}, nil
}

// rawID renders a JSON id that may be a number or a string.
func rawID(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return ""
	}
	return strings.Trim(s, `"`)
}
