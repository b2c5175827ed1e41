package collateral

import "time"

// refAsset builds a reference asset. Collateral value and max loan amount are
// price × ltv / 100, the liquidation threshold sits 5 points above the ltv.
func refAsset(id, symbol, name string, typ AssetType, price, prev, change float64, changePct Percent,
	marketCap, volume float64, ltv Percent, risk RiskRating, sector string, now time.Time) Asset {
	p := USD(price)
	a := Asset{
		ID:                   id,
		Symbol:               symbol,
		Name:                 name,
		Type:                 typ,
		Price:                p,
		PreviousPrice:        USD(prev),
		Change:               USD(change),
		ChangePercent:        changePct,
		LoanToValue:          ltv,
		RiskRating:           risk,
		CollateralValue:      p.MulPercent(ltv),
		MaxLoanAmount:        p.MulPercent(ltv),
		LiquidationThreshold: ltv + 5,
		Sector:               sector,
		Timestamp:            now,
	}
	if marketCap > 0 {
		m := USD(marketCap)
		a.MarketCap = &m
	}
	if volume > 0 {
		q := Q(volume)
		a.Volume = &q
	}
	return a
}

// ReferenceAssets returns the reference dataset, all stamped with now.
func ReferenceAssets(now time.Time) []Asset {
	now = now.UTC()
	return []Asset{
		refAsset("1", "AAPL", "Apple Inc.", Stock, 189.84, 188.22, 1.62, 0.86, 2950e9, 58.93e6, 75, LowRisk, "Technology", now),
		refAsset("2", "MSFT", "Microsoft Corporation", Stock, 418.56, 412.65, 5.91, 1.43, 3110e9, 22.19e6, 80, LowRisk, "Technology", now),
		refAsset("3", "AMZN", "Amazon.com Inc.", Stock, 183.92, 185.07, -1.15, -0.62, 1900e9, 42.68e6, 70, MediumRisk, "Consumer Cyclical", now),
		refAsset("4", "TSLA", "Tesla Inc.", Stock, 177.58, 172.63, 4.95, 2.87, 564e9, 97.62e6, 60, HighRisk, "Automotive", now),
		refAsset("5", "BTC", "Bitcoin", Crypto, 68293.15, 67589.45, 703.70, 1.04, 1345e9, 29.64e9, 50, HighRisk, "", now),
		refAsset("6", "ETH", "Ethereum", Crypto, 3457.82, 3402.18, 55.64, 1.64, 415e9, 13.58e9, 45, HighRisk, "", now),
		refAsset("7", "10Y-T", "10-Year Treasury Note", Bond, 98.76, 99.12, -0.36, -0.36, 0, 0, 90, LowRisk, "Government", now),
		refAsset("8", "XAU", "Gold", Commodity, 2326.50, 2317.80, 8.70, 0.38, 0, 0, 85, LowRisk, "", now),
	}
}
