package collateral

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// View is the query state owned by a presentation layer: the selected type
// tab, an optional search text and the sort order.
type View struct {
	Type      TypeFilter
	Query     string    // no text search when empty
	Sort      SortField // insertion order when empty
	Direction Direction
}

// Select applies v to assets: filter by type, then search, then sort.
func (v View) Select(assets []Asset) ([]Asset, error) {
	typ := AllTypes
	if v.Type != "" {
		var err error
		if typ, err = ParseTypeFilter(string(v.Type)); err != nil {
			return nil, err
		}
	}
	res := FilterByType(assets, typ)
	if v.Query != "" {
		var err error
		if res, err = SearchByText(res, v.Query); err != nil {
			return nil, err
		}
	}
	if v.Sort != "" {
		dir := v.Direction
		if dir == "" {
			dir = Ascending
		}
		var err error
		if res, err = SortBy(res, v.Sort, dir); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FindAsset returns the asset whose id equals key or whose symbol matches key
// ignoring case.
func FindAsset(assets []Asset, key string) (Asset, bool) {
	for _, a := range assets {
		if a.ID == key {
			return a, true
		}
	}
	fold := cases.Fold()
	k := fold.String(strings.TrimSpace(key))
	for _, a := range assets {
		if fold.String(a.Symbol) == k {
			return a, true
		}
	}
	return Asset{}, false
}

// Trend is the direction a summary card invites the reader to look at.
type Trend string

const (
	Up      Trend = "up"
	Neutral Trend = "neutral"
	Down    Trend = "down"
)

// Card is one summary figure of the dashboard.
type Card struct {
	Title string
	Value string
	Trend Trend
}

// Cards turns a Summary into the four dashboard cards. It fails when the
// total is beyond the supported magnitude.
func (p Policy) Cards(s Summary) ([]Card, error) {
	total, err := s.TotalMaxLoan.Format()
	if err != nil {
		return nil, err
	}
	if err := checkFinite("averageLTV", float64(s.AverageLTV)); err != nil {
		return nil, err
	}
	ltvTrend := Down
	switch {
	case float64(s.AverageLTV) < p.WarningLTV:
		ltvTrend = Up
	case float64(s.AverageLTV) < p.DangerLTV:
		ltvTrend = Neutral
	}
	riskTrend := Neutral
	if s.HighRiskCount > p.HighRiskAlertCount {
		riskTrend = Down
	}
	liqTrend := Up
	if s.NearLiquidationCount > 0 {
		liqTrend = Down
	}
	return []Card{
		{Title: "Total Available Loan Value", Value: total, Trend: Neutral},
		{Title: "Average LTV", Value: s.AverageLTV.String(), Trend: ltvTrend},
		{Title: "High Risk Assets", Value: strconv.Itoa(s.HighRiskCount), Trend: riskTrend},
		{Title: "Near Liquidation", Value: strconv.Itoa(s.NearLiquidationCount), Trend: liqTrend},
	}, nil
}

// Row holds the display values of one asset in a table.
type Row struct {
	ID            string
	Symbol        string
	Name          string
	Type          AssetType
	Price         string
	Change        string
	ChangePercent string
	LTV           string
	Band          RiskBand
	Risk          RiskRating
}

// Rows formats assets for a table, in order.
func (p Policy) Rows(assets []Asset) ([]Row, error) {
	rows := make([]Row, 0, len(assets))
	for _, a := range assets {
		band, err := p.RiskBand(float64(a.LoanToValue))
		if err != nil {
			return nil, err
		}
		changePercent, err := FormatPercent(float64(a.ChangePercent))
		if err != nil {
			return nil, err
		}
		price, err := a.Price.Format()
		if err != nil {
			return nil, err
		}
		change, err := a.Change.Format()
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			ID:            a.ID,
			Symbol:        a.Symbol,
			Name:          a.Name,
			Type:          a.Type,
			Price:         price,
			Change:        change,
			ChangePercent: changePercent,
			LTV:           a.LoanToValue.String(),
			Band:          band,
			Risk:          a.RiskRating,
		})
	}
	return rows, nil
}

// Detail is the LTV card of a single asset.
type Detail struct {
	Row
	Sector               string
	MarketCap            string // empty when absent
	Volume               string // empty when absent
	VolumeExact          string // empty when absent
	CollateralValue      string
	MaxLoanAmount        string
	MarginCall           string
	StopLoss             string
	LiquidationThreshold string
	LiquidationBand      RiskBand
	Updated              string
}

// Detail formats the LTV card of a.
func (p Policy) Detail(a Asset) (Detail, error) {
	rows, err := p.Rows([]Asset{a})
	if err != nil {
		return Detail{}, err
	}
	levels := p.MarginLevels(a)
	liqBand, err := p.RiskBand(float64(a.LiquidationThreshold))
	if err != nil {
		return Detail{}, err
	}
	d := Detail{
		Row:                  rows[0],
		Sector:               a.Sector,
		MarginCall:           levels.MarginCall.String(),
		StopLoss:             levels.StopLoss.String(),
		LiquidationThreshold: a.LiquidationThreshold.String(),
		LiquidationBand:      liqBand,
		Updated:              FormatTimestamp(a.Timestamp),
	}
	for _, f := range []struct {
		dst *string
		m   Money
	}{
		{&d.CollateralValue, a.CollateralValue},
		{&d.MaxLoanAmount, a.MaxLoanAmount},
	} {
		if *f.dst, err = f.m.Format(); err != nil {
			return Detail{}, err
		}
	}
	if a.MarketCap != nil {
		if d.MarketCap, err = FormatMarketCap(a.MarketCap.Decimal().InexactFloat64()); err != nil {
			return Detail{}, err
		}
	}
	if a.Volume != nil {
		if d.Volume, err = FormatVolume(a.Volume.Decimal().InexactFloat64()); err != nil {
			return Detail{}, err
		}
		if d.VolumeExact, err = FormatNumber(a.Volume.Decimal().InexactFloat64()); err != nil {
			return Detail{}, err
		}
	}
	return d, nil
}
