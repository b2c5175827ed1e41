package collateral

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// this file contains functions to handle the import/export format.
//
// The format is a single JSON document {"assets": [ ... ]} where each asset is
// a JSON object with the camelCase names of the Asset fields. Only symbol,
// name, type, price and loanToValue are required, see ImportAssets for the
// defaults applied to the others.

// DefaultAssetsPath is the JSONPath of the asset array in the import format.
const DefaultAssetsPath = "$.assets"

// ImportOptions tunes ImportAssets. The zero value is ready to use.
type ImportOptions struct {
	// Path is a JSONPath selecting the array of assets in the document.
	// Defaults to DefaultAssetsPath.
	Path string
	// Policy provides the liquidation buffer. Defaults to DefaultPolicy.
	Policy *Policy
	// Now stamps assets without a timestamp. Defaults to time.Now.
	Now func() time.Time
	// NewID identifies assets without an id. Defaults to random UUIDs.
	NewID func() string
}

// jasset is the JSON shape of an asset.
type jasset struct {
	ID                   string     `json:"id"`
	Symbol               string     `json:"symbol" validate:"required"`
	Name                 string     `json:"name" validate:"required"`
	Type                 string     `json:"type" validate:"required"`
	Price                *float64   `json:"price" validate:"required"`
	PreviousPrice        *float64   `json:"previousPrice"`
	Change               *float64   `json:"change"`
	ChangePercent        *float64   `json:"changePercent"`
	MarketCap            *float64   `json:"marketCap"`
	Volume               *float64   `json:"volume"`
	LoanToValue          *float64   `json:"loanToValue" validate:"required"`
	RiskRating           string     `json:"riskRating"`
	CollateralValue      *float64   `json:"collateralValue"`
	MaxLoanAmount        *float64   `json:"maxLoanAmount"`
	LiquidationThreshold *float64   `json:"liquidationThreshold"`
	Sector               string     `json:"sector"`
	Timestamp            *time.Time `json:"timestamp"`
}

// importValidator reports missing fields with their JSON name.
var importValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ImportAssets reads assets from a JSON document.
//
// Absent optional fields are filled in: previousPrice defaults to price,
// change and changePercent are derived from both prices, maxLoanAmount and
// collateralValue default to price × loanToValue / 100, liquidationThreshold
// to loanToValue plus the policy liquidation buffer (capped at 100),
// riskRating to medium, id to a new UUID and timestamp to now.
//
// Every asset must then pass Asset.Validate, and ids must be unique.
func ImportAssets(r io.Reader, opts ImportOptions) ([]Asset, error) {
	opts = opts.withDefaults()

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse error: not a correct json: %w", err)
	}
	selected, err := jsonpath.Get(opts.Path, doc)
	if err != nil {
		return nil, fmt.Errorf("parse error: cannot select assets with %q: %w", opts.Path, err)
	}
	items, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("parse error: %q must select an array of assets, got %T", opts.Path, selected)
	}

	assets := make([]Asset, 0, len(items))
	ids := make(map[string]int, len(items))
	var errs []error
	for i, item := range items {
		// round trip through json to get the typed shape.
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("parse error: asset #%d: %w", i, err)
		}
		var ja jasset
		if err := json.Unmarshal(raw, &ja); err != nil {
			errs = append(errs, fmt.Errorf("asset #%d: not a valid asset: %w", i, err))
			continue
		}
		a, err := ja.asset(opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("asset #%d: %w", i, err))
			continue
		}
		if j, dup := ids[a.ID]; dup {
			errs = append(errs, fmt.Errorf("asset #%d: %w", i,
				invalid(ErrInconsistent, "id", "duplicate id %q already used by asset #%d", a.ID, j)))
			continue
		}
		ids[a.ID] = i
		assets = append(assets, a)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("import error: %w", errors.Join(errs...))
	}
	return assets, nil
}

func (o ImportOptions) withDefaults() ImportOptions {
	if o.Path == "" {
		o.Path = DefaultAssetsPath
	}
	if o.Policy == nil {
		p := DefaultPolicy()
		o.Policy = &p
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// asset checks the required fields and builds the Asset with defaults.
func (ja jasset) asset(opts ImportOptions) (Asset, error) {
	if err := importValidator.Struct(ja); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Asset{}, err
		}
		missing := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, invalid(ErrMissingField, fe.Field(), "required field %q is missing", fe.Field()))
		}
		return Asset{}, errors.Join(missing...)
	}

	typ, err := ParseAssetType(ja.Type)
	if err != nil {
		return Asset{}, err
	}
	risk := MediumRisk
	if ja.RiskRating != "" {
		if risk, err = ParseRiskRating(ja.RiskRating); err != nil {
			return Asset{}, err
		}
	}

	price := USD(*ja.Price)
	ltv := Percent(*ja.LoanToValue)
	a := Asset{
		ID:            ja.ID,
		Symbol:        ja.Symbol,
		Name:          ja.Name,
		Type:          typ,
		Price:         price,
		PreviousPrice: price,
		LoanToValue:   ltv,
		RiskRating:    risk,
		Sector:        ja.Sector,
	}
	if a.ID == "" {
		a.ID = opts.NewID()
	}
	if ja.PreviousPrice != nil {
		a.PreviousPrice = USD(*ja.PreviousPrice)
	}

	a.Change = a.Price.Sub(a.PreviousPrice)
	if ja.Change != nil {
		a.Change = USD(*ja.Change)
	}
	if ja.ChangePercent != nil {
		a.ChangePercent = Percent(*ja.ChangePercent)
	} else if !a.PreviousPrice.IsZero() {
		pct := a.Change.value.Div(a.PreviousPrice.value).Shift(2)
		a.ChangePercent = Percent(pct.InexactFloat64())
	}

	if ja.MarketCap != nil {
		m := USD(*ja.MarketCap)
		a.MarketCap = &m
	}
	if ja.Volume != nil {
		q := Q(*ja.Volume)
		a.Volume = &q
	}

	a.MaxLoanAmount = price.MulPercent(ltv)
	if ja.MaxLoanAmount != nil {
		a.MaxLoanAmount = USD(*ja.MaxLoanAmount)
	}
	a.CollateralValue = price.MulPercent(ltv)
	if ja.CollateralValue != nil {
		a.CollateralValue = USD(*ja.CollateralValue)
	}
	a.LiquidationThreshold = min(ltv+Percent(opts.Policy.LiquidationBuffer), 100)
	if ja.LiquidationThreshold != nil {
		a.LiquidationThreshold = Percent(*ja.LiquidationThreshold)
	}

	a.Timestamp = opts.Now().UTC()
	if ja.Timestamp != nil {
		a.Timestamp = ja.Timestamp.UTC()
	}

	if err := a.Validate(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// ExportAssets writes assets to w in the import/export format.
func ExportAssets(w io.Writer, assets []Asset) error {
	doc := struct {
		Assets []Asset `json:"assets"`
	}{Assets: assets}
	if doc.Assets == nil {
		doc.Assets = []Asset{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot write assets: %w", err)
	}
	return nil
}
