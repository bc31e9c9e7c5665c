package options

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TrendAdvisor/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance options API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new options fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo-options" }

// yahooQuote is one contract row in the Yahoo options response.
type yahooQuote struct {
	ContractSymbol    string  `json:"contractSymbol"`
	Strike            float64 `json:"strike"`
	Expiration        int64   `json:"expiration"`
	LastPrice         float64 `json:"lastPrice"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Volume            int64   `json:"volume"`
	OpenInterest      int64   `json:"openInterest"`
	ImpliedVolatility float64 `json:"impliedVolatility"`
	InTheMoney        bool    `json:"inTheMoney"`
}

// yahooOptions is the response structure from the Yahoo options API.
type yahooOptions struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				ExpirationDate int64        `json:"expirationDate"`
				Calls          []yahooQuote `json:"calls"`
				Puts           []yahooQuote `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"optionChain"`
}

func (f *YahooFetcher) fetch(symbol string, expiry int64) (*yahooOptions, error) {
	u := fmt.Sprintf("https://query2.finance.yahoo.com/v7/finance/options/%s", url.PathEscape(symbol))
	if expiry > 0 {
		u += fmt.Sprintf("?date=%d", expiry)
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo options fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo options read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo options: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out yahooOptions
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("yahoo options decode: %w", err)
	}
	if out.OptionChain.Error != nil {
		return nil, fmt.Errorf("yahoo options api error: %s", out.OptionChain.Error.Description)
	}
	return &out, nil
}

func (f *YahooFetcher) Expiries(symbol string) ([]time.Time, error) {
	resp, err := f.fetch(symbol, 0)
	if err != nil {
		return nil, err
	}
	if len(resp.OptionChain.Result) == 0 || len(resp.OptionChain.Result[0].ExpirationDates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, symbol)
	}
	dates := resp.OptionChain.Result[0].ExpirationDates
	expiries := make([]time.Time, len(dates))
	for i, ts := range dates {
		expiries[i] = time.Unix(ts, 0).UTC()
	}
	sort.Slice(expiries, func(i, j int) bool { return expiries[i].Before(expiries[j]) })
	return expiries, nil
}

func (f *YahooFetcher) Chain(symbol string, expiry time.Time) (*model.OptionsChain, error) {
	resp, err := f.fetch(symbol, expiry.Unix())
	if err != nil {
		return nil, err
	}
	if len(resp.OptionChain.Result) == 0 || len(resp.OptionChain.Result[0].Options) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrUnavailable, symbol, expiry.Format("2006-01-02"))
	}

	opt := resp.OptionChain.Result[0].Options[0]
	chain := &model.OptionsChain{
		Symbol: symbol,
		Expiry: time.Unix(opt.ExpirationDate, 0).UTC(),
		Calls:  convertQuotes(opt.Calls),
		Puts:   convertQuotes(opt.Puts),
	}
	return chain, nil
}

func convertQuotes(quotes []yahooQuote) []model.OptionQuote {
	out := make([]model.OptionQuote, len(quotes))
	for i, q := range quotes {
		out[i] = model.OptionQuote{
			ContractSymbol:    q.ContractSymbol,
			Strike:            q.Strike,
			Expiry:            time.Unix(q.Expiration, 0).UTC(),
			LastPrice:         q.LastPrice,
			Bid:               q.Bid,
			Ask:               q.Ask,
			Volume:            q.Volume,
			OpenInterest:      q.OpenInterest,
			ImpliedVolatility: q.ImpliedVolatility,
			InTheMoney:        q.InTheMoney,
		}
	}
	return out
}
