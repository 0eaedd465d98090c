package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/quantego/coinsight/internal/core"
)

const (
	baseURL        = "https://api.coingecko.com/api/v3"
	defaultTimeout = 10 * time.Second
	vsCurrency     = "usd"
)

// CoinGecko implements the provider.Provider interface
type CoinGecko struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// New creates a new CoinGecko provider
func New(apiKey string, timeout time.Duration) *CoinGecko {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CoinGecko{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// NewWithBaseURL creates a CoinGecko provider with custom base URL (for testing)
func NewWithBaseURL(apiKey, url string, timeout time.Duration) *CoinGecko {
	c := New(apiKey, timeout)
	c.baseURL = url
	return c
}

func (c *CoinGecko) Name() string {
	return "coingecko"
}

// get issues a GET request and decodes the JSON body into out. A non-2xx
// response becomes ErrUpstreamUnavailable carrying the verbatim status code.
func (c *CoinGecko) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return core.WrapError(core.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return core.WrapError(core.ErrUpstreamUnavailable, &core.UpstreamError{StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// marketEntry mirrors one /coins/markets listing record.
type marketEntry struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	TotalVolume    float64 `json:"total_volume"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
	Low24h         float64 `json:"low_24h"`
	High24h        float64 `json:"high_24h"`
}

// FetchMarketListing fetches the full market listing
func (c *CoinGecko) FetchMarketListing(ctx context.Context) ([]core.Asset, error) {
	params := url.Values{"vs_currency": {vsCurrency}}

	var entries []marketEntry
	if err := c.get(ctx, "/coins/markets", params, &entries); err != nil {
		return nil, err
	}

	assets := make([]core.Asset, 0, len(entries))
	for _, e := range entries {
		assets = append(assets, core.Asset{
			ID:             e.ID,
			Symbol:         e.Symbol,
			Name:           e.Name,
			CurrentPrice:   e.CurrentPrice,
			Volume24h:      e.TotalVolume,
			PriceChangePct: e.PriceChange24h,
			Low24h:         e.Low24h,
			High24h:        e.High24h,
		})
	}
	return assets, nil
}

// coinDetail mirrors the /coins/{id} response, usd-keyed maps included.
type coinDetail struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description struct {
		EN string `json:"en"`
	} `json:"description"`
	MarketData struct {
		CurrentPrice      map[string]float64 `json:"current_price"`
		CirculatingSupply float64            `json:"circulating_supply"`
		TotalSupply       float64            `json:"total_supply"`
		MarketCap         map[string]float64 `json:"market_cap"`
		ATH               map[string]float64 `json:"ath"`
		ATHDate           map[string]string  `json:"ath_date"`
		ATL               map[string]float64 `json:"atl"`
		ATLDate           map[string]string  `json:"atl_date"`
	} `json:"market_data"`
	Links struct {
		Homepage          []string `json:"homepage"`
		TwitterScreenName string   `json:"twitter_screen_name"`
		SubredditURL      string   `json:"subreddit_url"`
	} `json:"links"`
	SentimentUpPct   *float64 `json:"sentiment_votes_up_percentage"`
	SentimentDownPct *float64 `json:"sentiment_votes_down_percentage"`
	Tickers          []struct {
		Base   string `json:"base"`
		Target string `json:"target"`
		Market struct {
			Name string `json:"name"`
		} `json:"market"`
		TradeURL string `json:"trade_url"`
	} `json:"tickers"`
}

// FetchAssetDetail fetches the descriptive record for one asset
func (c *CoinGecko) FetchAssetDetail(ctx context.Context, id string) (*core.AssetDetail, error) {
	var d coinDetail
	if err := c.get(ctx, "/coins/"+url.PathEscape(id), nil, &d); err != nil {
		return nil, err
	}

	detail := &core.AssetDetail{
		ID:                d.ID,
		Symbol:            d.Symbol,
		Name:              d.Name,
		Description:       d.Description.EN,
		CirculatingSupply: d.MarketData.CirculatingSupply,
		TotalSupply:       d.MarketData.TotalSupply,
		MarketCap:         d.MarketData.MarketCap[vsCurrency],
		CurrentPrice:      d.MarketData.CurrentPrice[vsCurrency],
		ATH:               d.MarketData.ATH[vsCurrency],
		ATHDate:           d.MarketData.ATHDate[vsCurrency],
		ATL:               d.MarketData.ATL[vsCurrency],
		ATLDate:           d.MarketData.ATLDate[vsCurrency],
		Links: core.AssetLinks{
			Twitter: d.Links.TwitterScreenName,
			Reddit:  d.Links.SubredditURL,
		},
	}
	if len(d.Links.Homepage) > 0 {
		detail.Links.Homepage = d.Links.Homepage[0]
	}
	if d.SentimentUpPct != nil && d.SentimentDownPct != nil {
		detail.SentimentUpPct = *d.SentimentUpPct
		detail.SentimentDownPct = *d.SentimentDownPct
		detail.HasSentiment = true
	}
	for _, t := range d.Tickers {
		detail.Tickers = append(detail.Tickers, core.ExchangeTicker{
			ExchangeName: t.Market.Name,
			Base:         t.Base,
			Target:       t.Target,
			TradeURL:     t.TradeURL,
		})
	}
	return detail, nil
}

// marketChart mirrors /coins/{id}/market_chart: [[timestampMs, value], ...]
type marketChart struct {
	Prices       [][]float64 `json:"prices"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// FetchTimeSeries fetches price and volume history for an asset
func (c *CoinGecko) FetchTimeSeries(ctx context.Context, id string, days int) (*core.TimeSeries, error) {
	params := url.Values{
		"vs_currency": {vsCurrency},
		"days":        {fmt.Sprintf("%d", days)},
	}

	var chart marketChart
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &chart); err != nil {
		return nil, err
	}

	return &core.TimeSeries{
		Prices:  toSeries(chart.Prices),
		Volumes: toSeries(chart.TotalVolumes),
	}, nil
}

func toSeries(pairs [][]float64) core.Series {
	s := make(core.Series, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		s = append(s, core.Point{Timestamp: int64(p[0]), Value: p[1]})
	}
	return s
}
