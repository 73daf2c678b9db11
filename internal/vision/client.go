package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"photoshare/internal/entity"
)

const (
	analyzePath   = "/vision/v3.2/analyze"
	visualFeature = "Tags,Description,Adult,Categories"

	// Tags below this confidence are discarded.
	minTagConfidence = 0.5
	maxTags          = 10
)

// Client talks to the image analysis API. A zero endpoint disables analysis;
// callers treat a nil result as "no analysis available".
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.endpoint != "" && c.apiKey != ""
}

// Analysis is the vetted result: normalized tags, a caption, category names
// and the adult-content verdicts that drive moderation.
type Analysis struct {
	Tags        []string
	Description string
	Categories  []string
	Adult       AdultVerdict
}

type AdultVerdict struct {
	IsAdultContent bool
	IsGoryContent  bool
	IsRacyContent  bool
}

type analyzeResponse struct {
	Tags []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"tags"`
	Description struct {
		Captions []struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"captions"`
	} `json:"description"`
	Categories []struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	} `json:"categories"`
	Adult struct {
		IsAdultContent bool `json:"isAdultContent"`
		IsGoryContent  bool `json:"isGoryContent"`
		IsRacyContent  bool `json:"isRacyContent"`
	} `json:"adult"`
}

// AnalyzeURL submits a publicly reachable image URL for analysis.
func (c *Client) AnalyzeURL(ctx context.Context, imageURL string) (*Analysis, error) {
	if !c.Enabled() {
		return nil, nil
	}

	body, err := json.Marshal(map[string]string{"url": imageURL})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s?visualFeatures=%s", c.endpoint, analyzePath, visualFeature)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision analyze: unexpected status %d", resp.StatusCode)
	}

	var raw analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return toAnalysis(&raw), nil
}

func toAnalysis(raw *analyzeResponse) *Analysis {
	analysis := &Analysis{
		Adult: AdultVerdict{
			IsAdultContent: raw.Adult.IsAdultContent,
			IsGoryContent:  raw.Adult.IsGoryContent,
			IsRacyContent:  raw.Adult.IsRacyContent,
		},
	}

	tags := make([]string, 0, maxTags)
	for _, tag := range raw.Tags {
		if tag.Confidence <= minTagConfidence {
			continue
		}
		tags = append(tags, tag.Name)
		if len(tags) == maxTags {
			break
		}
	}
	analysis.Tags = entity.NormalizeTags(tags)

	if len(raw.Description.Captions) > 0 {
		analysis.Description = raw.Description.Captions[0].Text
	}

	for _, category := range raw.Categories {
		analysis.Categories = append(analysis.Categories, category.Name)
	}

	return analysis
}
