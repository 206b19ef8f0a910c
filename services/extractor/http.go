package extractorsvc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
)

// httpService forwards the raw document to an external text-extraction
// endpoint and passes its response back untouched. There is no contract with
// the endpoint beyond POST-bytes-in, text-out.
type httpService struct {
	url    string
	client *http.Client
	logger core.Logger
}

var _ core.TextExtractor = (*httpService)(nil)

func NewHTTPService(logger core.Logger) core.TextExtractor {
	return &httpService{
		url: core.Conf.GetString("pdfExtractorURL"),
		client: &http.Client{
			Timeout: core.Conf.GetDuration("pdfExtractorTimeout"),
		},
		logger: logger,
	}
}

func (svc *httpService) ExtractText(ctx context.Context, doc io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.url, doc)
	if err != nil {
		return "", errors.Wrap(err, "building extraction request")
	}
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling text extractor")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading extraction response")
	}
	if resp.StatusCode != http.StatusOK {
		svc.logger.Warn(fmt.Sprintf("text extractor returned %s", resp.Status))
		return "", errors.Errorf("text extraction failed: %s", resp.Status)
	}
	return string(body), nil
}
