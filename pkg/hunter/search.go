package hunter

import (
	"context"
	"net/url"
	"strconv"
)

func (c *httpClient) DomainSearch(ctx context.Context, domain string, limit int) (*DomainResult, error) {
	params := url.Values{}
	params.Set("domain", domain)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result DomainResult
	if err := c.get(ctx, "/domain-search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) FindEmail(ctx context.Context, firstName, lastName, domain string) (*FinderResult, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("first_name", firstName)
	params.Set("last_name", lastName)

	var result FinderResult
	if err := c.get(ctx, "/email-finder", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
