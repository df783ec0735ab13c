// Package checker issues one GET per subscribed URL, classifies the outcome
// and renders the non-normal results as a markdown table.
//
// Some sites (Medium, for one) block automated clients, so 404 失效 rows
// deserve a manual double check before an entry is removed.
package checker

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"urlcheck/pkg/models"
)

// Checker classifies single URLs.
type Checker struct {
	UserAgent string
	Timeout   time.Duration // zero means no timeout
}

func NewChecker(userAgent string, timeout time.Duration) *Checker {
	return &Checker{UserAgent: userAgent, Timeout: timeout}
}

// Check issues exactly one GET against targetURL and classifies the result.
//
// 2xx with no redirect hop is Normal; 2xx reached through at least one hop
// is Moved, carrying only the final resolved URL (chains are collapsed).
// Everything else - non-2xx status or any client-level failure - is
// Unavailable. Request failures never escape this function.
func (c *Checker) Check(ctx context.Context, targetURL string) models.CheckResult {
	logrus.WithField("url", targetURL).Debug("requesting")

	// 1. Build an isolated client for this one request. The hook records
	// that a hop happened and keeps the usual 10 hop cap, which the stdlib
	// only applies when no custom CheckRedirect is set.
	redirected := false
	client := &http.Client{
		Timeout: c.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			redirected = true
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   targetURL,
			"error": err,
		}).Error("cannot build request")
		return models.UnavailableResult()
	}
	req.Header.Set("User-Agent", c.UserAgent)

	// 2. Fire, and fold any client failure into Unavailable.
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   targetURL,
			"error": err,
		}).Error("request failed")
		return models.UnavailableResult()
	}
	defer resp.Body.Close()

	// 3. Classify by final status code.
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if redirected {
			return models.MovedResult(resp.Request.URL.String())
		}
		return models.NormalResult()
	}

	logrus.WithFields(logrus.Fields{
		"url":    targetURL,
		"status": resp.StatusCode,
	}).Error("site returned an error status")
	return models.UnavailableResult()
}
