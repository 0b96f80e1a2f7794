// Package probe fetches a domain over HTTPS/HTTP and extracts the response
// metadata and page content the classifier needs.
package probe

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/hakim/domainscout/internal/content"
	"github.com/hakim/domainscout/internal/models"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 5000
	maxErrorLen = 200

	// maxReadBytes caps how much of a response body is read for analysis
	maxReadBytes = 2 << 20
)

// Config tunes the HTTP prober
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxRetries   int
	RetryBackoff time.Duration
}

// Prober performs the HTTPS-then-HTTP probe sequence for single domains
type Prober struct {
	cfg    Config
	client *http.Client
}

// New creates a Prober. Redirects are followed automatically; certificate
// verification stays on so TLS failures can drive the HTTP fallback.
func New(cfg Config) *Prober {
	return &Prober{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DisableKeepAlives:   true,
				TLSHandshakeTimeout: cfg.Timeout,
			},
		},
	}
}

// Probe runs the full attempt sequence for a domain: HTTPS first, falling
// back to plain HTTP only when HTTPS never produced a response.
//
// Retry policy per scheme: up to MaxRetries attempts with a fixed backoff
// for connection-refused and timeout errors. A TLS error on HTTPS aborts
// that scheme immediately. Probe never returns an error; failures are
// recorded on the result and whatever was collected is returned.
func (p *Prober) Probe(ctx context.Context, domain string) models.ProbeResult {
	var result models.ProbeResult

	schemes := []string{"https", "http"}
	for si, scheme := range schemes {
		lastScheme := si == len(schemes)-1

	attempts:
		for attempt := 1; attempt <= p.cfg.MaxRetries; attempt++ {
			resp, err := p.get(ctx, scheme+"://"+domain)
			if err == nil {
				p.handleResponse(&result, resp, domain)
				return result
			}

			logrus.Debugf("probe %s://%s attempt %d: %v", scheme, domain, attempt, err)

			switch {
			case isTLSError(err):
				if scheme == "https" {
					// Broken or missing certificate, go straight to HTTP.
					break attempts
				}
				result.Error = "SSL error"

			case isConnRefused(err):
				if attempt >= p.cfg.MaxRetries {
					if lastScheme {
						result.Error = "Connection refused"
					}
					break attempts
				}
				sleep(ctx, p.cfg.RetryBackoff)

			case isTimeout(err):
				if attempt >= p.cfg.MaxRetries {
					if lastScheme {
						result.Error = "Timeout"
					}
					break attempts
				}
				sleep(ctx, p.cfg.RetryBackoff)

			default:
				result.Error = truncate(err.Error(), maxErrorLen)
				if attempt >= p.cfg.MaxRetries {
					if lastScheme {
						return result
					}
					break attempts
				}
				sleep(ctx, p.cfg.RetryBackoff)
			}
		}
	}

	return result
}

func (p *Prober) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)
	return p.client.Do(req)
}

// handleResponse records response metadata and, for a 200 with a body,
// extracts title and text and runs the content signal analysis.
func (p *Prober) handleResponse(result *models.ProbeResult, resp *http.Response, domain string) {
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.HasStatus = true

	finalURL := resp.Request.URL
	result.FinalURL = finalURL.String()

	// Redirect detection compares registrable domains (www-stripped hosts)
	// and applies to every response, 200 or not.
	if !sameRegistrable(domain, finalURL.Hostname()) {
		result.RedirectURL = result.FinalURL
	}

	if resp.StatusCode != http.StatusOK {
		return
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadBytes))
	if err != nil {
		result.Error = truncate(err.Error(), maxErrorLen)
		return
	}
	if len(body) == 0 {
		return
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		result.Error = truncate(err.Error(), maxErrorLen)
		return
	}

	result.PageTitle = truncate(strings.TrimSpace(doc.Find("title").First().Text()), maxTitleLen)

	doc.Find("script, style, noscript").Remove()
	bodyText := strings.ToLower(strings.Join(strings.Fields(doc.Text()), " "))
	result.BodyText = truncate(bodyText, maxBodyLen)

	content.Analyze(result, bodyText)
}

// sameRegistrable reports whether two hosts name the same site, ignoring a
// leading "www." label and letter case.
func sameRegistrable(requested, final string) bool {
	return stripWWW(requested) == stripWWW(final)
}

func stripWWW(host string) string {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}

func isTLSError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	var recordErr tls.RecordHeaderError
	var hostErr x509.HostnameError
	var authErr x509.UnknownAuthorityError
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &verifyErr) || errors.As(err, &recordErr) ||
		errors.As(err, &hostErr) || errors.As(err, &authErr) ||
		errors.As(err, &invalidErr) {
		return true
	}
	return strings.Contains(err.Error(), "tls:")
}

func isConnRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// sleep waits out the retry backoff but gives up early on cancellation
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
