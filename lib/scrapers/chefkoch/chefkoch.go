package chefkoch

import (
	"context"
	"net/http/cookiejar"
	"time"

	"kochindex-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/chefkoch")

const (
	defaultBaseUrl    = "https://www.chefkoch.de"
	defaultApiBaseUrl = "https://api.chefkoch.de"

	loginPath       = "/benutzer/authentifizieren"
	loginFailedPath = "/benutzer/einloggen"
)

// Client holds the authenticated session against www.chefkoch.de and the
// unauthenticated-ish JSON API host. Session state lives on the client,
// never in package globals, so callers can run several accounts in
// parallel.
type Client struct {
	baseUrl string
	www     *resty.Client
	api     *resty.Client
}

type ClientOptions struct {
	// overriding the hosts is only useful for tests
	BaseUrl    string
	ApiBaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	apiBaseUrl := opts.ApiBaseUrl
	if apiBaseUrl == "" {
		apiBaseUrl = defaultApiBaseUrl
	}

	// one jar for both hosts, the site shares the session cookie with
	// its api subdomain
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	www := resty.New()
	www.SetBaseURL(baseUrl)
	www.SetCookieJar(jar)
	www.SetTimeout(time.Second * 30)
	www.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	www.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(www.GetClient().Transport)
	restyutil.InstrumentClient(www, "scrapers/chefkoch/http")

	api := resty.New()
	api.SetBaseURL(apiBaseUrl)
	api.SetCookieJar(jar)
	api.SetTimeout(time.Second * 30)
	api.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	restyutil.InstrumentClient(api, "scrapers/chefkoch/api")

	return &Client{
		baseUrl: baseUrl,
		www:     www,
		api:     api,
	}, nil
}

// Login authenticates the session with username and password. The site
// answers 200 even for bad credentials; the tell is the redirect back to
// the login form.
func (c *Client) Login(ctx context.Context, username, password string) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	res, err := c.www.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username":    username,
			"password":    password,
			"remember_me": "on",
			"context":     "login/init",
		}).
		Post(loginPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}

	if res.RawResponse.Request.URL.String() == c.baseUrl+loginFailedPath {
		err := LoginError{Username: username}
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
