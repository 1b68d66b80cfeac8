package httpclients

import (
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
	"pizzaops.io/admin-dashboard/config"
	"pizzaops.io/admin-dashboard/config/environment_variables"
	"resty.dev/v3"
)

// NewClient returns a resty client with the shared transport defaults. name
// identifies the caller in logs and in the User-Agent.
func NewClient(name string) *resty.Client {
	client := resty.New()
	client.SetTimeout(environment_variables.EnvironmentVariables.HTTP_TIMEOUT)
	client.SetHeader("User-Agent", "pizzaops-admin-dashboard/"+config.Version+" ("+name+")")
	return client
}

// NewCookieJar holds the backend session cookies. It is shared by the REST
// client and the websocket dialer.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}
