package org

import (
	"errors"
	"net/http"
	"strings"
)

// Resolver extracts the organization identifier from an HTTP request.
// An empty string means the request carries no org identifier; errors mean
// extraction itself failed.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// HeaderResolver reads the identifier from a request header.
type HeaderResolver struct {
	HeaderName string
}

// NewHeaderResolver creates a header resolver. Defaults to "X-Org-ID".
func NewHeaderResolver(headerName string) *HeaderResolver {
	if headerName == "" {
		headerName = "X-Org-ID"
	}
	return &HeaderResolver{HeaderName: headerName}
}

func (h *HeaderResolver) Resolve(r *http.Request) (string, error) {
	return r.Header.Get(h.HeaderName), nil
}

// SubdomainResolver extracts the identifier from the request subdomain,
// e.g. "acme" from "acme.saleshub.app".
type SubdomainResolver struct {
	// Suffix is stripped from the host before the subdomain is read,
	// e.g. ".saleshub.app".
	Suffix string
}

func NewSubdomainResolver(suffix string) *SubdomainResolver {
	return &SubdomainResolver{Suffix: suffix}
}

func (s *SubdomainResolver) Resolve(r *http.Request) (string, error) {
	host := r.Host
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	// A bare domain.tld has no subdomain to resolve.
	if len(strings.Split(host, ".")) < 3 {
		return "", nil
	}

	if s.Suffix != "" && strings.HasSuffix(host, s.Suffix) && len(host) > len(s.Suffix) {
		host = host[:len(host)-len(s.Suffix)]
	}

	parts := strings.Split(host, ".")
	if len(parts) == 0 || parts[0] == "" || parts[0] == "www" {
		return "", nil
	}
	return parts[0], nil
}

// PathResolver extracts the identifier from a 1-based URL path position,
// e.g. position 2 for /orgs/{id}/....
type PathResolver struct {
	Position int
}

func NewPathResolver(position int) *PathResolver {
	return &PathResolver{Position: position}
}

func (p *PathResolver) Resolve(r *http.Request) (string, error) {
	if p.Position < 1 {
		return "", errors.New("invalid path position")
	}

	path := strings.Trim(r.URL.Path, "/")
	if path == "" {
		return "", nil
	}

	parts := strings.Split(path, "/")
	if p.Position > len(parts) {
		return "", nil
	}
	return parts[p.Position-1], nil
}

// CompositeResolver tries resolvers in order and returns the first
// non-empty identifier.
type CompositeResolver struct {
	Resolvers []Resolver
}

func NewCompositeResolver(resolvers ...Resolver) *CompositeResolver {
	return &CompositeResolver{Resolvers: resolvers}
}

func (c *CompositeResolver) Resolve(r *http.Request) (string, error) {
	var errs []error
	for _, resolver := range c.Resolvers {
		id, err := resolver.Resolve(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if id != "" {
			return id, nil
		}
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return "", nil
}
