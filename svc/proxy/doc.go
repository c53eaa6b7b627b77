// Package proxy hosts the outbound HTTP functions the web client calls
// directly: a WhatsApp test-campaign sender and an AI assistant completion
// endpoint. Both forward to third-party APIs whose credentials live in
// environment secrets and never reach the browser.
//
// The endpoints share one error contract:
//
//   - a missing required secret fails fast with a 500 before any network
//     call is attempted;
//   - a non-2xx upstream response is reported as a 500 carrying the
//     upstream status and body verbatim in {error, status, details};
//   - OPTIONS preflight is answered with permissive CORS headers.
//
// Neither endpoint retries. Recovery is the caller re-issuing the request.
package proxy
