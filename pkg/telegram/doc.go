// Package telegram implements the upstream Bot API client.
//
// # Overview
//
// The telegram package performs the actual HTTPS calls to the Telegram
// Bot API. Every operation maps to exactly one POST of the form
//
//	POST {base}/bot{token}/{method}
//
// with a JSON body. There are no retries and no queuing: one inbound
// relay request produces at most one upstream call.
//
// # Basic Usage
//
//	client := telegram.NewClient(telegram.Config{
//	    BaseURL: "https://api.telegram.org",
//	    Timeout: 15 * time.Second,
//	})
//	defer client.Close()
//
//	body, err := client.Validate(ctx, token)
//	if err != nil {
//	    // classify with errors.As, see below
//	}
//
// # Error Handling
//
// Failures are classified into three types, checked in priority order
// by callers:
//
//   - RejectedError: the API answered 2xx but the result envelope has
//     "ok" false or absent. The full body is preserved verbatim.
//   - StatusError: the API answered non-2xx. The status code and body
//     are captured at the point of failure.
//   - UnreachableError: transport failure (timeout, DNS, connection
//     refused) or a malformed success body.
//
// # Token Safety
//
// The bot token is part of the request URL, so the package sanitizes
// every transport error before wrapping it. Raw client errors are
// never returned or logged.
package telegram
