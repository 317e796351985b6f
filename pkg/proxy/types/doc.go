// Package types defines the wire-level request and response shapes of
// the relay HTTP API.
//
// Request bodies carry the bot token inline; the token is relayed to
// the upstream API and never persisted or logged. Error bodies are
// either the upstream response relayed verbatim or a Descriptor with a
// single "description" field.
package types
