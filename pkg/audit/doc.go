// Package audit records an audit trail of relayed Bot API calls.
//
// Each relayed call produces one Record: the inbound endpoint, the Bot
// API method, the outcome classification, status codes, latency, and a
// SHA-256 digest of the bot token. The token itself is never stored.
//
// The Recorder writes records asynchronously through a buffered channel
// so the relay path never blocks on storage. When the channel is full
// the record is dropped and the drop is logged; audit writes must not
// become a relay bottleneck.
//
// Storage backends live in the storage subpackage (SQLite and
// in-memory). The retention subpackage prunes old records on a cron
// schedule.
package audit
