// Package service coordinates the registry domain with its
// infrastructure: journal-first writes, hazard-pointer publication,
// outbox events, and journal replay on startup.
package service
