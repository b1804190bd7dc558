// Package fetch retrieves raw guide documents for a list of source locators.
//
// Retrieval is concurrent but bounded, each request carries its own timeout,
// and every per-source failure class (transport error, timeout, non-success
// status, decode error) is captured into that source's Result instead of
// propagating. The result slice is always index-aligned with the input.
package fetch
