// Package repository holds the delegated operations against the
// platform's data API and object storage. Repositories are cheap,
// per-request objects built from a scoped session, so every query runs
// under the caller's own credential.
package repository

import "github.com/supabase-community/postgrest-go"

// ownedBy narrows a query to rows owned by the given principal.
// Every query that reads or mutates caller-owned rows must go through
// it; the explicit id argument keeps a route from ever forgetting the
// ownership filter. Client-supplied owner ids are never used for writes.
func ownedBy(f *postgrest.FilterBuilder, principalID string) *postgrest.FilterBuilder {
	return f.Eq("user_id", principalID)
}
