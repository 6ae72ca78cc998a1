// Package opensearch answers uniqueness lookups against OpenSearch indices
// using github.com/opensearch-project/opensearch-go/v2.
//
// Config is populated from OPENSEARCH_* environment variables. New builds a
// client and verifies the cluster with Healthcheck. Lookup sends
//
//	POST /<index>/_count
//	{"query":{"term":{"<field>":<value>}}}
//
// and treats a non-zero count as "exists". Index and field names must pass
// rules.ValidIdentifier. OpenSearch index names are lowercase, so "Users" is
// accepted here and rejected by the cluster, surfacing as ErrLookupQuery.
package opensearch
