package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created from the configuration.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrNoAddresses is returned by New when Config.Addresses is empty.
	ErrNoAddresses = errors.New("no opensearch addresses, use OPENSEARCH_ADDRESSES env var")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")

	// ErrLookupQuery wraps failed or rejected _count requests.
	ErrLookupQuery = errors.New("opensearch uniqueness query failed")
)
