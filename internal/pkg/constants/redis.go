package constants

// Redis key formats
const (
	KeySegmentCache    = "route:segment:%s"      // Format: route:segment:{cache_key}
	KeySegmentCell     = "route:segment:cell:%s" // Set of cache keys whose origin falls in {geohash}
	KeyCalculationLock = "route:calc:lock:%s"    // Format: route:calc:lock:{route_id}
)

// CacheCellPrecision is the geohash precision used to index cached segments by origin
const CacheCellPrecision = 5
