package inventory

// AliasesNotAvailable is reported when the account aliases cannot be listed.
const AliasesNotAvailable = "Not available"

// BucketRecord is one row of the bucket report.
type BucketRecord struct {
	// OwnerID is the canonical ID of the bucket owner.
	OwnerID string `json:"account_id"`
	// AccountAliases are the account aliases joined by a single space.
	AccountAliases string `json:"account_aliases"`
	// Name is the bucket name.
	Name string `json:"bucket_name"`
	// Region is the region the bucket lives in.
	Region string `json:"bucket_region"`
	// Analytics is true if the bucket has at least one analytics configuration.
	Analytics bool `json:"analytics"`
}

// AnalyticsFlag renders the analytics state as Y or N.
func (r BucketRecord) AnalyticsFlag() string {
	if r.Analytics {
		return "Y"
	}
	return "N"
}

// CountAnalytics returns how many records have analytics enabled.
func CountAnalytics(records []BucketRecord) int {
	n := 0
	for _, r := range records {
		if r.Analytics {
			n++
		}
	}
	return n
}
