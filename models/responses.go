package models

// ValidateResponse is the body of the validate-only endpoint. It always
// carries the full validation result, even when the record is valid, so the
// web UI can clear previously rendered field errors.
type ValidateResponse struct {
	Result Result `json:"result"`
}

// SearchResponse is the paged body of the resident search endpoint.
type SearchResponse struct {
	Residents []Resident `json:"residents"`
	Total     int        `json:"total"`
	Limit     uint64     `json:"limit"`
	Offset    uint64     `json:"offset"`
}

// HouseholdResponse is the body of the household fetch endpoint, including
// the derived member count.
type HouseholdResponse struct {
	Household   Household `json:"household"`
	MemberCount int       `json:"member_count"`
}

// AppBuildInfo describes the running binary; exposed via /api/version/.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
