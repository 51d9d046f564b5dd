package domain

// ProjectDetails carries site metadata from the form layer.
type ProjectDetails struct {
	Location        string `json:"location"`
	State           string `json:"state"`
	SiteEnvironment string `json:"siteEnvironment"`
	HRCWCategories  []int  `json:"hrcwCategories"`
}

// GenerateRequest is the inbound request from the form layer.
type GenerateRequest struct {
	SelectedActivities   []string       `json:"selectedActivities"`
	TradeType            string         `json:"tradeType"`
	ProjectDetails       ProjectDetails `json:"projectDetails"`
	PlainTextDescription string         `json:"plainTextDescription,omitempty"`
}
