package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AdSet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	CampaignID string `json:"campaign_id"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging é o envelope de paginação da Graph API. A ausência de Next
// sinaliza a última página.
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
