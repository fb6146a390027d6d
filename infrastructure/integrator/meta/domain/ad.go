package metadomain

// Ad é o registro bruto de um anúncio da Graph API, incluindo a
// sub-consulta de insights usada na verificação de entrega.
type Ad struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Status      string            `json:"status"`
	CreatedTime string            `json:"created_time"`
	UpdatedTime string            `json:"updated_time,omitempty"`
	AdsetID     string            `json:"adset_id"`
	CampaignID  string            `json:"campaign_id"`
	Insights    *InsightsEnvelope `json:"insights,omitempty"`
}

// InsightsEnvelope embala a sub-consulta aninhada de insights por anúncio
type InsightsEnvelope struct {
	Data []Insight `json:"data"`
}

// VerificationImpressions devolve as impressões da janela de verificação.
// Sem insights na resposta significa zero entrega no dia.
func (a Ad) VerificationImpressions() int {
	if a.Insights == nil || len(a.Insights.Data) == 0 {
		return 0
	}

	return a.Insights.Data[0].ImpressionsInt()
}
