package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// LeadActionType é o token de ação que conta como lead nas respostas
// da Graph API
const LeadActionType = "lead"

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é um registro de métricas da Graph API. Os campos numéricos
// chegam como string do upstream; a conversão para tipos fortes fica
// toda aqui, na borda de ingestão.
type Insight struct {
	AccountID    string   `json:"account_id,omitempty"`
	AccountName  string   `json:"account_name,omitempty"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	CampaignName string   `json:"campaign_name,omitempty"`
	AdsetID      string   `json:"adset_id,omitempty"`
	AdsetName    string   `json:"adset_name,omitempty"`
	AdID         string   `json:"ad_id,omitempty"`
	AdName       string   `json:"ad_name,omitempty"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Reach        string   `json:"reach,omitempty"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	CPM          string   `json:"cpm"`
	Actions      []Action `json:"actions,omitempty"`
	DateStart    string   `json:"date_start,omitempty"`
	DateStop     string   `json:"date_stop,omitempty"`
}

func (i Insight) SpendFloat() float64 {
	return parseFloatField("spend", i.Spend)
}

func (i Insight) ImpressionsInt() int {
	return parseIntField("impressions", i.Impressions)
}

func (i Insight) ClicksInt() int {
	return parseIntField("clicks", i.Clicks)
}

func (i Insight) ReachInt() int {
	return parseIntField("reach", i.Reach)
}

func (i Insight) CTRFloat() float64 {
	return parseFloatField("ctr", i.CTR)
}

func (i Insight) CPCFloat() float64 {
	return parseFloatField("cpc", i.CPC)
}

func (i Insight) CPMFloat() float64 {
	return parseFloatField("cpm", i.CPM)
}

// LeadCount extrai o total de leads da lista de ações do upstream.
// A primeira ação "lead" encontrada vale; ocorrências seguintes são
// ignoradas, não somadas. Comportamento herdado do sistema original,
// mantido até confirmação do produto.
func (i Insight) LeadCount() int {
	for _, action := range i.Actions {
		if action.ActionType == LeadActionType {
			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"action_type":  action.ActionType,
					"action_value": action.Value,
					"error":        err.Error(),
				}).Warn("insights: error converting lead action value to int")
				return 0
			}

			return value
		}
	}

	return 0
}

func parseFloatField(field, value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting field to float")
		return 0
	}

	return parsed
}

func parseIntField(field, value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting field to integer")
		return 0
	}

	return parsed
}
