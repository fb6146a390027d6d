package pausing

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-inventory-api/internal/config"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
	"github.com/vfg2006/ad-inventory-api/internal/usecases/inventorying"
)

// Recommender produz a lista ranqueada de anúncios a pausar para a
// conta voltar a ficar abaixo do limite. Nenhuma pausa é executada por
// aqui; a plataforma nunca recebe escrita deste serviço.
type Recommender interface {
	GetPauseRecommendations(accountID string) (*domain.PauseRecommendationsResponse, error)
}

type Service struct {
	cfg       *config.Config
	inventory inventorying.Inventorier
}

func NewService(cfg *config.Config, inventory inventorying.Inventorier) Recommender {
	return &Service{
		cfg:       cfg,
		inventory: inventory,
	}
}

// GetPauseRecommendations monta o inventário com performance e aplica a
// régua de pausa sobre ele
func (s *Service) GetPauseRecommendations(accountID string) (*domain.PauseRecommendationsResponse, error) {
	performance, err := s.inventory.GetActiveWithPerformance(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o inventário com performance")
	}

	if !performance.Success {
		return &domain.PauseRecommendationsResponse{
			Success:         false,
			Threshold:       performance.Threshold,
			Recommendations: []domain.PauseRecommendation{},
			Error:           performance.Error,
		}, nil
	}

	recommendations := Prioritize(performance.Ads, PrioritizerConfig{
		LearningPhaseDays:      s.cfg.Inventory.LearningPhaseDays,
		ZeroLeadSpendThreshold: s.cfg.Inventory.ZeroLeadSpendThreshold,
		CTRBelowAvgRatio:       s.cfg.Inventory.CTRBelowAvgRatio,
	})

	return &domain.PauseRecommendationsResponse{
		Success:         true,
		TotalActiveAds:  performance.TotalActiveAds,
		Threshold:       performance.Threshold,
		OverBy:          performance.OverBy,
		Recommendations: recommendations,
	}, nil
}
