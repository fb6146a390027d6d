package inventorying

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-inventory-api/internal/domain"
)

// VerifyDelivery separa os anúncios que a plataforma diz estarem ativos
// entre os que realmente entregaram no dia e os "fantasmas". O status
// da plataforma continua ACTIVE muito depois do orçamento esgotar ou de
// uma promoção com data passar, então impressões > 0 é o critério.
func VerifyDelivery(ads []domain.Ad) (delivering, phantom []domain.Ad) {
	delivering = make([]domain.Ad, 0, len(ads))
	phantom = make([]domain.Ad, 0)

	for _, ad := range ads {
		if ad.Delivering() {
			delivering = append(delivering, ad)
		} else {
			phantom = append(phantom, ad)
		}
	}

	if len(phantom) > 0 {
		logrus.WithFields(logrus.Fields{
			"platform_active": len(ads),
			"delivering":      len(delivering),
			"phantom":         len(phantom),
		}).Info("inventory: excluded phantom-active ads from delivery counts")
	}

	return delivering, phantom
}
