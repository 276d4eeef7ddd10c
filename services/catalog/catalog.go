package catalog

import (
	"sort"

	"homezy/i18n"
	"homezy/models"

	"golang.org/x/text/message"
)

// Service serves the homepage's featured homestays and destination tiles.
type Service struct {
	homestays    []models.Homestay
	destinations []models.Destination
}

func NewService() *Service {
	return &Service{homestays: homestays, destinations: destinations}
}

// Featured returns up to limit homestays, best rated first, with prices
// formatted for loc. A non-positive limit returns all of them.
func (s *Service) Featured(loc i18n.Locale, limit int) []models.Homestay {
	out := make([]models.Homestay, len(s.homestays))
	copy(out, s.homestays)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	for i := range out {
		out[i].FormattedPrice = FormatPrice(loc, out[i].Price)
	}
	return out
}

// Destinations returns the popular destination tiles.
func (s *Service) Destinations() []models.Destination {
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// FormatPrice renders a nightly price in dong with the locale's grouping.
func FormatPrice(loc i18n.Locale, amount int64) string {
	return message.NewPrinter(loc.Tag()).Sprintf("%d ₫", amount)
}
