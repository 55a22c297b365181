package listing

import (
	"fmt"
	"fresh-connect/domain"
)

// PartnerAds returns the promoted partner stays shown above the organic listings.
func PartnerAds(institution string) []domain.Advertisement {
	ads := []domain.Advertisement{
		{
			Hostel: domain.Hostel{
				Name:        "Luxe Campus Suites",
				Location:    fmt.Sprintf("0.5km from %s", institution),
				PriceRange:  "₹12,000 /mo",
				Contact:     "contact@luxecampus.com",
				Description: "Premium fully-furnished student housing with rooftop cafe and gym.",
			},
			Tagline: "Premium Student Living",
			Rating:  5,
		},
		{
			Hostel: domain.Hostel{
				Name:        "The Scholar's Den",
				Location:    "Walking distance to Campus",
				PriceRange:  "₹8,500 /mo",
				Contact:     "hello@scholarsden.pg",
				Description: "Academic-focused environment with 24/7 library and high-speed fiber.",
			},
			Tagline: "Study First Culture",
			Rating:  4,
		},
	}
	for i := range ads {
		ads[i].IsPromoted = true
		ads[i].Rating = clampRating(ads[i].Rating)
	}
	return ads
}

func clampRating(rating int) int {
	return min(max(rating, 0), 5)
}
