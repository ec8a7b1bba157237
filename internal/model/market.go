package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type MarketStats struct {
	Universities int
	Students     string
	Ranking      string
	Cities       int
}

// Market is a study destination shown on the coverage pages.
type Market struct {
	Country        string
	Headline       string
	Description    string
	Stats          MarketStats
	Image          string
	Highlights     []string
	PopularCourses []string
	LivingCosts    string
	WorkRights     string
}

// Slug is the URL segment for the market, e.g. "united-kingdom".
func (m Market) Slug() string {
	return Slugify(m.Country)
}

var lower = cases.Lower(language.English)

func Slugify(s string) string {
	return strings.Join(strings.Fields(lower.String(s)), "-")
}

// Markets is the fixed destination catalogue in display order.
var Markets = []Market{
	{
		Country:     "Australia",
		Headline:    "World-class education in a multicultural environment",
		Description: "Experience high-quality education while enjoying Australia's diverse culture, stunning landscapes, and excellent quality of life.",
		Stats:       MarketStats{Universities: 43, Students: "500K+", Ranking: "#4 globally", Cities: 8},
		Image:       "/assets/images/countries/australia.svg",
		Highlights: []string{
			"Globally recognized qualifications",
			"Post-study work opportunities",
			"Multicultural environment",
			"High quality of life",
		},
		PopularCourses: []string{"Engineering", "Information Technology", "Business Management", "Health Sciences"},
		LivingCosts:    "AUD 21,000 - 30,000/year",
		WorkRights:     "Up to 40 hours bi-weekly during studies, full-time during breaks",
	},
	{
		Country:     "Canada",
		Headline:    "Quality education with pathway to permanent residency",
		Description: "Canada offers world-class education combined with extensive post-graduation work opportunities and a clear path to permanent residency.",
		Stats:       MarketStats{Universities: 96, Students: "640K+", Ranking: "#3 globally", Cities: 10},
		Image:       "/assets/images/countries/canada.svg",
		Highlights: []string{
			"Post-graduation work permit",
			"Path to permanent residency",
			"Safe environment",
			"Bilingual education options",
		},
		PopularCourses: []string{"Business Administration", "Computer Science", "Engineering", "Healthcare"},
		LivingCosts:    "CAD 15,000 - 25,000/year",
		WorkRights:     "Up to 20 hours/week during studies, full-time during breaks",
	},
	{
		Country:     "Cyprus",
		Headline:    "Mediterranean hub for international education",
		Description: "Study in the heart of the Mediterranean with affordable education options and a rich cultural heritage.",
		Stats:       MarketStats{Universities: 15, Students: "50K+", Ranking: "Top 50 in EU", Cities: 4},
		Image:       "/assets/images/countries/cyprus.svg",
		Highlights: []string{
			"Affordable education",
			"Mediterranean lifestyle",
			"English-taught programs",
			"Strategic location",
		},
		PopularCourses: []string{"Tourism Management", "Business Studies", "Maritime Studies", "Hotel Management"},
		LivingCosts:    "EUR 8,000 - 12,000/year",
		WorkRights:     "Up to 20 hours/week during term time",
	},
	{
		Country:     "France",
		Headline:    "Excellence in education with rich cultural heritage",
		Description: "Combine top-tier education with immersion in French culture and art de vivre.",
		Stats:       MarketStats{Universities: 67, Students: "370K+", Ranking: "#5 in Europe", Cities: 12},
		Image:       "/assets/images/countries/france.svg",
		Highlights: []string{
			"Affordable public education",
			"Rich cultural experience",
			"Central European location",
			"Strong research focus",
		},
		PopularCourses: []string{"Arts and Design", "Engineering", "Business", "Culinary Arts"},
		LivingCosts:    "EUR 10,000 - 15,000/year",
		WorkRights:     "Up to 20 hours/week during studies",
	},
	{
		Country:     "Germany",
		Headline:    "Engineering excellence and innovation hub",
		Description: "Access world-renowned technical education and research opportunities in Europe's largest economy.",
		Stats:       MarketStats{Universities: 400, Students: "420K+", Ranking: "#2 in Europe", Cities: 15},
		Image:       "/assets/images/countries/germany.svg",
		Highlights: []string{
			"No/Low tuition fees",
			"Strong industry connections",
			"Research opportunities",
			"High employment rate",
		},
		PopularCourses: []string{"Engineering", "Automotive Technology", "Computer Science", "Environmental Studies"},
		LivingCosts:    "EUR 10,000 - 15,000/year",
		WorkRights:     "Up to 20 hours/week during semester",
	},
	{
		Country:     "Ireland",
		Headline:    "Friendly atmosphere with strong academic tradition",
		Description: "Experience Ireland's renowned hospitality while studying at institutions known for innovation and research.",
		Stats:       MarketStats{Universities: 34, Students: "250K+", Ranking: "Top 20 globally", Cities: 5},
		Image:       "/assets/images/countries/ireland.svg",
		Highlights: []string{
			"English-speaking country",
			"Strong tech industry presence",
			"Post-study work visa",
			"Rich cultural heritage",
		},
		PopularCourses: []string{"Data Science", "Business", "Technology", "Medicine"},
		LivingCosts:    "EUR 12,000 - 18,000/year",
		WorkRights:     "Up to 20 hours/week during term time, 40 hours during holidays",
	},
	{
		Country:     "Netherlands",
		Headline:    "Innovation-driven education in the heart of Europe",
		Description: "Study in a country known for its innovative approach to education and high quality of life.",
		Stats:       MarketStats{Universities: 14, Students: "120K+", Ranking: "Top 15 globally", Cities: 6},
		Image:       "/assets/images/countries/netherlands.svg",
		Highlights: []string{
			"English-taught programs",
			"Bicycle-friendly cities",
			"International environment",
			"Strong research facilities",
		},
		PopularCourses: []string{"Artificial Intelligence", "Water Management", "Sustainable Energy", "International Business"},
		LivingCosts:    "EUR 11,000 - 16,000/year",
		WorkRights:     "Up to 16 hours/week during term time, full-time during holidays",
	},
	{
		Country:     "New Zealand",
		Headline:    "Quality education in a stunning natural setting",
		Description: "Combine world-class education with an unparalleled quality of life and beautiful landscapes.",
		Stats:       MarketStats{Universities: 8, Students: "150K+", Ranking: "Top 25 globally", Cities: 5},
		Image:       "/assets/images/countries/new-zealand.svg",
		Highlights: []string{
			"Work while studying",
			"Post-study work rights",
			"Safe environment",
			"Outstanding natural beauty",
		},
		PopularCourses: []string{"Agriculture", "Environmental Science", "Tourism", "Film and Digital Media"},
		LivingCosts:    "NZD 20,000 - 25,000/year",
		WorkRights:     "Up to 20 hours/week during term time, full-time during holidays",
	},
	{
		Country:     "United Kingdom",
		Headline:    "Centuries of academic excellence and innovation",
		Description: "Study at institutions with rich history and cutting-edge research in one of the world's most diverse countries.",
		Stats:       MarketStats{Universities: 130, Students: "600K+", Ranking: "#1 in Europe", Cities: 20},
		Image:       "/assets/images/countries/united-kingdom.svg",
		Highlights: []string{
			"Prestigious institutions",
			"Graduate Immigration Route",
			"Multicultural environment",
			"Rich academic heritage",
		},
		PopularCourses: []string{"Business", "Law", "Engineering", "Arts and Design"},
		LivingCosts:    "GBP 12,000 - 20,000/year",
		WorkRights:     "Up to 20 hours/week during term time",
	},
	{
		Country:     "United States",
		Headline:    "Home to world's top-ranked universities",
		Description: "Access cutting-edge research facilities and diverse academic programs in a country known for innovation.",
		Stats:       MarketStats{Universities: 4000, Students: "1M+", Ranking: "#1 globally", Cities: 50},
		Image:       "/assets/images/countries/united-states.svg",
		Highlights: []string{
			"World-class facilities",
			"Diverse campus life",
			"Research opportunities",
			"Optional Practical Training",
		},
		PopularCourses: []string{"Computer Science", "Business", "Engineering", "Life Sciences"},
		LivingCosts:    "USD 15,000 - 25,000/year",
		WorkRights:     "Up to 20 hours/week on-campus during term time",
	},
}
