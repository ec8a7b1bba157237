package pages

import (
	"strconv"

	"github.com/pathway-edu/website/internal/model"
)

type stat struct {
	Label string
	Value string
}

func marketStats(m model.Market) []stat {
	return []stat{
		{"Universities", strconv.Itoa(m.Stats.Universities)},
		{"International students", m.Stats.Students},
		{"Global ranking", m.Stats.Ranking},
		{"Student cities", strconv.Itoa(m.Stats.Cities)},
	}
}

func marketHref(m model.Market) string {
	return "/coverage/" + m.Slug()
}
