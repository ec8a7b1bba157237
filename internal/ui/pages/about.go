package pages

type principle struct {
	Title string
	Text  string
}

var principles = []principle{
	{"Student first", "Advice is based on what suits the student, not on commissions."},
	{"Transparency", "Costs, timelines and requirements are explained up front."},
	{"Support that lasts", "We stay in touch from the first consultation until after arrival."},
}

type aboutStat struct {
	Value string
	Label string
}

var aboutStats = []aboutStat{
	{"2,500+", "Colleges and universities"},
	{"37+", "Countries across the world"},
	{"1,500+", "Students placed"},
}
