package model

// Testimonial is a quote from a former student shown on the home page.
type Testimonial struct {
	Quote  string
	Author string
	// Role is the programme the student was admitted to.
	Role   string
	School string
}

var Testimonials = []Testimonial{
	{
		Quote:  "I've been consistently impressed with Pathway. The team is responsive, delivers results promptly, and goes above and beyond to ensure satisfaction. Highly satisfied!",
		Author: "Christopher Uzoma",
		Role:   "Robotics and Autonomous Systems (System Engineering)",
		School: "Arizona State University, USA",
	},
	{
		Quote:  "You guys are amazing! Your admission process is prompt, and your client relationship is excellent.",
		Author: "Eunice Edokpolor",
		Role:   "Personal Support Worker",
		School: "Canadore College, Canada",
	},
	{
		Quote:  "Pathway's services are exceptional. They assist with applications, follow-ups, and provide timely support. I'm truly grateful for the help!",
		Author: "Oluwatosin Bello",
		Role:   "Occupational Health, Safety & Wellness",
		School: "Conestoga College, Canada",
	},
	{
		Quote:  "I had a great experience with Pathway. Their guidance secured my spot at DePaul, and I couldn't be happier. Highly recommend their services!",
		Author: "Stephenie Ugochukwu Obiazikwor",
		Role:   "Master of Science - Data Science - Computational Methods",
		School: "DePaul University, USA",
	},
	{
		Quote:  "Highly recommended for anyone seeking international admissions. They guide you from start to finish, offering step-by-step support and quick responses. Great team!",
		Author: "Chidiebube Joseph Uduh",
		Role:   "Supply Chain Management",
		School: "Georgian College, Canada",
	},
	{
		Quote:  "Pathway not only secures admissions but also helps with financial aid, which is often the biggest challenge. Excellent service, keep it up!",
		Author: "Brume Osale Charles",
		Role:   "Master of Public Health",
		School: "Massachusetts College of Pharmacy and Health Sciences",
	},
	{
		Quote:  "Pathway offers professional and efficient services. Their quick responses and quality education support are unmatched.",
		Author: "Uduak Okon Iwatt",
		Role:   "Business - Accounting",
		School: "Niagara College, Canada",
	},
}
