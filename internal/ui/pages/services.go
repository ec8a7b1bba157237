package pages

type service struct {
	Title       string
	Description string
	Details     []string
}

var services = []service{
	{
		Title:       "Free Education Counselling",
		Description: "Free advice on the study option that best fits your goals, budget and background.",
		Details: []string{
			"One-to-one sessions with an adviser",
			"Course and university shortlisting",
			"Scholarship and funding guidance",
		},
	},
	{
		Title:       "Education Support Services",
		Description: "We simplify the admissions paperwork so you can focus on getting ready to travel.",
		Details: []string{
			"Application review and submission",
			"Statement of purpose feedback",
			"Document checklists per institution",
		},
	},
	{
		Title:       "Visa Assistance",
		Description: "Certified advisers help with student, work and visitor visa applications.",
		Details: []string{
			"Eligibility checks before you apply",
			"Interview preparation",
			"Proof of funds guidance",
		},
	},
	{
		Title:       "English Proficiency Classes",
		Description: "Preparation for IELTS, TOEFL, PTE and other international English exams.",
		Details: []string{
			"Mock tests with feedback",
			"Small group and private classes",
			"Flexible online schedules",
		},
	},
}
