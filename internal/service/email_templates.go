package service

import (
	"fmt"
	"sort"
	"strings"
)

func applicationNoticeTemplate(notice ApplicationNotice, appURL, appName string) (string, string) {
	var subject string
	if notice.Kind == "programme" {
		subject = fmt.Sprintf("New programme application from %s", notice.ApplicantName)
	} else {
		subject = fmt.Sprintf("New eligibility application from %s", notice.ApplicantName)
	}

	labels := make([]string, 0, len(notice.FormData))
	for label := range notice.FormData {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var details strings.Builder
	for _, label := range labels {
		value := notice.FormData[label]
		if list, ok := value.([]string); ok {
			value = strings.Join(list, ", ")
		}
		fmt.Fprintf(&details, "%s: %v\n", label, value)
	}

	programme := ""
	if notice.ProgrammeID != "" {
		programme = fmt.Sprintf("Programme: %s/programmes/%s\n\n", appURL, notice.ProgrammeID)
	}

	body := fmt.Sprintf(`A new application was submitted on the %s website.

%s%s
The full record is available in the content dashboard.

%s`, appName, programme, details.String(), appName)

	return subject, body
}

func applicantConfirmationTemplate(name, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("We received your application - %s", appName)
	body := fmt.Sprintf(`Hi %s,

Thank you for applying. Our counsellors will review your details and get back to you within a few working days.

In the meantime you can read our latest guides at %s/blogs.

Best,
The %s Team`, name, appURL, appName)

	return subject, body
}
