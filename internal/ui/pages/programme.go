package pages

import (
	"net/url"

	"github.com/pathway-edu/website/internal/model"
)

const (
	MsgProgrammesFailed = "Failed to load programmes. Please try again later."
	MsgProgrammeFailed  = "Failed to load programme. Please try again later."
	msgNoProgrammes     = "No programmes available right now. Check back soon!"
)

// ProgrammeHref is the detail page of a programme.
func ProgrammeHref(p *model.Programme) string {
	return "/programmes/" + url.PathEscape(p.ID)
}

func programmeApplyHref(p *model.Programme) string {
	return ProgrammeHref(p) + "/apply"
}
