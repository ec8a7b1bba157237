package ui

import twmerge "github.com/Oudwins/tailwind-merge-go"

// Class merges tailwind classes, later ones winning on conflicts.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}
