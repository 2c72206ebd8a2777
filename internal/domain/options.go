package domain

import "slices"

// Business types offered in the contact form.
var BusinessTypes = []string{
	"Restaurant",
	"Cafe",
	"Retail",
	"Healthcare",
	"Education",
	"Real Estate",
	"Startup",
	"Corporate",
	"Non-Profit",
	"Other",
}

// Project types map to the agency's service lines.
var ProjectTypes = []string{
	"video-editing",
	"graphic-design",
	"web-design",
	"social-media",
	"brand-identity",
	"digital-marketing",
	"logo-design",
	"presentation-design",
	"content-creation",
	"seo",
	"other",
}

func IsBusinessType(v string) bool {
	return slices.Contains(BusinessTypes, v)
}

func IsProjectType(v string) bool {
	return slices.Contains(ProjectTypes, v)
}
